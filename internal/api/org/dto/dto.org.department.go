package orgdto

// DepartmentCreateInput đầu vào tạo Department
type DepartmentCreateInput struct {
	DeptName     string `json:"dept_name" validate:"required,no_xss"`
	DeptContact  string `json:"dept_contact" validate:"no_xss"`
	DeptEmail    string `json:"dept_email" validate:"omitempty,email"`
	Organization string `json:"organization" validate:"required,objectid"`
}

// DepartmentUpdateInput đầu vào cập nhật Department
type DepartmentUpdateInput struct {
	DeptName     *string `json:"dept_name" validate:"omitempty,min=1,no_xss"`
	DeptContact  *string `json:"dept_contact" validate:"omitempty,no_xss"`
	DeptEmail    *string `json:"dept_email" validate:"omitempty,email"`
	Organization *string `json:"organization" validate:"omitempty,objectid"`
}
