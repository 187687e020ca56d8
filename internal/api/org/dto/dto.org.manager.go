package orgdto

// ManagerCreateInput đầu vào tạo Manager
type ManagerCreateInput struct {
	Name       string `json:"name" validate:"required,no_xss"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Contact    string `json:"contact" validate:"no_xss"`
	Department string `json:"department" validate:"omitempty,objectid"`
	Role       string `json:"role" validate:"omitempty,oneof=admin manager"`
	Photo      string `json:"photo" validate:"omitempty,http_url"`
}

// ManagerUpdateInput đầu vào cập nhật Manager. Password rỗng giữ mật khẩu cũ.
type ManagerUpdateInput struct {
	Name       *string `json:"name" validate:"omitempty,min=1,no_xss"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   string  `json:"password" validate:"omitempty,min=6"`
	Contact    *string `json:"contact" validate:"omitempty,no_xss"`
	Department *string `json:"department" validate:"omitempty,objectid"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin manager"`
	Photo      *string `json:"photo" validate:"omitempty,http_url"`
}
