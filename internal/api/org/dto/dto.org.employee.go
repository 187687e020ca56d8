package orgdto

import (
	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// EmployeeCreateInput đầu vào tạo Employee. Password rỗng thì hệ thống tự sinh.
type EmployeeCreateInput struct {
	EmpName    basemodels.LocalizedText `json:"emp_name"`
	EmpEmail   string                   `json:"emp_email" validate:"required,email"`
	EmpContact string                   `json:"emp_contact" validate:"no_xss"`
	EmpDob     string                   `json:"emp_dob"`
	Department string                   `json:"department" validate:"required,objectid"`
	Manager    string                   `json:"manager" validate:"omitempty,objectid"`
	Password   string                   `json:"password" validate:"omitempty,min=6"`
	Photo      string                   `json:"photo" validate:"omitempty,http_url"`
}

// EmployeeUpdateInput đầu vào cập nhật Employee. Password rỗng giữ mật khẩu cũ.
type EmployeeUpdateInput struct {
	EmpName    *basemodels.LocalizedText `json:"emp_name"`
	EmpEmail   *string                   `json:"emp_email" validate:"omitempty,email"`
	EmpContact *string                   `json:"emp_contact" validate:"omitempty,no_xss"`
	EmpDob     *string                   `json:"emp_dob"`
	Department *string                   `json:"department" validate:"omitempty,objectid"`
	Manager    *string                   `json:"manager" validate:"omitempty,objectid"`
	Password   string                    `json:"password" validate:"omitempty,min=6"`
	Photo      *string                   `json:"photo" validate:"omitempty,http_url"`
}
