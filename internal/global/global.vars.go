// Package global chứa các giá trị dùng chung, bất biến sau khi khởi tạo:
// bảng tên collection và validator.
// Kết nối database không nằm ở đây, được truyền qua database.Store.
package global

import (
	"github.com/go-playground/validator/v10"
)

// MongoDB_ColNames chứa tên các collection trong database
var MongoDB_ColNames = struct {
	Users         string // Owner (tài khoản quản trị gốc)
	Managers      string
	Employees     string
	Departments   string
	Organizations string
	Tasks         string
	Services      string
	Projects      string
	Requests      string // Yêu cầu dịch vụ từ form liên hệ
}{
	Users:         "users",
	Managers:      "managers",
	Employees:     "employees",
	Departments:   "departments",
	Organizations: "organizations",
	Tasks:         "tasks",
	Services:      "services",
	Projects:      "projects",
	Requests:      "requests",
}

// Validate là validator dùng chung, khởi tạo bởi InitValidator
var Validate *validator.Validate
