package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
)

// Kind là loại principal, cũng là giá trị "type" trong token
type Kind string

// Các loại principal
const (
	KindUser     Kind = "user"
	KindManager  Kind = "manager"
	KindEmployee Kind = "employee"
)

// Role là quyền chi tiết trong từng loại principal
type Role string

// Các role
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Principal là người gọi đã xác thực. Chỉ có ba biến thể:
// *OwnerPrincipal, *ManagerPrincipal, *EmployeePrincipal.
type Principal interface {
	ID() primitive.ObjectID
	Kind() Kind
	Role() Role
	Email() string
	Name() string
	Photo() string

	isPrincipal()
}

// OwnerPrincipal bọc tài khoản Owner
type OwnerPrincipal struct {
	Owner Owner
}

func (p *OwnerPrincipal) ID() primitive.ObjectID { return p.Owner.ID }
func (p *OwnerPrincipal) Kind() Kind             { return KindUser }
func (p *OwnerPrincipal) Email() string          { return p.Owner.Email }
func (p *OwnerPrincipal) Name() string           { return p.Owner.Name }
func (p *OwnerPrincipal) Photo() string          { return p.Owner.Photo }
func (p *OwnerPrincipal) isPrincipal()           {}

// Role của Owner lấy từ record, record cũ không có role được coi là admin
func (p *OwnerPrincipal) Role() Role {
	if p.Owner.Role == "" {
		return RoleAdmin
	}
	return Role(p.Owner.Role)
}

// ManagerPrincipal bọc Manager, role admin hoặc manager lấy từ record
type ManagerPrincipal struct {
	Manager orgmodels.Manager
}

func (p *ManagerPrincipal) ID() primitive.ObjectID { return p.Manager.ID }
func (p *ManagerPrincipal) Kind() Kind             { return KindManager }
func (p *ManagerPrincipal) Role() Role             { return Role(p.Manager.Role) }
func (p *ManagerPrincipal) Email() string          { return p.Manager.Email }
func (p *ManagerPrincipal) Name() string           { return p.Manager.Name }
func (p *ManagerPrincipal) Photo() string          { return p.Manager.Photo }
func (p *ManagerPrincipal) isPrincipal()           {}

// EmployeePrincipal bọc Employee (đã populate department, manager), role luôn là employee
type EmployeePrincipal struct {
	Employee orgmodels.EmployeeDetail
}

func (p *EmployeePrincipal) ID() primitive.ObjectID { return p.Employee.ID }
func (p *EmployeePrincipal) Kind() Kind             { return KindEmployee }
func (p *EmployeePrincipal) Role() Role             { return RoleEmployee }
func (p *EmployeePrincipal) Email() string          { return p.Employee.EmpEmail }
func (p *EmployeePrincipal) Name() string           { return p.Employee.EmpName.Text() }
func (p *EmployeePrincipal) Photo() string          { return p.Employee.Photo }
func (p *EmployeePrincipal) isPrincipal()           {}

// UserView là thông tin principal trả cho client (login, /auth/me, /profile)
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  Role   `json:"role"`
	Type  Kind   `json:"type"`
}

// ViewOf dựng UserView từ principal
func ViewOf(p Principal) UserView {
	return UserView{
		ID:    p.ID().Hex(),
		Email: p.Email(),
		Name:  p.Name(),
		Photo: p.Photo(),
		Role:  p.Role(),
		Type:  p.Kind(),
	}
}
