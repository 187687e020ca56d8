package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò của Manager
const (
	ManagerRoleAdmin   = "admin"
	ManagerRoleManager = "manager"
)

// Manager là nhân sự quản lý; role admin được coi như Owner khi phân quyền
type Manager struct {
	ID         primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string              `json:"name" bson:"name"`
	Email      string              `json:"email" bson:"email" index:"unique"`
	Password   string              `json:"-" bson:"password,omitempty"`
	Contact    string              `json:"contact" bson:"contact"`
	Department *primitive.ObjectID `json:"department,omitempty" bson:"department,omitempty" index:"single"`
	Role       string              `json:"role" bson:"role" default:"manager"`
	Photo      string              `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt  int64               `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt  int64               `json:"updatedAt" bson:"updatedAt"`
}

// ManagerDetail là Manager với department đã populate
type ManagerDetail struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Contact    string             `json:"contact" bson:"contact"`
	Department *Department        `json:"department,omitempty" bson:"department,omitempty"`
	Role       string             `json:"role" bson:"role"`
	Photo      string             `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// ManagerSummary là thông tin rút gọn khi populate manager vào record khác
type ManagerSummary struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Role  string             `json:"role" bson:"role"`
}

// IsValidManagerRole kiểm tra role của Manager
func IsValidManagerRole(role string) bool {
	return role == ManagerRoleAdmin || role == ManagerRoleManager
}
