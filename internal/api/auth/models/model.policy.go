package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Predicate quyết định principal có được đi tiếp hay không
type Predicate func(Principal) bool

// AdminOnly: Owner role admin, hoặc Manager role admin
func AdminOnly(p Principal) bool {
	switch v := p.(type) {
	case *OwnerPrincipal:
		return v.Role() == RoleAdmin
	case *ManagerPrincipal:
		return v.Role() == RoleAdmin
	}
	return false
}

// AdminOrManager: mọi Owner và mọi Manager
func AdminOrManager(p Principal) bool {
	switch p.(type) {
	case *OwnerPrincipal, *ManagerPrincipal:
		return true
	}
	return false
}

// ManagerOnly hiện trùng với AdminOrManager, giữ tên riêng cho các route quản lý nhân viên
var ManagerOnly Predicate = AdminOrManager

// EmployeeOnly: chỉ Employee
func EmployeeOnly(p Principal) bool {
	_, ok := p.(*EmployeePrincipal)
	return ok
}

// IsAdmin cho biết principal có quyền admin (Owner hoặc Manager role admin)
func IsAdmin(p Principal) bool {
	return AdminOnly(p)
}

// RestrictedManagerID trả về id của Manager role manager (không phải admin).
// Các handler dùng id này để thu hẹp dữ liệu về những record manager đó phụ trách.
func RestrictedManagerID(p Principal) (primitive.ObjectID, bool) {
	m, ok := p.(*ManagerPrincipal)
	if !ok || m.Role() != RoleManager {
		return primitive.NilObjectID, false
	}
	return m.ID(), true
}

// EmployeeID trả về id khi principal là Employee
func EmployeeID(p Principal) (primitive.ObjectID, bool) {
	e, ok := p.(*EmployeePrincipal)
	if !ok {
		return primitive.NilObjectID, false
	}
	return e.ID(), true
}
