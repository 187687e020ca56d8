// Package orgsvc chứa các service của domain tổ chức và các quy tắc thu hẹp dữ liệu theo principal.
package orgsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// ErrManagerRequired khi tạo Employee/Task mà không xác định được manager phụ trách
var ErrManagerRequired = common.NewValidationError("Manager is required", nil)

// EmployeeListFilter dựng filter danh sách Employee.
// Manager role manager chỉ thấy nhân viên của mình, Employee chỉ thấy chính mình.
func EmployeeListFilter(p authmodels.Principal, department, manager *primitive.ObjectID) bson.M {
	filter := bson.M{}
	if department != nil {
		filter["department"] = *department
	}
	if manager != nil {
		filter["manager"] = *manager
	}
	if id, ok := authmodels.RestrictedManagerID(p); ok {
		filter["manager"] = id
	}
	if id, ok := authmodels.EmployeeID(p); ok {
		filter["_id"] = id
	}
	return filter
}

// TaskListFilter dựng filter danh sách Task.
// Manager role manager bị ép manager=self, Employee bị ép employee=self.
func TaskListFilter(p authmodels.Principal, status string, employee, manager *primitive.ObjectID) bson.M {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if employee != nil {
		filter["employee"] = *employee
	}
	if manager != nil {
		filter["manager"] = *manager
	}
	if id, ok := authmodels.RestrictedManagerID(p); ok {
		filter["manager"] = id
	}
	if id, ok := authmodels.EmployeeID(p); ok {
		filter["employee"] = id
	}
	return filter
}

// CheckOwnership kiểm tra principal có quyền trên record gắn với employeeID và managerID.
// Admin/Owner luôn được phép; Manager role manager chỉ với record mình phụ trách;
// Employee chỉ với record của chính mình.
func CheckOwnership(p authmodels.Principal, employeeID, managerID primitive.ObjectID) error {
	if id, ok := authmodels.RestrictedManagerID(p); ok && id != managerID {
		return common.ErrForbidden
	}
	if id, ok := authmodels.EmployeeID(p); ok && id != employeeID {
		return common.ErrForbidden
	}
	return nil
}

// OwningManager trả về manager phụ trách record mới.
// Manager role manager luôn là chính nó, bất kể body gửi gì.
func OwningManager(p authmodels.Principal, requested *primitive.ObjectID) (primitive.ObjectID, error) {
	if id, ok := authmodels.RestrictedManagerID(p); ok {
		return id, nil
	}
	if requested == nil || requested.IsZero() {
		return primitive.NilObjectID, ErrManagerRequired
	}
	return *requested, nil
}

// NarrowEmployeeUpdate bỏ các field principal không được đổi trên Employee
func NarrowEmployeeUpdate(p authmodels.Principal, set bson.M) bson.M {
	if _, ok := authmodels.RestrictedManagerID(p); ok {
		delete(set, "manager")
	}
	return set
}

// NarrowTaskUpdate bỏ các field principal không được đổi trên Task.
// Employee chỉ được đổi status.
func NarrowTaskUpdate(p authmodels.Principal, set bson.M) bson.M {
	if _, ok := authmodels.EmployeeID(p); ok {
		return bson.M(utility.PickKeys(set, "status"))
	}
	if _, ok := authmodels.RestrictedManagerID(p); ok {
		delete(set, "manager")
	}
	return set
}
