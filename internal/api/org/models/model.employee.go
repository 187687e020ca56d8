package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// Employee luôn thuộc một Department và do một Manager phụ trách
type Employee struct {
	ID         primitive.ObjectID       `json:"_id,omitempty" bson:"_id,omitempty"`
	EmpName    basemodels.LocalizedText `json:"emp_name" bson:"emp_name"`
	EmpEmail   string                   `json:"emp_email" bson:"emp_email" index:"unique"`
	EmpContact string                   `json:"emp_contact" bson:"emp_contact"`
	EmpDob     *time.Time               `json:"emp_dob,omitempty" bson:"emp_dob,omitempty"`
	Department primitive.ObjectID       `json:"department" bson:"department" index:"single"`
	Manager    primitive.ObjectID       `json:"manager" bson:"manager" index:"single"`
	Password   string                   `json:"-" bson:"password,omitempty"`
	Photo      string                   `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt  int64                    `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt  int64                    `json:"updatedAt" bson:"updatedAt"`
}

// EmployeeDetail là Employee với department và manager đã populate
type EmployeeDetail struct {
	ID         primitive.ObjectID       `json:"_id" bson:"_id"`
	EmpName    basemodels.LocalizedText `json:"emp_name" bson:"emp_name"`
	EmpEmail   string                   `json:"emp_email" bson:"emp_email"`
	EmpContact string                   `json:"emp_contact" bson:"emp_contact"`
	EmpDob     *time.Time               `json:"emp_dob,omitempty" bson:"emp_dob,omitempty"`
	Department *Department              `json:"department,omitempty" bson:"department,omitempty"`
	Manager    *ManagerSummary          `json:"manager,omitempty" bson:"manager,omitempty"`
	Photo      string                   `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt  int64                    `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                    `json:"updatedAt" bson:"updatedAt"`
}

// ManagerID trả về id manager phụ trách, NilObjectID nếu reference bị treo
func (e *EmployeeDetail) ManagerID() primitive.ObjectID {
	if e.Manager == nil {
		return primitive.NilObjectID
	}
	return e.Manager.ID
}

// EmployeeSummary là thông tin rút gọn khi populate employee vào task
type EmployeeSummary struct {
	ID       primitive.ObjectID       `json:"_id" bson:"_id"`
	EmpName  basemodels.LocalizedText `json:"emp_name" bson:"emp_name"`
	EmpEmail string                   `json:"emp_email" bson:"emp_email"`
}
