package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// Trạng thái của Task
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// TaskStatuses là tập giá trị hợp lệ của Task.Status
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Task giao cho một Employee, do một Manager phụ trách
type Task struct {
	ID          primitive.ObjectID       `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       basemodels.LocalizedText `json:"title" bson:"title"`
	Description basemodels.LocalizedText `json:"description" bson:"description"`
	Status      string                   `json:"status" bson:"status" default:"pending" index:"single"`
	DueDate     time.Time                `json:"dueDate" bson:"dueDate" index:"single"`
	Employee    primitive.ObjectID       `json:"employee" bson:"employee" index:"single"`
	Manager     primitive.ObjectID       `json:"manager" bson:"manager" index:"single"`
	CreatedAt   int64                    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                    `json:"updatedAt" bson:"updatedAt"`
}

// TaskDetail là Task với employee và manager đã populate
type TaskDetail struct {
	ID          primitive.ObjectID       `json:"_id" bson:"_id"`
	Title       basemodels.LocalizedText `json:"title" bson:"title"`
	Description basemodels.LocalizedText `json:"description" bson:"description"`
	Status      string                   `json:"status" bson:"status"`
	DueDate     time.Time                `json:"dueDate" bson:"dueDate"`
	Employee    *EmployeeSummary         `json:"employee,omitempty" bson:"employee,omitempty"`
	Manager     *ManagerSummary          `json:"manager,omitempty" bson:"manager,omitempty"`
	CreatedAt   int64                    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                    `json:"updatedAt" bson:"updatedAt"`
}

// IsValidTaskStatus kiểm tra status thuộc tập đóng
func IsValidTaskStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}
