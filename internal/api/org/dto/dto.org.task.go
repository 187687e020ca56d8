package orgdto

import (
	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// TaskCreateInput đầu vào tạo Task
type TaskCreateInput struct {
	Title       basemodels.LocalizedText `json:"title"`
	Description basemodels.LocalizedText `json:"description"`
	Status      string                   `json:"status"`
	DueDate     string                   `json:"dueDate" validate:"required"`
	Employee    string                   `json:"employee" validate:"required,objectid"`
	Manager     string                   `json:"manager" validate:"omitempty,objectid"`
}

// TaskUpdateInput đầu vào cập nhật Task
type TaskUpdateInput struct {
	Title       *basemodels.LocalizedText `json:"title"`
	Description *basemodels.LocalizedText `json:"description"`
	Status      *string                   `json:"status"`
	DueDate     *string                   `json:"dueDate"`
	Employee    *string                   `json:"employee" validate:"omitempty,objectid"`
	Manager     *string                   `json:"manager" validate:"omitempty,objectid"`
}

// TaskStatusInput là phần duy nhất Employee được gửi khi cập nhật Task
type TaskStatusInput struct {
	Status *string `json:"status"`
}
