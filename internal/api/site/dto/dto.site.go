// Package dto chứa input của các route nội dung website
package dto

import (
	"encoding/json"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// ServiceInput đầu vào tạo/cập nhật Service. Ảnh là file field "image" hoặc imageUrl.
type ServiceInput struct {
	Title       *basemodels.LocalizedText `json:"title"`
	Description *basemodels.LocalizedText `json:"description"`
	Order       *json.Number              `json:"order"`
	ImageURL    string                    `json:"imageUrl" validate:"omitempty,http_url"`
}

// ProjectInput đầu vào tạo/cập nhật Project. Ảnh là các file field "images" và/hoặc imageUrls.
type ProjectInput struct {
	Title       *basemodels.LocalizedText `json:"title"`
	Description *basemodels.LocalizedText `json:"description"`
	Category    *string                   `json:"category" validate:"omitempty,no_xss"`
	ImageURLs   basemodels.StringList     `json:"imageUrls" validate:"omitempty,dive,http_url"`
}

// RequestCreateInput là form liên hệ public
type RequestCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Phone       string `json:"phone" validate:"required,no_xss"`
	Email       string `json:"email" validate:"required"`
	Address     string `json:"address" validate:"required,no_xss"`
	ServiceType string `json:"serviceType" validate:"required,no_xss"`
	Message     string `json:"message" validate:"no_xss"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,http_url"`
}

// RequestUpdateInput chỉ cho đổi status
type RequestUpdateInput struct {
	Status string `json:"status"`
}
