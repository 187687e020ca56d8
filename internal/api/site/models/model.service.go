// Package models chứa các model nội dung public của website: dịch vụ, dự án, yêu cầu dịch vụ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// Service là một dịch vụ hiển thị trên trang chủ, sắp theo Order tăng dần
type Service struct {
	ID          primitive.ObjectID       `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       basemodels.LocalizedText `json:"title" bson:"title"`
	Description basemodels.LocalizedText `json:"description" bson:"description"`
	Image       string                   `json:"image" bson:"image"`
	Order       int64                    `json:"order" bson:"order" default:"0" index:"single"`
	CreatedAt   int64                    `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt   int64                    `json:"updatedAt" bson:"updatedAt"`
}
