package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
)

// DefaultProjectCategory dùng khi tạo Project không có category
const DefaultProjectCategory = "general"

// MaxProjectImages là số file ảnh tối đa trong một request
const MaxProjectImages = 10

// Project là một công trình đã thực hiện
type Project struct {
	ID          primitive.ObjectID       `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       basemodels.LocalizedText `json:"title" bson:"title"`
	Description basemodels.LocalizedText `json:"description" bson:"description"`
	Images      []string                 `json:"images" bson:"images"`
	Category    string                   `json:"category" bson:"category" default:"general" index:"single"`
	CreatedAt   int64                    `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt   int64                    `json:"updatedAt" bson:"updatedAt"`
}
