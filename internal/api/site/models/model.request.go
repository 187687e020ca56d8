package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zougmar/hassan-elec/internal/utility"
)

// Trạng thái xử lý của ServiceRequest
const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusDone       = "done"
)

// RequestStatuses là tập giá trị hợp lệ của ServiceRequest.Status
var RequestStatuses = []string{RequestStatusPending, RequestStatusInProgress, RequestStatusDone}

// IsValidRequestStatus kiểm tra status của ServiceRequest
func IsValidRequestStatus(status string) bool {
	return utility.Contains(RequestStatuses, status)
}

// ServiceRequest là yêu cầu gửi từ form liên hệ public
type ServiceRequest struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Phone       string             `json:"phone" bson:"phone"`
	Email       string             `json:"email" bson:"email"`
	Address     string             `json:"address" bson:"address"`
	ServiceType string             `json:"serviceType" bson:"serviceType"`
	Message     string             `json:"message" bson:"message"`
	Image       string             `json:"image" bson:"image"`
	Status      string             `json:"status" bson:"status" default:"pending" index:"single"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// RequestStats là số lượng ServiceRequest theo trạng thái
type RequestStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}
