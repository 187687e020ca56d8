package sitesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// Lỗi của ServiceRequest
var (
	ErrRequestNotFound      = common.NewNotFoundError("Request not found")
	ErrInvalidRequestStatus = common.NewValidationError("Invalid status", sitemodels.RequestStatuses)
)

// RequestService thao tác trên collection requests
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[sitemodels.ServiceRequest]
}

// NewRequestService tạo mới RequestService
func NewRequestService(store *database.Store) (*RequestService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Requests)
	if err != nil {
		return nil, err
	}
	return &RequestService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.ServiceRequest](coll)}, nil
}

// List trả về ServiceRequest mới nhất trước, status rỗng thì lấy tất cả
func (s *RequestService) List(ctx context.Context, status string) ([]sitemodels.ServiceRequest, error) {
	filter := bson.M{}
	if status != "" {
		if !sitemodels.IsValidRequestStatus(status) {
			return nil, ErrInvalidRequestStatus
		}
		filter["status"] = status
	}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// Get trả về một ServiceRequest
func (s *RequestService) Get(ctx context.Context, id primitive.ObjectID) (sitemodels.ServiceRequest, error) {
	r, err := s.FindOneById(ctx, id)
	return r, notFoundAs(err, ErrRequestNotFound)
}

// Create lưu yêu cầu mới với status pending
func (s *RequestService) Create(ctx context.Context, r sitemodels.ServiceRequest) (sitemodels.ServiceRequest, error) {
	r.Status = sitemodels.RequestStatusPending
	return s.InsertOne(ctx, r)
}

// UpdateStatus đổi status. Status rỗng giữ nguyên bản hiện tại.
func (s *RequestService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (sitemodels.ServiceRequest, error) {
	if status == "" {
		return s.Get(ctx, id)
	}
	if !sitemodels.IsValidRequestStatus(status) {
		return sitemodels.ServiceRequest{}, ErrInvalidRequestStatus
	}
	r, err := s.UpdateById(ctx, id, bson.M{"status": status})
	return r, notFoundAs(err, ErrRequestNotFound)
}

// Stats đếm ServiceRequest theo từng status
func (s *RequestService) Stats(ctx context.Context) (sitemodels.RequestStats, error) {
	var stats sitemodels.RequestStats
	counts := []struct {
		filter bson.M
		dst    *int64
	}{
		{bson.M{}, &stats.Total},
		{bson.M{"status": sitemodels.RequestStatusPending}, &stats.Pending},
		{bson.M{"status": sitemodels.RequestStatusInProgress}, &stats.InProgress},
		{bson.M{"status": sitemodels.RequestStatusDone}, &stats.Done},
	}
	for _, c := range counts {
		n, err := s.CountDocuments(ctx, c.filter)
		if err != nil {
			return stats, err
		}
		*c.dst = n
	}
	return stats, nil
}

// Delete xóa ServiceRequest
func (s *RequestService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundAs(s.DeleteById(ctx, id), ErrRequestNotFound)
}
