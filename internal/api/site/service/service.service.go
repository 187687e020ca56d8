// Package sitesvc chứa các service nội dung website: Service, Project, ServiceRequest.
package sitesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// ErrServiceNotFound khi không có Service với id
var ErrServiceNotFound = common.NewNotFoundError("Service not found")

// ServiceService thao tác trên collection services
type ServiceService struct {
	*basesvc.BaseServiceMongoImpl[sitemodels.Service]
}

// NewServiceService tạo mới ServiceService
func NewServiceService(store *database.Store) (*ServiceService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Services)
	if err != nil {
		return nil, err
	}
	return &ServiceService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.Service](coll)}, nil
}

// List trả về Service theo order tăng dần, cùng order thì mới nhất trước
func (s *ServiceService) List(ctx context.Context) ([]sitemodels.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{}, opts)
}

// Get trả về một Service
func (s *ServiceService) Get(ctx context.Context, id primitive.ObjectID) (sitemodels.Service, error) {
	svc, err := s.FindOneById(ctx, id)
	return svc, notFoundAs(err, ErrServiceNotFound)
}

// Update cập nhật Service, set rỗng chỉ trả về bản hiện tại
func (s *ServiceService) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (sitemodels.Service, error) {
	if len(set) == 0 {
		return s.Get(ctx, id)
	}
	svc, err := s.UpdateById(ctx, id, set)
	return svc, notFoundAs(err, ErrServiceNotFound)
}

// Delete xóa Service
func (s *ServiceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundAs(s.DeleteById(ctx, id), ErrServiceNotFound)
}

// notFoundAs thay lỗi "Not found" chung bằng lỗi riêng của resource
func notFoundAs(err, notFound error) error {
	if errors.Is(err, common.ErrNotFound) {
		return notFound
	}
	return err
}
