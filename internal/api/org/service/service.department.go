package orgsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// ErrOrganizationNotFound khi department tham chiếu tới organization không tồn tại
var ErrOrganizationNotFound = common.NewNotFoundError("Organization not found")

// DepartmentService thao tác trên collection departments
type DepartmentService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Department]
	organizations *OrganizationService
}

// NewDepartmentService tạo mới DepartmentService
func NewDepartmentService(store *database.Store, organizations *OrganizationService) (*DepartmentService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Departments)
	if err != nil {
		return nil, err
	}
	return &DepartmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Department](coll),
		organizations:        organizations,
	}, nil
}

func departmentPipeline(match bson.M) []bson.M {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
	}
	return append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Organizations, "organization", "organization", nil)...)
}

// FindDetails trả về Department (lọc theo organization nếu có), kèm organization
func (s *DepartmentService) FindDetails(ctx context.Context, organization *primitive.ObjectID) ([]orgmodels.DepartmentDetail, error) {
	match := bson.M{}
	if organization != nil {
		match["organization"] = *organization
	}
	return basesvc.AggregateInto[orgmodels.DepartmentDetail](ctx, s.Collection(), departmentPipeline(match))
}

// FindDetailById trả về một Department kèm organization
func (s *DepartmentService) FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.DepartmentDetail, error) {
	return basesvc.AggregateOne[orgmodels.DepartmentDetail](ctx, s.Collection(), departmentPipeline(bson.M{"_id": id}))
}

// EnsureOrganization kiểm tra organization được tham chiếu có tồn tại
func (s *DepartmentService) EnsureOrganization(ctx context.Context, id primitive.ObjectID) error {
	exists, err := s.organizations.DocumentExists(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !exists {
		return ErrOrganizationNotFound
	}
	return nil
}
