package orgsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// OrganizationService thao tác trên collection organizations
type OrganizationService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Organization]
}

// NewOrganizationService tạo mới OrganizationService
func NewOrganizationService(store *database.Store) (*OrganizationService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Organizations)
	if err != nil {
		return nil, err
	}
	return &OrganizationService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Organization](coll)}, nil
}

func organizationPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		basesvc.LookupMany(global.MongoDB_ColNames.Departments, "organization", "departments"),
	}
}

// FindDetails trả về tất cả Organization mới nhất trước, kèm departments
func (s *OrganizationService) FindDetails(ctx context.Context) ([]orgmodels.OrganizationDetail, error) {
	return basesvc.AggregateInto[orgmodels.OrganizationDetail](ctx, s.Collection(), organizationPipeline(bson.M{}))
}

// FindDetailById trả về một Organization kèm departments
func (s *OrganizationService) FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.OrganizationDetail, error) {
	return basesvc.AggregateOne[orgmodels.OrganizationDetail](ctx, s.Collection(), organizationPipeline(bson.M{"_id": id}))
}
