package orgsvc

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// Lỗi của Manager
var (
	ErrManagerExists      = common.NewError(common.ErrCodeBusinessState, "Manager with this email already exists", common.StatusConflict, nil)
	ErrInvalidManagerRole = common.NewValidationError("Role must be admin or manager", nil)
	ErrManagerNotFound    = common.NewNotFoundError("Manager not found")
)

// ManagerService thao tác trên collection managers
type ManagerService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Manager]
}

// NewManagerService tạo mới ManagerService
func NewManagerService(store *database.Store) (*ManagerService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Managers)
	if err != nil {
		return nil, err
	}
	return &ManagerService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Manager](coll)}, nil
}

func managerPipeline(match bson.M) []bson.M {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		{"$project": bson.M{"password": 0}},
	}
	return append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Departments, "department", "department", nil)...)
}

// FindByEmail tìm Manager theo email (không phân biệt hoa thường)
func (s *ManagerService) FindByEmail(ctx context.Context, email string) (orgmodels.Manager, error) {
	return s.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}, nil)
}

// FindDetails trả về Manager (lọc theo department nếu có), kèm department, không có password
func (s *ManagerService) FindDetails(ctx context.Context, department *primitive.ObjectID) ([]orgmodels.ManagerDetail, error) {
	match := bson.M{}
	if department != nil {
		match["department"] = *department
	}
	return basesvc.AggregateInto[orgmodels.ManagerDetail](ctx, s.Collection(), managerPipeline(match))
}

// FindDetailById trả về một Manager kèm department
func (s *ManagerService) FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.ManagerDetail, error) {
	detail, err := basesvc.AggregateOne[orgmodels.ManagerDetail](ctx, s.Collection(), managerPipeline(bson.M{"_id": id}))
	if errors.Is(err, common.ErrNotFound) {
		return detail, ErrManagerNotFound
	}
	return detail, err
}

// Create tạo Manager mới: email viết thường, role mặc định manager, mật khẩu được hash
func (s *ManagerService) Create(ctx context.Context, m orgmodels.Manager, password string) (orgmodels.ManagerDetail, error) {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if m.Role == "" {
		m.Role = orgmodels.ManagerRoleManager
	}
	if !orgmodels.IsValidManagerRole(m.Role) {
		return orgmodels.ManagerDetail{}, ErrInvalidManagerRole
	}

	exists, err := s.DocumentExists(ctx, bson.M{"email": m.Email})
	if err != nil {
		return orgmodels.ManagerDetail{}, err
	}
	if exists {
		return orgmodels.ManagerDetail{}, ErrManagerExists
	}

	hash, err := utility.HashPassword(password)
	if err != nil {
		return orgmodels.ManagerDetail{}, err
	}
	m.Password = hash

	created, err := s.InsertOne(ctx, m)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return orgmodels.ManagerDetail{}, ErrManagerExists
		}
		return orgmodels.ManagerDetail{}, err
	}
	return s.FindDetailById(ctx, created.ID)
}

// Update cập nhật Manager. Password khác rỗng được hash lại.
func (s *ManagerService) Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.ManagerDetail, error) {
	if email, ok := set["email"].(string); ok {
		email = strings.ToLower(strings.TrimSpace(email))
		taken, err := s.DocumentExists(ctx, bson.M{"email": email, "_id": bson.M{"$ne": id}})
		if err != nil {
			return orgmodels.ManagerDetail{}, err
		}
		if taken {
			return orgmodels.ManagerDetail{}, ErrManagerExists
		}
		set["email"] = email
	}
	if role, ok := set["role"].(string); ok && !orgmodels.IsValidManagerRole(role) {
		return orgmodels.ManagerDetail{}, ErrInvalidManagerRole
	}
	if password != "" {
		hash, err := utility.HashPassword(password)
		if err != nil {
			return orgmodels.ManagerDetail{}, err
		}
		set["password"] = hash
	}

	if _, err := s.UpdateById(ctx, id, set); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return orgmodels.ManagerDetail{}, ErrManagerNotFound
		}
		return orgmodels.ManagerDetail{}, err
	}
	return s.FindDetailById(ctx, id)
}
