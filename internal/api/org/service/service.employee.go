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

// generatedPasswordBytes là số byte ngẫu nhiên của mật khẩu tự sinh (12 ký tự hex)
const generatedPasswordBytes = 6

// Lỗi của Employee
var (
	ErrEmployeeExists   = common.NewError(common.ErrCodeBusinessState, "Employee with this email already exists", common.StatusConflict, nil)
	ErrEmployeeNotFound = common.NewNotFoundError("Employee not found")
)

// EmployeeCreated là Employee vừa tạo, kèm mật khẩu tự sinh (chỉ trả về một lần)
type EmployeeCreated struct {
	orgmodels.EmployeeDetail
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}

// EmployeeService thao tác trên collection employees
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Employee]
}

// NewEmployeeService tạo mới EmployeeService
func NewEmployeeService(store *database.Store) (*EmployeeService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Employees)
	if err != nil {
		return nil, err
	}
	return &EmployeeService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Employee](coll)}, nil
}

func employeePipeline(match bson.M) []bson.M {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		{"$project": bson.M{"password": 0}},
	}
	pipeline = append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Departments, "department", "department", nil)...)
	return append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Managers, "manager", "manager",
		bson.M{"name": 1, "email": 1, "role": 1})...)
}

// FindByEmail tìm Employee theo emp_email (không phân biệt hoa thường)
func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (orgmodels.Employee, error) {
	return s.FindOne(ctx, bson.M{"emp_email": strings.ToLower(strings.TrimSpace(email))}, nil)
}

// FindDetails trả về Employee theo filter, kèm department và manager
func (s *EmployeeService) FindDetails(ctx context.Context, filter bson.M) ([]orgmodels.EmployeeDetail, error) {
	return basesvc.AggregateInto[orgmodels.EmployeeDetail](ctx, s.Collection(), employeePipeline(filter))
}

// FindDetailById trả về một Employee kèm department và manager
func (s *EmployeeService) FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.EmployeeDetail, error) {
	detail, err := basesvc.AggregateOne[orgmodels.EmployeeDetail](ctx, s.Collection(), employeePipeline(bson.M{"_id": id}))
	if errors.Is(err, common.ErrNotFound) {
		return detail, ErrEmployeeNotFound
	}
	return detail, err
}

// Create tạo Employee. Password rỗng thì sinh ngẫu nhiên và trả về trong GeneratedPassword.
func (s *EmployeeService) Create(ctx context.Context, e orgmodels.Employee, password string) (EmployeeCreated, error) {
	e.EmpEmail = strings.ToLower(strings.TrimSpace(e.EmpEmail))

	exists, err := s.DocumentExists(ctx, bson.M{"emp_email": e.EmpEmail})
	if err != nil {
		return EmployeeCreated{}, err
	}
	if exists {
		return EmployeeCreated{}, ErrEmployeeExists
	}

	generated := ""
	if password == "" {
		if password, err = utility.RandomHex(generatedPasswordBytes); err != nil {
			return EmployeeCreated{}, err
		}
		generated = password
	}
	if e.Password, err = utility.HashPassword(password); err != nil {
		return EmployeeCreated{}, err
	}

	created, err := s.InsertOne(ctx, e)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return EmployeeCreated{}, ErrEmployeeExists
		}
		return EmployeeCreated{}, err
	}
	detail, err := s.FindDetailById(ctx, created.ID)
	if err != nil {
		return EmployeeCreated{}, err
	}
	return EmployeeCreated{EmployeeDetail: detail, GeneratedPassword: generated}, nil
}

// Update cập nhật Employee. Password khác rỗng được hash lại, rỗng thì giữ nguyên.
func (s *EmployeeService) Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.EmployeeDetail, error) {
	if email, ok := set["emp_email"].(string); ok {
		email = strings.ToLower(strings.TrimSpace(email))
		taken, err := s.DocumentExists(ctx, bson.M{"emp_email": email, "_id": bson.M{"$ne": id}})
		if err != nil {
			return orgmodels.EmployeeDetail{}, err
		}
		if taken {
			return orgmodels.EmployeeDetail{}, ErrEmployeeExists
		}
		set["emp_email"] = email
	}
	if password != "" {
		hash, err := utility.HashPassword(password)
		if err != nil {
			return orgmodels.EmployeeDetail{}, err
		}
		set["password"] = hash
	}

	if _, err := s.UpdateById(ctx, id, set); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return orgmodels.EmployeeDetail{}, ErrEmployeeNotFound
		}
		return orgmodels.EmployeeDetail{}, err
	}
	return s.FindDetailById(ctx, id)
}
