package orghdl

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	orgsvc "github.com/zougmar/hassan-elec/internal/api/org/service"
)

// OrganizationStore là các thao tác Organization mà handler cần
type OrganizationStore interface {
	FindDetails(ctx context.Context) ([]orgmodels.OrganizationDetail, error)
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.OrganizationDetail, error)
	InsertOne(ctx context.Context, data orgmodels.Organization) (orgmodels.Organization, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Organization, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// DepartmentStore là các thao tác Department mà handler cần
type DepartmentStore interface {
	FindDetails(ctx context.Context, organization *primitive.ObjectID) ([]orgmodels.DepartmentDetail, error)
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.DepartmentDetail, error)
	EnsureOrganization(ctx context.Context, id primitive.ObjectID) error
	InsertOne(ctx context.Context, data orgmodels.Department) (orgmodels.Department, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Department, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// ManagerStore là các thao tác Manager mà handler cần
type ManagerStore interface {
	FindDetails(ctx context.Context, department *primitive.ObjectID) ([]orgmodels.ManagerDetail, error)
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.ManagerDetail, error)
	Create(ctx context.Context, m orgmodels.Manager, password string) (orgmodels.ManagerDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.ManagerDetail, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// EmployeeStore là các thao tác Employee mà handler cần
type EmployeeStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (orgmodels.Employee, error)
	FindDetails(ctx context.Context, filter bson.M) ([]orgmodels.EmployeeDetail, error)
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.EmployeeDetail, error)
	Create(ctx context.Context, e orgmodels.Employee, password string) (orgsvc.EmployeeCreated, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.EmployeeDetail, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// TaskStore là các thao tác Task mà handler cần
type TaskStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (orgmodels.Task, error)
	FindDetails(ctx context.Context, filter bson.M) ([]orgmodels.TaskDetail, error)
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.TaskDetail, error)
	Create(ctx context.Context, t orgmodels.Task) (orgmodels.TaskDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (orgmodels.TaskDetail, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

var (
	_ OrganizationStore = (*orgsvc.OrganizationService)(nil)
	_ DepartmentStore   = (*orgsvc.DepartmentService)(nil)
	_ ManagerStore      = (*orgsvc.ManagerService)(nil)
	_ EmployeeStore     = (*orgsvc.EmployeeService)(nil)
	_ TaskStore         = (*orgsvc.TaskService)(nil)
)
