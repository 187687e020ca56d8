package orgsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// Lỗi của Task
var (
	ErrInvalidTaskStatus = common.NewValidationError("Invalid status", orgmodels.TaskStatuses)
	ErrTaskNotFound      = common.NewNotFoundError("Task not found")
)

// TaskService thao tác trên collection tasks
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Task]
}

// NewTaskService tạo mới TaskService
func NewTaskService(store *database.Store) (*TaskService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Tasks)
	if err != nil {
		return nil, err
	}
	return &TaskService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Task](coll)}, nil
}

// taskPipeline sắp theo dueDate tăng dần rồi createdAt giảm dần, populate employee và manager
func taskPipeline(match bson.M) []bson.M {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "dueDate", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	pipeline = append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Employees, "employee", "employee",
		bson.M{"emp_name": 1, "emp_email": 1})...)
	return append(pipeline, basesvc.LookupOne(global.MongoDB_ColNames.Managers, "manager", "manager",
		bson.M{"name": 1, "email": 1, "role": 1})...)
}

// FindDetails trả về Task theo filter
func (s *TaskService) FindDetails(ctx context.Context, filter bson.M) ([]orgmodels.TaskDetail, error) {
	return basesvc.AggregateInto[orgmodels.TaskDetail](ctx, s.Collection(), taskPipeline(filter))
}

// FindDetailById trả về một Task kèm employee và manager
func (s *TaskService) FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.TaskDetail, error) {
	detail, err := basesvc.AggregateOne[orgmodels.TaskDetail](ctx, s.Collection(), taskPipeline(bson.M{"_id": id}))
	if errors.Is(err, common.ErrNotFound) {
		return detail, ErrTaskNotFound
	}
	return detail, err
}

// Get trả về Task gốc (chưa populate) để kiểm tra quyền
func (s *TaskService) Get(ctx context.Context, id primitive.ObjectID) (orgmodels.Task, error) {
	task, err := s.FindOneById(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return task, ErrTaskNotFound
	}
	return task, err
}

// Create tạo Task, status mặc định pending
func (s *TaskService) Create(ctx context.Context, t orgmodels.Task) (orgmodels.TaskDetail, error) {
	if t.Status != "" && !orgmodels.IsValidTaskStatus(t.Status) {
		return orgmodels.TaskDetail{}, ErrInvalidTaskStatus
	}
	created, err := s.InsertOne(ctx, t)
	if err != nil {
		return orgmodels.TaskDetail{}, err
	}
	return s.FindDetailById(ctx, created.ID)
}

// Update cập nhật Task sau khi đã thu hẹp field theo principal
func (s *TaskService) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (orgmodels.TaskDetail, error) {
	if status, ok := set["status"].(string); ok && !orgmodels.IsValidTaskStatus(status) {
		return orgmodels.TaskDetail{}, ErrInvalidTaskStatus
	}
	if len(set) > 0 {
		if _, err := s.UpdateById(ctx, id, set); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return orgmodels.TaskDetail{}, ErrTaskNotFound
			}
			return orgmodels.TaskDetail{}, err
		}
	}
	return s.FindDetailById(ctx, id)
}
