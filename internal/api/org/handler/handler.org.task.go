package orghdl

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	orgdto "github.com/zougmar/hassan-elec/internal/api/org/dto"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	orgsvc "github.com/zougmar/hassan-elec/internal/api/org/service"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// ErrTaskTitleRequired khi title trống ở cả ba ngôn ngữ
var ErrTaskTitleRequired = common.NewValidationError("Task title is required", nil)

// TaskHandler xử lý Task. Employee chỉ thấy task của mình và chỉ được đổi status.
type TaskHandler struct {
	svc TaskStore
}

// NewTaskHandler tạo instance mới của TaskHandler
func NewTaskHandler(svc TaskStore) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Find trả về Task, lọc theo ?status, ?employee, ?manager
func (h *TaskHandler) Find(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !orgmodels.IsValidTaskStatus(status) {
		return basehdl.HandleErrorResponse(c, orgsvc.ErrInvalidTaskStatus)
	}
	employee, err := basehdl.QueryObjectID(c, "employee")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	manager, err := basehdl.QueryObjectID(c, "manager")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	data, err := h.svc.FindDetails(c.Context(), orgsvc.TaskListFilter(p, status, employee, manager))
	return basehdl.HandleResponse(c, data, err)
}

// Assigned trả về task được giao cho employee đang đăng nhập
func (h *TaskHandler) Assigned(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	id, ok := authmodels.EmployeeID(p)
	if !ok {
		return basehdl.HandleErrorResponse(c, common.ErrForbidden)
	}
	data, err := h.svc.FindDetails(c.Context(), bson.M{"employee": id})
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Task nếu principal có quyền
func (h *TaskHandler) FindOneById(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if err := h.checkAccess(c, p, id); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetailById(c.Context(), id)
	return basehdl.HandleResponse(c, data, err)
}

// InsertOne tạo Task; manager role manager luôn là manager phụ trách task
func (h *TaskHandler) InsertOne(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input orgdto.TaskCreateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	task, err := taskFromInput(p, input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	created, err := h.svc.Create(c.Context(), task)
	if err == nil {
		logger.LogCRUD("create", "task", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

func taskFromInput(p authmodels.Principal, input orgdto.TaskCreateInput) (orgmodels.Task, error) {
	if input.Title.IsEmpty() {
		return orgmodels.Task{}, ErrTaskTitleRequired
	}
	dueDate, err := parseDate("dueDate", input.DueDate)
	if err != nil {
		return orgmodels.Task{}, err
	}
	employee, err := utility.ParseObjectID(input.Employee)
	if err != nil {
		return orgmodels.Task{}, err
	}
	requested, err := optionalRef(input.Manager)
	if err != nil {
		return orgmodels.Task{}, err
	}
	manager, err := orgsvc.OwningManager(p, requested)
	if err != nil {
		return orgmodels.Task{}, err
	}

	return orgmodels.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      strings.TrimSpace(input.Status),
		DueDate:     dueDate,
		Employee:    employee,
		Manager:     manager,
	}, nil
}

// UpdateById cập nhật Task. Với Employee mọi field ngoài status bị bỏ qua.
func (h *TaskHandler) UpdateById(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if err := h.checkAccess(c, p, id); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	input, err := bindTaskUpdate(c, p)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	set, err := taskUpdateSet(input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	updated, err := h.svc.Update(c.Context(), id, orgsvc.NarrowTaskUpdate(p, set))
	if err == nil {
		logger.LogCRUD("update", "task", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

// bindTaskUpdate đọc body cập nhật Task. Employee chỉ được đọc field status,
// các field khác trong body bị bỏ qua kể cả khi sai kiểu.
func bindTaskUpdate(c fiber.Ctx, p authmodels.Principal) (orgdto.TaskUpdateInput, error) {
	if _, ok := authmodels.EmployeeID(p); ok {
		var status orgdto.TaskStatusInput
		if err := basehdl.BindInput(c, &status); err != nil {
			return orgdto.TaskUpdateInput{}, err
		}
		return orgdto.TaskUpdateInput{Status: status.Status}, nil
	}

	var input orgdto.TaskUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return orgdto.TaskUpdateInput{}, err
	}
	return input, nil
}

func taskUpdateSet(input orgdto.TaskUpdateInput) (bson.M, error) {
	set := updateSet{}
	if input.Title != nil {
		if input.Title.IsEmpty() {
			return nil, ErrTaskTitleRequired
		}
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	set.str("status", input.Status)
	if err := set.date("dueDate", input.DueDate); err != nil {
		return nil, err
	}
	if err := set.ref("employee", input.Employee); err != nil {
		return nil, err
	}
	if err := set.ref("manager", input.Manager); err != nil {
		return nil, err
	}
	return bson.M(set), nil
}

// DeleteById xóa Task nếu principal có quyền
func (h *TaskHandler) DeleteById(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if err := h.checkAccess(c, p, id); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	err = h.svc.DeleteById(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "task", id.Hex(), c)
	}
	return deleted(c, "Task", notFound(err, "Task not found"))
}

func (h *TaskHandler) checkAccess(c fiber.Ctx, p authmodels.Principal, id primitive.ObjectID) error {
	task, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return orgsvc.CheckOwnership(p, task.Employee, task.Manager)
}
