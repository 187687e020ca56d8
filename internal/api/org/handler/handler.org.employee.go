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

// ErrEmployeeNameRequired khi emp_name trống ở cả ba ngôn ngữ
var ErrEmployeeNameRequired = common.NewValidationError("Employee name is required", nil)

// EmployeeHandler xử lý CRUD Employee với thu hẹp theo manager phụ trách
type EmployeeHandler struct {
	svc EmployeeStore
}

// NewEmployeeHandler tạo instance mới của EmployeeHandler
func NewEmployeeHandler(svc EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Find trả về Employee, lọc theo ?department và ?manager
func (h *EmployeeHandler) Find(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	department, err := basehdl.QueryObjectID(c, "department")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	manager, err := basehdl.QueryObjectID(c, "manager")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	data, err := h.svc.FindDetails(c.Context(), orgsvc.EmployeeListFilter(p, department, manager))
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Employee; manager role manager chỉ xem được nhân viên của mình
func (h *EmployeeHandler) FindOneById(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	detail, err := h.svc.FindDetailById(c.Context(), id)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if err := orgsvc.CheckOwnership(p, detail.ID, detail.ManagerID()); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleResponse(c, detail, nil)
}

// InsertOne tạo Employee. Mật khẩu tự sinh (nếu có) chỉ trả về ở response này.
func (h *EmployeeHandler) InsertOne(c fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input orgdto.EmployeeCreateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	employee, err := employeeFromInput(p, input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	created, err := h.svc.Create(c.Context(), employee, input.Password)
	if err == nil {
		logger.LogCRUD("create", "employee", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

// employeeFromInput dựng Employee từ input; manager bị ép về chính mình với manager role manager
func employeeFromInput(p authmodels.Principal, input orgdto.EmployeeCreateInput) (orgmodels.Employee, error) {
	if input.EmpName.IsEmpty() {
		return orgmodels.Employee{}, ErrEmployeeNameRequired
	}
	department, err := utility.ParseObjectID(input.Department)
	if err != nil {
		return orgmodels.Employee{}, err
	}
	requested, err := optionalRef(input.Manager)
	if err != nil {
		return orgmodels.Employee{}, err
	}
	manager, err := orgsvc.OwningManager(p, requested)
	if err != nil {
		return orgmodels.Employee{}, err
	}

	employee := orgmodels.Employee{
		EmpName:    input.EmpName,
		EmpEmail:   input.EmpEmail,
		EmpContact: strings.TrimSpace(input.EmpContact),
		Department: department,
		Manager:    manager,
		Photo:      input.Photo,
	}
	if strings.TrimSpace(input.EmpDob) != "" {
		dob, err := parseDate("emp_dob", input.EmpDob)
		if err != nil {
			return orgmodels.Employee{}, err
		}
		employee.EmpDob = &dob
	}
	return employee, nil
}

// UpdateById cập nhật Employee; manager role manager không được đổi manager phụ trách
func (h *EmployeeHandler) UpdateById(c fiber.Ctx) error {
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

	var input orgdto.EmployeeUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	set, err := employeeUpdateSet(input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	updated, err := h.svc.Update(c.Context(), id, orgsvc.NarrowEmployeeUpdate(p, set), input.Password)
	if err == nil {
		logger.LogCRUD("update", "employee", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

func employeeUpdateSet(input orgdto.EmployeeUpdateInput) (bson.M, error) {
	set := updateSet{}
	if input.EmpName != nil {
		if input.EmpName.IsEmpty() {
			return nil, ErrEmployeeNameRequired
		}
		set["emp_name"] = *input.EmpName
	}
	if err := set.required("emp_email", input.EmpEmail, ErrEmailRequired); err != nil {
		return nil, err
	}
	set.str("emp_contact", input.EmpContact)
	set.str("photo", input.Photo)
	if err := set.date("emp_dob", input.EmpDob); err != nil {
		return nil, err
	}
	if err := set.ref("department", input.Department); err != nil {
		return nil, err
	}
	if err := set.ref("manager", input.Manager); err != nil {
		return nil, err
	}
	return bson.M(set), nil
}

// DeleteById xóa Employee; Task của nhân viên được giữ nguyên
func (h *EmployeeHandler) DeleteById(c fiber.Ctx) error {
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
		logger.LogCRUD("delete", "employee", id.Hex(), c)
	}
	return deleted(c, "Employee", notFound(err, "Employee not found"))
}

func (h *EmployeeHandler) checkAccess(c fiber.Ctx, p authmodels.Principal, id primitive.ObjectID) error {
	existing, err := h.svc.FindOneById(c.Context(), id)
	if err != nil {
		return notFound(err, "Employee not found")
	}
	return orgsvc.CheckOwnership(p, existing.ID, existing.Manager)
}
