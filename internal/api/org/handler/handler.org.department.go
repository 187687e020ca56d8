package orghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	orgdto "github.com/zougmar/hassan-elec/internal/api/org/dto"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

const msgDepartmentNotFound = "Department not found"

// DepartmentHandler xử lý CRUD Department
type DepartmentHandler struct {
	svc DepartmentStore
}

// NewDepartmentHandler tạo instance mới của DepartmentHandler
func NewDepartmentHandler(svc DepartmentStore) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

// Find trả về Department, lọc theo ?organization
func (h *DepartmentHandler) Find(c fiber.Ctx) error {
	organization, err := basehdl.QueryObjectID(c, "organization")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetails(c.Context(), organization)
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Department kèm organization
func (h *DepartmentHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetailById(c.Context(), id)
	return basehdl.HandleResponse(c, data, notFound(err, msgDepartmentNotFound))
}

// InsertOne tạo Department thuộc một Organization đã có
func (h *DepartmentHandler) InsertOne(c fiber.Ctx) error {
	var input orgdto.DepartmentCreateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	orgID, err := utility.ParseObjectID(input.Organization)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if err := h.svc.EnsureOrganization(c.Context(), orgID); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	created, err := h.svc.InsertOne(c.Context(), orgmodels.Department{
		DeptName:     input.DeptName,
		DeptContact:  input.DeptContact,
		DeptEmail:    input.DeptEmail,
		Organization: orgID,
	})
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	logger.LogCRUD("create", "department", created.ID.Hex(), c)
	detail, err := h.svc.FindDetailById(c.Context(), created.ID)
	return basehdl.HandleCreated(c, detail, err)
}

// UpdateById cập nhật một phần Department
func (h *DepartmentHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input orgdto.DepartmentUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	set := updateSet{}
	set.str("dept_name", input.DeptName)
	set.str("dept_contact", input.DeptContact)
	set.str("dept_email", input.DeptEmail)
	if err := set.ref("organization", input.Organization); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if input.Organization != nil {
		if err := h.svc.EnsureOrganization(c.Context(), set["organization"].(primitive.ObjectID)); err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}
	}

	if _, err := h.svc.UpdateById(c.Context(), id, bson.M(set)); err != nil {
		return basehdl.HandleErrorResponse(c, notFound(err, msgDepartmentNotFound))
	}
	logger.LogCRUD("update", "department", id.Hex(), c)
	detail, err := h.svc.FindDetailById(c.Context(), id)
	return basehdl.HandleResponse(c, detail, notFound(err, msgDepartmentNotFound))
}

// DeleteById xóa Department. Employee và Manager tham chiếu tới nó được giữ nguyên.
func (h *DepartmentHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.DeleteById(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "department", id.Hex(), c)
	}
	return deleted(c, "Department", notFound(err, msgDepartmentNotFound))
}
