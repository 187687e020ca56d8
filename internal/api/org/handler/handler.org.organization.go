package orghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	orgdto "github.com/zougmar/hassan-elec/internal/api/org/dto"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

const msgOrganizationNotFound = "Organization not found"

// OrganizationHandler xử lý CRUD Organization
type OrganizationHandler struct {
	svc OrganizationStore
}

// NewOrganizationHandler tạo instance mới của OrganizationHandler
func NewOrganizationHandler(svc OrganizationStore) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// Find trả về tất cả Organization kèm departments
func (h *OrganizationHandler) Find(c fiber.Ctx) error {
	data, err := h.svc.FindDetails(c.Context())
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Organization kèm departments
func (h *OrganizationHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetailById(c.Context(), id)
	return basehdl.HandleResponse(c, data, notFound(err, msgOrganizationNotFound))
}

// InsertOne tạo Organization
func (h *OrganizationHandler) InsertOne(c fiber.Ctx) error {
	var input orgdto.OrganizationCreateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	created, err := h.svc.InsertOne(c.Context(), orgmodels.Organization{
		OrgName:    input.OrgName,
		OrgAddress: input.OrgAddress,
		OrgEmail:   input.OrgEmail,
		OrgContact: input.OrgContact,
	})
	if err == nil {
		logger.LogCRUD("create", "organization", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

// UpdateById cập nhật một phần Organization
func (h *OrganizationHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input orgdto.OrganizationUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	set, err := utility.ToMap(input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	updated, err := h.svc.UpdateById(c.Context(), id, set)
	if err == nil {
		logger.LogCRUD("update", "organization", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, notFound(err, msgOrganizationNotFound))
}

// DeleteById xóa Organization. Department tham chiếu tới nó được giữ nguyên.
func (h *OrganizationHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.DeleteById(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "organization", id.Hex(), c)
	}
	return deleted(c, "Organization", notFound(err, msgOrganizationNotFound))
}
