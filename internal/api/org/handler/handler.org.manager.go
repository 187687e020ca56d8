package orghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	orgdto "github.com/zougmar/hassan-elec/internal/api/org/dto"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// ManagerHandler xử lý CRUD Manager. Password không bao giờ có trong response.
type ManagerHandler struct {
	svc ManagerStore
}

// NewManagerHandler tạo instance mới của ManagerHandler
func NewManagerHandler(svc ManagerStore) *ManagerHandler {
	return &ManagerHandler{svc: svc}
}

// Find trả về Manager, lọc theo ?department
func (h *ManagerHandler) Find(c fiber.Ctx) error {
	department, err := basehdl.QueryObjectID(c, "department")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetails(c.Context(), department)
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Manager kèm department
func (h *ManagerHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.FindDetailById(c.Context(), id)
	return basehdl.HandleResponse(c, data, err)
}

// InsertOne tạo Manager
func (h *ManagerHandler) InsertOne(c fiber.Ctx) error {
	var input orgdto.ManagerCreateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	department, err := optionalRef(input.Department)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	created, err := h.svc.Create(c.Context(), orgmodels.Manager{
		Name:       input.Name,
		Email:      input.Email,
		Contact:    input.Contact,
		Department: department,
		Role:       input.Role,
		Photo:      input.Photo,
	}, input.Password)
	if err == nil {
		logger.LogCRUD("create", "manager", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

// UpdateById cập nhật Manager. Password rỗng giữ mật khẩu cũ.
func (h *ManagerHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input orgdto.ManagerUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	set, err := managerUpdateSet(input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	updated, err := h.svc.Update(c.Context(), id, set, input.Password)
	if err == nil {
		logger.LogCRUD("update", "manager", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

func managerUpdateSet(input orgdto.ManagerUpdateInput) (bson.M, error) {
	set := updateSet{}
	if err := set.required("name", input.Name, ErrNameRequired); err != nil {
		return nil, err
	}
	if err := set.required("email", input.Email, ErrEmailRequired); err != nil {
		return nil, err
	}
	set.str("contact", input.Contact)
	set.str("role", input.Role)
	set.str("photo", input.Photo)
	if err := set.ref("department", input.Department); err != nil {
		return nil, err
	}
	return bson.M(set), nil
}

// DeleteById xóa Manager. Employee và Task tham chiếu tới nó được giữ nguyên.
func (h *ManagerHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.DeleteById(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "manager", id.Hex(), c)
	}
	return deleted(c, "Manager", notFound(err, "Manager not found"))
}
