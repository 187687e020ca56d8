package sitehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	sitedto "github.com/zougmar/hassan-elec/internal/api/site/dto"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/logger"
)

const serviceImageFolder = "services"

// ServiceHandler xử lý CRUD Service. Đọc public, ghi cần admin hoặc manager.
type ServiceHandler struct {
	svc    ServiceStore
	images basehdl.ImageSaver
}

// NewServiceHandler tạo instance mới của ServiceHandler
func NewServiceHandler(svc ServiceStore, images basehdl.ImageSaver) *ServiceHandler {
	return &ServiceHandler{svc: svc, images: images}
}

// Find trả về danh sách Service
func (h *ServiceHandler) Find(c fiber.Ctx) error {
	data, err := h.svc.List(c.Context())
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Service
func (h *ServiceHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.Get(c.Context(), id)
	return basehdl.HandleResponse(c, data, err)
}

// InsertOne tạo Service, ảnh lấy từ imageUrl hoặc file "image"
func (h *ServiceHandler) InsertOne(c fiber.Ctx) error {
	var input sitedto.ServiceInput
	image, err := h.bindWithImage(c, &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	title, err := requiredTitle(input.Title)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	order, err := parseOrder(input.Order)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	service := sitemodels.Service{
		Title:       title,
		Description: localizedOrEmpty(input.Description),
		Image:       image,
	}
	if order != nil {
		service.Order = *order
	}
	created, err := h.svc.InsertOne(c.Context(), service)
	if err == nil {
		logger.LogCRUD("create", "service", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

// UpdateById cập nhật các field được gửi; ảnh mới thay ảnh cũ
func (h *ServiceHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input sitedto.ServiceInput
	image, err := h.bindWithImage(c, &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	set := bson.M{}
	if input.Title != nil {
		title, err := requiredTitle(input.Title)
		if err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}
		set["title"] = title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	order, err := parseOrder(input.Order)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	if order != nil {
		set["order"] = *order
	}
	if image != "" {
		set["image"] = image
	}

	updated, err := h.svc.Update(c.Context(), id, set)
	if err == nil {
		logger.LogCRUD("update", "service", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

// bindWithImage đọc input, lưu ảnh (file sai định dạng bị từ chối trước) rồi mới validate
func (h *ServiceHandler) bindWithImage(c fiber.Ctx, input *sitedto.ServiceInput) (string, error) {
	if err := basehdl.BindInput(c, input); err != nil {
		return "", err
	}
	image, err := basehdl.ImageFromRequest(c, h.images, "image", input.ImageURL, serviceImageFolder)
	if err != nil {
		return "", err
	}
	return image, basehdl.ValidateInput(input, "")
}

// DeleteById xóa Service
func (h *ServiceHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.Delete(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "service", id.Hex(), c)
	}
	return deleted(c, "Service", err)
}
