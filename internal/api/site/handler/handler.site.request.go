package sitehdl

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	sitedto "github.com/zougmar/hassan-elec/internal/api/site/dto"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/notify"
)

const (
	requestImageFolder = "requests"
	msgRequiredFields  = "Please fill all required fields"
)

// RequestNotifier báo có yêu cầu dịch vụ mới. Không được chặn request.
type RequestNotifier interface {
	NotifyNewRequest(req notify.RequestSummary)
}

// RequestHandler xử lý ServiceRequest: tạo public, còn lại cần admin hoặc manager
type RequestHandler struct {
	svc      RequestStore
	images   basehdl.ImageSaver
	notifier RequestNotifier
}

// NewRequestHandler tạo instance mới của RequestHandler. notifier có thể nil.
func NewRequestHandler(svc RequestStore, images basehdl.ImageSaver, notifier RequestNotifier) *RequestHandler {
	return &RequestHandler{svc: svc, images: images, notifier: notifier}
}

// Find trả về ServiceRequest, lọc theo ?status
func (h *RequestHandler) Find(c fiber.Ctx) error {
	data, err := h.svc.List(c.Context(), strings.TrimSpace(c.Query("status")))
	return basehdl.HandleResponse(c, data, err)
}

// Stats trả về số lượng theo status
func (h *RequestHandler) Stats(c fiber.Ctx) error {
	data, err := h.svc.Stats(c.Context())
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một ServiceRequest
func (h *RequestHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.Get(c.Context(), id)
	return basehdl.HandleResponse(c, data, err)
}

// InsertOne nhận form liên hệ, lưu với status pending rồi gửi email thông báo
func (h *RequestHandler) InsertOne(c fiber.Ctx) error {
	var input sitedto.RequestCreateInput
	if err := basehdl.BindInput(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	// File ảnh sai định dạng bị từ chối trước khi kiểm tra các field bắt buộc
	image, err := basehdl.ImageFromRequest(c, h.images, "image", input.ImageURL, requestImageFolder)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	trimRequestInput(&input)
	if err := basehdl.ValidateInput(&input, msgRequiredFields); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	created, err := h.svc.Create(c.Context(), sitemodels.ServiceRequest{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		ServiceType: input.ServiceType,
		Message:     input.Message,
		Image:       image,
	})
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	logger.WithRequest(c).WithField("request_id", created.ID.Hex()).Info("New service request")
	if h.notifier != nil {
		h.notifier.NotifyNewRequest(summaryOf(created))
	}
	return basehdl.HandleCreated(c, created, nil)
}

func trimRequestInput(in *sitedto.RequestCreateInput) {
	for _, s := range []*string{&in.Name, &in.Phone, &in.Email, &in.Address, &in.ServiceType} {
		*s = strings.TrimSpace(*s)
	}
}

func summaryOf(r sitemodels.ServiceRequest) notify.RequestSummary {
	return notify.RequestSummary{
		ID:          r.ID.Hex(),
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		ServiceType: r.ServiceType,
		Message:     r.Message,
		Image:       r.Image,
	}
}

// UpdateById đổi status của ServiceRequest
func (h *RequestHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input sitedto.RequestUpdateInput
	if err := basehdl.BindInput(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	updated, err := h.svc.UpdateStatus(c.Context(), id, strings.TrimSpace(input.Status))
	if err == nil {
		logger.LogCRUD("update", "request", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

// DeleteById xóa ServiceRequest
func (h *RequestHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.Delete(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "request", id.Hex(), c)
	}
	return deleted(c, "Request", err)
}
