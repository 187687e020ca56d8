package sitehdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	sitedto "github.com/zougmar/hassan-elec/internal/api/site/dto"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	sitesvc "github.com/zougmar/hassan-elec/internal/api/site/service"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

const projectImageFolder = "projects"

// ProjectHandler xử lý CRUD Project và xóa từng ảnh
type ProjectHandler struct {
	svc    ProjectStore
	images basehdl.ImageSaver
}

// NewProjectHandler tạo instance mới của ProjectHandler
func NewProjectHandler(svc ProjectStore, images basehdl.ImageSaver) *ProjectHandler {
	return &ProjectHandler{svc: svc, images: images}
}

// Find trả về Project mới nhất trước
func (h *ProjectHandler) Find(c fiber.Ctx) error {
	data, err := h.svc.List(c.Context())
	return basehdl.HandleResponse(c, data, err)
}

// FindOneById trả về một Project
func (h *ProjectHandler) FindOneById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	data, err := h.svc.Get(c.Context(), id)
	return basehdl.HandleResponse(c, data, err)
}

// requestImages gom file "images" (tối đa MaxProjectImages) và imageUrls
func (h *ProjectHandler) requestImages(c fiber.Ctx, urls []string) ([]string, error) {
	images := []string{}
	if h.images != nil && basehdl.IsMultipart(c) {
		saved, err := h.images.SaveFormFiles(c, "images", projectImageFolder, sitemodels.MaxProjectImages)
		if err != nil {
			return nil, err
		}
		images = append(images, saved...)
	}
	return append(images, urls...), nil
}

// bindWithImages đọc input, lưu file ảnh rồi mới validate
func (h *ProjectHandler) bindWithImages(c fiber.Ctx, input *sitedto.ProjectInput) ([]string, error) {
	if err := basehdl.BindInput(c, input); err != nil {
		return nil, err
	}
	images, err := h.requestImages(c, httpURLs(input.ImageURLs))
	if err != nil {
		return nil, err
	}
	return images, basehdl.ValidateInput(input, "")
}

// InsertOne tạo Project
func (h *ProjectHandler) InsertOne(c fiber.Ctx) error {
	var input sitedto.ProjectInput
	images, err := h.bindWithImages(c, &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	title, err := requiredTitle(input.Title)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	project := sitemodels.Project{
		Title:       title,
		Description: localizedOrEmpty(input.Description),
		Images:      images,
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	created, err := h.svc.Create(c.Context(), project)
	if err == nil {
		created.Images = utility.NonNil(created.Images)
		logger.LogCRUD("create", "project", created.ID.Hex(), c)
	}
	return basehdl.HandleCreated(c, created, err)
}

// UpdateById cập nhật Project; ảnh mới được nối vào cuối
func (h *ProjectHandler) UpdateById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	var input sitedto.ProjectInput
	images, err := h.bindWithImages(c, &input)
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
	if input.Category != nil && *input.Category != "" {
		set["category"] = *input.Category
	}
	updated, err := h.svc.Update(c.Context(), id, set, images)
	if err == nil {
		logger.LogCRUD("update", "project", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}

// DeleteById xóa Project
func (h *ProjectHandler) DeleteById(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	err = h.svc.Delete(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "project", id.Hex(), c)
	}
	return deleted(c, "Project", err)
}

// RemoveImage xóa ảnh thứ :imageIndex của Project
func (h *ProjectHandler) RemoveImage(c fiber.Ctx) error {
	id, err := basehdl.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	index, err := strconv.Atoi(c.Params("imageIndex"))
	if err != nil {
		return basehdl.HandleErrorResponse(c, sitesvc.ErrInvalidImageIndex)
	}

	updated, err := h.svc.RemoveImage(c.Context(), id, index)
	if err == nil {
		logger.LogCRUD("remove_image", "project", id.Hex(), c)
	}
	return basehdl.HandleResponse(c, updated, err)
}
