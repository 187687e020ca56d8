// Package authhdl xử lý các route đăng nhập, /auth/me và profile.
package authhdl

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/zougmar/hassan-elec/internal/api/auth/dto"
	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	authsvc "github.com/zougmar/hassan-elec/internal/api/auth/service"
	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// ProfileFolder là thư mục lưu ảnh đại diện
const ProfileFolder = "profile"

// ErrEmptyName khi cập nhật profile với tên rỗng
var ErrEmptyName = common.NewValidationError("Name cannot be empty", nil)

// Service là các thao tác auth mà handler cần
type Service interface {
	Login(ctx context.Context, email, password string) (*authsvc.LoginResult, error)
	EmployeeLogin(ctx context.Context, email, password string) (*authsvc.LoginResult, error)
	UpdateProfile(ctx context.Context, p authmodels.Principal, in authsvc.ProfileUpdate) (authmodels.Principal, error)
}

// AuthHandler xử lý đăng nhập và profile
type AuthHandler struct {
	auth   Service
	images basehdl.ImageSaver
}

// NewAuthHandler tạo instance mới của AuthHandler
func NewAuthHandler(auth Service, images basehdl.ImageSaver) *AuthHandler {
	return &AuthHandler{auth: auth, images: images}
}

// HandleLogin đăng nhập Owner hoặc Manager
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.login(c, "login", h.auth.Login)
}

// HandleEmployeeLogin đăng nhập Employee
func (h *AuthHandler) HandleEmployeeLogin(c fiber.Ctx) error {
	return h.login(c, "employee_login", h.auth.EmployeeLogin)
}

func (h *AuthHandler) login(c fiber.Ctx, action string, fn func(context.Context, string, string) (*authsvc.LoginResult, error)) error {
	var input authdto.LoginInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := fn(c.Context(), input.Email, input.Password)
	if err != nil {
		logger.LogAuth(action+"_failed", c, map[string]interface{}{
			"email": strings.ToLower(strings.TrimSpace(input.Email)),
			"error": err.Error(),
		})
		return basehdl.HandleErrorResponse(c, err)
	}

	logger.LogAuth(action, c, map[string]interface{}{
		"email":   result.User.Email,
		"type":    result.User.Type,
		"user_id": result.User.ID,
	})
	return basehdl.HandleResponse(c, result, nil)
}

// HandleMe trả về principal hiện tại (dùng cho cả GET /auth/me và GET /profile)
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
	}
	return basehdl.HandleResponse(c, fiber.Map{"user": authmodels.ViewOf(p)}, nil)
}

// HandleUpdateProfile cập nhật tên và ảnh đại diện của principal hiện tại
func (h *AuthHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
		}

		var input authdto.ProfileUpdateInput
		if err := basehdl.BindInput(c, &input); err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}

		photo, err := basehdl.ImageFromRequest(c, h.images, "photo", input.PhotoURL, ProfileFolder)
		if err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}
		update := authsvc.ProfileUpdate{Photo: photo}
		if input.Name != nil {
			update.Name = strings.TrimSpace(*input.Name)
			if update.Name == "" {
				return basehdl.HandleErrorResponse(c, ErrEmptyName)
			}
		}

		updated, err := h.auth.UpdateProfile(c.Context(), p, update)
		if err != nil {
			return basehdl.HandleErrorResponse(c, err)
		}
		logger.LogCRUD("update", "profile", updated.ID().Hex(), c)
		return basehdl.HandleResponse(c, fiber.Map{"user": authmodels.ViewOf(updated)}, nil)
	})
}
