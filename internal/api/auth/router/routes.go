// Package router đăng ký các route thuộc domain auth: đăng nhập, /auth/me, profile.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/zougmar/hassan-elec/internal/api/auth/handler"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
)

// Register trả về hàm đăng ký route auth lên /api
func Register(h *authhdl.AuthHandler) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodPost, "/login", apirouter.Public(), h.HandleLogin)
		apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodPost, "/employee/login", apirouter.Public(), h.HandleEmployeeLogin)
		apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodGet, "/me", r.Authed(), h.HandleMe)

		apirouter.RegisterRouteWithMiddleware(api, "/profile", fiber.MethodGet, "", r.Authed(), h.HandleMe)
		apirouter.RegisterRouteWithMiddleware(api, "/profile", fiber.MethodPut, "", r.Authed(), h.HandleUpdateProfile)
		return nil
	}
}
