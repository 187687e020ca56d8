// Package router đăng ký các route nội dung website.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/internal/api/middleware"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
	sitehdl "github.com/zougmar/hassan-elec/internal/api/site/handler"
)

// Handlers gom các handler nội dung website
type Handlers struct {
	Service *sitehdl.ServiceHandler
	Project *sitehdl.ProjectHandler
	Request *sitehdl.RequestHandler
}

// Register trả về hàm đăng ký route nội dung website lên /api
func Register(h Handlers) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		staff := r.Authed(middleware.AdminOrManager)

		// Dịch vụ và dự án: đọc public, ghi cần admin hoặc manager
		publicRead := apirouter.CRUDConfig{
			Find: apirouter.Public(), FindById: apirouter.Public(),
			Insert: staff, Update: staff, Delete: staff,
		}
		r.RegisterCRUDRoutes(api, "/services", h.Service, publicRead)

		apirouter.RegisterRouteWithMiddleware(api, "/projects", fiber.MethodDelete, "/:id/images/:imageIndex", staff, h.Project.RemoveImage)
		r.RegisterCRUDRoutes(api, "/projects", h.Project, publicRead)

		// Yêu cầu dịch vụ: gửi public, còn lại cần admin hoặc manager. /stats đứng trước /:id.
		apirouter.RegisterRouteWithMiddleware(api, "/requests", fiber.MethodGet, "/stats", staff, h.Request.Stats)
		r.RegisterCRUDRoutes(api, "/requests", h.Request, apirouter.CRUDConfig{
			Find: staff, FindById: staff,
			Insert: apirouter.Public(), Update: staff, Delete: staff,
		})
		return nil
	}
}
