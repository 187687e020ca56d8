// Package router đăng ký các route của domain tổ chức.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/internal/api/middleware"
	orghdl "github.com/zougmar/hassan-elec/internal/api/org/handler"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
)

// Handlers gom các handler của domain tổ chức
type Handlers struct {
	Organization *orghdl.OrganizationHandler
	Department   *orghdl.DepartmentHandler
	Manager      *orghdl.ManagerHandler
	Employee     *orghdl.EmployeeHandler
	Task         *orghdl.TaskHandler
}

// Register trả về hàm đăng ký route tổ chức lên /api
func Register(h Handlers) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		authed := r.Authed()
		adminOnly := r.Authed(middleware.AdminOnly)
		adminOrManager := r.Authed(middleware.AdminOrManager)
		managerOnly := r.Authed(middleware.ManagerOnly)

		// Đọc: mọi user đã đăng nhập. Ghi: admin.
		readAuthedWriteAdmin := apirouter.CRUDConfig{
			Find: authed, FindById: authed,
			Insert: adminOnly, Update: adminOnly, Delete: adminOnly,
		}
		r.RegisterCRUDRoutes(api, "/organizations", h.Organization, readAuthedWriteAdmin)
		r.RegisterCRUDRoutes(api, "/departments", h.Department, readAuthedWriteAdmin)

		r.RegisterCRUDRoutes(api, "/managers", h.Manager, apirouter.CRUDConfig{
			Find: adminOrManager, FindById: adminOrManager,
			Insert: adminOnly, Update: adminOnly, Delete: adminOnly,
		})

		r.RegisterCRUDRoutes(api, "/employees", h.Employee, apirouter.CRUDConfig{
			Find: managerOnly, FindById: managerOnly,
			Insert: managerOnly, Update: managerOnly, Delete: managerOnly,
		})

		// /tasks/assigned phải đứng trước /tasks/:id
		apirouter.RegisterRouteWithMiddleware(api, "/tasks", fiber.MethodGet, "/assigned", r.Authed(middleware.EmployeeOnly), h.Task.Assigned)
		r.RegisterCRUDRoutes(api, "/tasks", h.Task, apirouter.CRUDConfig{
			Find: authed, FindById: authed, Update: authed,
			Insert: adminOrManager, Delete: adminOrManager,
		})
		return nil
	}
}
