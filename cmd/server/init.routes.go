package main

import (
	"github.com/zougmar/hassan-elec/config"
	authhdl "github.com/zougmar/hassan-elec/internal/api/auth/handler"
	authrouter "github.com/zougmar/hassan-elec/internal/api/auth/router"
	authsvc "github.com/zougmar/hassan-elec/internal/api/auth/service"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	orghdl "github.com/zougmar/hassan-elec/internal/api/org/handler"
	orgrouter "github.com/zougmar/hassan-elec/internal/api/org/router"
	orgsvc "github.com/zougmar/hassan-elec/internal/api/org/service"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
	sitehdl "github.com/zougmar/hassan-elec/internal/api/site/handler"
	siterouter "github.com/zougmar/hassan-elec/internal/api/site/router"
	sitesvc "github.com/zougmar/hassan-elec/internal/api/site/service"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/notify"
	"github.com/zougmar/hassan-elec/internal/upload"
)

// services gom các service dùng chung giữa các domain
type services struct {
	owners        *authsvc.OwnerService
	auth          *authsvc.AuthService
	organizations *orgsvc.OrganizationService
	departments   *orgsvc.DepartmentService
	managers      *orgsvc.ManagerService
	employees     *orgsvc.EmployeeService
	tasks         *orgsvc.TaskService
	siteServices  *sitesvc.ServiceService
	projects      *sitesvc.ProjectService
	requests      *sitesvc.RequestService
}

// initServices tạo toàn bộ service trên store đã đăng ký collection
func initServices(cfg *config.Configuration, store *database.Store) (*services, error) {
	var (
		s   services
		err error
	)
	if s.owners, err = authsvc.NewOwnerService(store); err != nil {
		return nil, err
	}
	if s.organizations, err = orgsvc.NewOrganizationService(store); err != nil {
		return nil, err
	}
	if s.departments, err = orgsvc.NewDepartmentService(store, s.organizations); err != nil {
		return nil, err
	}
	if s.managers, err = orgsvc.NewManagerService(store); err != nil {
		return nil, err
	}
	if s.employees, err = orgsvc.NewEmployeeService(store); err != nil {
		return nil, err
	}
	if s.tasks, err = orgsvc.NewTaskService(store); err != nil {
		return nil, err
	}
	if s.siteServices, err = sitesvc.NewServiceService(store); err != nil {
		return nil, err
	}
	if s.projects, err = sitesvc.NewProjectService(store); err != nil {
		return nil, err
	}
	if s.requests, err = sitesvc.NewRequestService(store); err != nil {
		return nil, err
	}

	tokens, err := authsvc.NewTokenService(cfg.JwtSecret, cfg.JwtExpire)
	if err != nil {
		return nil, err
	}
	s.auth = authsvc.NewAuthService(tokens, s.owners, s.managers, s.employees)
	return &s, nil
}

// initRoutes dựng handler của từng domain và trả về danh sách hàm đăng ký route
func initRoutes(s *services, store *database.Store, images *upload.Resolver, mailer *notify.Mailer) []apirouter.RegisterFunc {
	var notifier sitehdl.RequestNotifier
	if mailer != nil {
		notifier = mailer
	}

	return []apirouter.RegisterFunc{
		apirouter.HealthRoutes(store),
		authrouter.Register(authhdl.NewAuthHandler(s.auth, images)),
		orgrouter.Register(orgrouter.Handlers{
			Organization: orghdl.NewOrganizationHandler(s.organizations),
			Department:   orghdl.NewDepartmentHandler(s.departments),
			Manager:      orghdl.NewManagerHandler(s.managers),
			Employee:     orghdl.NewEmployeeHandler(s.employees),
			Task:         orghdl.NewTaskHandler(s.tasks),
		}),
		siterouter.Register(siterouter.Handlers{
			Service: sitehdl.NewServiceHandler(s.siteServices, images),
			Project: sitehdl.NewProjectHandler(s.projects, images),
			Request: sitehdl.NewRequestHandler(s.requests, images, notifier),
		}),
	}
}

// authMiddleware là middleware xác thực bearer token dùng cho mọi route cần đăng nhập
func authMiddleware(s *services) middleware.Middleware {
	return middleware.Authenticate(s.auth)
}
