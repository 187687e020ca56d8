// Command seed nạp dữ liệu mẫu: tổ chức, phòng ban, manager, nhân viên, task, dịch vụ và dự án.
// Chạy lại nhiều lần không tạo bản ghi trùng.
package main

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zougmar/hassan-elec/config"
	authsvc "github.com/zougmar/hassan-elec/internal/api/auth/service"
	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	orgsvc "github.com/zougmar/hassan-elec/internal/api/org/service"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	sitesvc "github.com/zougmar/hassan-elec/internal/api/site/service"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
	"github.com/zougmar/hassan-elec/internal/logger"
)

const demoPassword = "demo123"

func main() {
	if err := logger.Init(nil); err != nil {
		panic(err)
	}
	defer logger.Close()
	log := logger.WithModule("seed")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	cols := global.MongoDB_ColNames
	if err := store.Register(cols.Users, cols.Organizations, cols.Departments, cols.Managers,
		cols.Employees, cols.Tasks, cols.Services, cols.Projects, cols.Requests); err != nil {
		log.Fatalf("Failed to register collections: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer store.Close(context.Background())

	s, err := newSeeder(store)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	if _, err := s.owners.EnsureOwner(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}
	if err := s.run(ctx); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Info("Seed completed")
}

type seeder struct {
	owners        *authsvc.OwnerService
	organizations *orgsvc.OrganizationService
	departments   *orgsvc.DepartmentService
	managers      *orgsvc.ManagerService
	employees     *orgsvc.EmployeeService
	tasks         *orgsvc.TaskService
	services      *sitesvc.ServiceService
	projects      *sitesvc.ProjectService
}

func newSeeder(store *database.Store) (*seeder, error) {
	var (
		s   seeder
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
	if s.services, err = sitesvc.NewServiceService(store); err != nil {
		return nil, err
	}
	if s.projects, err = sitesvc.NewProjectService(store); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *seeder) run(ctx context.Context) error {
	log := logger.WithModule("seed")

	org, err := findOrCreate(ctx, s.organizations.FindOne, bson.M{"org_name": "Hassan Elec"}, func() (orgmodels.Organization, error) {
		return s.organizations.InsertOne(ctx, orgmodels.Organization{
			OrgName:    "Hassan Elec",
			OrgAddress: "Casablanca",
			OrgEmail:   "contact@hassan-elec.com",
		})
	})
	if err != nil {
		return err
	}

	dept, err := findOrCreate(ctx, s.departments.FindOne, bson.M{"dept_name": "Installation", "organization": org.ID}, func() (orgmodels.Department, error) {
		return s.departments.InsertOne(ctx, orgmodels.Department{DeptName: "Installation", Organization: org.ID})
	})
	if err != nil {
		return err
	}

	admin, err := s.ensureManager(ctx, "Admin Manager", "admin.manager@hassan-elec.com", orgmodels.ManagerRoleAdmin, dept.ID)
	if err != nil {
		return err
	}
	manager, err := s.ensureManager(ctx, "Site Manager", "manager@hassan-elec.com", orgmodels.ManagerRoleManager, dept.ID)
	if err != nil {
		return err
	}
	log.WithField("admin", admin.Hex()).WithField("manager", manager.Hex()).Info("Managers ready")

	employee, err := s.employees.FindByEmail(ctx, "employee@hassan-elec.com")
	if errors.Is(err, common.ErrNotFound) {
		created, cerr := s.employees.Create(ctx, orgmodels.Employee{
			EmpName:    basemodels.LocalizedText{En: "Youssef", Fr: "Youssef", Ar: "يوسف"},
			EmpEmail:   "employee@hassan-elec.com",
			Department: dept.ID,
			Manager:    manager,
		}, demoPassword)
		if cerr != nil {
			return cerr
		}
		employee.ID = created.ID
	} else if err != nil {
		return err
	}

	if _, err := findOrCreate(ctx, s.tasks.FindOne, bson.M{"employee": employee.ID}, func() (orgmodels.Task, error) {
		return s.tasks.InsertOne(ctx, orgmodels.Task{
			Title:    basemodels.LocalizedText{En: "Inspect panel wiring", Fr: "Inspecter le câblage du tableau", Ar: "فحص أسلاك اللوحة"},
			DueDate:  time.Now().AddDate(0, 0, 7).UTC().Truncate(24 * time.Hour),
			Employee: employee.ID,
			Manager:  manager,
		})
	}); err != nil {
		return err
	}

	if n, err := s.services.CountDocuments(ctx, nil); err != nil {
		return err
	} else if n == 0 {
		for i, title := range []basemodels.LocalizedText{
			{En: "Electrical installation", Fr: "Installation électrique", Ar: "التركيبات الكهربائية"},
			{En: "Maintenance", Fr: "Maintenance", Ar: "الصيانة"},
			{En: "Solar panels", Fr: "Panneaux solaires", Ar: "الألواح الشمسية"},
		} {
			if _, err := s.services.InsertOne(ctx, sitemodels.Service{Title: title, Description: title, Order: int64(i)}); err != nil {
				return err
			}
		}
	}

	if n, err := s.projects.CountDocuments(ctx, nil); err != nil {
		return err
	} else if n == 0 {
		if _, err := s.projects.Create(ctx, sitemodels.Project{
			Title:       basemodels.LocalizedText{En: "Villa rewiring", Fr: "Recâblage de villa", Ar: "إعادة تمديد أسلاك فيلا"},
			Description: basemodels.LocalizedText{En: "Full rewiring of a three-floor villa."},
			Category:    "residential",
		}); err != nil {
			return err
		}
	}
	return nil
}

// ensureManager trả về id của Manager theo email, tạo mới nếu chưa có
func (s *seeder) ensureManager(ctx context.Context, name, email, role string, dept primitive.ObjectID) (primitive.ObjectID, error) {
	existing, err := s.managers.FindByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return primitive.NilObjectID, err
	}
	created, err := s.managers.Create(ctx, orgmodels.Manager{Name: name, Email: email, Role: role, Department: &dept}, demoPassword)
	return created.ID, err
}

// findOrCreate trả về bản ghi khớp filter, không có thì gọi create
func findOrCreate[T any](ctx context.Context, find func(context.Context, interface{}, *options.FindOneOptions) (T, error), filter bson.M, create func() (T, error)) (T, error) {
	v, err := find(ctx, filter, nil)
	if err == nil || !errors.Is(err, common.ErrNotFound) {
		return v, err
	}
	return create()
}
