package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	orgsvc "github.com/zougmar/hassan-elec/internal/api/org/service"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// memDB giữ dữ liệu của các collection trong bộ nhớ cho test route
type memDB struct {
	owners        map[primitive.ObjectID]authmodels.Owner
	organizations map[primitive.ObjectID]orgmodels.Organization
	departments   map[primitive.ObjectID]orgmodels.Department
	managers      map[primitive.ObjectID]orgmodels.Manager
	employees     map[primitive.ObjectID]orgmodels.Employee
	tasks         map[primitive.ObjectID]orgmodels.Task
}

func newMemDB() *memDB {
	return &memDB{
		owners:        map[primitive.ObjectID]authmodels.Owner{},
		organizations: map[primitive.ObjectID]orgmodels.Organization{},
		departments:   map[primitive.ObjectID]orgmodels.Department{},
		managers:      map[primitive.ObjectID]orgmodels.Manager{},
		employees:     map[primitive.ObjectID]orgmodels.Employee{},
		tasks:         map[primitive.ObjectID]orgmodels.Task{},
	}
}

func toDoc(v interface{}) bson.M {
	m, err := utility.ToMap(v)
	if err != nil {
		panic(err)
	}
	return bson.M(m)
}

// matches so sánh bằng từng key của filter với document
func matches(v interface{}, filter bson.M) bool {
	doc := toDoc(v)
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

// applySet áp $set lên bản ghi như UpdateOne của mongo
func applySet[T any](item T, data interface{}) (T, error) {
	var set map[string]interface{}
	switch v := data.(type) {
	case bson.M:
		set = v
	case map[string]interface{}:
		set = v
	default:
		return item, fmt.Errorf("unsupported update %T", data)
	}
	doc := toDoc(item)
	for k, v := range set {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now().UnixMilli()

	raw, err := bson.Marshal(doc)
	if err != nil {
		return item, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return item, err
	}
	return out, nil
}

func (db *memDB) departmentRef(id primitive.ObjectID) *orgmodels.Department {
	if d, ok := db.departments[id]; ok {
		return &d
	}
	return nil
}

func (db *memDB) managerSummary(id primitive.ObjectID) *orgmodels.ManagerSummary {
	m, ok := db.managers[id]
	if !ok {
		return nil
	}
	return &orgmodels.ManagerSummary{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role}
}

func (db *memDB) employeeDetail(e orgmodels.Employee) orgmodels.EmployeeDetail {
	return orgmodels.EmployeeDetail{
		ID:         e.ID,
		EmpName:    e.EmpName,
		EmpEmail:   e.EmpEmail,
		EmpContact: e.EmpContact,
		EmpDob:     e.EmpDob,
		Department: db.departmentRef(e.Department),
		Manager:    db.managerSummary(e.Manager),
		Photo:      e.Photo,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (db *memDB) managerDetail(m orgmodels.Manager) orgmodels.ManagerDetail {
	detail := orgmodels.ManagerDetail{
		ID: m.ID, Name: m.Name, Email: m.Email, Contact: m.Contact,
		Role: m.Role, Photo: m.Photo, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
	if m.Department != nil {
		detail.Department = db.departmentRef(*m.Department)
	}
	return detail
}

func (db *memDB) taskDetail(t orgmodels.Task) orgmodels.TaskDetail {
	detail := orgmodels.TaskDetail{
		ID: t.ID, Title: t.Title, Description: t.Description, Status: t.Status,
		DueDate: t.DueDate, Manager: db.managerSummary(t.Manager),
		CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
	if e, ok := db.employees[t.Employee]; ok {
		detail.Employee = &orgmodels.EmployeeSummary{ID: e.ID, EmpName: e.EmpName, EmpEmail: e.EmpEmail}
	}
	return detail
}

// ---- owners ----

type memOwners struct{ db *memDB }

func (s *memOwners) FindOneById(_ context.Context, id primitive.ObjectID) (authmodels.Owner, error) {
	if o, ok := s.db.owners[id]; ok {
		return o, nil
	}
	return authmodels.Owner{}, common.ErrNotFound
}

func (s *memOwners) FindByEmail(_ context.Context, email string) (authmodels.Owner, error) {
	for _, o := range s.db.owners {
		if o.Email == email {
			return o, nil
		}
	}
	return authmodels.Owner{}, common.ErrNotFound
}

func (s *memOwners) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (authmodels.Owner, error) {
	o, ok := s.db.owners[id]
	if !ok {
		return o, common.ErrNotFound
	}
	o, err := applySet(o, data)
	s.db.owners[id] = o
	return o, err
}

// ---- organizations ----

type memOrganizations struct{ db *memDB }

func (s *memOrganizations) detail(o orgmodels.Organization) orgmodels.OrganizationDetail {
	detail := orgmodels.OrganizationDetail{
		ID: o.ID, OrgName: o.OrgName, OrgAddress: o.OrgAddress, OrgEmail: o.OrgEmail,
		OrgContact: o.OrgContact, Departments: []orgmodels.Department{},
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
	}
	for _, d := range s.db.departments {
		if d.Organization == o.ID {
			detail.Departments = append(detail.Departments, d)
		}
	}
	return detail
}

func (s *memOrganizations) FindDetails(context.Context) ([]orgmodels.OrganizationDetail, error) {
	out := []orgmodels.OrganizationDetail{}
	for _, o := range s.db.organizations {
		out = append(out, s.detail(o))
	}
	return out, nil
}

func (s *memOrganizations) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.OrganizationDetail, error) {
	o, ok := s.db.organizations[id]
	if !ok {
		return orgmodels.OrganizationDetail{}, common.ErrNotFound
	}
	return s.detail(o), nil
}

func (s *memOrganizations) InsertOne(_ context.Context, o orgmodels.Organization) (orgmodels.Organization, error) {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now().UnixMilli()
	s.db.organizations[o.ID] = o
	return o, nil
}

func (s *memOrganizations) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Organization, error) {
	o, ok := s.db.organizations[id]
	if !ok {
		return o, common.ErrNotFound
	}
	o, err := applySet(o, data)
	s.db.organizations[id] = o
	return o, err
}

func (s *memOrganizations) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.organizations[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.db.organizations, id)
	return nil
}

// ---- departments ----

type memDepartments struct{ db *memDB }

func (s *memDepartments) detail(d orgmodels.Department) orgmodels.DepartmentDetail {
	detail := orgmodels.DepartmentDetail{
		ID: d.ID, DeptName: d.DeptName, DeptContact: d.DeptContact, DeptEmail: d.DeptEmail,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
	if o, ok := s.db.organizations[d.Organization]; ok {
		detail.Organization = &o
	}
	return detail
}

func (s *memDepartments) FindDetails(_ context.Context, organization *primitive.ObjectID) ([]orgmodels.DepartmentDetail, error) {
	out := []orgmodels.DepartmentDetail{}
	for _, d := range s.db.departments {
		if organization == nil || d.Organization == *organization {
			out = append(out, s.detail(d))
		}
	}
	return out, nil
}

func (s *memDepartments) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.DepartmentDetail, error) {
	d, ok := s.db.departments[id]
	if !ok {
		return orgmodels.DepartmentDetail{}, common.ErrNotFound
	}
	return s.detail(d), nil
}

func (s *memDepartments) EnsureOrganization(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.organizations[id]; !ok {
		return orgsvc.ErrOrganizationNotFound
	}
	return nil
}

func (s *memDepartments) InsertOne(_ context.Context, d orgmodels.Department) (orgmodels.Department, error) {
	d.ID = primitive.NewObjectID()
	d.CreatedAt = time.Now().UnixMilli()
	s.db.departments[d.ID] = d
	return d, nil
}

func (s *memDepartments) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Department, error) {
	d, ok := s.db.departments[id]
	if !ok {
		return d, common.ErrNotFound
	}
	d, err := applySet(d, data)
	s.db.departments[id] = d
	return d, err
}

func (s *memDepartments) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.departments[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.db.departments, id)
	return nil
}

// ---- managers ----

type memManagers struct{ db *memDB }

func (s *memManagers) FindOneById(_ context.Context, id primitive.ObjectID) (orgmodels.Manager, error) {
	if m, ok := s.db.managers[id]; ok {
		return m, nil
	}
	return orgmodels.Manager{}, common.ErrNotFound
}

func (s *memManagers) FindByEmail(_ context.Context, email string) (orgmodels.Manager, error) {
	for _, m := range s.db.managers {
		if m.Email == email {
			return m, nil
		}
	}
	return orgmodels.Manager{}, common.ErrNotFound
}

func (s *memManagers) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Manager, error) {
	m, ok := s.db.managers[id]
	if !ok {
		return m, common.ErrNotFound
	}
	m, err := applySet(m, data)
	s.db.managers[id] = m
	return m, err
}

func (s *memManagers) FindDetails(_ context.Context, department *primitive.ObjectID) ([]orgmodels.ManagerDetail, error) {
	out := []orgmodels.ManagerDetail{}
	for _, m := range s.db.managers {
		if department == nil || (m.Department != nil && *m.Department == *department) {
			out = append(out, s.db.managerDetail(m))
		}
	}
	return out, nil
}

func (s *memManagers) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.ManagerDetail, error) {
	m, ok := s.db.managers[id]
	if !ok {
		return orgmodels.ManagerDetail{}, common.ErrNotFound
	}
	return s.db.managerDetail(m), nil
}

func (s *memManagers) Create(_ context.Context, m orgmodels.Manager, password string) (orgmodels.ManagerDetail, error) {
	hash, err := utility.HashPassword(password)
	if err != nil {
		return orgmodels.ManagerDetail{}, err
	}
	m.ID = primitive.NewObjectID()
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Password = hash
	if m.Role == "" {
		m.Role = orgmodels.ManagerRoleManager
	}
	s.db.managers[m.ID] = m
	return s.db.managerDetail(m), nil
}

func (s *memManagers) Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.ManagerDetail, error) {
	if password != "" {
		hash, err := utility.HashPassword(password)
		if err != nil {
			return orgmodels.ManagerDetail{}, err
		}
		set["password"] = hash
	}
	m, err := s.UpdateById(ctx, id, set)
	if err != nil {
		return orgmodels.ManagerDetail{}, err
	}
	return s.db.managerDetail(m), nil
}

func (s *memManagers) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.managers[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.db.managers, id)
	return nil
}

// ---- employees ----

type memEmployees struct{ db *memDB }

func (s *memEmployees) FindOneById(_ context.Context, id primitive.ObjectID) (orgmodels.Employee, error) {
	if e, ok := s.db.employees[id]; ok {
		return e, nil
	}
	return orgmodels.Employee{}, common.ErrNotFound
}

func (s *memEmployees) FindByEmail(_ context.Context, email string) (orgmodels.Employee, error) {
	for _, e := range s.db.employees {
		if e.EmpEmail == email {
			return e, nil
		}
	}
	return orgmodels.Employee{}, common.ErrNotFound
}

func (s *memEmployees) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Employee, error) {
	e, ok := s.db.employees[id]
	if !ok {
		return e, common.ErrNotFound
	}
	e, err := applySet(e, data)
	s.db.employees[id] = e
	return e, err
}

func (s *memEmployees) FindDetails(_ context.Context, filter bson.M) ([]orgmodels.EmployeeDetail, error) {
	out := []orgmodels.EmployeeDetail{}
	for _, e := range s.db.employees {
		if matches(e, filter) {
			out = append(out, s.db.employeeDetail(e))
		}
	}
	return out, nil
}

func (s *memEmployees) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.EmployeeDetail, error) {
	e, ok := s.db.employees[id]
	if !ok {
		return orgmodels.EmployeeDetail{}, orgsvc.ErrEmployeeNotFound
	}
	return s.db.employeeDetail(e), nil
}

func (s *memEmployees) Create(_ context.Context, e orgmodels.Employee, password string) (orgsvc.EmployeeCreated, error) {
	e.EmpEmail = strings.ToLower(strings.TrimSpace(e.EmpEmail))
	if _, err := s.FindByEmail(context.Background(), e.EmpEmail); err == nil {
		return orgsvc.EmployeeCreated{}, orgsvc.ErrEmployeeExists
	}
	hash, err := utility.HashPassword(password)
	if err != nil {
		return orgsvc.EmployeeCreated{}, err
	}
	e.ID = primitive.NewObjectID()
	e.Password = hash
	e.CreatedAt = time.Now().UnixMilli()
	s.db.employees[e.ID] = e
	return orgsvc.EmployeeCreated{EmployeeDetail: s.db.employeeDetail(e)}, nil
}

func (s *memEmployees) Update(ctx context.Context, id primitive.ObjectID, set bson.M, password string) (orgmodels.EmployeeDetail, error) {
	if password != "" {
		hash, err := utility.HashPassword(password)
		if err != nil {
			return orgmodels.EmployeeDetail{}, err
		}
		set["password"] = hash
	}
	e, err := s.UpdateById(ctx, id, set)
	if err != nil {
		return orgmodels.EmployeeDetail{}, orgsvc.ErrEmployeeNotFound
	}
	return s.db.employeeDetail(e), nil
}

func (s *memEmployees) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.employees[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.db.employees, id)
	return nil
}

// ---- tasks ----

type memTasks struct{ db *memDB }

func (s *memTasks) Get(_ context.Context, id primitive.ObjectID) (orgmodels.Task, error) {
	if t, ok := s.db.tasks[id]; ok {
		return t, nil
	}
	return orgmodels.Task{}, orgsvc.ErrTaskNotFound
}

func (s *memTasks) FindDetails(_ context.Context, filter bson.M) ([]orgmodels.TaskDetail, error) {
	out := []orgmodels.TaskDetail{}
	for _, t := range s.db.tasks {
		if matches(t, filter) {
			out = append(out, s.db.taskDetail(t))
		}
	}
	return out, nil
}

func (s *memTasks) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.TaskDetail, error) {
	t, ok := s.db.tasks[id]
	if !ok {
		return orgmodels.TaskDetail{}, orgsvc.ErrTaskNotFound
	}
	return s.db.taskDetail(t), nil
}

func (s *memTasks) Create(_ context.Context, t orgmodels.Task) (orgmodels.TaskDetail, error) {
	if t.Status == "" {
		t.Status = orgmodels.TaskStatusPending
	}
	if !orgmodels.IsValidTaskStatus(t.Status) {
		return orgmodels.TaskDetail{}, orgsvc.ErrInvalidTaskStatus
	}
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now().UnixMilli()
	s.db.tasks[t.ID] = t
	return s.db.taskDetail(t), nil
}

func (s *memTasks) Update(_ context.Context, id primitive.ObjectID, set bson.M) (orgmodels.TaskDetail, error) {
	if status, ok := set["status"].(string); ok && !orgmodels.IsValidTaskStatus(status) {
		return orgmodels.TaskDetail{}, orgsvc.ErrInvalidTaskStatus
	}
	t, ok := s.db.tasks[id]
	if !ok {
		return orgmodels.TaskDetail{}, orgsvc.ErrTaskNotFound
	}
	t, err := applySet(t, set)
	if err != nil {
		return orgmodels.TaskDetail{}, err
	}
	s.db.tasks[id] = t
	return s.db.taskDetail(t), nil
}

func (s *memTasks) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.db.tasks[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.db.tasks, id)
	return nil
}
