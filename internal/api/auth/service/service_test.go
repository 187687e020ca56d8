package authsvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// ---- fakes ----

type fakeOwners struct{ items map[primitive.ObjectID]authmodels.Owner }

func (f *fakeOwners) FindOneById(_ context.Context, id primitive.ObjectID) (authmodels.Owner, error) {
	if o, ok := f.items[id]; ok {
		return o, nil
	}
	return authmodels.Owner{}, common.ErrNotFound
}

func (f *fakeOwners) FindByEmail(_ context.Context, email string) (authmodels.Owner, error) {
	for _, o := range f.items {
		if o.Email == email {
			return o, nil
		}
	}
	return authmodels.Owner{}, common.ErrNotFound
}

func (f *fakeOwners) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (authmodels.Owner, error) {
	o := f.items[id]
	set := data.(bson.M)
	if v, ok := set["name"].(string); ok {
		o.Name = v
	}
	if v, ok := set["photo"].(string); ok {
		o.Photo = v
	}
	f.items[id] = o
	return o, nil
}

type fakeManagers struct{ items map[primitive.ObjectID]orgmodels.Manager }

func (f *fakeManagers) FindOneById(_ context.Context, id primitive.ObjectID) (orgmodels.Manager, error) {
	if m, ok := f.items[id]; ok {
		return m, nil
	}
	return orgmodels.Manager{}, common.ErrNotFound
}

func (f *fakeManagers) FindByEmail(_ context.Context, email string) (orgmodels.Manager, error) {
	for _, m := range f.items {
		if m.Email == email {
			return m, nil
		}
	}
	return orgmodels.Manager{}, common.ErrNotFound
}

func (f *fakeManagers) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Manager, error) {
	m := f.items[id]
	if v, ok := data.(bson.M)["name"].(string); ok {
		m.Name = v
	}
	f.items[id] = m
	return m, nil
}

type fakeEmployees struct{ items map[primitive.ObjectID]orgmodels.Employee }

func (f *fakeEmployees) FindDetailById(_ context.Context, id primitive.ObjectID) (orgmodels.EmployeeDetail, error) {
	e, ok := f.items[id]
	if !ok {
		return orgmodels.EmployeeDetail{}, common.ErrNotFound
	}
	return orgmodels.EmployeeDetail{ID: e.ID, EmpName: e.EmpName, EmpEmail: e.EmpEmail, Photo: e.Photo,
		Manager: &orgmodels.ManagerSummary{ID: e.Manager}}, nil
}

func (f *fakeEmployees) FindByEmail(_ context.Context, email string) (orgmodels.Employee, error) {
	for _, e := range f.items {
		if e.EmpEmail == email {
			return e, nil
		}
	}
	return orgmodels.Employee{}, common.ErrNotFound
}

func (f *fakeEmployees) UpdateById(_ context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Employee, error) {
	e := f.items[id]
	set := data.(bson.M)
	if v, ok := set["emp_name"].(basemodels.LocalizedText); ok {
		e.EmpName = v
	}
	if v, ok := set["photo"].(string); ok {
		e.Photo = v
	}
	f.items[id] = e
	return e, nil
}

type fixture struct {
	svc       *AuthService
	owner     authmodels.Owner
	admin     orgmodels.Manager
	manager   orgmodels.Manager
	employee  orgmodels.Employee
	noPwdEmp  orgmodels.Employee
	employees *fakeEmployees
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := utility.HashPassword("secret123")
	require.NoError(t, err)

	f := &fixture{
		owner:    authmodels.Owner{ID: primitive.NewObjectID(), Email: "admin@hassan-elec.com", Password: hash, Role: "admin"},
		admin:    orgmodels.Manager{ID: primitive.NewObjectID(), Name: "Hassan", Email: "hassan@hassan-elec.com", Password: hash, Role: orgmodels.ManagerRoleAdmin},
		manager:  orgmodels.Manager{ID: primitive.NewObjectID(), Name: "Omar", Email: "omar@hassan-elec.com", Password: hash, Role: orgmodels.ManagerRoleManager},
		employee: orgmodels.Employee{ID: primitive.NewObjectID(), EmpName: basemodels.LocalizedText{En: "Youssef", Ar: "يوسف"}, EmpEmail: "youssef@hassan-elec.com", Password: hash},
		noPwdEmp: orgmodels.Employee{ID: primitive.NewObjectID(), EmpName: basemodels.LocalizedText{En: "Nadia"}, EmpEmail: "nadia@hassan-elec.com"},
	}
	f.employee.Manager = f.manager.ID

	tokens, err := NewTokenService("test-secret", "7d")
	require.NoError(t, err)
	f.employees = &fakeEmployees{items: map[primitive.ObjectID]orgmodels.Employee{f.employee.ID: f.employee, f.noPwdEmp.ID: f.noPwdEmp}}
	f.svc = NewAuthService(tokens,
		&fakeOwners{items: map[primitive.ObjectID]authmodels.Owner{f.owner.ID: f.owner}},
		&fakeManagers{items: map[primitive.ObjectID]orgmodels.Manager{f.admin.ID: f.admin, f.manager.ID: f.manager}},
		f.employees,
	)
	return f
}

// ---- token ----

func TestParseExpire(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 7 * 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"12h", 12 * time.Hour},
		{"30m", 30 * time.Minute},
		{"45s", 45 * time.Second},
		{"3600", time.Hour},
		{"1h30m", 90 * time.Minute},
	}
	for _, tt := range tests {
		got, err := ParseExpire(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"abc", "-5", "0d"} {
		_, err := ParseExpire(bad)
		assert.Error(t, err, bad)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService("s", "1h")
	require.NoError(t, err)

	for _, kind := range []authmodels.Kind{authmodels.KindUser, authmodels.KindManager, authmodels.KindEmployee} {
		id := primitive.NewObjectID()
		tok, err := svc.Issue(id, kind)
		require.NoError(t, err)

		claims, err := svc.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), claims.ID)
		assert.Equal(t, kind, claims.Kind())
	}
}

func TestTokenExpired(t *testing.T) {
	svc, err := NewTokenService("s", "1h")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := svc.Issue(primitive.NewObjectID(), authmodels.KindManager)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestTokenTamperedAndMalformed(t *testing.T) {
	svc, _ := NewTokenService("s", "1h")
	other, _ := NewTokenService("other", "1h")
	tok, err := other.Issue(primitive.NewObjectID(), authmodels.KindUser)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
	_, err = svc.Verify("not.a.token")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestTokenWithoutTypeIsUser(t *testing.T) {
	svc, _ := NewTokenService("s", "1h")
	id := primitive.NewObjectID()
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  id.Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok, err := legacy.SignedString([]byte("s"))
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, authmodels.KindUser, claims.Kind())
}

// ---- resolve ----

func TestAuthenticateResolvesEachKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		id   primitive.ObjectID
		kind authmodels.Kind
		role authmodels.Role
	}{
		{f.owner.ID, authmodels.KindUser, authmodels.RoleAdmin},
		{f.admin.ID, authmodels.KindManager, authmodels.RoleAdmin},
		{f.manager.ID, authmodels.KindManager, authmodels.RoleManager},
		{f.employee.ID, authmodels.KindEmployee, authmodels.RoleEmployee},
	}
	for _, c := range cases {
		tok, err := f.svc.Tokens().Issue(c.id, c.kind)
		require.NoError(t, err)
		p, err := f.svc.Authenticate(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, c.id, p.ID())
		assert.Equal(t, c.kind, p.Kind())
		assert.Equal(t, c.role, p.Role())
	}
}

func TestResolveFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, &authmodels.Claims{ID: primitive.NewObjectID().Hex(), Type: "manager"})
	assert.ErrorIs(t, err, ErrPrincipalNotFound)

	_, err = f.svc.Resolve(ctx, &authmodels.Claims{ID: f.owner.ID.Hex(), Type: "robot"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusUnauthorized, appErr.StatusCode)
}

// ---- login ----

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Login(ctx, "ADMIN@hassan-elec.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, authmodels.KindUser, res.User.Type)
	assert.NotEmpty(t, res.Token)

	res, err = f.svc.Login(ctx, "omar@hassan-elec.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, authmodels.KindManager, res.User.Type)
	assert.Equal(t, authmodels.RoleManager, res.User.Role)
	assert.Equal(t, "Omar", res.User.Name)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), f.manager.Password)

	_, err = f.svc.Login(ctx, "omar@hassan-elec.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "nobody@hassan-elec.com", "secret123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "", "secret123")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestEmployeeLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.EmployeeLogin(ctx, "youssef@hassan-elec.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, authmodels.KindEmployee, res.User.Type)
	assert.Equal(t, authmodels.RoleEmployee, res.User.Role)
	assert.Equal(t, "Youssef", res.User.Name)

	p, err := f.svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, authmodels.KindEmployee, p.Kind())

	_, err = f.svc.EmployeeLogin(ctx, "nadia@hassan-elec.com", "anything")
	assert.ErrorIs(t, err, ErrPasswordNotSet)

	_, err = f.svc.EmployeeLogin(ctx, "omar@hassan-elec.com", "secret123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

// ---- profile ----

func TestUpdateProfileEmployeeKeepsOtherLanguages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	detail, err := f.employees.FindDetailById(ctx, f.employee.ID)
	require.NoError(t, err)
	p := &authmodels.EmployeePrincipal{Employee: detail}

	updated, err := f.svc.UpdateProfile(ctx, p, ProfileUpdate{Name: "  Youssef B. ", Photo: "https://cdn.test/y.png"})
	require.NoError(t, err)
	assert.Equal(t, "Youssef B.", updated.Name())
	assert.Equal(t, "https://cdn.test/y.png", updated.Photo())
	assert.Equal(t, "يوسف", f.employees.items[f.employee.ID].EmpName.Ar)
}

func TestUpdateProfileNoChanges(t *testing.T) {
	f := newFixture(t)
	p := &authmodels.OwnerPrincipal{Owner: f.owner}

	same, err := f.svc.UpdateProfile(context.Background(), p, ProfileUpdate{Name: "   "})
	require.NoError(t, err)
	assert.Same(t, p, same)
}
