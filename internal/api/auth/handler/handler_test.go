package authhdl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	authsvc "github.com/zougmar/hassan-elec/internal/api/auth/service"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	"github.com/zougmar/hassan-elec/internal/common"
)

type fakeService struct {
	owner   *authmodels.OwnerPrincipal
	updates []authsvc.ProfileUpdate
}

func (f *fakeService) Login(_ context.Context, email, password string) (*authsvc.LoginResult, error) {
	if email == "" || password == "" {
		return nil, authsvc.ErrMissingCredentials
	}
	if email != f.owner.Email() || password != "secret123" {
		return nil, common.ErrInvalidCredentials
	}
	return &authsvc.LoginResult{Token: "tok", User: authmodels.ViewOf(f.owner)}, nil
}

func (f *fakeService) EmployeeLogin(context.Context, string, string) (*authsvc.LoginResult, error) {
	return nil, authsvc.ErrPasswordNotSet
}

func (f *fakeService) UpdateProfile(_ context.Context, p authmodels.Principal, in authsvc.ProfileUpdate) (authmodels.Principal, error) {
	f.updates = append(f.updates, in)
	owner := f.owner.Owner
	if in.Name != "" {
		owner.Name = in.Name
	}
	if in.Photo != "" {
		owner.Photo = in.Photo
	}
	return &authmodels.OwnerPrincipal{Owner: owner}, nil
}

type fakeImages struct{ saved string }

func (f *fakeImages) SaveFormFile(fiber.Ctx, string, string) (string, error) { return f.saved, nil }
func (f *fakeImages) SaveFormFiles(fiber.Ctx, string, string, int) ([]string, error) {
	return []string{f.saved}, nil
}

// asPrincipal gắn principal vào request như middleware.Authenticate
func asPrincipal(p authmodels.Principal) middleware.Middleware {
	return func(next fiber.Handler) fiber.Handler {
		return func(c fiber.Ctx) error {
			c.Locals(middleware.LocalPrincipal, p)
			return next(c)
		}
	}
}

func setup() (*fiber.App, *fakeService) {
	svc := &fakeService{owner: &authmodels.OwnerPrincipal{Owner: authmodels.Owner{
		ID: primitive.NewObjectID(), Email: "admin@hassan-elec.com", Name: "Admin", Role: "admin", Password: "$2a$10$hash",
	}}}
	h := NewAuthHandler(svc, &fakeImages{saved: "/uploads/photo-1.png"})

	app := fiber.New()
	app.Post("/login", h.HandleLogin)
	app.Post("/employee/login", h.HandleEmployeeLogin)
	app.Get("/me", middleware.Chain(h.HandleMe, asPrincipal(svc.owner)))
	app.Get("/anon", h.HandleMe)
	app.Put("/profile", middleware.Chain(h.HandleUpdateProfile, asPrincipal(svc.owner)))
	return app, svc
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out, string(raw)
}

func TestHandleLogin(t *testing.T) {
	app, _ := setup()

	status, body, raw := send(t, app, http.MethodPost, "/login", `{"email":"admin@hassan-elec.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "tok", body["token"])
	assert.NotContains(t, body, "status")
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user", user["type"])
	assert.Equal(t, "admin", user["role"])
	assert.False(t, strings.Contains(raw, "$2a$10$hash"))

	status, body, _ = send(t, app, http.MethodPost, "/login", `{"email":"admin@hassan-elec.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide email and password", body["message"])

	status, body, _ = send(t, app, http.MethodPost, "/login", `{"email":"admin@hassan-elec.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	status, _, _ = send(t, app, http.MethodPost, "/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body, _ = send(t, app, http.MethodPost, "/employee/login", `{"email":"e@x.com","password":"p"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Password not set. Contact your manager.", body["message"])
}

func TestHandleMe(t *testing.T) {
	app, svc := setup()

	status, body, _ := send(t, app, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, svc.owner.ID().Hex(), user["id"])
	assert.Equal(t, "Admin", user["name"])

	status, _, _ = send(t, app, http.MethodGet, "/anon", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHandleUpdateProfile(t *testing.T) {
	app, svc := setup()

	status, body, _ := send(t, app, http.MethodPut, "/profile", `{"name":"  New Name ","photoUrl":"https://cdn.test/a.png"}`)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "New Name", user["name"])
	assert.Equal(t, "https://cdn.test/a.png", user["photo"])

	status, body, _ = send(t, app, http.MethodPut, "/profile", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name cannot be empty", body["message"])

	status, _, _ = send(t, app, http.MethodPut, "/profile", `{"photoUrl":"ftp://nope"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, authsvc.ProfileUpdate{}, svc.updates[len(svc.updates)-1])
}
