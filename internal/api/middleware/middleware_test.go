package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

type fakeAuth map[string]authmodels.Principal

func (f fakeAuth) Authenticate(_ context.Context, token string) (authmodels.Principal, error) {
	if p, ok := f[token]; ok {
		return p, nil
	}
	return nil, common.ErrTokenInvalid
}

var (
	owner    = &authmodels.OwnerPrincipal{Owner: authmodels.Owner{ID: primitive.NewObjectID(), Role: "admin"}}
	manager  = &authmodels.ManagerPrincipal{Manager: orgmodels.Manager{ID: primitive.NewObjectID(), Role: orgmodels.ManagerRoleManager}}
	employee = &authmodels.EmployeePrincipal{Employee: orgmodels.EmployeeDetail{ID: primitive.NewObjectID()}}
)

func newApp() *fiber.App {
	auth := fakeAuth{"owner": owner, "manager": manager, "employee": employee}
	app := fiber.New()
	whoami := func(c fiber.Ctx) error {
		p, _ := PrincipalFrom(c)
		return c.JSON(fiber.Map{"kind": p.Kind(), "user_id": c.Locals(logger.LocalPrincipalID)})
	}
	app.Get("/me", Chain(whoami, Authenticate(auth)))
	app.Get("/admin", Chain(whoami, Authenticate(auth), AdminOnly))
	app.Get("/staff", Chain(whoami, Authenticate(auth), AdminOrManager))
	app.Get("/assigned", Chain(whoami, Authenticate(auth), EmployeeOnly))
	app.Get("/gate-only", Chain(whoami, ManagerOnly))
	return app
}

func call(t *testing.T, app *fiber.App, path, header string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next fiber.Handler) fiber.Handler {
			return func(c fiber.Ctx) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	h := Chain(func(c fiber.Ctx) error {
		order = append(order, "handler")
		return c.SendStatus(http.StatusNoContent)
	}, mark("first"), mark("second"))

	app := fiber.New()
	app.Get("/", h)
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestAuthenticate(t *testing.T) {
	app := newApp()

	status, body := call(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, common.MsgTokenMissing, body["message"])

	status, _ = call(t, app, "/me", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = call(t, app, "/me", "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, common.MsgTokenInvalid, body["message"])

	status, body = call(t, app, "/me", "Bearer employee")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "employee", body["kind"])
	assert.Equal(t, employee.ID().Hex(), body["user_id"])
}

func TestGates(t *testing.T) {
	app := newApp()
	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/admin", "owner", http.StatusOK},
		{"/admin", "manager", http.StatusForbidden},
		{"/admin", "employee", http.StatusForbidden},
		{"/staff", "owner", http.StatusOK},
		{"/staff", "manager", http.StatusOK},
		{"/staff", "employee", http.StatusForbidden},
		{"/assigned", "employee", http.StatusOK},
		{"/assigned", "manager", http.StatusForbidden},
	}
	for _, tt := range tests {
		status, body := call(t, app, tt.path, "Bearer "+tt.token)
		assert.Equal(t, tt.want, status, "%s as %s", tt.path, tt.token)
		if tt.want == http.StatusForbidden {
			assert.Equal(t, common.MsgForbidden, body["message"])
		}
	}
}

func TestGateWithoutPrincipal(t *testing.T) {
	status, _ := call(t, newApp(), "/gate-only", "Bearer owner")
	assert.Equal(t, http.StatusUnauthorized, status)
}
