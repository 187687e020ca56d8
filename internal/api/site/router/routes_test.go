package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
	sitehdl "github.com/zougmar/hassan-elec/internal/api/site/handler"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	sitesvc "github.com/zougmar/hassan-elec/internal/api/site/service"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/notify"
)

const staffToken = "staff-token"

// staffAuth chấp nhận đúng một token và trả về manager role manager
type staffAuth struct{}

func (staffAuth) Authenticate(_ context.Context, token string) (authmodels.Principal, error) {
	if token != staffToken {
		return nil, common.ErrTokenInvalid
	}
	return &authmodels.ManagerPrincipal{Manager: orgmodels.Manager{
		ID: primitive.NewObjectID(), Email: "karim@hassan-elec.ma", Role: orgmodels.ManagerRoleManager,
	}}, nil
}

// memRequests lưu ServiceRequest trong bộ nhớ
type memRequests struct {
	items map[primitive.ObjectID]sitemodels.ServiceRequest
}

func (s *memRequests) List(_ context.Context, status string) ([]sitemodels.ServiceRequest, error) {
	out := []sitemodels.ServiceRequest{}
	for _, r := range s.items {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memRequests) Get(_ context.Context, id primitive.ObjectID) (sitemodels.ServiceRequest, error) {
	if r, ok := s.items[id]; ok {
		return r, nil
	}
	return sitemodels.ServiceRequest{}, sitesvc.ErrRequestNotFound
}

func (s *memRequests) Create(_ context.Context, r sitemodels.ServiceRequest) (sitemodels.ServiceRequest, error) {
	r.ID = primitive.NewObjectID()
	r.Status = sitemodels.RequestStatusPending
	r.CreatedAt = time.Now().UnixMilli()
	s.items[r.ID] = r
	return r, nil
}

func (s *memRequests) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (sitemodels.ServiceRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil || status == "" {
		return r, err
	}
	if !sitemodels.IsValidRequestStatus(status) {
		return sitemodels.ServiceRequest{}, sitesvc.ErrInvalidRequestStatus
	}
	r.Status = status
	s.items[id] = r
	return r, nil
}

func (s *memRequests) Stats(context.Context) (sitemodels.RequestStats, error) {
	var stats sitemodels.RequestStats
	for _, r := range s.items {
		stats.Total++
		switch r.Status {
		case sitemodels.RequestStatusPending:
			stats.Pending++
		case sitemodels.RequestStatusInProgress:
			stats.InProgress++
		case sitemodels.RequestStatusDone:
			stats.Done++
		}
	}
	return stats, nil
}

func (s *memRequests) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return sitesvc.ErrRequestNotFound
	}
	delete(s.items, id)
	return nil
}

type recordingNotifier struct{ got []notify.RequestSummary }

func (n *recordingNotifier) NotifyNewRequest(req notify.RequestSummary) { n.got = append(n.got, req) }

func newSiteApp(t *testing.T) (*fiber.App, *memRequests, *recordingNotifier) {
	t.Helper()
	requests := &memRequests{items: map[primitive.ObjectID]sitemodels.ServiceRequest{}}
	notifier := &recordingNotifier{}

	app := fiber.New()
	err := apirouter.SetupRoutes(app, middleware.Authenticate(staffAuth{}), Register(Handlers{
		Service: sitehdl.NewServiceHandler(nil, nil),
		Project: sitehdl.NewProjectHandler(nil, nil),
		Request: sitehdl.NewRequestHandler(requests, nil, notifier),
	}))
	require.NoError(t, err)
	return app, requests, notifier
}

func send(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestPublicRequestIsPending(t *testing.T) {
	app, requests, notifier := newSiteApp(t)

	status, body := send(t, app, http.MethodPost, "/api/requests", "", `{
		"name": "Youssef", "phone": "0612345678", "email": "youssef@example.com",
		"address": "Casablanca", "serviceType": "Installation", "message": "Tableau électrique",
		"status": "done"
	}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Youssef", body["name"])
	assert.NotContains(t, body, "code")

	require.Len(t, requests.items, 1)
	require.Len(t, notifier.got, 1)
	assert.Equal(t, "0612345678", notifier.got[0].Phone)
}

func TestRequestStatusUpdateNeedsStaff(t *testing.T) {
	app, requests, _ := newSiteApp(t)
	created, err := requests.Create(context.Background(), sitemodels.ServiceRequest{Name: "Youssef", Phone: "0612345678"})
	require.NoError(t, err)
	path := "/api/requests/" + created.ID.Hex()

	status, body := send(t, app, http.MethodPut, path, "", `{"status":"done"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["message"])
	assert.Equal(t, sitemodels.RequestStatusPending, requests.items[created.ID].Status)

	status, body = send(t, app, http.MethodPut, path, staffToken, `{"status":"done"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "done", body["status"])
	assert.Equal(t, sitemodels.RequestStatusDone, requests.items[created.ID].Status)

	status, _ = send(t, app, http.MethodPut, path, staffToken, `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRequestListIsBareArray(t *testing.T) {
	app, requests, _ := newSiteApp(t)
	_, err := requests.Create(context.Background(), sitemodels.ServiceRequest{Name: "Youssef"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []sitemodels.ServiceRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Youssef", list[0].Name)
}
