package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshift-app/workshift-go/internal/config"
	"github.com/workshift-app/workshift-go/internal/domain/user"
	"github.com/workshift-app/workshift-go/internal/pkg/jwt"
)

// stubHandlers answers every endpoint with 200 so route tests only observe
// the middleware chain in front of it.
type stubHandlers struct{}

func (stubHandlers) ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s stubHandlers) Register(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s stubHandlers) Login(w http.ResponseWriter, r *http.Request)               { s.ok(w, r) }
func (s stubHandlers) PunchIn(w http.ResponseWriter, r *http.Request)             { s.ok(w, r) }
func (s stubHandlers) PunchOut(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s stubHandlers) StartBreak(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s stubHandlers) EndBreak(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s stubHandlers) TodayStatus(w http.ResponseWriter, r *http.Request)         { s.ok(w, r) }
func (s stubHandlers) MyHistory(w http.ResponseWriter, r *http.Request)           { s.ok(w, r) }
func (s stubHandlers) TodayAllEmployees(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s stubHandlers) MonthlyReport(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s stubHandlers) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			BasePath:    "/api",
			CORSOrigins: []string{"http://localhost:3000"},
		},
	}
	jwtService := jwt.NewJWTService("router-test-secret", "1h")

	h := stubHandlers{}
	return NewRouter(cfg, jwtService, h, h, h), jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()

	token, _, err := jwtService.GenerateToken(user.User{
		ID:    "u1",
		Name:  "Route Tester",
		Email: "tester@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func routedRequest(t *testing.T, router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterEmployeeOnlyRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t)
	employee := bearerToken(t, jwtService, user.RoleEmployee)
	employer := bearerToken(t, jwtService, user.RoleEmployer)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/attendance/punch-in"},
		{http.MethodPost, "/api/attendance/punch-out"},
		{http.MethodPost, "/api/attendance/start-break"},
		{http.MethodPost, "/api/attendance/end-break"},
		{http.MethodGet, "/api/attendance/my-history"},
		{http.MethodGet, "/api/attendance/today-status"},
	}

	for _, route := range routes {
		t.Run(route.path, func(t *testing.T) {
			rec := routedRequest(t, router, route.method, route.path, employee)
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = routedRequest(t, router, route.method, route.path, employer)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "Only employees can perform this action")
		})
	}
}

func TestRouterEmployerOnlyRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t)
	employee := bearerToken(t, jwtService, user.RoleEmployee)
	employer := bearerToken(t, jwtService, user.RoleEmployer)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/attendance/all-employees"},
		{http.MethodPost, "/api/attendance/monthly-report"},
		{http.MethodPost, "/api/attendance/monthly-report/export"},
	}

	for _, route := range routes {
		t.Run(route.path, func(t *testing.T) {
			rec := routedRequest(t, router, route.method, route.path, employer)
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = routedRequest(t, router, route.method, route.path, employee)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "Only employers can perform this action")
		})
	}
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := routedRequest(t, router, http.MethodGet, "/api/attendance/today-status", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
