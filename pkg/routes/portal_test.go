package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/config"
	"RequestPortal/internal/department"
	"RequestPortal/internal/employee"
	"RequestPortal/internal/notification"
	"RequestPortal/internal/request"
	"RequestPortal/internal/store"
)

type portal struct {
	e     *echo.Echo
	users *auth.UserService
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := store.New(fs, "data")
	require.NoError(t, err)
	kv := store.NewKV(fs, "data")

	accountRepo := auth.NewAccountRepository(s)
	session := auth.NewSession(accountRepo, kv)
	email := &config.EmailService{Config: &config.ResendConfig{}}
	users := auth.NewUserService(accountRepo, session, kv, auth.NewAuthService(email))

	deptSvc := department.NewDepartmentService(department.NewDepartmentRepository(s))
	empSvc := employee.NewEmployeeService(employee.NewEmployeeRepository(s), accountRepo)
	notifier := notification.NewNotificationService(email)
	reqSvc := request.NewRequestService(request.NewRequestRepository(s), session, notifier)

	e := echo.New()
	RegisterRoutes(e, session,
		NewPageHandler(s, users),
		auth.NewAuthHandler(users),
		department.NewDepartmentHandler(deptSvc),
		employee.NewEmployeeHandler(empSvc),
		request.NewRequestHandler(reqSvc),
	)
	return &portal{e: e, users: users}
}

func (p *portal) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	p.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRegisterVerifyLoginScenario(t *testing.T) {
	p := newPortal(t)

	rec := p.do(http.MethodPost, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Unverified login fails with the generic message.
	rec = p.do(http.MethodPost, "/login", `{"email":"jane@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The verify-email page shows the pending address.
	rec = p.do(http.MethodGet, "/pages/verify-email", "")
	body := decode(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jane@x.com", data["pendingEmail"])

	rec = p.do(http.MethodPost, "/simulate-verify", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// The login page shows the one-shot verified banner exactly once.
	rec = p.do(http.MethodGet, "/pages/login", "")
	data = decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["justVerified"])
	rec = p.do(http.MethodGet, "/pages/login", "")
	data = decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["justVerified"])

	rec = p.do(http.MethodPost, "/login", `{"email":"jane@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user", decode(t, rec)["role"])
}

func TestNonAdminNavigationScenario(t *testing.T) {
	p := newPortal(t)

	p.do(http.MethodPost, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","password":"secret1"}`)
	p.do(http.MethodPost, "/simulate-verify", "")
	rec := p.do(http.MethodPost, "/login", `{"email":"jane@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Admin pages redirect a non-admin to the profile page.
	body := decode(t, p.do(http.MethodGet, "/pages/accounts", ""))
	assert.Equal(t, "/profile", body["redirect"])

	// The profile page itself is shown.
	body = decode(t, p.do(http.MethodGet, "/pages/profile", ""))
	assert.Equal(t, "profile-page", body["page"])
	profile := body["data"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", profile["name"])

	// Admin APIs are forbidden for the same session.
	rec = p.do(http.MethodGet, "/api/accounts", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Logout clears the session; protected pages redirect to login again.
	body = decode(t, p.do(http.MethodGet, "/pages/logout", ""))
	assert.Equal(t, "/", body["redirect"])
	body = decode(t, p.do(http.MethodGet, "/pages/profile", ""))
	assert.Equal(t, "/login", body["redirect"])
}

func TestRequestOwnershipScenario(t *testing.T) {
	p := newPortal(t)

	p.do(http.MethodPost, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","password":"secret1"}`)
	p.do(http.MethodPost, "/simulate-verify", "")
	p.do(http.MethodPost, "/login", `{"email":"jane@x.com","password":"secret1"}`)

	rec := p.do(http.MethodPost, "/api/requests",
		`{"items":[{"name":"Laptop","qty":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, "jane@x.com", created["employeeEmail"])
	assert.Equal(t, "Pending", created["status"])

	// Jane sees her request on the requests page.
	body := decode(t, p.do(http.MethodGet, "/pages/requests", ""))
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Laptop (x2)", row["itemsText"])

	// Another user does not see it.
	p.do(http.MethodGet, "/pages/logout", "")
	p.do(http.MethodPost, "/login", `{"email":"admin@example.com","password":"Password123!"}`)
	body = decode(t, p.do(http.MethodGet, "/pages/requests", ""))
	assert.Empty(t, body["data"].([]interface{}))

	// But the admin request view lists it and can approve it.
	rec = p.do(http.MethodGet, "/api/admin/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)

	id := all[0]["id"].(string)
	rec = p.do(http.MethodPut, "/api/admin/requests/"+id+"/status", `{"status":"Approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminPagesAndSelfDelete(t *testing.T) {
	p := newPortal(t)

	rec := p.do(http.MethodPost, "/login", `{"email":"admin@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, p.do(http.MethodGet, "/pages/accounts", ""))
	assert.Equal(t, "accounts-page", body["page"])
	nav := body["nav"].(map[string]interface{})
	assert.Equal(t, true, nav["isAdmin"])

	// Find the admin's own id from the accounts table.
	rec = p.do(http.MethodGet, "/api/accounts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accounts []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)
	adminID := accounts[0]["id"].(string)

	rec = p.do(http.MethodDelete, "/api/accounts/"+adminID, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownRouteShowsHome(t *testing.T) {
	p := newPortal(t)

	body := decode(t, p.do(http.MethodGet, "/pages/nonsense", ""))
	assert.Equal(t, "home-page", body["page"])

	body = decode(t, p.do(http.MethodGet, "/", ""))
	assert.Equal(t, "home-page", body["page"])
}
