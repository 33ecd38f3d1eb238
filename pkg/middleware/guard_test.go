package middleware

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/config"
	"RequestPortal/internal/store"
)

func newTestAuth(t *testing.T) *auth.UserService {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := store.New(fs, "data")
	require.NoError(t, err)
	kv := store.NewKV(fs, "data")
	repo := auth.NewAccountRepository(s)
	session := auth.NewSession(repo, kv)
	email := &config.EmailService{Config: &config.ResendConfig{}}
	return auth.NewUserService(repo, session, kv, auth.NewAuthService(email))
}

func loginUser(t *testing.T, svc *auth.UserService) {
	t.Helper()
	require.NoError(t, svc.Register(auth.RegisterRequest{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Password: "secret1",
	}))
	require.NoError(t, svc.Verify("jane@x.com"))
	_, err := svc.Login(auth.Credential{Email: "jane@x.com", Password: "secret1"})
	require.NoError(t, err)
}

func loginAdmin(t *testing.T, svc *auth.UserService) {
	t.Helper()
	_, err := svc.Login(auth.Credential{Email: "admin@example.com", Password: "Password123!"})
	require.NoError(t, err)
}

func TestProtectedRoutesRedirectToLoginWhenLoggedOut(t *testing.T) {
	svc := newTestAuth(t)

	for route := range protectedRoutes {
		action := Resolve(route, svc.Session())
		assert.Equal(t, Redirect, action.Kind, "route %q", route)
		assert.Equal(t, "/login", action.Route, "route %q", route)
	}
}

func TestAdminRoutesRedirectNonAdmins(t *testing.T) {
	svc := newTestAuth(t)
	loginUser(t, svc)

	for route := range adminRoutes {
		action := Resolve(route, svc.Session())
		assert.Equal(t, Redirect, action.Kind, "route %q", route)
		assert.Equal(t, "/profile", action.Route, "route %q", route)
	}

	// Non-admin still reaches the plain protected pages.
	action := Resolve("profile", svc.Session())
	assert.Equal(t, ShowPage, action.Kind)
	assert.Equal(t, "profile-page", action.PageID)
}

func TestAdminReachesAdminPages(t *testing.T) {
	svc := newTestAuth(t)
	loginAdmin(t, svc)

	for route := range adminRoutes {
		action := Resolve(route, svc.Session())
		assert.Equal(t, ShowPage, action.Kind, "route %q", route)
		assert.Equal(t, route+"-page", action.PageID, "route %q", route)
	}
}

func TestLogoutRouteRedirectsHome(t *testing.T) {
	svc := newTestAuth(t)
	loginAdmin(t, svc)

	action := Resolve("logout", svc.Session())
	assert.Equal(t, Redirect, action.Kind)
	assert.Equal(t, "/", action.Route)
}

func TestPublicRoutesShowWhenLoggedOut(t *testing.T) {
	svc := newTestAuth(t)

	for route, page := range map[string]string{
		"/":            "home-page",
		"login":        "login-page",
		"register":     "register-page",
		"verify-email": "verify-email-page",
	} {
		action := Resolve(route, svc.Session())
		assert.Equal(t, ShowPage, action.Kind, "route %q", route)
		assert.Equal(t, page, action.PageID, "route %q", route)
	}
}

func TestUnknownRouteFallsBackToHome(t *testing.T) {
	svc := newTestAuth(t)

	for _, raw := range []string{"nonsense", "/nonsense", "", "/"} {
		action := Resolve(raw, svc.Session())
		assert.Equal(t, ShowPage, action.Kind, "raw %q", raw)
		assert.Equal(t, "home-page", action.PageID, "raw %q", raw)
	}
}

func TestRouteNormalization(t *testing.T) {
	assert.Equal(t, "profile", NormalizeRoute("/profile"))
	assert.Equal(t, "profile", NormalizeRoute("profile"))
	assert.Equal(t, "/", NormalizeRoute(""))
	assert.Equal(t, "/", NormalizeRoute("/"))
	assert.Equal(t, "/", NormalizeRoute("no-such-page"))
}

func TestCanAccessPolicy(t *testing.T) {
	assert.True(t, CanAccess(store.RoleAdmin, "accounts"))
	assert.True(t, CanAccess(store.RoleAdmin, "requests-admin"))
	assert.False(t, CanAccess(store.RoleUser, "accounts"))
	assert.False(t, CanAccess("", "accounts"))

	// Objects outside the admin set are open to any role.
	assert.True(t, CanAccess(store.RoleUser, "profile"))
	assert.True(t, CanAccess("", "login"))
}
