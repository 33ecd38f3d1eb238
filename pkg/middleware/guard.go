package middleware

import (
	"strings"

	"RequestPortal/internal/auth"
)

// Route sets checked by the guard, keyed by normalized route name.
var (
	protectedRoutes = map[string]bool{
		"profile":     true,
		"dashboard":   true,
		"requests":    true,
		"employees":   true,
		"departments": true,
		"accounts":    true,
	}
	adminRoutes = map[string]bool{
		"employees":   true,
		"departments": true,
		"accounts":    true,
	}
	knownRoutes = map[string]bool{
		"/":            true,
		"login":        true,
		"register":     true,
		"verify-email": true,
		"dashboard":    true,
		"profile":      true,
		"requests":     true,
		"employees":    true,
		"departments":  true,
		"accounts":     true,
		"logout":       true,
	}
)

// ActionKind discriminates guard results.
type ActionKind int

const (
	// ShowPage means the route's page is rendered.
	ShowPage ActionKind = iota
	// Redirect means navigation moves to another route instead.
	Redirect
)

// Action is the guard's decision for one navigation.
type Action struct {
	Kind   ActionKind
	PageID string // page id when Kind is ShowPage
	Route  string // target route when Kind is Redirect
}

// NormalizeRoute maps a raw navigation string to a route name: "" and "/"
// are home, a leading slash is stripped, unknown routes fall back to home.
func NormalizeRoute(raw string) string {
	r := strings.TrimSpace(raw)
	r = strings.TrimPrefix(r, "/")
	if r == "" {
		return "/"
	}
	if !knownRoutes[r] {
		return "/"
	}
	return r
}

// Resolve decides what one navigation does. It is pure: the logout side
// effect for the logout route is the caller's job.
func Resolve(raw string, session *auth.Session) Action {
	route := NormalizeRoute(raw)

	if route == "logout" {
		return Action{Kind: Redirect, Route: "/"}
	}

	current, authenticated := session.Current()

	if protectedRoutes[route] && !authenticated {
		return Action{Kind: Redirect, Route: "/login"}
	}

	if adminRoutes[route] && !CanAccess(current.Role, route) {
		return Action{Kind: Redirect, Route: "/profile"}
	}

	return Action{Kind: ShowPage, PageID: PageIDFor(route)}
}

// PageIDFor maps a route to its page id; home has a fixed id.
func PageIDFor(route string) string {
	if route == "/" {
		return "home-page"
	}
	return route + "-page"
}
