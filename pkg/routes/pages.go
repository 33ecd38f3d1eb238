package pkg

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/store"
	"RequestPortal/internal/view"
	"RequestPortal/pkg/middleware"
)

// PageHandler resolves navigation through the route guard and renders the
// landed page's view model.
type PageHandler struct {
	store   *store.Store
	service *auth.UserService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(s *store.Store, service *auth.UserService) *PageHandler {
	return &PageHandler{store: s, service: service}
}

// PageResponse is the navigation result: either a rendered page or a
// redirect target.
type PageResponse struct {
	Page     string       `json:"page,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	Nav      view.NavView `json:"nav"`
	Data     interface{}  `json:"data,omitempty"`
}

// Navigate maps a route to a page, enforcing the protected and admin route
// sets. Unknown routes land on home.
func (h *PageHandler) Navigate(c echo.Context) error {
	raw := c.Param("route")
	session := h.service.Session()

	// The logout route performs its side effect before the guard redirect.
	if middleware.NormalizeRoute(raw) == "logout" {
		h.service.Logout()
	}

	action := middleware.Resolve(raw, session)

	current, ok := session.Current()
	var currentRef *store.Account
	if ok {
		currentRef = &current
	}
	nav := view.Nav(currentRef)

	if action.Kind == middleware.Redirect {
		return c.JSON(http.StatusOK, PageResponse{Redirect: action.Route, Nav: nav})
	}

	resp := PageResponse{Page: action.PageID, Nav: nav}
	doc := h.store.Snapshot()

	switch action.PageID {
	case "profile-page":
		profile, _ := view.Profile(currentRef)
		resp.Data = profile
	case "dashboard-page":
		resp.Data = view.Dashboard(doc, currentRef)
	case "requests-page":
		resp.Data = view.Requests(doc, currentRef)
	case "employees-page":
		resp.Data = view.Employees(doc)
	case "departments-page":
		resp.Data = doc.Departments
	case "accounts-page":
		resp.Data = view.Accounts(doc)
	case "verify-email-page":
		resp.Data = map[string]string{"pendingEmail": h.service.PendingEmail()}
	case "login-page":
		resp.Data = map[string]bool{"justVerified": session.ConsumeJustVerified()}
	}

	return c.JSON(http.StatusOK, resp)
}

// Home serves the empty route.
func (h *PageHandler) Home(c echo.Context) error {
	c.SetParamNames("route")
	c.SetParamValues("/")
	return h.Navigate(c)
}
