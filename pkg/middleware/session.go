package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"RequestPortal/internal/auth"
)

// SessionMiddleware rejects requests when no account backs the session and
// exposes the resolved account to handlers under the "user" key.
func SessionMiddleware(session *auth.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acc, ok := session.Current()
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not logged in"})
			}
			c.Set("user", acc)
			return next(c)
		}
	}
}

// AdminMiddleware rejects requests whose session account cannot pass the
// admin route policy.
func AdminMiddleware(session *auth.Session, route string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acc, ok := session.Current()
			if !ok || !CanAccess(acc.Role, route) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: insufficient permissions"})
			}
			return next(c)
		}
	}
}
