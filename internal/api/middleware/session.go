package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// SessionLookup exposes the currently authenticated user.
type SessionLookup interface {
	Current() (*domain.Session, bool)
}

// RequireSession admits a request only when the token's sid belongs to the
// current session. Tokens issued before a logout or a newer login are
// rejected. Must run after Auth.
func RequireSession(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get("sid").(string)
			current, ok := sessions.Current()
			if !ok || sid == "" || current.ID != sid {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			return next(c)
		}
	}
}
