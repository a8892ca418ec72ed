package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys written by middleware.Auth.
const (
	ctxKeySessionID = "sid"
	ctxKeyEmail     = "email"
)

// ctxSession extracts the session claims injected by the Auth middleware.
// A missing sid means the middleware did not run or the token predates the
// claim, so the request is rejected before any service call.
func ctxSession(c echo.Context) (sid, email string, err error) {
	sid, _ = c.Get(ctxKeySessionID).(string)
	if sid == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get(ctxKeyEmail).(string)
	return sid, email, nil
}
