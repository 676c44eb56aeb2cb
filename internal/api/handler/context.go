package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/api/middleware"
	"github.com/webdawg/futures-api/internal/core/domain"
)

// ctxUserID extracts the user id injected by the RequireSession middleware.
// An empty id means the middleware did not run on this route; treat it as an
// absent session rather than trusting the request.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", domain.ErrNotLoggedIn
	}
	return userID, nil
}
