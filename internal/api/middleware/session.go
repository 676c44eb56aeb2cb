package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/session"
)

// Context keys set by RequireSession.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxEmail    = "email"
)

// RequireSession guards a route group behind a valid session cookie. A
// missing, corrupt, or expired token is uniformly "not logged in", never a
// distinct error. On success the identity fields are injected into the echo
// context for handlers.
func RequireSession(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := manager.Read(c)
			if !ok {
				return domain.ErrNotLoggedIn
			}

			c.Set(CtxUserID, s.UserID)
			c.Set(CtxUsername, s.Username)
			c.Set(CtxEmail, s.Email)

			return next(c)
		}
	}
}
