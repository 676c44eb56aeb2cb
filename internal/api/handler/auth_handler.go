package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/api/metrics"
	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
	"github.com/webdawg/futures-api/internal/session"
)

// AuthHandler handles the signup/login/logout/check-session surface. The
// service owns credentials; the session manager owns the cookie. Only this
// handler touches both.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginRequest carries no validate tags: an empty email or password is an
// authentication failure (401), not a validation failure, so nothing about
// field presence leaks through a different status code.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup creates a new account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "account created"})
}

// Login verifies credentials and issues the session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  identityResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	if err := h.sessions.Issue(c, session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		LoggedIn: true,
	}); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, identityResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Logout destroys the session cookie. Logging out twice is not an error.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}

// CheckSession returns the identity carried by the current session without
// mutating it.
//
// @Summary      Check session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/check-session [get]
func (h *AuthHandler) CheckSession(c echo.Context) error {
	s, ok := h.sessions.Read(c)
	if !ok {
		metrics.SessionChecksTotal.WithLabelValues("none").Inc()
		return domain.ErrNotLoggedIn
	}

	metrics.SessionChecksTotal.WithLabelValues("active").Inc()
	return c.JSON(http.StatusOK, identityResponse{
		ID:       s.UserID,
		Username: s.Username,
		Email:    s.Email,
	})
}
