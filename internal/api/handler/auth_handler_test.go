package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/session"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager("test-secret", "sess", false, time.Hour)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return m
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "alice@x.edu" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: "u1", Username: username, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub, newSessions(t))

	c, rec := postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@x.edu","password":"secret1"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestAuthHandler_Signup_MissingField(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, newSessions(t))

	c, _ := postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@x.edu"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errorsAs(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_DuplicateEmailPropagates(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, newSessions(t))

	c, _ := postJSON(e, "/auth/signup", `{"username":"bob","email":"bob@x.edu","password":"pw"}`)
	if err := h.Signup(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice", Email: "alice@x.edu"}, nil
		},
	}
	sessions := newSessions(t)
	h := NewAuthHandler(stub, sessions)

	c, rec := postJSON(e, "/auth/login", `{"email":"alice@x.edu","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "u1" || resp["username"] != "alice" || resp["email"] != "alice@x.edu" {
		t.Fatalf("unexpected identity payload: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	// The issued cookie must read back as the logged-in identity.
	req := httptest.NewRequest(http.MethodGet, "/auth/check-session", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec2 := httptest.NewRecorder()
	if err := h.CheckSession(e.NewContext(req, rec2)); err != nil {
		t.Fatalf("check-session after login: %v", err)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec2.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, newSessions(t))

	c, _ := postJSON(e, "/auth/login", `{"email":"alice@x.edu","password":"bad"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	e := newAuthTestEcho()
	h := NewAuthHandler(&stubAuthService{}, newSessions(t))

	// No session at all: logout is still 200.
	c, rec := postJSON(e, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// And again.
	c2, rec2 := postJSON(e, "/auth/logout", "")
	if err := h.Logout(c2); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec2.Code)
	}
}

func TestAuthHandler_CheckSession_NoCookie(t *testing.T) {
	e := newAuthTestEcho()
	h := NewAuthHandler(&stubAuthService{}, newSessions(t))

	req := httptest.NewRequest(http.MethodGet, "/auth/check-session", nil)
	rec := httptest.NewRecorder()
	if err := h.CheckSession(e.NewContext(req, rec)); err != domain.ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

// TestAuthHandler_LoginLogoutLifecycle walks the full session lifecycle:
// login issues the identity, check-session reflects it, logout clears it, and
// nothing in between resurrects it.
func TestAuthHandler_LoginLogoutLifecycle(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice", Email: "alice@x.edu"}, nil
		},
	}
	sessions := newSessions(t)
	h := NewAuthHandler(stub, sessions)

	// Login.
	c, rec := postJSON(e, "/auth/login", `{"email":"alice@x.edu","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	loginCookies := rec.Result().Cookies()

	// Logout returns a superseding expired cookie.
	c2, rec2 := postJSON(e, "/auth/logout", "")
	for _, ck := range loginCookies {
		c2.Request().AddCookie(ck)
	}
	if err := h.Logout(c2); err != nil {
		t.Fatalf("logout: %v", err)
	}

	var cleared *http.Cookie
	for _, ck := range rec2.Result().Cookies() {
		if ck.Name == "sess" {
			cleared = ck
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Fatalf("expected logout to expire the session cookie, got %+v", cleared)
	}

	// A client honouring the cleared cookie has no session.
	req := httptest.NewRequest(http.MethodGet, "/auth/check-session", nil)
	rec3 := httptest.NewRecorder()
	if err := h.CheckSession(e.NewContext(req, rec3)); err != domain.ErrNotLoggedIn {
		t.Fatalf("check-session after logout: expected ErrNotLoggedIn, got %v", err)
	}
}

// errorsAs is a tiny local alias to keep the assertions terse.
func errorsAs(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}
