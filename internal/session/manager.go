// Package session implements the client-held session token: a single
// HttpOnly cookie carrying the identity fields, sealed with
// XChaCha20-Poly1305 under a server-held secret. The server keeps no session
// table; rotating the secret is the sole revocation lever and invalidates
// every outstanding token at once.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/chacha20poly1305"
)

// DefaultCookieName matches the reference deployment's cookie.
const DefaultCookieName = "WebDawgFutures-session-cookie"

const defaultTTL = 7 * 24 * time.Hour

// Session is the identity record carried in the sealed token.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	LoggedIn bool   `json:"is_logged_in"`
}

// payload is the sealed wire form: the session plus its expiry.
type payload struct {
	Session
	ExpiresAt int64 `json:"exp"`
}

// Manager issues, reads, and clears session cookies.
type Manager struct {
	key        [chacha20poly1305.KeySize]byte
	cookieName string
	secure     bool
	ttl        time.Duration
}

// NewManager derives the sealing key from secret via SHA-256. secure controls
// the cookie's Secure attribute and should be true in production-equivalent
// environments. A non-positive ttl falls back to one week.
func NewManager(secret, cookieName string, secure bool, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session: secret must not be empty")
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	m := &Manager{cookieName: cookieName, secure: secure, ttl: ttl}
	m.key = sha256.Sum256([]byte(secret))
	return m, nil
}

// Issue seals s into a fresh cookie on the response. The previous token, if
// any, is simply superseded.
func (m *Manager) Issue(c echo.Context, s Session) error {
	token, err := m.seal(payload{Session: s, ExpiresAt: time.Now().Add(m.ttl).Unix()})
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session carried by the request. A missing cookie, a token
// that fails to decode or decrypt, an expired payload, and a payload without
// the logged-in flag are all uniformly (zero, false), never an error.
// Reading does not mutate session state.
func (m *Manager) Read(c echo.Context) (Session, bool) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}

	p, err := m.open(cookie.Value)
	if err != nil {
		return Session{}, false
	}
	if p.ExpiresAt <= time.Now().Unix() || !p.LoggedIn {
		return Session{}, false
	}
	return p.Session, true
}

// Clear destroys the session cookie. Idempotent: clearing an absent session
// is not an error.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// seal encrypts p as base64url(nonce || ciphertext).
func (m *Manager) seal(p payload) (string, error) {
	aead, err := chacha20poly1305.NewX(m.key[:])
	if err != nil {
		return "", err
	}

	plain, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, plain, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (m *Manager) open(token string) (payload, error) {
	var p payload

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return p, err
	}

	aead, err := chacha20poly1305.NewX(m.key[:])
	if err != nil {
		return p, err
	}
	if len(raw) < aead.NonceSize() {
		return p, errors.New("session: token too short")
	}

	plain, err := aead.Open(nil, raw[:aead.NonceSize()], raw[aead.NonceSize():], nil)
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(plain, &p); err != nil {
		return p, err
	}
	return p, nil
}
