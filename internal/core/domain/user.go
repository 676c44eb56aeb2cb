package domain

import (
	"errors"
	"time"
)

// User models a registered account. Accounts are append-only: no profile
// edits, no password changes, no deletion.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrMissingFields = errors.New("all fields must be filled out")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotLoggedIn = errors.New("not logged in")
var ErrUserExists = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
