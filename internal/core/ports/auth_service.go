package ports

import (
	"context"

	"github.com/webdawg/futures-api/internal/core/domain"
)

// AuthService defines the account use-cases. Session issuance is deliberately
// not part of the service: credentials in, identity out, transport-free.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
