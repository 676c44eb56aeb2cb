package ports

import (
	"context"

	"github.com/webdawg/futures-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Implementations must enforce email uniqueness at the storage layer;
// a duplicate insert races cleanly into domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
