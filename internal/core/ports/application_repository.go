package ports

import (
	"context"

	"github.com/webdawg/futures-api/internal/core/domain"
)

// ApplicationRepository persists per-user application sets. Every operation
// is scoped by userID in the storage filter itself: an application belonging
// to another user is indistinguishable from one that does not exist.
type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
	Insert(ctx context.Context, app *domain.Application) (*domain.Application, error)
	UpdateStatus(ctx context.Context, userID, appID string, status domain.ApplicationStatus) (*domain.Application, error)
	UpdateNotes(ctx context.Context, userID, appID, notes string) (*domain.Application, error)
	Delete(ctx context.Context, userID, appID string) error
}

// ApplicationCache is a short-lived read-through cache of a user's
// application list. All methods are best-effort: implementations return
// errors for observability, but callers treat every failure as a miss.
type ApplicationCache interface {
	Get(ctx context.Context, userID string) ([]domain.Application, bool, error)
	Set(ctx context.Context, userID string, apps []domain.Application) error
	Invalidate(ctx context.Context, userID string) error
}
