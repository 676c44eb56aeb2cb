package ports

import (
	"context"

	"github.com/webdawg/futures-api/internal/core/domain"
)

// ApplicationService defines the tracked-application use-cases. The userID on
// every call comes from the authenticated session, never from the request
// body.
type ApplicationService interface {
	List(ctx context.Context, userID string) ([]domain.Application, error)
	Add(ctx context.Context, userID, jobID string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, userID, appID string, status domain.ApplicationStatus) (*domain.Application, error)
	UpdateNotes(ctx context.Context, userID, appID, notes string) (*domain.Application, error)
	Delete(ctx context.Context, userID, appID string) error
}
