package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
)

// ApplicationService implements the per-user application set on top of the
// catalog, the mongo-backed repository, and a best-effort list cache.
type ApplicationService struct {
	repo    ports.ApplicationRepository
	catalog ports.JobCatalog
	cache   ports.ApplicationCache
	logger  zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, catalog ports.JobCatalog, cache ports.ApplicationCache, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, catalog: catalog, cache: cache, logger: logger}
}

// List returns the user's applications, read-through the cache. Cache
// failures are logged and treated as misses; the repository is the source of
// truth.
func (s *ApplicationService) List(ctx context.Context, userID string) ([]domain.Application, error) {
	if s.cache != nil {
		apps, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("application cache read failed")
		}
		if ok {
			return apps, nil
		}
	}

	apps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, apps); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("application cache write failed")
		}
	}
	return apps, nil
}

// Add saves a catalog job to the user's set. The job is snapshotted into the
// application at creation time. The unique (user_id, job_id) index backs the
// no-duplicate rule under concurrency.
func (s *ApplicationService) Add(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	job, err := s.catalog.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		UserID:      userID,
		JobID:       jobID,
		Job:         *job,
		Status:      domain.StatusApplied,
		AppliedDate: time.Now().UTC().Format("2006-01-02"),
	}

	created, err := s.repo.Insert(ctx, app)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	s.logger.Info().Str("user_id", userID).Str("job_id", jobID).Msg("application created")
	return created, nil
}

// UpdateStatus relabels an application. No transition restrictions: any
// status may move to any other.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, userID, appID, status)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

// UpdateNotes replaces notes verbatim; the empty string means "no notes".
func (s *ApplicationService) UpdateNotes(ctx context.Context, userID, appID, notes string) (*domain.Application, error) {
	updated, err := s.repo.UpdateNotes(ctx, userID, appID, notes)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

// Delete removes an application. A second delete of the same id is
// ErrApplicationNotFound, not a silent no-op.
func (s *ApplicationService) Delete(ctx context.Context, userID, appID string) error {
	if err := s.repo.Delete(ctx, userID, appID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *ApplicationService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("application cache invalidation failed")
	}
}
