package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/infrastructure/catalog"
)

type stubAppRepo struct {
	apps   map[string]*domain.Application
	nextID int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) ListByUser(_ context.Context, userID string) ([]domain.Application, error) {
	out := make([]domain.Application, 0)
	for i := 1; i <= r.nextID; i++ {
		if a, ok := r.apps[strconv.Itoa(i)]; ok && a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAppRepo) Insert(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.UserID == app.UserID && a.JobID == app.JobID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	r.nextID++
	created := *app
	created.ID = strconv.Itoa(r.nextID)
	r.apps[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, userID, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	a, ok := r.apps[appID]
	if !ok || a.UserID != userID {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	out := *a
	return &out, nil
}

func (r *stubAppRepo) UpdateNotes(_ context.Context, userID, appID, notes string) (*domain.Application, error) {
	a, ok := r.apps[appID]
	if !ok || a.UserID != userID {
		return nil, domain.ErrApplicationNotFound
	}
	a.Notes = notes
	out := *a
	return &out, nil
}

func (r *stubAppRepo) Delete(_ context.Context, userID, appID string) error {
	a, ok := r.apps[appID]
	if !ok || a.UserID != userID {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, appID)
	return nil
}

type recordingCache struct {
	entries     map[string][]domain.Application
	invalidated int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]domain.Application)}
}

func (c *recordingCache) Get(_ context.Context, userID string) ([]domain.Application, bool, error) {
	apps, ok := c.entries[userID]
	return apps, ok, nil
}

func (c *recordingCache) Set(_ context.Context, userID string, apps []domain.Application) error {
	c.entries[userID] = apps
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, userID string) error {
	c.invalidated++
	delete(c.entries, userID)
	return nil
}

func newTestAppService() (*ApplicationService, *stubAppRepo, *recordingCache) {
	repo := newStubAppRepo()
	cache := newRecordingCache()
	svc := NewApplicationService(repo, catalog.New(), cache, zerolog.Nop())
	return svc, repo, cache
}

func TestApplicationService_Add(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, err := svc.Add(context.Background(), "u1", "1")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if app.Status != domain.StatusApplied {
		t.Fatalf("expected status applied, got %s", app.Status)
	}
	if app.JobID != "1" || app.Job.ID != "1" || app.Job.Title == "" {
		t.Fatalf("expected embedded job snapshot, got %+v", app.Job)
	}
	if app.Notes != "" {
		t.Fatalf("expected no notes on a fresh application")
	}
	if len(app.AppliedDate) != len("2006-01-02") {
		t.Fatalf("expected date-only applied date, got %q", app.AppliedDate)
	}
}

func TestApplicationService_Add_Duplicate(t *testing.T) {
	svc, _, _ := newTestAppService()

	if _, err := svc.Add(context.Background(), "u1", "1"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := svc.Add(context.Background(), "u1", "1"); err != domain.ErrAlreadyApplied {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	// A different user applying to the same job is fine.
	if _, err := svc.Add(context.Background(), "u2", "1"); err != nil {
		t.Fatalf("other user's add failed: %v", err)
	}
}

func TestApplicationService_Add_UnknownJob(t *testing.T) {
	svc, _, _ := newTestAppService()

	if _, err := svc.Add(context.Background(), "u1", "nope"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_RoundTrips(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, err := svc.Add(context.Background(), "u1", "2")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, status := range []domain.ApplicationStatus{
		domain.StatusInterview, domain.StatusOffer, domain.StatusRejected, domain.StatusApplied,
	} {
		updated, err := svc.UpdateStatus(context.Background(), "u1", app.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) failed: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %s, got %s", status, updated.Status)
		}

		listed, err := svc.List(context.Background(), "u1")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(listed) != 1 || listed[0].Status != status {
			t.Fatalf("read-after-write mismatch: %+v", listed)
		}
	}
}

func TestApplicationService_UpdateStatus_Invalid(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, _ := svc.Add(context.Background(), "u1", "3")
	if _, err := svc.UpdateStatus(context.Background(), "u1", app.ID, "ghosted"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_Unknown(t *testing.T) {
	svc, _, _ := newTestAppService()

	if _, err := svc.UpdateStatus(context.Background(), "u1", "404", domain.StatusOffer); err != domain.ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_UpdateNotes(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, _ := svc.Add(context.Background(), "u1", "4")

	updated, err := svc.UpdateNotes(context.Background(), "u1", app.ID, "phone screen Friday")
	if err != nil {
		t.Fatalf("UpdateNotes failed: %v", err)
	}
	if updated.Notes != "phone screen Friday" {
		t.Fatalf("notes not replaced verbatim: %q", updated.Notes)
	}

	// Empty string clears the notes.
	updated, err = svc.UpdateNotes(context.Background(), "u1", app.ID, "")
	if err != nil {
		t.Fatalf("UpdateNotes(\"\") failed: %v", err)
	}
	if updated.Notes != "" {
		t.Fatalf("expected notes cleared, got %q", updated.Notes)
	}
}

func TestApplicationService_Delete_TwiceFails(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, _ := svc.Add(context.Background(), "u1", "5")
	if err := svc.Delete(context.Background(), "u1", app.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", app.ID); err != domain.ErrApplicationNotFound {
		t.Fatalf("second delete: expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_ScopedPerUser(t *testing.T) {
	svc, _, _ := newTestAppService()

	app, _ := svc.Add(context.Background(), "u1", "6")

	// Another user cannot see, mutate, or delete u1's application.
	if listed, _ := svc.List(context.Background(), "u2"); len(listed) != 0 {
		t.Fatalf("expected empty list for u2, got %d", len(listed))
	}
	if _, err := svc.UpdateStatus(context.Background(), "u2", app.ID, domain.StatusOffer); err != domain.ErrApplicationNotFound {
		t.Fatalf("foreign update: expected ErrApplicationNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", app.ID); err != domain.ErrApplicationNotFound {
		t.Fatalf("foreign delete: expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_List_UsesAndInvalidatesCache(t *testing.T) {
	svc, repo, cache := newTestAppService()

	if _, err := svc.Add(context.Background(), "u1", "1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	invalidatedAfterAdd := cache.invalidated
	if invalidatedAfterAdd == 0 {
		t.Fatalf("expected add to invalidate the cache")
	}

	// First list populates the cache.
	first, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, ok := cache.entries["u1"]; !ok {
		t.Fatalf("expected list to populate the cache")
	}

	// Second list is served from cache even when the repo changes behind it.
	repo.apps = map[string]*domain.Application{}
	second, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached read, got %d items", len(second))
	}
}
