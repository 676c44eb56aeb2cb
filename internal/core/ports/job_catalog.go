package ports

import "github.com/webdawg/futures-api/internal/core/domain"

// JobFilters narrows a catalog search. Empty values and the sentinel "all"
// both mean "do not filter on this field".
type JobFilters struct {
	Type     string
	Location string
}

// JobCatalog is the read-only collection of postings. Search results preserve
// the catalog's natural order; no ranking is applied.
type JobCatalog interface {
	Search(query string, filters JobFilters) []domain.Job
	GetByID(id string) (*domain.Job, error)
}
