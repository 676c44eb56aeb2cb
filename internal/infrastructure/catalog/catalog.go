// Package catalog provides the in-memory job catalog. Postings are fixed at
// process start and read-only for the life of the process; a real deployment
// would source them from an external feed.
package catalog

import (
	"strings"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
)

// filterAll is the sentinel filter value meaning "do not filter".
const filterAll = "all"

// Catalog implements ports.JobCatalog over a fixed slice of postings.
type Catalog struct {
	jobs []domain.Job
}

// New returns a catalog seeded with the built-in postings.
func New() *Catalog {
	return &Catalog{jobs: seedJobs}
}

// NewWithJobs returns a catalog over the given postings, in the given order.
func NewWithJobs(jobs []domain.Job) *Catalog {
	return &Catalog{jobs: jobs}
}

// Search returns postings matching the query and filters, preserving catalog
// order. The query is a case-insensitive substring match over title, company,
// and description; an empty query matches everything. Type matches exactly,
// location by substring; empty or "all" disables either filter. All
// predicates are ANDed.
func (c *Catalog) Search(query string, filters ports.JobFilters) []domain.Job {
	q := strings.ToLower(query)

	out := make([]domain.Job, 0, len(c.jobs))
	for _, job := range c.jobs {
		if q != "" &&
			!strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Company), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			continue
		}
		if t := filters.Type; t != "" && t != filterAll && string(job.Type) != t {
			continue
		}
		if l := filters.Location; l != "" && l != filterAll && !strings.Contains(job.Location, l) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// GetByID returns the posting with the given id, or domain.ErrJobNotFound.
// Absence is a valid outcome for callers, not an infrastructure failure.
func (c *Catalog) GetByID(id string) (*domain.Job, error) {
	for _, job := range c.jobs {
		if job.ID == id {
			j := job
			return &j, nil
		}
	}
	return nil, domain.ErrJobNotFound
}
