package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/api/metrics"
	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
)

// JobHandler serves the read-only job catalog.
type JobHandler struct {
	catalog ports.JobCatalog
}

func NewJobHandler(catalog ports.JobCatalog) *JobHandler {
	return &JobHandler{catalog: catalog}
}

type jobListResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

// Search handles GET /jobs?q=&type=&location=.
//
// @Summary      Search the job catalog
// @Tags         jobs
// @Produce      json
// @Param        q         query     string  false  "Substring matched against title, company, description"
// @Param        type      query     string  false  "Job type filter (exact; 'all' disables)"
// @Param        location  query     string  false  "Location filter (substring; 'all' disables)"
// @Success      200       {object}  jobListResponse
// @Router       /jobs [get]
func (h *JobHandler) Search(c echo.Context) error {
	jobs := h.catalog.Search(c.QueryParam("q"), ports.JobFilters{
		Type:     c.QueryParam("type"),
		Location: c.QueryParam("location"),
	})

	metrics.JobSearchesTotal.Inc()
	return c.JSON(http.StatusOK, jobListResponse{Jobs: jobs})
}

// Get handles GET /jobs/:id. Absence renders 404; callers treat that as a
// valid not-found state.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.catalog.GetByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
