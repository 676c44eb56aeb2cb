package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webdawg/futures-api/internal/api/metrics"
	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
)

// ApplicationHandler serves the session-gated application CRUD. Every route
// behind it runs after RequireSession; the user id always comes from the
// session, never the payload.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type addApplicationRequest struct {
	JobID string `json:"job_id" validate:"required"`
}

// updateApplicationRequest is a partial update: status, notes, or both.
// Notes is a pointer so "clear my notes" (empty string) and "leave notes
// alone" (field absent) stay distinct.
type updateApplicationRequest struct {
	Status string  `json:"status,omitempty" validate:"omitempty,oneof=applied interview offer rejected"`
	Notes  *string `json:"notes,omitempty"`
}

type applicationListResponse struct {
	Applications []domain.Application `json:"applications"`
}

// List handles GET /applications.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  applicationListResponse
// @Failure      401  {object}  errorResponse
// @Router       /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationListResponse{Applications: apps})
}

// Add handles POST /applications.
//
// @Summary      Save a job as an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      addApplicationRequest  true  "Job reference"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Add(c.Request().Context(), userID, req.JobID)
	if err != nil {
		return err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// Update handles PATCH /applications/:id. At least one of status/notes must
// be present; each supplied field is applied through its own service
// operation.
//
// @Summary      Update an application's status and/or notes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      updateApplicationRequest  true  "Fields to update"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" && req.Notes == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	appID := c.Param("id")
	var app *domain.Application

	if req.Status != "" {
		app, err = h.service.UpdateStatus(c.Request().Context(), userID, appID, domain.ApplicationStatus(req.Status))
		if err != nil {
			return err
		}
		metrics.ApplicationMutationsTotal.WithLabelValues("status").Inc()
	}
	if req.Notes != nil {
		app, err = h.service.UpdateNotes(c.Request().Context(), userID, appID, *req.Notes)
		if err != nil {
			return err
		}
		metrics.ApplicationMutationsTotal.WithLabelValues("notes").Inc()
	}

	return c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /applications/:id. Deleting an already-deleted id is
// 404, not a silent no-op.
//
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.ApplicationMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "application deleted"})
}
