package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

// createRunHandler handles POST /projects/:project_id/runs.
// Creates the run and enqueues its job. Replays of the same
// client_request_id return the existing run without enqueueing again.
func (s *Server) createRunHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	projectID := c.Param("project_id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id is required")
	}

	var req models.CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	r, created, err := s.runs.Create(ctx, tenant, projectID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if created {
		if _, err := s.jobs.Enqueue(ctx, tenant, r.ID); err != nil {
			return mapServiceError(err)
		}
		// Re-read so the snapshot reflects the queued status.
		if r, err = s.runs.Get(ctx, tenant, r.ID); err != nil {
			return mapServiceError(err)
		}
	}

	return c.JSON(http.StatusOK, toRunResponse(r))
}

// getRunHandler handles GET /runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	r, err := s.runs.Get(c.Request().Context(), tenant, runID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toRunResponse(r))
}

// cancelRunHandler handles POST /runs/:id/cancel. A queued run cancels on
// the spot; otherwise the flag is set here and the worker observes it at the
// next stage boundary. force_immediate skips the cooperative handoff.
// Terminal runs and repeated requests return OK.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	var req struct {
		ForceImmediate bool `json:"force_immediate"`
	}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid cancel request body")
		}
	}

	r, err := s.runs.RequestCancel(c.Request().Context(), tenant, runID, req.ForceImmediate)
	if err != nil {
		return mapServiceError(err)
	}

	// Interrupt in-flight LLM or connector calls when the run executes on
	// this pod. Other pods observe the flag at their next stage boundary.
	if s.pool != nil {
		s.pool.CancelRun(runID)
	}

	return c.JSON(http.StatusOK, toRunResponse(r))
}

// retryRunHandler handles POST /runs/:id/retry. Requeues a failed or
// blocked run and enqueues a fresh job.
func (s *Server) retryRunHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	ctx := c.Request().Context()
	r, err := s.runs.Retry(ctx, tenant, runID)
	if err != nil {
		return mapServiceError(err)
	}
	if _, err := s.jobs.Enqueue(ctx, tenant, runID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toRunResponse(r))
}
