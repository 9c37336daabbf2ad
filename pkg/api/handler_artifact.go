package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listArtifactsHandler handles GET /runs/:id/artifacts.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	ctx := c.Request().Context()
	if _, err := s.runs.Get(ctx, tenant, runID); err != nil {
		return mapServiceError(err)
	}

	artifacts, err := s.artifacts.ListByRun(ctx, tenant, runID)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*ArtifactResponse, len(artifacts))
	for i, a := range artifacts {
		out[i] = toArtifactResponse(a)
	}
	return c.JSON(http.StatusOK, out)
}
