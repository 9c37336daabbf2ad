package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

// runEventsHandler handles GET /runs/:id/events, dispatching on Accept:
// text/event-stream gets the live SSE stream, everything else the JSON
// listing. Both honor ?after_id=; the stream also honors Last-Event-ID.
func (s *Server) runEventsHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	afterID := 0
	if v := c.QueryParam("after_id"); v != "" {
		afterID, err = strconv.Atoi(v)
		if err != nil || afterID < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "after_id must be a non-negative integer")
		}
	}

	ctx := c.Request().Context()

	// The run must exist before we commit to a long-lived stream.
	if _, err := s.runs.Get(ctx, tenant, runID); err != nil {
		return mapServiceError(err)
	}

	if strings.Contains(c.Request().Header.Get("Accept"), "text/event-stream") {
		if v := c.Request().Header.Get("Last-Event-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil && id > afterID {
				afterID = id
			}
		}
		return s.streamer.stream(c, tenant, runID, afterID)
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	evs, err := s.events.List(ctx, tenant, runID, afterID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	records := make([]models.EventRecord, len(evs))
	for i, ev := range evs {
		records[i] = services.ToRecord(ev)
	}
	return c.JSON(http.StatusOK, records)
}
