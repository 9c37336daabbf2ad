package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inquiro-ai/inquiro/pkg/database"
)

// healthHandler handles GET /health. Reports database connectivity and,
// when this process runs workers, the pool state.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	body := map[string]interface{}{"status": "healthy"}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["worker_pool"] = poolHealth
		if !poolHealth.IsHealthy {
			body["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	return c.JSON(status, body)
}
