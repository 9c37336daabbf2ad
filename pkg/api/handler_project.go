package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// CreateProjectRequest is the body for POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// createProjectHandler handles POST /projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	tenant, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name field is required")
	}

	p, err := s.projects.Create(c.Request().Context(), tenant, req.Name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(p))
}
