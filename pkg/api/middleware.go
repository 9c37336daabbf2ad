package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requireTenant extracts the tenant from the X-Tenant-ID header. Every
// resource route is tenant-scoped; requests without the header are rejected.
func requireTenant(c *echo.Context) (string, error) {
	tenant := c.Request().Header.Get("X-Tenant-ID")
	if tenant == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "X-Tenant-ID header is required")
	}
	return tenant, nil
}
