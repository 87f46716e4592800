package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/metrics"
)

// RBAC enforces role-based access control. Each route lists its allowed
// roles explicitly; there is no hierarchy, so a gate that should admit
// OWNER must name OWNER. A valid identity with a role outside the set gets
// 403, distinct from the 401 produced by Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRoleName).(string)
			if role == "" {
				metrics.AccessDeniedTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required.")
			}
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions.")
			}
			return next(c)
		}
	}
}
