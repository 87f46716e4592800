package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/metrics"
	"github.com/ims-platform/inventory-system/internal/core/token"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxRoleID   = "role_id"
	CtxRoleName = "role_name"
)

// Auth validates the bearer token and injects its claims into the request
// context. Missing header, malformed token, bad signature, and expiry all
// produce the same 401 so clients cannot probe which check failed.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AccessDeniedTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AccessDeniedTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				metrics.AccessDeniedTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRoleID, claims.RoleID)
			c.Set(CtxRoleName, claims.RoleName)

			return next(c)
		}
	}
}
