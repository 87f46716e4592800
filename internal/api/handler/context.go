package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a route reaching a
// handler without it is a wiring bug and gets a 401, not a panic.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required.")
	}
	return id, nil
}
