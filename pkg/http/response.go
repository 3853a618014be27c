package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with HTTP 200. Indicator
// endpoints return their record shape directly, no envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
