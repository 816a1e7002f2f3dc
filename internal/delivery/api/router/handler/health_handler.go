package handler

import (
	"net/http"

	"warranty/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
