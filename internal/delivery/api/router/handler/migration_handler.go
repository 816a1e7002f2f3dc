package handler

import (
	"net/http"

	"warranty/internal/delivery/api/response"
	"warranty/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MigrationHandler exposes the manual schema migration run
type MigrationHandler struct {
	migrationUC usecase.MigrationUsecase
}

// NewMigrationHandler is the constructor for MigrationHandler
func NewMigrationHandler(migrationUC usecase.MigrationUsecase) *MigrationHandler {
	return &MigrationHandler{migrationUC: migrationUC}
}

// RunMigration handles POST /migrations/run. Running it again is harmless.
func (h *MigrationHandler) RunMigration(c echo.Context) error {
	report, err := h.migrationUC.Run(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
