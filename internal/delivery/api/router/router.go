// Package router registers the API routes.
package router

import (
	"warranty/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WarrantyHandler  *handler.WarrantyHandler
	ShareHandler     *handler.ShareHandler
	MigrationHandler *handler.MigrationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	warrantyHandler  *handler.WarrantyHandler
	shareHandler     *handler.ShareHandler
	migrationHandler *handler.MigrationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		warrantyHandler:  params.WarrantyHandler,
		shareHandler:     params.ShareHandler,
		migrationHandler: params.MigrationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	warrantiesGroup := apiV1.Group("/warranties")
	{
		warrantiesGroup.GET("", r.warrantyHandler.ListWarranties)
		warrantiesGroup.POST("", r.warrantyHandler.CreateWarranty)
		warrantiesGroup.GET("/:id", r.warrantyHandler.GetWarranty)
		warrantiesGroup.PUT("/:id", r.warrantyHandler.UpdateWarranty)
		warrantiesGroup.DELETE("/:id", r.warrantyHandler.DeleteWarranty)

		warrantiesGroup.POST("/:id/notify", r.shareHandler.Notify)
		warrantiesGroup.GET("/:id/share", r.shareHandler.PreviewShare)
		warrantiesGroup.GET("/:id/share/qr", r.shareHandler.ShareQR)
	}

	migrationsGroup := apiV1.Group("/migrations")
	{
		migrationsGroup.POST("/run", r.migrationHandler.RunMigration)
	}
}
