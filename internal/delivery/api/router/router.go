// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"conecta/config"
	"conecta/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProviderHandler  *handler.ProviderHandler
	ReviewHandler    *handler.ReviewHandler
	MapHandler       *handler.MapHandler
	AssistantHandler *handler.AssistantHandler
	HealthHandler    *handler.HealthHandler
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	providerHandler  *handler.ProviderHandler
	reviewHandler    *handler.ReviewHandler
	mapHandler       *handler.MapHandler
	assistantHandler *handler.AssistantHandler
	healthHandler    *handler.HealthHandler
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		providerHandler:  params.ProviderHandler,
		reviewHandler:    params.ReviewHandler,
		mapHandler:       params.MapHandler,
		assistantHandler: params.AssistantHandler,
		healthHandler:    params.HealthHandler,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Provider directory
	providersGroup := e.Group("/proveedores")
	{
		providersGroup.POST("", r.providerHandler.CreateProvider)
		providersGroup.GET("", r.providerHandler.ListProviders)
		providersGroup.GET("/:id", r.providerHandler.GetProvider)
		providersGroup.PUT("/:id", r.providerHandler.UpdateProvider)
		providersGroup.PATCH("/:id", r.providerHandler.UpdateProvider)
		providersGroup.DELETE("/:id", r.providerHandler.DeleteProvider)

		// Reviews nested under their provider
		providersGroup.POST("/:id/resenas", r.reviewHandler.CreateReview)
		providersGroup.GET("/:id/resenas", r.reviewHandler.ListReviews)
	}

	e.DELETE("/resenas/:id", r.reviewHandler.DeleteReview)

	// Map projections
	mapGroup := e.Group("/mapa")
	{
		mapGroup.GET("/proveedores", r.mapHandler.ProvidersForMap)
		mapGroup.GET("/proveedores.geojson", r.mapHandler.ProvidersForMapGeoJSON)
	}

	// Trip assistant
	e.POST("/asistente/recomendaciones", r.assistantHandler.Recommend)
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
}
