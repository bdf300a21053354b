// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campusradar/internal/delivery/api/router/handler"
	"campusradar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProximityHandler *handler.ProximityHandler
	Metrics          *metrics.Recorder `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	proximityHandler *handler.ProximityHandler
	metrics          *metrics.Recorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		proximityHandler: params.ProximityHandler,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if registry := r.metrics.Registry(); registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	apiV1 := e.Group("/v1")

	// Proximity searches
	proximityGroup := apiV1.Group("/proximity")
	{
		proximityGroup.GET("/users/closest", r.proximityHandler.ClosestUser)
		proximityGroup.GET("/users/nearby", r.proximityHandler.NearbyUsers)
		proximityGroup.GET("/products/closest", r.proximityHandler.ClosestProduct)
		proximityGroup.GET("/products/nearby", r.proximityHandler.NearbyProducts)
		proximityGroup.DELETE("/cache", r.proximityHandler.ResetCache)
	}

	apiV1.GET("/users/:id/location", r.proximityHandler.UserLocation)
	apiV1.POST("/products/:id/interactions", r.proximityHandler.RecordInteraction)
}
