// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/router/handler"
	"pawtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	AlertHandler     *handler.AlertHandler
	PushTokenHandler *handler.PushTokenHandler
	RealtimeHandler  *handler.RealtimeHandler
	AuthMiddleware   *middleware.AuthMiddleware
	APIKeyMiddleware *middleware.APIKeyMiddleware
	Metrics          *metrics.Recorder
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	alertHandler     *handler.AlertHandler
	pushTokenHandler *handler.PushTokenHandler
	realtimeHandler  *handler.RealtimeHandler
	authMiddleware   *middleware.AuthMiddleware
	apiKeyMiddleware *middleware.APIKeyMiddleware
	metrics          *metrics.Recorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		alertHandler:     params.AlertHandler,
		pushTokenHandler: params.PushTokenHandler,
		realtimeHandler:  params.RealtimeHandler,
		authMiddleware:   params.AuthMiddleware,
		apiKeyMiddleware: params.APIKeyMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler(r.metrics))

	// Websocket sessions authenticate inside the handler so ?token= works.
	e.GET("/ws", r.realtimeHandler.Connect)

	apiV1 := e.Group("/api/v1")

	// Device ingest uses the shared device key instead of a session.
	apiV1.POST("/locations/ingest", r.locationHandler.Ingest, r.apiKeyMiddleware.Guard)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	locationsGroup := authed.Group("/locations/devices/:deviceId")
	{
		locationsGroup.GET("/history", r.locationHandler.GetHistory)
		locationsGroup.GET("/latest", r.locationHandler.GetLatest)
	}

	alertsGroup := authed.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.GET("/unread/count", r.alertHandler.CountUnread)
		alertsGroup.PATCH("/:id/read", r.alertHandler.MarkAsRead)
		alertsGroup.POST("/check-device-status", r.alertHandler.CheckDeviceStatus)
		alertsGroup.POST("/check-inactivity", r.alertHandler.CheckInactivity)
	}

	pushTokensGroup := authed.Group("/push-tokens")
	{
		pushTokensGroup.POST("", r.pushTokenHandler.RegisterPushToken)
		pushTokensGroup.DELETE("/:id", r.pushTokenHandler.UnregisterPushToken)
	}
}
