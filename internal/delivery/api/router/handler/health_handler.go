package handler

import (
	"net/http"

	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// MetricsHandler exposes the recorder's registry in the Prometheus text format
func MetricsHandler(recorder *metrics.Recorder) echo.HandlerFunc {
	return echo.WrapHandler(recorder.Handler())
}
