package middleware

import (
	"time"

	"pawtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics records request counts and latency per route template.
func HTTPMetrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the status before it is read.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			recorder.ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
