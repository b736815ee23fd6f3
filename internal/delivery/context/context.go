// Package context carries request-scoped values (request id, logger) from
// the delivery layer into usecases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed on every response and accepted on requests.
const HeaderXRequestID = "X-Request-Id"

type ctxKey uint8

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey is the echo.Context slot holding the request id.
const echoRequestIDKey = "request_id"

// SetRequestID stores the id on the echo context and on the request context
// so both handlers and downstream layers see the same value.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	req := c.Request()
	c.SetRequest(req.WithContext(WithRequestID(req.Context(), requestID)))
}

// GetRequestID returns the id assigned by the request id middleware, or the
// empty string when the request never passed through it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context carries none. Background work detached with context.WithoutCancel
// keeps the logger of the request that started it.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
