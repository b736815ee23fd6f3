package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"
	domainerrors "pawtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "kept", raw: "req-123", want: "req-123"},
		{name: "trimmed", raw: "  req-123 ", want: "req-123"},
		{name: "too long", raw: strings.Repeat("a", maxRequestIDLength+1), want: ""},
		{name: "inner space", raw: "req 123", want: ""},
		{name: "control character", raw: "req\n123", want: ""},
		{name: "non ascii", raw: "請求", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeRequestID(tt.raw))
		})
	}
}

func TestRequestIDMiddleware_PropagatesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-abc", seen)
	assert.Equal(t, "req-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	m := NewLoggerMiddleware(logger, cfg)
	e := echo.New()

	serve := func(path string, h echo.HandlerFunc) error {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		c.SetPath(path)

		return m.Handle(h)(c)
	}

	require.NoError(t, serve("/api/v1/alerts", func(c echo.Context) error { return c.NoContent(http.StatusOK) }))
	assert.Empty(t, buf.String())

	err := serve("/api/v1/alerts", func(echo.Context) error { return domainerrors.ErrAlertNotFound })
	require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)

	buf.Reset()
	_ = serve("/health", func(echo.Context) error { return domainerrors.ErrInternalError })
	assert.Empty(t, buf.String())
}
