// Package api serves the tracker HTTP API: device ingest, owner queries, alert
// management and the realtime websocket.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pawtrack/config"
	"pawtrack/internal/delivery"
	apimiddleware "pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/router"
	"pawtrack/internal/delivery/api/validator"
	"pawtrack/internal/delivery/middleware"
	"pawtrack/internal/domain/lifecycle"
	"pawtrack/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	httpCfg *config.HTTPConfig
	logger  *slog.Logger
	server  *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		httpCfg: params.Cfg.HTTP,
		logger:  params.Logger,
		server:  newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho wires the middleware chain. Request ids come first so every later
// stage logs with them, and the metrics stage renders errors itself so the
// status it records is the one the client sees.
func newEcho(params ServerParams) *echo.Echo {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		apimiddleware.HTTPMetrics(params.RouterParams.Metrics),
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the configured port.
func (s *apiServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.httpCfg.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{IdleTimeout: s.httpCfg.Timeouts.IdleTimeout}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "api server stopped")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
