// Package worker serves the alert push relay behind the Pub/Sub push subscription.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pawtrack/config"
	"pawtrack/internal/delivery"
	apimiddleware "pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/middleware"
	"pawtrack/internal/delivery/worker/handler"
	"pawtrack/internal/domain/lifecycle"
	"pawtrack/internal/errors"
	"pawtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	PushHandler *handler.PushHandler
}

// NewServer builds the push worker. It listens on worker.port so it can run
// beside the API on one host.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	if httpCfg := params.Cfg.HTTP; httpCfg != nil {
		e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
		e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	}

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		apimiddleware.HTTPMetrics(params.Metrics),
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting push worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "push worker stopped")
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
