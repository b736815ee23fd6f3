package main

import (
	"context"
	"log/slog"
	"os"

	"pawtrack/config"
	"pawtrack/internal/delivery"
	"pawtrack/internal/delivery/api"
	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/router/handler"
	"pawtrack/internal/delivery/scheduler"
	"pawtrack/internal/infra/auth"
	logs "pawtrack/internal/infra/log"
	"pawtrack/internal/infra/metrics"
	"pawtrack/internal/infra/persistence/postgres"
	"pawtrack/internal/infra/pubsub"
	"pawtrack/internal/infra/realtime"
	"pawtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewPetRepository,
			postgres.NewPetLinkRepository,
			postgres.NewGeofenceRepository,
			postgres.NewAlertRuleRepository,
			postgres.NewAlertRepository,
			postgres.NewPushTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
		),
		realtime.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewAlertService,
			impl.NewPushTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewAPIKeyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewAlertHandler,
			handler.NewPushTokenHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
