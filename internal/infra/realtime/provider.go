package realtime

import (
	"context"
	"log/slog"

	"pawtrack/config"
	"pawtrack/internal/domain/constants"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"go.uber.org/fx"
)

// HubParams holds dependencies for the Hub, injected by Fx
type HubParams struct {
	fx.In

	Config  *config.Config
	Metrics service.MetricsRecorder
	Logger  *slog.Logger
}

// NewLocalHub creates the hub that owns this instance's sessions
func NewLocalHub(params HubParams) *Hub {
	return NewHub(params.Config.Realtime, params.Metrics, params.Logger)
}

// BroadcasterParams holds dependencies for the Broadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Hub    *Hub
	Logger *slog.Logger
}

// NewBroadcaster selects local or Redis fan-out from configuration
func NewBroadcaster(params BroadcasterParams) (service.Broadcaster, error) {
	cfg := params.Config.Realtime
	logger := params.Logger

	var broadcaster service.Broadcaster
	switch provider := providerOf(cfg); provider {
	case constants.RealtimeProviderLocal:
		logger.Info("Using local realtime hub")

		broadcaster = params.Hub

	case constants.RealtimeProviderRedis:
		relay, err := newRedisRelay(params.Ctx, cfg.Redis, params.Hub, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis realtime relay",
			slog.String("key_prefix", relay.prefix),
		)

		broadcaster = relay

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing realtime broadcaster")

			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}

func providerOf(cfg *config.RealtimeConfig) string {
	if cfg == nil || cfg.Provider == "" {
		return constants.RealtimeProviderLocal
	}

	return cfg.Provider
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocalHub, NewBroadcaster),
)
