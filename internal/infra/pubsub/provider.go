// Package pubsub relays new alerts to the push worker, through Google Cloud
// Pub/Sub in production or a direct HTTP call in development.
package pubsub

import (
	"context"
	"log/slog"

	"pawtrack/config"
	"pawtrack/internal/domain/constants"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"go.uber.org/fx"
)

// disabledPublisher drops alerts when no relay is configured.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertPushEvent) error {
	p.logger.DebugContext(ctx, "Alert push disabled, skipping",
		slog.String("alert_id", event.AlertID),
		slog.String("alert_type", event.AlertType),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the relay named by pubsub.provider and closes it
// on shutdown. An empty provider disables pushes.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, alert pushes are disabled")

		return &disabledPublisher{logger: logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing alert publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Relaying alerts straight to the push worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewWorkerPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Relaying alerts through Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewTopicPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
