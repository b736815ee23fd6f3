package notification

import (
	"context"
	"log/slog"

	"pawtrack/config"
	"pawtrack/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks FCM when credentials are configured
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase credentials not configured, pushes are only logged")

		return NewDryRunService(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
