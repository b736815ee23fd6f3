package usecase

import (
	"context"

	"pawtrack/internal/domain/service"
)

// PushResult summarises one alert push fan-out.
type PushResult struct {
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	InvalidTokens int `json:"invalid_tokens"`
}

// NotificationUsecase delivers alert pushes to the phones of the alert's owner.
type NotificationUsecase interface {
	// DeliverAlertPush sends the alert to every active push token of the
	// user and deactivates tokens the provider reports as invalid.
	// A malformed event fails with a validation error and must not be retried.
	DeliverAlertPush(ctx context.Context, event *service.AlertPushEvent) (*PushResult, error)
}
