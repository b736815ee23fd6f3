package usecase

import (
	"context"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterPushTokenInput registers a phone for alert push notifications.
type RegisterPushTokenInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// PushTokenUsecase manages the phones that receive alert pushes.
type PushTokenUsecase interface {
	RegisterPushToken(ctx context.Context, userID uuid.UUID, input *RegisterPushTokenInput) (*entity.PushToken, error)
	UnregisterPushToken(ctx context.Context, userID, tokenID uuid.UUID) error
}
