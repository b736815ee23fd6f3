package impl

import (
	"context"
	"strings"
	"time"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
)

type pushTokenService struct {
	pushTokenRepo repository.PushTokenRepository
	now           func() time.Time
}

// NewPushTokenService creates a new push token service instance
func NewPushTokenService(pushTokenRepo repository.PushTokenRepository) usecase.PushTokenUsecase {
	return &pushTokenService{
		pushTokenRepo: pushTokenRepo,
		now:           time.Now,
	}
}

// RegisterPushToken registers a phone or moves an existing FCM token to the caller
func (s *pushTokenService) RegisterPushToken(ctx context.Context, userID uuid.UUID, input *usecase.RegisterPushTokenInput) (*entity.PushToken, error) {
	if input == nil || strings.TrimSpace(input.FCMToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	now := s.now()
	token := &entity.PushToken{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  strings.TrimSpace(input.FCMToken),
		DeviceID:  input.DeviceID,
		Platform:  strings.ToLower(input.Platform),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pushTokenRepo.UpsertToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to register push token")
	}

	return token, nil
}

// UnregisterPushToken removes one of the caller's tokens
func (s *pushTokenService) UnregisterPushToken(ctx context.Context, userID, tokenID uuid.UUID) error {
	err := s.pushTokenRepo.DeleteToken(ctx, tokenID, userID)
	if errors.Is(err, repository.ErrPushTokenNotFound) {
		return domainerrors.ErrNotFound.WithDetails("push token not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to unregister push token")
	}

	return nil
}
