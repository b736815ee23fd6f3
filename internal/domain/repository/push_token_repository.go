package repository

import (
	"context"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPushTokenNotFound is returned when a push token is not found.
var ErrPushTokenNotFound = errors.New("push token not found")

// PushTokenRepository stores FCM tokens of users' phones.
type PushTokenRepository interface {
	// UpsertToken registers a token, reactivating it or moving it to the
	// given user when the token already exists.
	UpsertToken(ctx context.Context, token *entity.PushToken) error

	// FindActiveByUsers lists active tokens of the given users.
	FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushToken, error)

	// DeactivateTokens marks the given FCM tokens inactive.
	DeactivateTokens(ctx context.Context, fcmTokens []string) (int64, error)

	// DeleteToken soft-deletes a user's token.
	DeleteToken(ctx context.Context, id, userID uuid.UUID) error
}
