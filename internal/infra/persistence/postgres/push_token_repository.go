package postgres

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{db: db}
}

// UpsertToken registers a token. A token seen before is reactivated and
// moved to the given user.
func (repo *pushTokenRepository) UpsertToken(ctx context.Context, token *entity.PushToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.IsActive = true
	tokenM := fromPushTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_id", "platform", "is_active", "updated_at", "deleted_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required push token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push token")
	}

	// Re-read so the caller sees the surviving row id after a conflict.
	var stored model.PushTokenModel
	if err := repo.db.WithContext(ctx).Where("fcm_token = ?", token.FCMToken).First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload push token")
	}
	*token = *toPushTokenDomain(&stored)

	return nil
}

// FindActiveByUsers lists active tokens of the given users.
func (repo *pushTokenRepository) FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var tokenModels []*model.PushTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeactivateTokens marks the given FCM tokens inactive.
func (repo *pushTokenRepository) DeactivateTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("fcm_token IN ?", fcmTokens).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate push tokens")
	}

	return result.RowsAffected, nil
}

// DeleteToken soft-deletes a user's token.
func (repo *pushTokenRepository) DeleteToken(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PushTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPushTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	return &entity.PushToken{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	return &model.PushTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
