package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	pushTokenRepo   repository.PushTokenRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	pushTokenRepo repository.PushTokenRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		pushTokenRepo:   pushTokenRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DeliverAlertPush sends one alert to the owner's phones in Firebase sized batches
func (s *notificationService) DeliverAlertPush(ctx context.Context, event *service.AlertPushEvent) (*usecase.PushResult, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing alert event")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}
	if _, err := uuid.Parse(event.AlertID); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid alert_id")
	}

	tokens, err := s.pushTokenRepo.FindActiveByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load push tokens")
	}

	result := &usecase.PushResult{}
	if len(tokens) == 0 {
		s.log(ctx).Info("no push tokens for alert owner", slog.String("alert_id", event.AlertID))

		return result, nil
	}

	fcmTokens := make([]string, 0, len(tokens))
	for _, token := range tokens {
		fcmTokens = append(fcmTokens, token.FCMToken)
	}

	notification := alertNotification(event)
	var invalidTokens []string

	for batch := range slices.Chunk(fcmTokens, service.MaxMulticastTokens) {
		report, err := s.notificationSvc.SendMulticast(ctx, batch, notification)
		if err != nil {
			// One failed batch does not stop the rest.
			s.log(ctx).Error("failed to send push batch",
				slog.String("alert_id", event.AlertID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += report.Sent
		result.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.pushTokenRepo.DeactivateTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("failed to deactivate invalid push tokens", slog.Any("error", err))
		}
		result.InvalidTokens = int(deactivated)
	}

	if result.Sent == 0 && result.Failed > 0 && len(invalidTokens) < result.Failed {
		return result, errors.Errorf("all %d pushes for alert %s failed", result.Failed, event.AlertID)
	}

	return result, nil
}

func alertNotification(event *service.AlertPushEvent) *service.PushNotification {
	return &service.PushNotification{
		Title:  event.Title,
		Body:   event.Message,
		Urgent: isUrgent(event.Severity),
		Data:   alertPushData(event),
	}
}

// isUrgent reports whether an alert should wake the phone.
func isUrgent(severity string) bool {
	switch entity.Severity(severity) {
	case entity.SeverityHigh, entity.SeverityCritical:
		return true
	default:
		return false
	}
}

func alertPushData(event *service.AlertPushEvent) map[string]string {
	data := map[string]string{
		"type":       "alert",
		"alert_id":   event.AlertID,
		"alert_type": event.AlertType,
		"severity":   event.Severity,
	}
	if event.DeviceID != "" {
		data["device_id"] = event.DeviceID
	}
	if event.PetID != "" {
		data["pet_id"] = event.PetID
	}

	return data
}
