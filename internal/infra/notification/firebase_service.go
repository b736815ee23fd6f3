// Package notification sends alert pushes to phones through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService builds an FCM client from a service account file.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func checkMulticastSize(tokens []string) error {
	if len(tokens) > service.MaxMulticastTokens {
		return errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	return nil
}

// SendMulticast sends one notification and collects the tokens FCM rejected
// as unregistered or malformed.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.MulticastReport, error) {
	if len(tokens) == 0 {
		return &service.MulticastReport{}, nil
	}
	if err := checkMulticastSize(tokens); err != nil {
		return nil, err
	}

	resp, err := s.client.SendEachForMulticast(ctx, multicastMessage(tokens, notification))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.MulticastReport{Sent: resp.SuccessCount, Failed: resp.FailureCount}
	for idx, sendResponse := range resp.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])
		}
	}

	return report, nil
}

func multicastMessage(tokens []string, notification *service.PushNotification) *messaging.MulticastMessage {
	androidPriority, apnsPriority := "normal", "5"
	if notification.Urgent {
		androidPriority, apnsPriority = "high", "10"
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data:    notification.Data,
		Android: &messaging.AndroidConfig{Priority: androidPriority},
		APNS:    &messaging.APNSConfig{Headers: map[string]string{"apns-priority": apnsPriority}},
	}
}

// dryRunService logs pushes instead of sending them. It stands in for FCM
// when no credentials are configured.
type dryRunService struct {
	logger *slog.Logger
}

func NewDryRunService(logger *slog.Logger) service.NotificationService {
	return &dryRunService{logger: logger}
}

func (s *dryRunService) SendMulticast(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.MulticastReport, error) {
	if err := checkMulticastSize(tokens); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "[DryRunPush] Multicast",
		slog.String("title", notification.Title),
		slog.String("alert_id", notification.Data["alert_id"]),
		slog.Bool("urgent", notification.Urgent),
		slog.Int("tokens", len(tokens)),
	)

	return &service.MulticastReport{Sent: len(tokens)}, nil
}
