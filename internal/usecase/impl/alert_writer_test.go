package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/service"
	mockRepo "pawtrack/internal/mocks/repository"
	mockSvc "pawtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAlertWriter_CooldownBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	writer := newAlertWriter(time.Hour, nopMetrics{}, func() time.Time { return now })
	deviceID := uuid.New()

	tests := []struct {
		name    string
		age     time.Duration
		created bool
	}{
		{name: "inside window", age: 30 * time.Minute},
		{name: "exactly one hour", age: time.Hour},
		{name: "one second past", age: time.Hour + time.Second, created: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alertRepo := mockRepo.NewMockAlertRepository(t)
			ctx := context.Background()

			alertRepo.EXPECT().
				FindLatestByDeviceAndType(ctx, deviceID, entity.AlertTypeLowBattery).
				Return(&entity.Alert{ID: uuid.New(), CreatedAt: now.Add(-tt.age)}, nil)
			if tt.created {
				alertRepo.EXPECT().CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil).Once()
			}

			created, err := writer.Write(ctx, alertRepo, []*entity.AlertCandidate{
				{DeviceID: deviceID, Type: entity.AlertTypeLowBattery, Severity: entity.SeverityHigh},
			})

			require.NoError(t, err)
			if !tt.created {
				assert.Empty(t, created)

				return
			}
			require.Len(t, created, 1)
			assert.Equal(t, entity.SeverityHigh, created[0].Severity)
			assert.Equal(t, now, created[0].CreatedAt)
		})
	}
}

func TestAlertWriter_TransitionsSkipCooldown(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	writer := newAlertWriter(time.Hour, nopMetrics{}, time.Now)
	ctx := context.Background()

	alertRepo.EXPECT().CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil).Twice()

	created, err := writer.Write(ctx, alertRepo, []*entity.AlertCandidate{
		{DeviceID: uuid.New(), Type: entity.AlertTypeGeofenceExit},
		{DeviceID: uuid.New(), Type: entity.AlertTypeGeofenceEntry},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, entity.SeverityMedium, created[1].Severity)
}

func TestAlertWriter_LedgerReadFailureStopsWrite(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	writer := newAlertWriter(time.Hour, nopMetrics{}, time.Now)
	ctx := context.Background()
	deviceID := uuid.New()

	alertRepo.EXPECT().
		FindLatestByDeviceAndType(ctx, deviceID, entity.AlertTypeDeviceOffline).
		Return(nil, errors.New("connection reset"))

	created, err := writer.Write(ctx, alertRepo, []*entity.AlertCandidate{
		{DeviceID: deviceID, Type: entity.AlertTypeDeviceOffline},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read latest alert")
	assert.Nil(t, created)
	alertRepo.AssertNotCalled(t, "CreateAlert", mock.Anything, mock.Anything)
}

func TestAlertNotifier_FanOutSurvivesBroadcastFailure(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	broadcaster := mockSvc.NewMockBroadcaster(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := &alertNotifier{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		alertRepo:   alertRepo,
		broadcaster: broadcaster,
		publisher:   publisher,
		metrics:     nopMetrics{},
	}
	ctx := context.Background()
	userID, deviceID := uuid.New(), uuid.New()
	alert := &entity.Alert{ID: uuid.New(), UserID: userID, DeviceID: &deviceID, Type: entity.AlertTypeGeofenceExit, Severity: entity.SeverityHigh}

	broadcaster.EXPECT().
		Publish(ctx, userID, mock.MatchedBy(func(event *service.RealtimeEvent) bool { return event.Event == service.EventAlertNew })).
		Return(errors.New("hub closed")).Once()
	alertRepo.EXPECT().CountUnread(ctx, userID).Return(4, nil).Once()
	broadcaster.EXPECT().
		Publish(ctx, userID, &service.RealtimeEvent{Event: service.EventUnreadCount, Data: service.UnreadCountPayload{Count: 4}}).
		Return(nil).Once()
	publisher.EXPECT().
		PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertPushEvent) bool {
			return event.AlertID == alert.ID.String() && event.DeviceID == deviceID.String() && event.PetID == ""
		})).
		Return(nil).Once()

	notifier.AlertsCreated(ctx, userID, []*entity.Alert{alert})
}

func TestAlertNotifier_NothingCreated(t *testing.T) {
	notifier := &alertNotifier{
		alertRepo:   mockRepo.NewMockAlertRepository(t),
		broadcaster: mockSvc.NewMockBroadcaster(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     nopMetrics{},
	}

	// Strict mocks fail the test on any call.
	notifier.AlertsCreated(context.Background(), uuid.New(), nil)
}
