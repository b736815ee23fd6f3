package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawtrack/config"
	"pawtrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAlertEvent() *service.AlertPushEvent {
	return &service.AlertPushEvent{
		RequestID: "req-1",
		AlertID:   "4f1c2b1e-2a52-4d36-9a57-3f4e8c9b0a11",
		UserID:    "0c6c5e0b-8f63-4b0c-9a0e-7f7b7a6d5c4b",
		AlertType: "geofence_exit",
		Severity:  "high",
		Title:     "Geofence Exit Alert",
		Message:   "Pet exited geofence: Home",
	}
}

func TestWorkerPublisher_PublishAlertEvent(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewWorkerPublisher(server.URL, discardLogger())
	event := testAlertEvent()

	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, event.AlertID, got.Message.MessageID)
	assert.Equal(t, "geofence_exit", got.Message.Attributes["alert_type"])
	assert.Equal(t, event.UserID, got.Message.Attributes["user_id"])

	decoded, err := got.DecodeAlertEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestWorkerPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewWorkerPublisher(server.URL, discardLogger())

	err := publisher.PublishAlertEvent(context.Background(), testAlertEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEncodeAlert_AttributesOmitEmptyRequestID(t *testing.T) {
	event := testAlertEvent()
	event.RequestID = ""

	encoded, err := encodeAlert(event)
	require.NoError(t, err)

	assert.NotContains(t, encoded.attributes, "request_id")
	assert.Equal(t, "high", encoded.attributes["severity"])
}

func TestPushMessage_DecodeAlertEventRejectsGarbage(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"

	_, err := msg.DecodeAlertEvent()

	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:3002/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "alert-push"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestDisabledPublisher(t *testing.T) {
	publisher := &disabledPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishAlertEvent(context.Background(), testAlertEvent()))
	assert.NoError(t, publisher.Close())
}
