package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/alert-push"
	localPublishTimeout = 30 * time.Second
)

// workerPublisher POSTs alert events straight to the push worker in the
// envelope a push subscription uses, so the worker runs unchanged locally.
type workerPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewWorkerPublisher delivers to the push worker at endpoint.
func NewWorkerPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &workerPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

// PublishAlertEvent succeeds only when the worker acknowledges with a 2xx.
func (p *workerPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertPushEvent) error {
	encoded, err := encodeAlert(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(encoded.pushEnvelope(localSubscription, event.AlertID, p.now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to reach push worker at %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push worker answered %d for alert %s", resp.StatusCode, event.AlertID)
	}

	p.logger.DebugContext(ctx, "Alert handed to push worker", slog.String("alert_id", event.AlertID))

	return nil
}

func (p *workerPublisher) Close() error {
	return nil
}
