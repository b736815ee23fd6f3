package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// topicPublisher relays alert events through a Google Cloud Pub/Sub topic.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicID   string
	logger    *slog.Logger
}

// NewTopicPublisher connects to the project and fails fast when the topic is
// missing, since publishes to it would otherwise fail one alert at a time.
func NewTopicPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicName)
	}

	return &topicPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicID:   topicID,
		logger:    logger,
	}, nil
}

// PublishAlertEvent blocks until the server acknowledges the message.
func (p *topicPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertPushEvent) error {
	encoded, err := encodeAlert(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       encoded.data,
		Attributes: encoded.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish alert %s to %s", event.AlertID, p.topicID)
	}

	p.logger.DebugContext(ctx, "Alert published",
		slog.String("alert_id", event.AlertID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes before releasing the client.
func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
