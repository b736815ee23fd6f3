package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
)

// PushMessage is the body Pub/Sub POSTs to a push subscription endpoint.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeAlertEvent extracts the alert event carried in the message data.
func (m *PushMessage) DecodeAlertEvent() (*service.AlertPushEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.AlertPushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse alert event")
	}

	return &event, nil
}

// encodedAlert is an alert event ready for either transport.
type encodedAlert struct {
	data       []byte
	attributes map[string]string
}

// encodeAlert serialises the event and derives the attributes that
// subscription filters and request tracing read.
func encodeAlert(event *service.AlertPushEvent) (*encodedAlert, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode alert %s", event.AlertID)
	}

	attributes := map[string]string{
		"alert_id":   event.AlertID,
		"user_id":    event.UserID,
		"alert_type": event.AlertType,
		"severity":   event.Severity,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedAlert{data: data, attributes: attributes}, nil
}

// pushEnvelope wraps an encoded alert the way a push subscription delivers it.
func (a *encodedAlert) pushEnvelope(subscription, messageID string, published time.Time) *PushMessage {
	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(a.data)
	msg.Message.Attributes = a.attributes
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = published.UTC().Format(time.RFC3339Nano)

	return msg
}
