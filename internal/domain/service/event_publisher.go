package service

import (
	"context"
)

// AlertPushEvent asks the push worker to notify a user's phones about a new alert.
type AlertPushEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string `json:"alert_id"`
	UserID    string `json:"user_id"`
	DeviceID  string `json:"device_id,omitempty"`
	PetID     string `json:"pet_id,omitempty"`
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert for asynchronous push delivery
	PublishAlertEvent(ctx context.Context, event *AlertPushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
