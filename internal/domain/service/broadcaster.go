package service

import (
	"context"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Realtime event names delivered to live sessions.
const (
	EventLocationUpdate = "location_update"
	EventAlertNew       = "alert:new"
	EventUnreadCount    = "alert:unread_count"
	EventDeviceUpdate   = "device_update"
)

// RealtimeEvent is a message addressed to every live session of a user.
type RealtimeEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// UnreadCountPayload is the data of an alert:unread_count event.
type UnreadCountPayload struct {
	Count int64 `json:"count"`
}

// Broadcaster delivers realtime events at most once, best effort. A user with
// no live session is not an error.
type Broadcaster interface {
	// Publish delivers event to all live sessions of userID.
	Publish(ctx context.Context, userID uuid.UUID, event *RealtimeEvent) error

	// Close tears down every session and releases transport resources.
	Close() error
}

// LocationUpdatePayload is the data of a location_update event: the raw fix
// with the device and linked-pet snapshot.
type LocationUpdatePayload struct {
	*entity.LocationFix
	Device *entity.Device `json:"device"`
	Pet    *entity.Pet    `json:"pet,omitempty"`
}
