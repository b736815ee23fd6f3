package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushToken is a user's phone registered for alert push notifications.
type PushToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Client-side installation identifier.
	Platform  string    `json:"platform"`  // ios, android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
