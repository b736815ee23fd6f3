package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet is the animal a device is attached to. Only the fields needed for
// location snapshots are carried.
type Pet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species,omitempty"`
	Breed     string    `json:"breed,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PetDeviceLink joins a pet and a device over an activation window. A device
// has at most one active link at any instant.
type PetDeviceLink struct {
	ID         uuid.UUID  `json:"id"`
	PetID      uuid.UUID  `json:"pet_id"`
	DeviceID   uuid.UUID  `json:"device_id"`
	LinkedAt   time.Time  `json:"linked_at"`
	UnlinkedAt *time.Time `json:"unlinked_at,omitempty"`
	IsActive   bool       `json:"is_active"`
}
