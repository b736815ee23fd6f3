package repository

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for pets and links.
var (
	// ErrPetNotFound is returned when a pet is not found.
	ErrPetNotFound = errors.New("pet not found")
	// ErrPetLinkNotFound is returned when a device has no active pet link.
	ErrPetLinkNotFound = errors.New("active pet link not found")
)

// PetRepository reads pets for location snapshots.
type PetRepository interface {
	// FindByID retrieves a pet by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
}

// PetLinkRepository is the link side of the registry.
type PetLinkRepository interface {
	// FindActiveByDevice returns the single active link of a device, or
	// ErrPetLinkNotFound.
	FindActiveByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.PetDeviceLink, error)

	// Link activates a new pet link for the device, deactivating any prior
	// active link atomically.
	Link(ctx context.Context, petID, deviceID uuid.UUID, at time.Time) (*entity.PetDeviceLink, error)
}
