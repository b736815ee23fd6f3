// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the hardware identifier is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository is the device side of the registry.
type DeviceRepository interface {
	// CreateDevice registers a tracker for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its durable id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByHardwareID retrieves a device by its hardware-assigned identifier.
	FindByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error)

	// FindByIDForUser retrieves a device only if it belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Device, error)

	// FindByUser lists the devices of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// FindActiveAfter pages through active devices ordered by id, starting
	// after the given id (uuid.Nil for the first page).
	FindActiveAfter(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Device, error)

	// LockByID re-reads the device holding a row lock until the surrounding
	// transaction ends. Outside a transaction it behaves like FindByID.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// RecordContact advances last_contact (never backwards) and, when battery
	// is non-nil, stores the reported battery level.
	RecordContact(ctx context.Context, id uuid.UUID, contactAt time.Time, battery *int) error
}
