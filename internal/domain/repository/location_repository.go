package repository

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryQuery bounds a location history read.
type HistoryQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// LocationRepository stores the append-only fix sequence of each device.
type LocationRepository interface {
	// CreateFix persists a new fix.
	CreateFix(ctx context.Context, fix *entity.LocationFix) error

	// FindPreviousFix returns the fix recorded immediately before the given
	// one for the same device, or nil when there is none.
	FindPreviousFix(ctx context.Context, current *entity.LocationFix) (*entity.LocationFix, error)

	// FindLatestFix returns the most recent fix of a device, or nil.
	FindLatestFix(ctx context.Context, deviceID uuid.UUID) (*entity.LocationFix, error)

	// FindHistory lists fixes of a device, newest first.
	FindHistory(ctx context.Context, deviceID uuid.UUID, query HistoryQuery) ([]*entity.LocationFix, error)
}
