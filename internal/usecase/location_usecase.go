package usecase

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"

	"github.com/google/uuid"
)

// LocationFixInput is a position report submitted by a tracker.
type LocationFixInput struct {
	// DeviceIdentifier is either the durable device id or the hardware id.
	DeviceIdentifier string
	Latitude         float64
	Longitude        float64
	Altitude         *float64
	Accuracy         *float64
	Speed            *float64
	Heading          *float64
	SatelliteCount   *int
	BatteryLevel     *int
	SignalStrength   *int
	RecordedAt       *time.Time // defaults to the time of receipt
}

// LocationUsecase is the ingest entry point and the owner-scoped history reads.
type LocationUsecase interface {
	// HandleLocationFix persists a fix and schedules alerting and broadcast
	// for it. Alerting failures never surface here.
	HandleLocationFix(ctx context.Context, input *LocationFixInput) (*entity.LocationFix, error)

	// GetHistory lists fixes of a device owned by userID, newest first.
	GetHistory(ctx context.Context, userID, deviceID uuid.UUID, query repository.HistoryQuery) ([]*entity.LocationFix, error)

	// GetLatest returns the newest fix of a device owned by userID, or nil.
	GetLatest(ctx context.Context, userID, deviceID uuid.UUID) (*entity.LocationFix, error)
}
