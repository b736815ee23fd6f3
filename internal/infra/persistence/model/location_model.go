package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// Rows are append-only.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_device_recorded,priority:1"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	Altitude       *float64  `gorm:"type:decimal(8,2)"`
	Accuracy       *float64  `gorm:"type:decimal(8,2)"`
	Speed          *float64  `gorm:"type:decimal(6,2)"`
	Heading        *float64  `gorm:"type:decimal(5,2)"`
	SatelliteCount *int
	BatteryLevel   *int
	SignalStrength *int
	RecordedAt     time.Time `gorm:"not null;index:idx_locations_device_recorded,priority:2"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
