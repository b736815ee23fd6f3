package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationFix is a single position report. It is never modified after creation.
type LocationFix struct {
	ID             uuid.UUID `json:"id"`
	DeviceID       uuid.UUID `json:"device_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Altitude       *float64  `json:"altitude,omitempty"`
	Accuracy       *float64  `json:"accuracy,omitempty"`
	Speed          *float64  `json:"speed,omitempty"`
	Heading        *float64  `json:"heading,omitempty"`
	SatelliteCount *int      `json:"satellite_count,omitempty"`
	BatteryLevel   *int      `json:"battery_level,omitempty"`
	SignalStrength *int      `json:"signal_strength,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Point returns the fix as an orb point (lng, lat order).
func (l *LocationFix) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
