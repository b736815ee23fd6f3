package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType discriminates alerts in the ledger.
type AlertType string

const (
	AlertTypeGeofenceEntry AlertType = "geofence_entry"
	AlertTypeGeofenceExit  AlertType = "geofence_exit"
	AlertTypeLowBattery    AlertType = "low_battery"
	AlertTypeDeviceOffline AlertType = "device_offline"
	AlertTypeInactivity    AlertType = "inactivity"
	AlertTypeCustom        AlertType = "custom"
)

// HasCooldown reports whether repeats of the type are suppressed by time
// window rather than by a transition state machine.
func (t AlertType) HasCooldown() bool {
	switch t {
	case AlertTypeLowBattery, AlertTypeDeviceOffline, AlertTypeInactivity:
		return true
	default:
		return false
	}
}

// Severity of an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alert is an entry of the append-only alert ledger. Only the read state
// changes after creation.
type Alert struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	PetID      *uuid.UUID     `json:"pet_id,omitempty"`
	DeviceID   *uuid.UUID     `json:"device_id,omitempty"`
	GeofenceID *uuid.UUID     `json:"geofence_id,omitempty"`
	Type       AlertType      `json:"alert_type"`
	Severity   Severity       `json:"severity"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	IsRead     bool           `json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	Latitude   *float64       `json:"location_latitude,omitempty"`
	Longitude  *float64       `json:"location_longitude,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AlertCandidate is a proposed alert produced by an evaluator. The writer
// decides whether it becomes an Alert.
type AlertCandidate struct {
	UserID     uuid.UUID
	DeviceID   uuid.UUID
	PetID      *uuid.UUID
	GeofenceID *uuid.UUID
	Type       AlertType
	Severity   Severity
	Title      string
	Message    string
	Latitude   *float64
	Longitude  *float64
	Metadata   map[string]any
}

// AlertFilter narrows alert listings.
type AlertFilter struct {
	IsRead *bool
	Limit  int
	Offset int
}
