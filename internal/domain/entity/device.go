// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the lifecycle state of a tracking device.
type DeviceStatus string

const (
	DeviceStatusActive      DeviceStatus = "active"
	DeviceStatusInactive    DeviceStatus = "inactive"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
)

// Device is a GPS tracker owned by a user.
type Device struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	DeviceID        string       `json:"device_id"` // Hardware-assigned identifier, unique across devices.
	SimNumber       string       `json:"sim_number,omitempty"`
	IMEI            string       `json:"imei,omitempty"`
	Name            string       `json:"name,omitempty"`
	Model           string       `json:"model,omitempty"`
	FirmwareVersion string       `json:"firmware_version,omitempty"`
	BatteryLevel    *int         `json:"battery_level,omitempty"`
	LastContact     *time.Time   `json:"last_contact,omitempty"` // Advanced by every accepted fix.
	Status          DeviceStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// DisplayName returns the user-assigned name, falling back to the hardware id.
func (d *Device) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}

	return d.DeviceID
}
