package entity

import (
	"time"

	"github.com/google/uuid"
)

// RuleType discriminates alert rules.
type RuleType string

const (
	RuleTypeGeofence   RuleType = "geofence"
	RuleTypeBattery    RuleType = "battery"
	RuleTypeInactivity RuleType = "inactivity"
	RuleTypeCustom     RuleType = "custom"
)

// RuleConditions is the condition payload of a rule. Unset fields fall back
// to the engine defaults.
type RuleConditions struct {
	BatteryThresholdPercent    *int `json:"batteryThresholdPercent,omitempty"`
	InactivityThresholdMinutes *int `json:"inactivityThresholdMinutes,omitempty"`
}

// AlertRule is a user-configured trigger for condition alerts.
type AlertRule struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	PetID      *uuid.UUID     `json:"pet_id,omitempty"`
	DeviceID   *uuid.UUID     `json:"device_id,omitempty"`
	RuleType   RuleType       `json:"rule_type"`
	Name       string         `json:"name"`
	IsActive   bool           `json:"is_active"`
	Conditions RuleConditions `json:"conditions"`
	Actions    map[string]any `json:"actions,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Matches reports whether the rule's optional pet and device scopes admit the
// given device and its linked pet.
func (r *AlertRule) Matches(deviceID uuid.UUID, petID *uuid.UUID) bool {
	if !r.IsActive {
		return false
	}
	if r.DeviceID != nil && *r.DeviceID != deviceID {
		return false
	}
	if r.PetID != nil && (petID == nil || *r.PetID != *petID) {
		return false
	}

	return true
}
