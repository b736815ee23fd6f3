package impl

import (
	"fmt"
	"math"
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// healthEvaluator decides device-health conditions from the device snapshot.
// It never consults the ledger; suppression belongs to the alert writer.
type healthEvaluator struct {
	lowBatteryPercent      int
	criticalBatteryPercent int
	offlineAfter           time.Duration
	defaultInactivity      int
	now                    func() time.Time
}

func newHealthEvaluator(cfg *config.AlertingConfig, now func() time.Time) *healthEvaluator {
	return &healthEvaluator{
		lowBatteryPercent:      cfg.LowBatteryPercent,
		criticalBatteryPercent: cfg.CriticalBatteryPercent,
		offlineAfter:           cfg.OfflineAfter,
		defaultInactivity:      cfg.DefaultInactivityMinutes,
		now:                    now,
	}
}

// EvaluateFix runs the rule-scoped checks after a fix was applied to the device.
func (e *healthEvaluator) EvaluateFix(device *entity.Device, petID *uuid.UUID, rules []*entity.AlertRule) []*entity.AlertCandidate {
	var candidates []*entity.AlertCandidate

	if threshold, ok := e.batteryThreshold(device, petID, rules); ok {
		candidates = appendCandidate(candidates, e.lowBattery(device, petID, threshold))
	}
	if threshold, ok := e.inactivityThreshold(device, petID, rules); ok {
		candidates = appendCandidate(candidates, e.inactivity(device, petID, threshold))
	}
	candidates = appendCandidate(candidates, e.offline(device, petID))

	return candidates
}

// EvaluateStatus runs the fixed battery and offline checks.
func (e *healthEvaluator) EvaluateStatus(device *entity.Device, petID *uuid.UUID) []*entity.AlertCandidate {
	var candidates []*entity.AlertCandidate
	candidates = appendCandidate(candidates, e.lowBattery(device, petID, e.lowBatteryPercent))
	candidates = appendCandidate(candidates, e.offline(device, petID))

	return candidates
}

// EvaluateInactivity runs the user's inactivity rules. A device that never
// reported yields the never-connected condition instead.
func (e *healthEvaluator) EvaluateInactivity(device *entity.Device, petID *uuid.UUID, rules []*entity.AlertRule) []*entity.AlertCandidate {
	threshold, ok := e.inactivityThreshold(device, petID, rules)
	if !ok {
		return nil
	}
	if device.LastContact == nil {
		return appendCandidate(nil, e.offline(device, petID))
	}

	return appendCandidate(nil, e.inactivity(device, petID, threshold))
}

func (e *healthEvaluator) lowBattery(device *entity.Device, petID *uuid.UUID, threshold int) *entity.AlertCandidate {
	if device.BatteryLevel == nil || *device.BatteryLevel > threshold {
		return nil
	}
	level := *device.BatteryLevel

	severity := entity.SeverityMedium
	if level <= e.criticalBatteryPercent {
		severity = entity.SeverityHigh
	}

	return &entity.AlertCandidate{
		UserID:   device.UserID,
		DeviceID: device.ID,
		PetID:    petID,
		Type:     entity.AlertTypeLowBattery,
		Severity: severity,
		Title:    "Low Battery Alert",
		Message:  fmt.Sprintf("Device %s battery is at %d%%", device.DisplayName(), level),
		Metadata: map[string]any{
			"batteryLevel":     level,
			"thresholdPercent": threshold,
		},
	}
}

func (e *healthEvaluator) offline(device *entity.Device, petID *uuid.UUID) *entity.AlertCandidate {
	if device.LastContact == nil {
		return &entity.AlertCandidate{
			UserID:   device.UserID,
			DeviceID: device.ID,
			PetID:    petID,
			Type:     entity.AlertTypeDeviceOffline,
			Severity: entity.SeverityHigh,
			Title:    "Device Never Connected",
			Message:  fmt.Sprintf("Device %s has never sent location data", device.DisplayName()),
			Metadata: map[string]any{"reason": "never_connected"},
		}
	}

	elapsed := e.now().Sub(*device.LastContact)
	if elapsed <= e.offlineAfter {
		return nil
	}
	minutes := roundMinutes(elapsed)

	return &entity.AlertCandidate{
		UserID:   device.UserID,
		DeviceID: device.ID,
		PetID:    petID,
		Type:     entity.AlertTypeDeviceOffline,
		Severity: entity.SeverityHigh,
		Title:    "Device Offline",
		Message:  fmt.Sprintf("Device %s has been offline for %d minutes", device.DisplayName(), minutes),
		Metadata: map[string]any{
			"reason":         "offline",
			"minutesOffline": minutes,
		},
	}
}

func (e *healthEvaluator) inactivity(device *entity.Device, petID *uuid.UUID, thresholdMinutes int) *entity.AlertCandidate {
	if device.LastContact == nil {
		return nil
	}

	elapsed := e.now().Sub(*device.LastContact)
	if elapsed <= time.Duration(thresholdMinutes)*time.Minute {
		return nil
	}
	minutes := roundMinutes(elapsed)

	return &entity.AlertCandidate{
		UserID:   device.UserID,
		DeviceID: device.ID,
		PetID:    petID,
		Type:     entity.AlertTypeInactivity,
		Severity: entity.SeverityMedium,
		Title:    "Device Inactivity Alert",
		Message:  fmt.Sprintf("Device %s has been inactive for %d minutes", device.DisplayName(), minutes),
		Metadata: map[string]any{
			"minutesInactive":  minutes,
			"thresholdMinutes": thresholdMinutes,
		},
	}
}

// batteryThreshold picks the most permissive threshold among matching
// battery rules so one candidate covers all of them.
func (e *healthEvaluator) batteryThreshold(device *entity.Device, petID *uuid.UUID, rules []*entity.AlertRule) (int, bool) {
	threshold, found := 0, false
	for _, rule := range rules {
		if rule.RuleType != entity.RuleTypeBattery || !rule.Matches(device.ID, petID) {
			continue
		}
		value := e.lowBatteryPercent
		if rule.Conditions.BatteryThresholdPercent != nil {
			value = *rule.Conditions.BatteryThresholdPercent
		}
		if !found || value > threshold {
			threshold, found = value, true
		}
	}

	return threshold, found
}

// inactivityThreshold picks the shortest threshold among matching inactivity rules.
func (e *healthEvaluator) inactivityThreshold(device *entity.Device, petID *uuid.UUID, rules []*entity.AlertRule) (int, bool) {
	threshold, found := 0, false
	for _, rule := range rules {
		if rule.RuleType != entity.RuleTypeInactivity || !rule.Matches(device.ID, petID) {
			continue
		}
		value := e.defaultInactivity
		if rule.Conditions.InactivityThresholdMinutes != nil && *rule.Conditions.InactivityThresholdMinutes > 0 {
			value = *rule.Conditions.InactivityThresholdMinutes
		}
		if !found || value < threshold {
			threshold, found = value, true
		}
	}

	return threshold, found
}

func appendCandidate(candidates []*entity.AlertCandidate, candidate *entity.AlertCandidate) []*entity.AlertCandidate {
	if candidate == nil {
		return candidates
	}

	return append(candidates, candidate)
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
