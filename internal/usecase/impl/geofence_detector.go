package impl

import (
	"context"
	"fmt"
	"math"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"
	"pawtrack/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// fenceState is the last known containment of a device for one geofence.
type fenceState int

const (
	fenceUnknown fenceState = iota
	fenceInside
	fenceOutside
)

// geofenceDetector turns a fix into entry/exit candidates. The state of each
// (device, geofence) pair is inferred from the alert ledger, with the
// previous fix standing in for single-direction geofences.
type geofenceDetector struct{}

func newGeofenceDetector() *geofenceDetector {
	return &geofenceDetector{}
}

// detectInput groups what the detector reads for one fix.
type detectInput struct {
	device    *entity.Device
	petID     *uuid.UUID
	fix       *entity.LocationFix
	geofences []*entity.Geofence
	alerts    repository.AlertRepository
	locations repository.LocationRepository
}

// Detect evaluates every applicable circle geofence against the fix. The
// ledger and fix history must already reflect all earlier fixes and none of
// the current fix's alerts.
func (d *geofenceDetector) Detect(ctx context.Context, in *detectInput) ([]*entity.AlertCandidate, error) {
	var candidates []*entity.AlertCandidate
	previous := &previousFix{locations: in.locations, current: in.fix}

	for _, fence := range in.geofences {
		if fence.Type != entity.GeofenceTypeCircle || !fence.AppliesTo(in.device.UserID, in.petID) {
			continue
		}
		if !fence.AlertOnEntry && !fence.AlertOnExit {
			continue
		}
		center, radius, ok := fence.Circle()
		if !ok || !geo.ValidCircle(center, radius) {
			continue
		}

		inside := geo.IsInsideCircle(in.fix.Point(), center, radius)

		last, err := d.lastKnownState(ctx, in, fence, center, radius, previous)
		if err != nil {
			return nil, err
		}

		switch {
		case fence.AlertOnExit && !inside && last == fenceInside:
			candidates = append(candidates, transitionCandidate(in, fence, center, radius, entity.AlertTypeGeofenceExit))
		case fence.AlertOnEntry && inside && last != fenceInside:
			candidates = append(candidates, transitionCandidate(in, fence, center, radius, entity.AlertTypeGeofenceEntry))
		}
	}

	return candidates, nil
}

// lastKnownState reads the newest transition alert when the ledger records
// both directions for this geofence; an empty ledger means the device was
// never inside. A geofence alerting on a single direction cannot remember the
// other one, so the previous fix decides instead.
func (d *geofenceDetector) lastKnownState(ctx context.Context, in *detectInput, fence *entity.Geofence, center orb.Point, radius float64, previous *previousFix) (fenceState, error) {
	if fence.AlertOnEntry && fence.AlertOnExit {
		latest, err := in.alerts.FindLatestTransition(ctx, in.device.ID, fence.ID)
		if err != nil {
			return fenceUnknown, errors.Wrap(err, "failed to read last geofence transition")
		}
		switch {
		case latest == nil:
			return fenceUnknown, nil
		case latest.Type == entity.AlertTypeGeofenceEntry:
			return fenceInside, nil
		default:
			return fenceOutside, nil
		}
	}

	fix, err := previous.get(ctx)
	if err != nil {
		return fenceUnknown, err
	}
	if fix == nil {
		return fenceUnknown, nil
	}
	if geo.IsInsideCircle(fix.Point(), center, radius) {
		return fenceInside, nil
	}

	return fenceOutside, nil
}

func transitionCandidate(in *detectInput, fence *entity.Geofence, center orb.Point, radius float64, alertType entity.AlertType) *entity.AlertCandidate {
	lat, lng := in.fix.Latitude, in.fix.Longitude
	fenceID := fence.ID
	distance := geo.DistanceMeters(in.fix.Point(), center)

	candidate := &entity.AlertCandidate{
		UserID:     in.device.UserID,
		DeviceID:   in.device.ID,
		PetID:      in.petID,
		GeofenceID: &fenceID,
		Type:       alertType,
		Latitude:   &lat,
		Longitude:  &lng,
		Metadata: map[string]any{
			"geofenceName":   fence.Name,
			"distanceMeters": math.Round(distance*10) / 10,
			"radiusMeters":   radius,
			"locationId":     in.fix.ID.String(),
		},
	}

	if alertType == entity.AlertTypeGeofenceExit {
		candidate.Severity = entity.SeverityHigh
		candidate.Title = "Geofence Exit Alert"
		candidate.Message = fmt.Sprintf("Pet exited geofence: %s", fence.Name)
	} else {
		candidate.Severity = entity.SeverityMedium
		candidate.Title = "Geofence Entry Alert"
		candidate.Message = fmt.Sprintf("Pet entered geofence: %s", fence.Name)
	}

	return candidate
}

// previousFix loads the fix preceding the current one at most once per Detect.
type previousFix struct {
	locations repository.LocationRepository
	current   *entity.LocationFix
	loaded    bool
	fix       *entity.LocationFix
}

func (p *previousFix) get(ctx context.Context) (*entity.LocationFix, error) {
	if p.loaded {
		return p.fix, nil
	}

	fix, err := p.locations.FindPreviousFix(ctx, p.current)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read previous fix")
	}
	p.fix, p.loaded = fix, true

	return fix, nil
}
