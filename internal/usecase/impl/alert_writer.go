package impl

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
)

// alertWriter applies cooldown suppression and appends the surviving
// candidates to the ledger. It must run inside the transaction that holds
// the device lock so concurrent fixes observe each other's alerts.
type alertWriter struct {
	cooldown time.Duration
	metrics  service.MetricsRecorder
	now      func() time.Time
}

func newAlertWriter(cooldown time.Duration, metrics service.MetricsRecorder, now func() time.Time) *alertWriter {
	return &alertWriter{
		cooldown: cooldown,
		metrics:  metrics,
		now:      now,
	}
}

// Write persists candidates in order and returns the alerts created.
func (w *alertWriter) Write(ctx context.Context, alerts repository.AlertRepository, candidates []*entity.AlertCandidate) ([]*entity.Alert, error) {
	created := make([]*entity.Alert, 0, len(candidates))

	for _, candidate := range candidates {
		suppressed, err := w.suppressed(ctx, alerts, candidate)
		if err != nil {
			return nil, err
		}
		if suppressed {
			w.metrics.AlertSuppressed(string(candidate.Type))

			continue
		}

		alert := w.newAlert(candidate)
		if err := alerts.CreateAlert(ctx, alert); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s alert", candidate.Type)
		}
		created = append(created, alert)
	}

	return created, nil
}

// suppressed reports whether an alert of the same type for the same device
// was created within the cooldown window.
func (w *alertWriter) suppressed(ctx context.Context, alerts repository.AlertRepository, candidate *entity.AlertCandidate) (bool, error) {
	if !candidate.Type.HasCooldown() {
		return false, nil
	}

	latest, err := alerts.FindLatestByDeviceAndType(ctx, candidate.DeviceID, candidate.Type)
	if err != nil {
		return false, errors.Wrap(err, "failed to read latest alert")
	}
	if latest == nil {
		return false, nil
	}

	return w.now().Sub(latest.CreatedAt) <= w.cooldown, nil
}

func (w *alertWriter) newAlert(candidate *entity.AlertCandidate) *entity.Alert {
	deviceID := candidate.DeviceID
	severity := candidate.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}

	return &entity.Alert{
		ID:         uuid.New(),
		UserID:     candidate.UserID,
		PetID:      candidate.PetID,
		DeviceID:   &deviceID,
		GeofenceID: candidate.GeofenceID,
		Type:       candidate.Type,
		Severity:   severity,
		Title:      candidate.Title,
		Message:    candidate.Message,
		Latitude:   candidate.Latitude,
		Longitude:  candidate.Longitude,
		Metadata:   candidate.Metadata,
		CreatedAt:  w.now(),
	}
}
