package repository

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert does not exist for the requesting user.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository is the alert ledger.
type AlertRepository interface {
	// CreateAlert appends an alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindLatestByDeviceAndType returns the newest alert of the type for the
	// device, or nil when there is none.
	FindLatestByDeviceAndType(ctx context.Context, deviceID uuid.UUID, alertType entity.AlertType) (*entity.Alert, error)

	// FindLatestTransition returns the newest geofence_entry or geofence_exit
	// alert for the (device, geofence) pair, or nil.
	FindLatestTransition(ctx context.Context, deviceID, geofenceID uuid.UUID) (*entity.Alert, error)

	// FindByIDForUser retrieves an alert owned by userID, or ErrAlertNotFound.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error)

	// FindByUser lists a user's alerts, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.AlertFilter) ([]*entity.Alert, error)

	// MarkRead sets is_read and read_at on an unread alert. Already read
	// alerts are left untouched.
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error

	// CountUnread counts a user's unread alerts.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
