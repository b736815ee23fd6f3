package usecase

import (
	"context"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SweepResult summarises a health sweep.
type SweepResult struct {
	DevicesChecked int `json:"devices_checked"`
	AlertsCreated  int `json:"alerts_created"`
	Failures       int `json:"failures"`
}

// AlertUsecase covers reading alerts and the on-demand health checks.
type AlertUsecase interface {
	// ListAlerts lists a user's alerts, newest first.
	ListAlerts(ctx context.Context, userID uuid.UUID, filter entity.AlertFilter) ([]*entity.Alert, error)

	// CountUnread counts a user's unread alerts.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAsRead marks an alert of userID read. Marking an already read
	// alert succeeds without changing it.
	MarkAsRead(ctx context.Context, alertID, userID uuid.UUID) (*entity.Alert, error)

	// CheckDeviceStatus runs battery and offline checks over the user's active devices.
	CheckDeviceStatus(ctx context.Context, userID uuid.UUID) (*SweepResult, error)

	// CheckInactivity runs the user's inactivity rules over their active devices.
	CheckInactivity(ctx context.Context, userID uuid.UUID) (*SweepResult, error)

	// SweepAll runs both checks over every active device.
	SweepAll(ctx context.Context) (*SweepResult, error)
}
