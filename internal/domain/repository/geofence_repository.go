package repository

import (
	"context"

	"pawtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceRepository reads geofences. The engine never writes them.
type GeofenceRepository interface {
	// FindActiveByUser lists the active geofences owned by a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error)
}

// AlertRuleRepository reads alert rules. The engine never writes them.
type AlertRuleRepository interface {
	// FindActiveByUser lists the active rules owned by a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertRule, error)
}
