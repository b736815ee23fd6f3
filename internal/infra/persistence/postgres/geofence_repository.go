package postgres

import (
	"context"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{db: db}
}

// FindActiveByUser lists the active geofences owned by a user.
func (repo *geofenceRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	return &entity.Geofence{
		ID:              data.ID,
		UserID:          data.UserID,
		PetID:           data.PetID,
		Name:            data.Name,
		Type:            entity.GeofenceType(data.Type),
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		Polygon:         data.PolygonCoordinates.Data(),
		IsActive:        data.IsActive,
		AlertOnEntry:    data.AlertOnEntry,
		AlertOnExit:     data.AlertOnExit,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// alertRuleRepository implements the repository.AlertRuleRepository interface.
type alertRuleRepository struct {
	db *gorm.DB
}

// NewAlertRuleRepository is the constructor for alertRuleRepository.
func NewAlertRuleRepository(db *gorm.DB) repository.AlertRuleRepository {
	return &alertRuleRepository{db: db}
}

// FindActiveByUser lists the active rules owned by a user.
func (repo *alertRuleRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertRule, error) {
	var ruleModels []*model.AlertRuleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alert rules")
	}

	rules := make([]*entity.AlertRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		conditions := ruleM.Conditions.Data()
		rules = append(rules, &entity.AlertRule{
			ID:       ruleM.ID,
			UserID:   ruleM.UserID,
			PetID:    ruleM.PetID,
			DeviceID: ruleM.DeviceID,
			RuleType: entity.RuleType(ruleM.RuleType),
			Name:     ruleM.Name,
			IsActive: ruleM.IsActive,
			Conditions: entity.RuleConditions{
				BatteryThresholdPercent:    conditions.BatteryThresholdPercent,
				InactivityThresholdMinutes: conditions.InactivityThresholdMinutes,
			},
			Actions:   ruleM.Actions,
			CreatedAt: ruleM.CreatedAt,
			UpdatedAt: ruleM.UpdatedAt,
		})
	}

	return rules, nil
}
