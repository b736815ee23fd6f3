package postgres

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// CreateAlert appends an alert to the ledger.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindLatestByDeviceAndType returns the newest alert of a type for a device.
func (repo *alertRepository) FindLatestByDeviceAndType(ctx context.Context, deviceID uuid.UUID, alertType entity.AlertType) (*entity.Alert, error) {
	query := repo.db.WithContext(ctx).
		Where("device_id = ? AND alert_type = ?", deviceID, string(alertType))

	return repo.findLatest(query, "failed to find latest alert")
}

// FindLatestTransition returns the newest entry or exit alert for the pair.
func (repo *alertRepository) FindLatestTransition(ctx context.Context, deviceID, geofenceID uuid.UUID) (*entity.Alert, error) {
	query := repo.db.WithContext(ctx).
		Where("device_id = ? AND geofence_id = ?", deviceID, geofenceID).
		Where("alert_type IN ?", []string{string(entity.AlertTypeGeofenceEntry), string(entity.AlertTypeGeofenceExit)})

	return repo.findLatest(query, "failed to find latest geofence transition")
}

func (repo *alertRepository) findLatest(query *gorm.DB, message string) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := query.Order("created_at DESC").First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, message)
	}

	return toAlertDomain(&alertM), nil
}

// FindByIDForUser retrieves an alert owned by userID. It reads the primary
// so a mark-as-read immediately observes its own write.
func (repo *alertRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND user_id = ?", id, userID).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	return toAlertDomain(&alertM), nil
}

// FindByUser lists a user's alerts, newest first.
func (repo *alertRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter entity.AlertFilter) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Order("created_at DESC").Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// MarkRead flips an unread alert. Rows already read are not touched so
// read_at keeps its first value.
func (repo *alertRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		})

	return errors.Wrap(result.Error, "failed to mark alert read")
}

// CountUnread counts a user's unread alerts on the primary.
func (repo *alertRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AlertModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread alerts")
	}

	return count, nil
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	return &entity.Alert{
		ID:         data.ID,
		UserID:     data.UserID,
		PetID:      data.PetID,
		DeviceID:   data.DeviceID,
		GeofenceID: data.GeofenceID,
		Type:       entity.AlertType(data.AlertType),
		Severity:   entity.Severity(data.Severity),
		Title:      data.Title,
		Message:    data.Message,
		IsRead:     data.IsRead,
		ReadAt:     data.ReadAt,
		Latitude:   data.LocationLatitude,
		Longitude:  data.LocationLongitude,
		Metadata:   data.Metadata,
		CreatedAt:  data.CreatedAt,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	return &model.AlertModel{
		ID:                data.ID,
		UserID:            data.UserID,
		PetID:             data.PetID,
		DeviceID:          data.DeviceID,
		GeofenceID:        data.GeofenceID,
		AlertType:         string(data.Type),
		Severity:          string(data.Severity),
		Title:             data.Title,
		Message:           data.Message,
		IsRead:            data.IsRead,
		ReadAt:            data.ReadAt,
		LocationLatitude:  data.Latitude,
		LocationLongitude: data.Longitude,
		Metadata:          data.Metadata,
		CreatedAt:         data.CreatedAt,
	}
}
