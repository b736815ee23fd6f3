package postgres

import (
	"context"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 100

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateFix appends a fix to the device's history.
func (repo *locationRepository) CreateFix(ctx context.Context, fix *entity.LocationFix) error {
	if fix.ID == uuid.Nil {
		fix.ID = uuid.New()
	}
	locationM := fromLocationDomain(fix)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	fix.CreatedAt = locationM.CreatedAt

	return nil
}

// FindPreviousFix returns the fix recorded right before current. Fixes with
// the same timestamp are ordered by creation time.
func (repo *locationRepository) FindPreviousFix(ctx context.Context, current *entity.LocationFix) (*entity.LocationFix, error) {
	var locationM model.LocationModel

	err := repo.db.WithContext(ctx).
		Where("device_id = ? AND id <> ?", current.DeviceID, current.ID).
		Where("recorded_at < ? OR (recorded_at = ? AND created_at < ?)", current.RecordedAt, current.RecordedAt, current.CreatedAt).
		Order("recorded_at DESC").
		Order("created_at DESC").
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find previous location")
	}

	return toLocationDomain(&locationM), nil
}

// FindLatestFix returns the newest fix of a device.
func (repo *locationRepository) FindLatestFix(ctx context.Context, deviceID uuid.UUID) (*entity.LocationFix, error) {
	var locationM model.LocationModel

	err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("recorded_at DESC").
		Order("created_at DESC").
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&locationM), nil
}

// FindHistory lists fixes of a device, newest first.
func (repo *locationRepository) FindHistory(ctx context.Context, deviceID uuid.UUID, query repository.HistoryQuery) ([]*entity.LocationFix, error) {
	var locationModels []*model.LocationModel

	db := repo.db.WithContext(ctx).Where("device_id = ?", deviceID)
	if query.From != nil {
		db = db.Where("recorded_at >= ?", *query.From)
	}
	if query.To != nil {
		db = db.Where("recorded_at <= ?", *query.To)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	if err := db.Order("recorded_at DESC").Limit(limit).Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	fixes := make([]*entity.LocationFix, 0, len(locationModels))
	for _, locationM := range locationModels {
		fixes = append(fixes, toLocationDomain(locationM))
	}

	return fixes, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.LocationFix {
	return &entity.LocationFix{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Altitude:       data.Altitude,
		Accuracy:       data.Accuracy,
		Speed:          data.Speed,
		Heading:        data.Heading,
		SatelliteCount: data.SatelliteCount,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		RecordedAt:     data.RecordedAt,
		CreatedAt:      data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.LocationFix) *model.LocationModel {
	return &model.LocationModel{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Altitude:       data.Altitude,
		Accuracy:       data.Accuracy,
		Speed:          data.Speed,
		Heading:        data.Heading,
		SatelliteCount: data.SatelliteCount,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		RecordedAt:     data.RecordedAt,
		CreatedAt:      data.CreatedAt,
	}
}
