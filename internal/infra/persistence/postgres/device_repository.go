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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new tracker for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	if device.Status == "" {
		device.Status = entity.DeviceStatusActive
	}
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its durable id.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find device by ID")
}

// FindByHardwareID retrieves a device by its hardware-assigned identifier.
func (repo *deviceRepository) FindByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("device_id = ?", hardwareID), "failed to find device by hardware ID")
}

// FindByIDForUser retrieves a device only if it belongs to userID.
func (repo *deviceRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID), "failed to find device for user")
}

// LockByID re-reads the device row with FOR UPDATE.
func (repo *deviceRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)

	return repo.findOne(ctx, query, "failed to lock device")
}

func (repo *deviceRepository) findOne(_ context.Context, query *gorm.DB, message string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := query.First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, message)
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByUser retrieves all devices of a user, newest first.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveAfter pages through active devices by id.
func (repo *deviceRepository) FindActiveAfter(ctx context.Context, after uuid.UUID, limit int) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND id > ?", string(entity.DeviceStatusActive), after).
		Order("id ASC").
		Limit(limit).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to page active devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// RecordContact advances last_contact without moving it backwards and
// stores the reported battery level.
func (repo *deviceRepository) RecordContact(ctx context.Context, id uuid.UUID, contactAt time.Time, battery *int) error {
	updates := map[string]any{
		"last_contact": gorm.Expr("CASE WHEN last_contact IS NULL OR last_contact < ? THEN ? ELSE last_contact END", contactAt, contactAt),
		"updated_at":   time.Now().UTC(),
	}
	if battery != nil {
		updates["battery_level"] = *battery
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record device contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomains(models []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		SimNumber:       data.SimNumber,
		IMEI:            data.IMEI,
		Name:            data.Name,
		Model:           data.Model,
		FirmwareVersion: data.FirmwareVersion,
		BatteryLevel:    data.BatteryLevel,
		LastContact:     data.LastContact,
		Status:          entity.DeviceStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		SimNumber:       data.SimNumber,
		IMEI:            data.IMEI,
		Name:            data.Name,
		Model:           data.Model,
		FirmwareVersion: data.FirmwareVersion,
		BatteryLevel:    data.BatteryLevel,
		LastContact:     data.LastContact,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
