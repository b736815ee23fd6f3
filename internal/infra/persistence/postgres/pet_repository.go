package postgres

import (
	"context"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// FindByID retrieves a pet by id.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by ID")
	}

	return &entity.Pet{
		ID:        petM.ID,
		UserID:    petM.UserID,
		Name:      petM.Name,
		Species:   petM.Species,
		Breed:     petM.Breed,
		PhotoURL:  petM.PhotoURL,
		CreatedAt: petM.CreatedAt,
	}, nil
}

// petLinkRepository implements the repository.PetLinkRepository interface.
type petLinkRepository struct {
	db *gorm.DB
}

// NewPetLinkRepository is the constructor for petLinkRepository.
func NewPetLinkRepository(db *gorm.DB) repository.PetLinkRepository {
	return &petLinkRepository{db: db}
}

// FindActiveByDevice returns the single active link of a device.
func (repo *petLinkRepository) FindActiveByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.PetDeviceLink, error) {
	var linkM model.PetDeviceLinkModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND is_active = ?", deviceID, true).
		Order("linked_at DESC").
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find active pet link")
	}

	return toPetLinkDomain(&linkM), nil
}

// Link deactivates the current link of the device and activates a new one
// in the same transaction.
func (repo *petLinkRepository) Link(ctx context.Context, petID, deviceID uuid.UUID, at time.Time) (*entity.PetDeviceLink, error) {
	linkM := &model.PetDeviceLinkModel{
		ID:       uuid.New(),
		PetID:    petID,
		DeviceID: deviceID,
		LinkedAt: at,
		IsActive: true,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PetDeviceLinkModel{}).
			Where("device_id = ? AND is_active = ?", deviceID, true).
			Updates(map[string]any{
				"is_active":   false,
				"unlinked_at": at,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to deactivate previous pet link")
		}

		return errors.Wrap(tx.Create(linkM).Error, "failed to create pet link")
	})
	if err != nil {
		return nil, err
	}

	return toPetLinkDomain(linkM), nil
}

func toPetLinkDomain(data *model.PetDeviceLinkModel) *entity.PetDeviceLink {
	return &entity.PetDeviceLink{
		ID:         data.ID,
		PetID:      data.PetID,
		DeviceID:   data.DeviceID,
		LinkedAt:   data.LinkedAt,
		UnlinkedAt: data.UnlinkedAt,
		IsActive:   data.IsActive,
	}
}
