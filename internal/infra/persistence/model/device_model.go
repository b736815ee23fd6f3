package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a GPS tracker owned by a user.
type DeviceModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceID        string     `gorm:"column:device_id;type:varchar(100);not null;uniqueIndex"`
	SimNumber       string     `gorm:"type:varchar(50)"`
	IMEI            string     `gorm:"column:imei;type:varchar(50)"`
	Name            string     `gorm:"type:varchar(100)"`
	Model           string     `gorm:"type:varchar(100)"`
	FirmwareVersion string     `gorm:"type:varchar(50)"`
	BatteryLevel    *int       `gorm:"type:integer"`
	LastContact     *time.Time `gorm:"index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// PetModel is the GORM-specific struct for the 'pets' table.
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Species   string    `gorm:"type:varchar(50)"`
	Breed     string    `gorm:"type:varchar(100)"`
	PhotoURL  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// PetDeviceLinkModel is the GORM-specific struct for the 'pet_device_links' table.
// The partial unique index keeps a single active link per device.
type PetDeviceLinkModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pet_device_links_active,where:is_active = true"`
	LinkedAt   time.Time `gorm:"not null"`
	UnlinkedAt *time.Time
	IsActive   bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (PetDeviceLinkModel) TableName() string {
	return "pet_device_links"
}
