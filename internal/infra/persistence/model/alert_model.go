package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
// The ledger lookups filter by device and type and sort by created_at.
type AlertModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID         `gorm:"type:uuid;not null;index:idx_alerts_user_read,priority:1"`
	PetID             *uuid.UUID        `gorm:"type:uuid"`
	DeviceID          *uuid.UUID        `gorm:"type:uuid;index:idx_alerts_device_type_created,priority:1"`
	GeofenceID        *uuid.UUID        `gorm:"type:uuid"`
	AlertType         string            `gorm:"type:varchar(30);not null;index:idx_alerts_device_type_created,priority:2"`
	Severity          string            `gorm:"type:varchar(20);not null;default:'medium'"`
	Title             string            `gorm:"type:varchar(200);not null"`
	Message           string            `gorm:"type:text;not null"`
	IsRead            bool              `gorm:"not null;default:false;index:idx_alerts_user_read,priority:2"`
	ReadAt            *time.Time
	LocationLatitude  *float64          `gorm:"type:decimal(10,8)"`
	LocationLongitude *float64          `gorm:"type:decimal(11,8)"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt         time.Time         `gorm:"index:idx_alerts_device_type_created,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
