package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// It represents a user's phone registered for alert push notifications.
type PushTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;uniqueIndex"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}

// AllModels lists every persistence model, in dependency order, for
// migrations.
func AllModels() []any {
	return []any{
		&DeviceModel{},
		&PetModel{},
		&PetDeviceLinkModel{},
		&LocationModel{},
		&GeofenceModel{},
		&AlertRuleModel{},
		&AlertModel{},
		&PushTokenModel{},
	}
}
