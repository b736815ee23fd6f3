package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RuleConditionsJSON mirrors the jsonb condition payload of an alert rule.
type RuleConditionsJSON struct {
	BatteryThresholdPercent    *int `json:"batteryThresholdPercent,omitempty"`
	InactivityThresholdMinutes *int `json:"inactivityThresholdMinutes,omitempty"`
}

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
type GeofenceModel struct {
	ID                 uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID                    `gorm:"type:uuid;not null;index"`
	PetID              *uuid.UUID                   `gorm:"type:uuid;index"`
	Name               string                       `gorm:"type:varchar(100);not null"`
	Type               string                       `gorm:"type:varchar(20);not null;default:'circle'"`
	CenterLatitude     *float64                     `gorm:"type:decimal(10,8)"`
	CenterLongitude    *float64                     `gorm:"type:decimal(11,8)"`
	RadiusMeters       *float64                     `gorm:"type:decimal(10,2)"`
	PolygonCoordinates datatypes.JSONType[orb.Ring] `gorm:"type:jsonb"`
	IsActive           bool                         `gorm:"not null;default:true"`
	AlertOnEntry       bool                         `gorm:"not null;default:false"`
	AlertOnExit        bool                         `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

// AlertRuleModel is the GORM-specific struct for the 'alert_rules' table.
type AlertRuleModel struct {
	ID         uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID                              `gorm:"type:uuid;not null;index"`
	PetID      *uuid.UUID                             `gorm:"type:uuid"`
	DeviceID   *uuid.UUID                             `gorm:"type:uuid"`
	RuleType   string                                 `gorm:"type:varchar(20);not null"`
	Name       string                                 `gorm:"type:varchar(100);not null"`
	IsActive   bool                                   `gorm:"not null;default:true"`
	Conditions datatypes.JSONType[RuleConditionsJSON] `gorm:"type:jsonb"`
	Actions    datatypes.JSONMap                      `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertRuleModel) TableName() string {
	return "alert_rules"
}
