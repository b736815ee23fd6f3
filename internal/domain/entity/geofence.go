package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeofenceType discriminates the geofence shape.
type GeofenceType string

const (
	GeofenceTypeCircle  GeofenceType = "circle"
	GeofenceTypePolygon GeofenceType = "polygon"
)

// Geofence is a user-defined area. Only circles are evaluated against fixes.
type Geofence struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	PetID           *uuid.UUID   `json:"pet_id,omitempty"` // nil applies to every pet of the user
	Name            string       `json:"name"`
	Type            GeofenceType `json:"type"`
	CenterLatitude  *float64     `json:"center_latitude,omitempty"`
	CenterLongitude *float64     `json:"center_longitude,omitempty"`
	RadiusMeters    *float64     `json:"radius_meters,omitempty"`
	Polygon         orb.Ring     `json:"polygon_coordinates,omitempty"`
	IsActive        bool         `json:"is_active"`
	AlertOnEntry    bool         `json:"alert_on_entry"`
	AlertOnExit     bool         `json:"alert_on_exit"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// AppliesTo reports whether the geofence is evaluated for a fix of userID's
// device currently linked to petID (nil when unlinked).
func (g *Geofence) AppliesTo(userID uuid.UUID, petID *uuid.UUID) bool {
	if !g.IsActive || g.UserID != userID {
		return false
	}
	if g.PetID == nil {
		return true
	}

	return petID != nil && *g.PetID == *petID
}

// Circle returns the center and radius. ok is false when any circle
// parameter is missing.
func (g *Geofence) Circle() (center orb.Point, radiusMeters float64, ok bool) {
	if g.CenterLatitude == nil || g.CenterLongitude == nil || g.RadiusMeters == nil {
		return orb.Point{}, 0, false
	}

	return orb.Point{*g.CenterLongitude, *g.CenterLatitude}, *g.RadiusMeters, true
}
