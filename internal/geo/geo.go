// Package geo provides the distance and containment math used by geofence
// evaluation. Points are orb.Point values in (lng, lat) order.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371.0 * 1000

// DistanceMeters returns the great-circle distance between a and b.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := lat2 - lat1
	dLng := degToRad(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Rounding can push h marginally past 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsInsideCircle reports whether point lies within radiusMeters of center,
// boundary included. Non-finite coordinates or a non-positive radius yield false.
func IsInsideCircle(point, center orb.Point, radiusMeters float64) bool {
	if !finitePoint(point) || !finitePoint(center) {
		return false
	}
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return false
	}

	return DistanceMeters(point, center) <= radiusMeters
}

// ValidCoordinate reports whether lat/lng are finite and in range.
func ValidCoordinate(lat, lng float64) bool {
	if !finite(lat) || !finite(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidCircle reports whether a circle can take part in evaluation.
func ValidCircle(center orb.Point, radiusMeters float64) bool {
	return ValidCoordinate(center.Lat(), center.Lon()) && finite(radiusMeters) && radiusMeters > 0
}

func finitePoint(p orb.Point) bool {
	return finite(p.Lat()) && finite(p.Lon())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
