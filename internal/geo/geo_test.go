package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	kathmandu := orb.Point{85.3240, 27.7172}

	tests := []struct {
		name     string
		a        orb.Point
		b        orb.Point
		expected float64
		delta    float64
	}{
		{name: "same point", a: kathmandu, b: kathmandu, expected: 0, delta: 0},
		{name: "north by 0.0028 degrees", a: kathmandu, b: orb.Point{85.3240, 27.7200}, expected: 311.3, delta: 1},
		{name: "one degree of longitude on the equator", a: orb.Point{0, 0}, b: orb.Point{1, 0}, expected: 111194.9, delta: 1},
		{name: "antipodal", a: orb.Point{0, 0}, b: orb.Point{180, 0}, expected: math.Pi * EarthRadiusMeters, delta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, DistanceMeters(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{85.3240, 27.7172},
		{-122.4194, 37.7749},
		{151.2093, -33.8688},
		{0, 0},
		{-179.9, 89.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
		}
		assert.Zero(t, DistanceMeters(a, a))
	}
}

func TestIsInsideCircle(t *testing.T) {
	t.Parallel()

	center := orb.Point{85.3240, 27.7172}
	outside := orb.Point{85.3240, 27.7200}
	boundary := DistanceMeters(center, outside)

	tests := []struct {
		name     string
		point    orb.Point
		center   orb.Point
		radius   float64
		expected bool
	}{
		{name: "center", point: center, center: center, radius: 100, expected: true},
		{name: "exactly on the boundary", point: outside, center: center, radius: boundary, expected: true},
		{name: "just past the boundary", point: outside, center: center, radius: boundary - 1e-6, expected: false},
		{name: "outside", point: outside, center: center, radius: 100, expected: false},
		{name: "zero radius", point: center, center: center, radius: 0, expected: false},
		{name: "negative radius", point: center, center: center, radius: -5, expected: false},
		{name: "NaN radius", point: center, center: center, radius: math.NaN(), expected: false},
		{name: "NaN point", point: orb.Point{math.NaN(), 27.7}, center: center, radius: 100, expected: false},
		{name: "NaN center", point: center, center: orb.Point{85.3, math.NaN()}, radius: 100, expected: false},
		{name: "infinite radius", point: outside, center: center, radius: math.Inf(1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsInsideCircle(tt.point, tt.center, tt.radius))
		})
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCoordinate(27.7172, 85.3240))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.True(t, ValidCoordinate(90, 180))
	assert.False(t, ValidCoordinate(90.0001, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(-1)))
}

func TestValidCircle(t *testing.T) {
	t.Parallel()

	center := orb.Point{85.3240, 27.7172}

	assert.True(t, ValidCircle(center, 100))
	assert.False(t, ValidCircle(center, 0))
	assert.False(t, ValidCircle(center, math.NaN()))
	assert.False(t, ValidCircle(orb.Point{200, 27.7}, 100))
	assert.False(t, ValidCircle(orb.Point{math.NaN(), math.NaN()}, 100))
}
