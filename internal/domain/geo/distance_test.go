package geo

import (
	"math"
	"testing"

	"campusradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]entity.Coordinate{
		{entity.NewCoordinate(0, 0), entity.NewCoordinate(0, 0.001)},
		{entity.NewCoordinate(4.6097, -74.0817), entity.NewCoordinate(4.6027, -74.0659)},
		{entity.NewCoordinate(-33.8688, 151.2093), entity.NewCoordinate(51.5074, -0.1278)},
		{entity.NewCoordinate(89.9, 10), entity.NewCoordinate(-89.9, -170)},
	}

	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-6)
	}
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	points := []entity.Coordinate{
		entity.NewCoordinate(0, 0),
		entity.NewCoordinate(4.6097, -74.0817),
		entity.NewCoordinate(-90, 180),
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_NonNegativeAndTriangle(t *testing.T) {
	a := entity.NewCoordinate(4.6097, -74.0817)
	b := entity.NewCoordinate(4.6027, -74.0659)
	c := entity.NewCoordinate(4.6500, -74.1000)

	ab, bc, ac := Distance(a, b), Distance(b, c), Distance(a, c)

	assert.GreaterOrEqual(t, ab, 0.0)
	assert.GreaterOrEqual(t, bc, 0.0)
	assert.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestDistance_KnownValue(t *testing.T) {
	// 0.001 degrees of longitude on the equator is roughly 111 meters.
	d := Distance(entity.NewCoordinate(0, 0), entity.NewCoordinate(0, 0.001))

	assert.InDelta(t, 111.3, d, 0.5)
}

func TestDistance_InvalidInputDoesNotPanic(t *testing.T) {
	d := Distance(entity.NewCoordinate(math.NaN(), 0), entity.NewCoordinate(0, 0))

	assert.True(t, math.IsNaN(d))
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(100, 100))
	assert.True(t, WithinRadius(100+RadiusTolerance/2, 100))
	assert.False(t, WithinRadius(100.001, 100))
	assert.True(t, WithinRadius(0, 0))
}

func TestBoundAround_ContainsCircle(t *testing.T) {
	center := entity.NewCoordinate(4.6097, -74.0817)
	bound := BoundAround(center, 500)

	assert.True(t, bound.Contains(center.Point()))

	// Points just inside the radius along each axis stay inside the box.
	for _, p := range []entity.Coordinate{
		entity.NewCoordinate(center.Latitude+0.0044, center.Longitude),
		entity.NewCoordinate(center.Latitude-0.0044, center.Longitude),
		entity.NewCoordinate(center.Latitude, center.Longitude+0.0044),
		entity.NewCoordinate(center.Latitude, center.Longitude-0.0044),
	} {
		assert.Less(t, Distance(center, p), 500.0)
		assert.True(t, bound.Contains(p.Point()))
	}
}
