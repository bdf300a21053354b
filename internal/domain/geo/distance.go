// Package geo provides the geodesic helpers used for proximity ranking.
package geo

import (
	"campusradar/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// RadiusTolerance is the slack, in meters, applied when testing a distance against a radius,
// so a point sitting exactly on the boundary is not lost to rounding.
const RadiusTolerance = 1e-6

// Distance returns the great-circle (haversine) distance between a and b in meters.
// Coordinates are not validated.
func Distance(a, b entity.Coordinate) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point())
}

// WithinRadius reports whether distance is inside radius, boundary included.
func WithinRadius(distance, radius float64) bool {
	return distance <= radius+RadiusTolerance
}

// BoundAround returns the bounding box enclosing the circle of radiusMeters around center.
func BoundAround(center entity.Coordinate, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center.Point(), radiusMeters)
}
