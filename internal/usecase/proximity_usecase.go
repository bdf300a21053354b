package usecase

import (
	"context"

	"campusradar/internal/domain/entity"
)

// ClosestUserResult is the outcome of a closest-user search. Match is nil when nobody is in range.
type ClosestUserResult struct {
	Match *entity.UserMatch `json:"match"`
	// Offline is true when the candidates came from the local snapshot instead of the remote store
	Offline bool `json:"offline"`
}

// ClosestProductResult is the outcome of a closest-product search. Match is nil when absent.
type ClosestProductResult struct {
	Match   *entity.ProductMatch `json:"match"`
	Offline bool                 `json:"offline"`
}

// NearbyUsersResult lists users in range, nearest first.
type NearbyUsersResult struct {
	Matches []*entity.UserMatch `json:"matches"`
	Offline bool                `json:"offline"`
}

// NearbyProductsResult lists products whose owner is in range, nearest owner first.
// Match owners may be partial, see FindNearbyProducts.
type NearbyProductsResult struct {
	Matches []*entity.ProductMatch `json:"matches"`
	Offline bool                   `json:"offline"`
}

// ProximityUsecase answers "who or what is nearest to me" for the marketplace.
// Store outages never surface as errors: results fall back to the local snapshot and set Offline.
type ProximityUsecase interface {
	// FindClosestUser returns the located user nearest to origin within maxDistance meters.
	FindClosestUser(ctx context.Context, origin entity.Coordinate, maxDistance float64) (*ClosestUserResult, error)

	// FindClosestProduct returns the first product of the closest user. It does not fall through
	// to farther users when the closest one owns nothing.
	FindClosestProduct(ctx context.Context, origin entity.Coordinate, maxDistance float64) (*ClosestProductResult, error)

	// FindNearbyUsers returns every located user within maxDistance, ascending by distance.
	FindNearbyUsers(ctx context.Context, origin entity.Coordinate, maxDistance float64) (*NearbyUsersResult, error)

	// FindNearbyProducts lists products whose owner is within maxDistance and that match the filter.
	// An owner found among the fetched users is complete. An owner resolved from the location cache
	// carries only its ID and Location.
	FindNearbyProducts(ctx context.Context, origin entity.Coordinate, maxDistance float64, filter entity.ProductFilter) (*NearbyProductsResult, error)

	// ResolveUserLocation returns a user's location, served from the location cache when possible.
	// A nil coordinate with a nil error means the user or the location is unknown.
	ResolveUserLocation(ctx context.Context, userID string) (*entity.Coordinate, error)

	// IncrementInteractionCounter records an interaction on a product without waiting for the store.
	IncrementInteractionCounter(ctx context.Context, productID, attribute string) error

	// ResetCache forgets every memoized location.
	ResetCache()

	// Wait blocks until pending counter increments have finished.
	Wait()
}
