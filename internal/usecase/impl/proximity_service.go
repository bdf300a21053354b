package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"campusradar/config"
	deliverycontext "campusradar/internal/delivery/context"
	"campusradar/internal/domain/entity"
	domainerrors "campusradar/internal/domain/errors"
	"campusradar/internal/domain/geo"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
	"campusradar/internal/infra/metrics"
	"campusradar/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultPreFilterRadiusMultiplier = 1.3

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In
	fx.Lifecycle

	Users    repository.UserRepository
	Products repository.ProductRepository
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Recorder `optional:"true"`
}

// proximityService implements the ProximityUsecase interface.
type proximityService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	logger   *slog.Logger
	metrics  *metrics.Recorder

	cache   *locationCache
	lookups singleflight.Group
	pending sync.WaitGroup

	storeTimeout        time.Duration
	prefilterBounds     bool
	prefilterMultiplier float64
}

// NewProximityService is the constructor for proximityService. Pending counter increments are drained on stop.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	srv := newProximityService(params.Users, params.Products, params.Config, params.Logger, params.Metrics)

	if params.Lifecycle != nil {
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				srv.Wait()

				return nil
			},
		})
	}

	return srv
}

func newProximityService(
	users repository.UserRepository,
	products repository.ProductRepository,
	cfg *config.Config,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) *proximityService {
	if logger == nil {
		logger = slog.Default()
	}

	srv := &proximityService{
		users:               users,
		products:            products,
		logger:              logger,
		metrics:             recorder,
		cache:               newLocationCache(recorder),
		prefilterMultiplier: defaultPreFilterRadiusMultiplier,
	}
	if cfg != nil && cfg.Store != nil {
		srv.storeTimeout = cfg.Store.RemoteTimeout
	}
	if cfg != nil && cfg.Proximity != nil {
		srv.prefilterBounds = cfg.Proximity.PrefilterBounds
		if cfg.Proximity.PreFilterRadiusMultiplier >= 1 {
			srv.prefilterMultiplier = cfg.Proximity.PreFilterRadiusMultiplier
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindClosestUser returns the nearest located user within maxDistance. Ties keep the first user in store order.
func (srv *proximityService) FindClosestUser(ctx context.Context, origin entity.Coordinate, maxDistance float64) (result *usecase.ClosestUserResult, err error) {
	defer srv.metrics.ObserveResolver("closest_user", time.Now())
	defer srv.recoverCacheState(ctx, "closest_user", &err)

	match, offline, err := srv.closestUser(ctx, origin, maxDistance)
	if err != nil {
		return nil, err
	}

	return &usecase.ClosestUserResult{Match: match, Offline: offline}, nil
}

// FindClosestProduct pairs the closest user with their first product. When that user owns nothing the
// result is absent even if a farther user owns products.
func (srv *proximityService) FindClosestProduct(ctx context.Context, origin entity.Coordinate, maxDistance float64) (result *usecase.ClosestProductResult, err error) {
	defer srv.metrics.ObserveResolver("closest_product", time.Now())
	defer srv.recoverCacheState(ctx, "closest_product", &err)

	closest, offline, err := srv.closestUser(ctx, origin, maxDistance)
	if err != nil {
		return nil, err
	}
	if closest == nil {
		return &usecase.ClosestProductResult{Offline: offline}, nil
	}

	owned := srv.products.ListByOwner(ctx, closest.User.ID)
	offline = offline || owned.Status != repository.StatusOK
	if len(owned.Data) == 0 {
		srv.log(ctx).Debug("Closest user owns no products",
			slog.String("user_id", closest.User.ID), slog.Float64("distance_meters", closest.DistanceMeters))

		return &usecase.ClosestProductResult{Offline: offline}, nil
	}

	return &usecase.ClosestProductResult{
		Match: &entity.ProductMatch{
			Product:        owned.Data[0],
			Owner:          closest.User,
			DistanceMeters: closest.DistanceMeters,
		},
		Offline: offline,
	}, nil
}

func (srv *proximityService) FindNearbyUsers(ctx context.Context, origin entity.Coordinate, maxDistance float64) (result *usecase.NearbyUsersResult, err error) {
	defer srv.metrics.ObserveResolver("nearby_users", time.Now())
	defer srv.recoverCacheState(ctx, "nearby_users", &err)

	matches, offline, err := srv.usersInRange(ctx, origin, maxDistance)
	if err != nil {
		return nil, err
	}

	return &usecase.NearbyUsersResult{Matches: matches, Offline: offline}, nil
}

// FindNearbyProducts lists every product whose owner is in range and that passes the filter,
// nearest owner first. Products of the same owner keep store order. Owners missing from the fetched
// users are resolved cache-first, and a cached owner carries only its ID and Location.
func (srv *proximityService) FindNearbyProducts(ctx context.Context, origin entity.Coordinate, maxDistance float64, filter entity.ProductFilter) (result *usecase.NearbyProductsResult, err error) {
	defer srv.metrics.ObserveResolver("nearby_products", time.Now())
	defer srv.recoverCacheState(ctx, "nearby_products", &err)

	if err := validateQuery(origin, maxDistance); err != nil {
		return nil, err
	}

	// Warm the location cache with the current candidate set so owner lookups are mostly hits.
	candidates := srv.candidates(ctx, origin, maxDistance)
	offline := candidates.Status != repository.StatusOK
	srv.remember(candidates.Data)

	listing := srv.products.ListAll(ctx)
	offline = offline || listing.Status != repository.StatusOK
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	owners := make(map[string]*entity.UserMatch)
	matches := make([]*entity.ProductMatch, 0)
	for _, product := range listing.Data {
		if !filter.Matches(product) || product.OwnerID == "" {
			continue
		}

		owner, seen := owners[product.OwnerID]
		if !seen {
			owner, err = srv.ownerInRange(ctx, product.OwnerID, candidates.Data, origin, maxDistance)
			if err != nil {
				return nil, err
			}
			owners[product.OwnerID] = owner
		}
		if owner == nil {
			continue
		}

		matches = append(matches, &entity.ProductMatch{
			Product:        product,
			Owner:          owner.User,
			DistanceMeters: owner.DistanceMeters,
		})
	}

	slices.SortStableFunc(matches, func(a, b *entity.ProductMatch) int {
		return compareDistance(a.DistanceMeters, b.DistanceMeters)
	})

	return &usecase.NearbyProductsResult{Matches: matches, Offline: offline}, nil
}

// ResolveUserLocation serves the location from the cache, falling back to a store lookup.
// Concurrent lookups for the same user share one store call.
func (srv *proximityService) ResolveUserLocation(ctx context.Context, userID string) (loc *entity.Coordinate, err error) {
	defer srv.metrics.ObserveResolver("resolve_location", time.Now())
	defer srv.recoverCacheState(ctx, "resolve_location", &err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("user id is required")
	}

	user, err := srv.lookupUser(ctx, userID)
	if err != nil || !user.HasLocation() {
		return nil, err
	}
	found := *user.Location

	return &found, nil
}

// IncrementInteractionCounter validates the arguments and hands the increment to a background goroutine.
// The caller's cancellation does not abort the write; failures are only logged.
func (srv *proximityService) IncrementInteractionCounter(ctx context.Context, productID, attribute string) error {
	productID = strings.TrimSpace(productID)
	attribute = strings.TrimSpace(attribute)
	if productID == "" || attribute == "" {
		return domainerrors.ErrInvalidArgument.WrapMessage("product id and attribute are required")
	}

	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	srv.pending.Add(1)
	go func() {
		defer srv.pending.Done()

		writeCtx := detached
		if srv.storeTimeout > 0 {
			var cancel context.CancelFunc
			writeCtx, cancel = context.WithTimeout(detached, srv.storeTimeout)
			defer cancel()
		}

		if err := srv.products.IncrementCounter(writeCtx, productID, attribute); err != nil {
			logger.Warn("Failed to increment interaction counter",
				slog.String("product_id", productID), slog.String("attribute", attribute), slog.Any("error", err))
		}
	}()

	return nil
}

// ResetCache clears every memoized location, e.g. when the signed-in user changes.
func (srv *proximityService) ResetCache() {
	srv.cache.Clear()
	srv.logger.Debug("Location cache cleared")
}

func (srv *proximityService) Wait() {
	srv.pending.Wait()
}

func (srv *proximityService) closestUser(ctx context.Context, origin entity.Coordinate, maxDistance float64) (*entity.UserMatch, bool, error) {
	matches, offline, err := srv.usersInRange(ctx, origin, maxDistance)
	if err != nil || len(matches) == 0 {
		return nil, offline, err
	}

	return matches[0], offline, nil
}

// usersInRange fetches candidates, refreshes the cache with every fetched location and returns the users
// within maxDistance sorted by distance. The sort is stable so equal distances keep store order.
func (srv *proximityService) usersInRange(ctx context.Context, origin entity.Coordinate, maxDistance float64) ([]*entity.UserMatch, bool, error) {
	if err := validateQuery(origin, maxDistance); err != nil {
		return nil, false, err
	}

	candidates := srv.candidates(ctx, origin, maxDistance)
	offline := candidates.Status != repository.StatusOK
	if err := ctx.Err(); err != nil {
		return nil, offline, err
	}

	srv.remember(candidates.Data)

	matches := make([]*entity.UserMatch, 0, len(candidates.Data))
	for _, user := range candidates.Data {
		if match := scoreUser(user, origin, maxDistance); match != nil {
			matches = append(matches, match)
		}
	}

	slices.SortStableFunc(matches, func(a, b *entity.UserMatch) int {
		return compareDistance(a.DistanceMeters, b.DistanceMeters)
	})

	srv.log(ctx).Debug("Scored proximity candidates",
		slog.Int("candidates", len(candidates.Data)),
		slog.Int("in_range", len(matches)),
		slog.Float64("max_distance", maxDistance),
		slog.Bool("offline", offline),
	)

	return matches, offline, nil
}

func (srv *proximityService) candidates(ctx context.Context, origin entity.Coordinate, maxDistance float64) repository.Result[[]*entity.User] {
	if srv.prefilterBounds {
		return srv.users.ListWithinBounds(ctx, geo.BoundAround(origin, maxDistance*srv.prefilterMultiplier))
	}

	return srv.users.ListAll(ctx)
}

// remember puts every fetched location in the cache. Users without a location are skipped.
func (srv *proximityService) remember(users []*entity.User) {
	for _, user := range users {
		if user.HasLocation() {
			srv.cache.Put(user.ID, *user.Location)
		}
	}
}

// ownerInRange locates a product owner, preferring the candidate list, then the cache, then the store.
func (srv *proximityService) ownerInRange(ctx context.Context, ownerID string, candidates []*entity.User, origin entity.Coordinate, maxDistance float64) (*entity.UserMatch, error) {
	idx := slices.IndexFunc(candidates, func(u *entity.User) bool { return u != nil && u.ID == ownerID })
	if idx >= 0 {
		return scoreUser(candidates[idx], origin, maxDistance), nil
	}

	owner, err := srv.lookupUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return scoreUser(owner, origin, maxDistance), nil
}

// lookupUser resolves a user through the cache and the store. A cache hit yields a user carrying only
// the id and location. Returns nil when the user is unknown.
//
// The shared store call runs detached from every caller, so one caller giving up cannot turn the
// answer into "unknown" for the others; each caller stops waiting on its own context.
func (srv *proximityService) lookupUser(ctx context.Context, userID string) (*entity.User, error) {
	if loc, ok := srv.cache.Get(userID); ok {
		return &entity.User{ID: userID, Location: &loc}, nil
	}

	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	flight := srv.lookups.DoChan(userID, func() (v any, err error) {
		defer srv.recoverCacheState(ctx, "lookup_user", &err)

		// A flight that just finished may have filled the entry after our miss.
		if loc, ok := srv.cache.peek(userID); ok {
			return &entity.User{ID: userID, Location: &loc}, nil
		}

		lookupCtx := detached
		if srv.storeTimeout > 0 {
			// One remote read plus the local fallback.
			var cancel context.CancelFunc
			lookupCtx, cancel = context.WithTimeout(detached, 2*srv.storeTimeout)
			defer cancel()
		}

		res := srv.users.GetByID(lookupCtx, userID)
		if res.Data == nil {
			logger.Debug("User lookup returned nothing",
				slog.String("user_id", userID), slog.String("status", res.Status.String()), slog.Any("reason", res.Reason))
			if isContextError(res.Reason) {
				return nil, res.Reason
			}

			return (*entity.User)(nil), nil
		}
		if res.Data.HasLocation() {
			srv.cache.Put(userID, *res.Data.Location)
		}

		return res.Data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-flight:
		if r.Err != nil {
			return nil, r.Err
		}
		user, _ := r.Val.(*entity.User)

		return user, nil
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// recoverCacheState turns a panic inside the resolver into ErrCacheState so one corrupt entry
// cannot take the process down.
func (srv *proximityService) recoverCacheState(ctx context.Context, op string, err *error) {
	if r := recover(); r != nil {
		srv.log(ctx).Error("Proximity resolver state violated", slog.String("op", op), slog.Any("panic", r))
		*err = domainerrors.ErrCacheState
	}
}

func scoreUser(user *entity.User, origin entity.Coordinate, maxDistance float64) *entity.UserMatch {
	if !user.HasLocation() {
		return nil
	}

	distance := geo.Distance(origin, *user.Location)
	if !geo.WithinRadius(distance, maxDistance) {
		return nil
	}

	return &entity.UserMatch{User: user, DistanceMeters: distance}
}

func compareDistance(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func validateQuery(origin entity.Coordinate, maxDistance float64) error {
	if math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) || maxDistance < 0 {
		return domainerrors.ErrInvalidRadius
	}
	if !origin.IsFinite() {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}
