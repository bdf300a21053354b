package firestore

import (
	"context"
	"slices"
	"strings"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/paulmach/orb"
)

// userStore implements repository.RemoteUserStore on the users collection.
type userStore struct {
	client *firestore.Client
}

// NewUserStore is the constructor for userStore.
func NewUserStore(client *firestore.Client) repository.RemoteUserStore {
	return &userStore{client: client}
}

// ListAll returns every user in document-id order.
func (s *userStore) ListAll(ctx context.Context) ([]*entity.User, error) {
	snaps, err := s.client.Collection(usersCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list remote users")
	}

	return decodeAll(snaps, toUserDomain)
}

func (s *userStore) GetByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to get remote user %s", id)
	}

	return toUserDomain(snap)
}

// ListWithinBounds queries the location range between the bound corners. GeoPoints order by latitude
// first, so the query narrows the latitude band and longitude is checked here. The result is returned
// in document-id order like ListAll, not in the GeoPoint order the range query yields.
func (s *userStore) ListWithinBounds(ctx context.Context, bound orb.Bound) ([]*entity.User, error) {
	lower := toGeoPoint(entity.CoordinateFromPoint(bound.Min))
	upper := toGeoPoint(entity.CoordinateFromPoint(bound.Max))

	snaps, err := s.client.Collection(usersCollection).
		Where("location", ">=", lower).
		Where("location", "<=", upper).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query remote users within bounds")
	}

	users, err := decodeAll(snaps, toUserDomain)
	if err != nil {
		return nil, err
	}

	return filterWithinLongitude(users, bound), nil
}

func filterWithinLongitude(users []*entity.User, bound orb.Bound) []*entity.User {
	filtered := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if !u.HasLocation() {
			continue
		}
		if u.Location.Longitude < bound.Min.Lon() || u.Location.Longitude > bound.Max.Lon() {
			continue
		}
		filtered = append(filtered, u)
	}

	slices.SortStableFunc(filtered, func(a, b *entity.User) int {
		return strings.Compare(a.ID, b.ID)
	})

	return filtered
}

func decodeAll[T any](snaps []*firestore.DocumentSnapshot, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	items := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		item, err := decode(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
