package firestore

import (
	"testing"

	"campusradar/internal/domain/entity"
	"campusradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func located(id string, lat, lng float64) *entity.User {
	loc := entity.NewCoordinate(lat, lng)

	return &entity.User{ID: id, Location: &loc}
}

func TestFilterWithinLongitude(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{-0.01, -0.01}, Max: orb.Point{0.01, 0.01}}
	users := []*entity.User{
		located("inside", 0, 0.005),
		located("east", 0, 0.02),
		{ID: "unknown"},
		located("edge", 0.01, -0.01),
	}

	got := filterWithinLongitude(users, bound)

	ids := make([]string, 0, len(got))
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"edge", "inside"}, ids)
}

func TestFilterWithinLongitude_OrdersByID(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}}
	// GeoPoint order: lowest latitude first.
	users := []*entity.User{
		located("u3", -0.5, 0),
		located("u1", 0, 0),
		located("u2", 0.5, 0),
	}

	got := filterWithinLongitude(users, bound)

	ids := make([]string, 0, len(got))
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids)
}

func TestToGeoPoint(t *testing.T) {
	p := toGeoPoint(entity.NewCoordinate(4.6, -74.06))

	assert.Equal(t, 4.6, p.GetLatitude())
	assert.Equal(t, -74.06, p.GetLongitude())
}

func TestIsNotFound(t *testing.T) {
	notFound := status.Error(codes.NotFound, "no such document")

	assert.True(t, isNotFound(notFound))
	assert.True(t, isNotFound(errors.Wrap(notFound, "get user")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "down")))
	assert.False(t, isNotFound(errors.New("boom")))
}
