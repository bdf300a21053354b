package tiered

import (
	"context"
	"log/slog"
	"testing"

	"campusradar/internal/domain/entity"
	mockrepo "campusradar/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefresher_Refresh(t *testing.T) {
	remoteUsers := mockrepo.NewMockRemoteUserStore(t)
	localUsers := mockrepo.NewMockLocalUserStore(t)
	remoteProducts := mockrepo.NewMockRemoteProductStore(t)
	localProducts := mockrepo.NewMockLocalProductStore(t)

	users := []*entity.User{{ID: "u1"}, {ID: "u2"}}
	products := []*entity.Product{{ID: "p1", OwnerID: "u1"}}

	remoteUsers.EXPECT().ListAll(mock.Anything).Return(users, nil)
	localUsers.EXPECT().UpsertAll(mock.Anything, users).Return(nil)
	remoteProducts.EXPECT().ListAll(mock.Anything).Return(products, nil)
	localProducts.EXPECT().UpsertAll(mock.Anything, products).Return(nil)

	r := NewRefresher(slog.Default(), remoteUsers, localUsers, remoteProducts, localProducts)
	stats, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SnapshotStats{Users: 2, Products: 1}, stats)
}

func TestRefresher_StopsAtFirstFailure(t *testing.T) {
	remoteUsers := mockrepo.NewMockRemoteUserStore(t)
	localUsers := mockrepo.NewMockLocalUserStore(t)
	remoteProducts := mockrepo.NewMockRemoteProductStore(t)
	localProducts := mockrepo.NewMockLocalProductStore(t)

	users := []*entity.User{{ID: "u1"}}
	remoteUsers.EXPECT().ListAll(mock.Anything).Return(users, nil)
	localUsers.EXPECT().UpsertAll(mock.Anything, users).Return(nil)
	remoteProducts.EXPECT().ListAll(mock.Anything).Return(nil, assert.AnError)

	r := NewRefresher(slog.Default(), remoteUsers, localUsers, remoteProducts, localProducts)
	stats, err := r.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, stats.Users)
	assert.Zero(t, stats.Products)
}
