package tiered

import (
	"context"
	"log/slog"

	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
)

// SnapshotStats counts the records copied by a refresh.
type SnapshotStats struct {
	Users    int
	Products int
}

// Refresher copies every remote record into the local snapshot in one pass.
// Reads already write through, so this only matters for seeding a fresh snapshot.
type Refresher struct {
	remoteUsers    repository.RemoteUserStore
	localUsers     repository.LocalUserStore
	remoteProducts repository.RemoteProductStore
	localProducts  repository.LocalProductStore
	logger         *slog.Logger
}

func NewRefresher(
	logger *slog.Logger,
	remoteUsers repository.RemoteUserStore,
	localUsers repository.LocalUserStore,
	remoteProducts repository.RemoteProductStore,
	localProducts repository.LocalProductStore,
) *Refresher {
	return &Refresher{
		remoteUsers:    remoteUsers,
		localUsers:     localUsers,
		remoteProducts: remoteProducts,
		localProducts:  localProducts,
		logger:         logger,
	}
}

// Refresh stops at the first failure; whatever was upserted before it stays.
func (r *Refresher) Refresh(ctx context.Context) (SnapshotStats, error) {
	var stats SnapshotStats

	users, err := r.remoteUsers.ListAll(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "failed to list remote users")
	}
	if err := r.localUsers.UpsertAll(ctx, users); err != nil {
		return stats, errors.Wrap(err, "failed to store users in the local snapshot")
	}
	stats.Users = len(users)

	products, err := r.remoteProducts.ListAll(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "failed to list remote products")
	}
	if err := r.localProducts.UpsertAll(ctx, products); err != nil {
		return stats, errors.Wrap(err, "failed to store products in the local snapshot")
	}
	stats.Products = len(products)

	r.logger.Info("Local snapshot refreshed",
		slog.Int("users", stats.Users),
		slog.Int("products", stats.Products),
	)

	return stats, nil
}
