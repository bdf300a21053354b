package tiered

import (
	"context"
	"log/slog"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
)

const productEntity = "product"

type productRepository struct {
	remote  repository.RemoteProductStore
	local   repository.LocalProductStore
	fetcher *fetcher
}

// NewProductRepository is the constructor for the tiered product repository.
func NewProductRepository(params Params, remote repository.RemoteProductStore, local repository.LocalProductStore) repository.ProductRepository {
	return &productRepository{
		remote:  remote,
		local:   local,
		fetcher: newFetcher(productEntity, params),
	}
}

func (repo *productRepository) ListAll(ctx context.Context) repository.Result[[]*entity.Product] {
	return read(ctx, repo.fetcher, "list_all", nil,
		repo.remote.ListAll,
		repo.local.GetAll,
		repo.local.UpsertAll,
		nil,
	)
}

func (repo *productRepository) GetByID(ctx context.Context, id string) repository.Result[*entity.Product] {
	return read(ctx, repo.fetcher, "get_by_id", []slog.Attr{slog.String("product_id", id)},
		func(ctx context.Context) (*entity.Product, error) { return repo.remote.GetByID(ctx, id) },
		func(ctx context.Context) (*entity.Product, error) { return repo.local.GetByID(ctx, id) },
		func(ctx context.Context, product *entity.Product) error {
			return repo.local.UpsertAll(ctx, []*entity.Product{product})
		},
		isProductNotFound,
	)
}

func (repo *productRepository) ListByOwner(ctx context.Context, ownerID string) repository.Result[[]*entity.Product] {
	return read(ctx, repo.fetcher, "list_by_owner", []slog.Attr{slog.String("owner_id", ownerID)},
		func(ctx context.Context) ([]*entity.Product, error) { return repo.remote.ListByOwner(ctx, ownerID) },
		func(ctx context.Context) ([]*entity.Product, error) { return repo.local.GetByOwner(ctx, ownerID) },
		repo.local.UpsertAll,
		nil,
	)
}

// IncrementCounter writes to the remote store only, in a single attempt since increments are not idempotent.
// There is no local queue of pending increments.
func (repo *productRepository) IncrementCounter(ctx context.Context, id, attribute string) error {
	f := repo.fetcher
	if !f.probe.IsReachable(ctx) {
		f.metrics.StoreFetch(productEntity, "increment_counter", repository.StatusEmpty.String())

		return repository.ErrRemoteUnavailable
	}

	if f.remoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.remoteTimeout)
		defer cancel()
	}

	if err := repo.remote.IncrementCounter(ctx, id, attribute); err != nil {
		f.metrics.StoreFetch(productEntity, "increment_counter", repository.StatusEmpty.String())

		return errors.Wrapf(err, "failed to increment %s counter of product %s", attribute, id)
	}
	f.metrics.StoreFetch(productEntity, "increment_counter", repository.StatusOK.String())

	return nil
}

func isProductNotFound(err error) bool {
	return errors.Is(err, repository.ErrProductNotFound)
}
