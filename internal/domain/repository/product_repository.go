package repository

import (
	"context"

	"campusradar/internal/domain/entity"
	"campusradar/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// RemoteProductStore is the remote document store holding the authoritative product records.
type RemoteProductStore interface {
	// ListAll returns every product in store order.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// GetByID returns a single product. Returns ErrProductNotFound if the document does not exist.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// ListByOwner returns the products owned by a user, in store order.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error)

	// IncrementCounter atomically adds one to the named interaction counter of a product.
	IncrementCounter(ctx context.Context, id, attribute string) error
}

// LocalProductStore is the on-premise snapshot of the remote product collection.
type LocalProductStore interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error)
	UpsertAll(ctx context.Context, products []*entity.Product) error
}

// ProductRepository is the tiered product store.
type ProductRepository interface {
	ListAll(ctx context.Context) Result[[]*entity.Product]
	GetByID(ctx context.Context, id string) Result[*entity.Product]
	ListByOwner(ctx context.Context, ownerID string) Result[[]*entity.Product]

	// IncrementCounter is remote-only. Returns ErrRemoteUnavailable when offline.
	IncrementCounter(ctx context.Context, id, attribute string) error
}
