package repository

import (
	"context"

	"campusradar/internal/domain/entity"
	"campusradar/internal/errors"

	"github.com/paulmach/orb"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// RemoteUserStore is the remote document store holding the authoritative user records.
type RemoteUserStore interface {
	// ListAll returns every user in store order.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// GetByID returns a single user. Returns ErrUserNotFound if the document does not exist.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// ListWithinBounds returns users whose location lies inside the bound.
	ListWithinBounds(ctx context.Context, bound orb.Bound) ([]*entity.User, error)
}

// LocalUserStore is the on-premise snapshot of the remote user collection.
type LocalUserStore interface {
	// GetAll returns every stored user in insertion order.
	GetAll(ctx context.Context) ([]*entity.User, error)

	// GetByID returns a single user. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetWithinBounds returns stored users whose location lies inside the bound.
	GetWithinBounds(ctx context.Context, bound orb.Bound) ([]*entity.User, error)

	// UpsertAll inserts or replaces the given users.
	UpsertAll(ctx context.Context, users []*entity.User) error
}

// UserRepository is the tiered user store: remote when reachable, local snapshot otherwise.
// Reads never fail; see Result.
type UserRepository interface {
	ListAll(ctx context.Context) Result[[]*entity.User]
	GetByID(ctx context.Context, id string) Result[*entity.User]
	ListWithinBounds(ctx context.Context, bound orb.Bound) Result[[]*entity.User]
}
