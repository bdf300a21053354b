package tiered

import (
	"context"
	"log/slog"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"

	"github.com/paulmach/orb"
)

const userEntity = "user"

type userRepository struct {
	remote  repository.RemoteUserStore
	local   repository.LocalUserStore
	fetcher *fetcher
}

// NewUserRepository is the constructor for the tiered user repository.
func NewUserRepository(params Params, remote repository.RemoteUserStore, local repository.LocalUserStore) repository.UserRepository {
	return &userRepository{
		remote:  remote,
		local:   local,
		fetcher: newFetcher(userEntity, params),
	}
}

func (repo *userRepository) ListAll(ctx context.Context) repository.Result[[]*entity.User] {
	return read(ctx, repo.fetcher, "list_all", nil,
		repo.remote.ListAll,
		repo.local.GetAll,
		repo.local.UpsertAll,
		nil,
	)
}

// GetByID treats a remote not-found as final; the snapshot may still hold a deleted user.
func (repo *userRepository) GetByID(ctx context.Context, id string) repository.Result[*entity.User] {
	return read(ctx, repo.fetcher, "get_by_id", []slog.Attr{slog.String("user_id", id)},
		func(ctx context.Context) (*entity.User, error) { return repo.remote.GetByID(ctx, id) },
		func(ctx context.Context) (*entity.User, error) { return repo.local.GetByID(ctx, id) },
		func(ctx context.Context, user *entity.User) error {
			return repo.local.UpsertAll(ctx, []*entity.User{user})
		},
		isUserNotFound,
	)
}

func (repo *userRepository) ListWithinBounds(ctx context.Context, bound orb.Bound) repository.Result[[]*entity.User] {
	return read(ctx, repo.fetcher, "list_within_bounds", []slog.Attr{slog.Any("bound", bound)},
		func(ctx context.Context) ([]*entity.User, error) { return repo.remote.ListWithinBounds(ctx, bound) },
		func(ctx context.Context) ([]*entity.User, error) { return repo.local.GetWithinBounds(ctx, bound) },
		repo.local.UpsertAll,
		nil,
	)
}

func isUserNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound)
}
