package tiered

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"campusradar/config"
	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
	"campusradar/internal/infra/metrics"
	mockRepo "campusradar/internal/mocks/repository"
	mockService "campusradar/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	probe  *mockService.MockConnectivityProbe
	remote *mockRepo.MockRemoteUserStore
	local  *mockRepo.MockLocalUserStore
	repo   repository.UserRepository
}

func testParams(probe *mockService.MockConnectivityProbe, store *config.StoreConfig, recorder *metrics.Recorder) Params {
	return Params{
		Config:  &config.Config{Store: store},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Probe:   probe,
		Metrics: recorder,
	}
}

func newUserFixture(t *testing.T, store *config.StoreConfig) *userFixture {
	t.Helper()

	f := &userFixture{
		probe:  mockService.NewMockConnectivityProbe(t),
		remote: mockRepo.NewMockRemoteUserStore(t),
		local:  mockRepo.NewMockLocalUserStore(t),
	}
	if store == nil {
		store = &config.StoreConfig{RemoteTimeout: time.Second, RemoteMaxAttempts: 1}
	}
	f.repo = NewUserRepository(testParams(f.probe, store, nil), f.remote, f.local)

	return f
}

func sampleUsers() []*entity.User {
	loc := entity.NewCoordinate(0, 0)

	return []*entity.User{
		{ID: "u1", Name: "Ann", Location: &loc},
		{ID: "u3", Name: "Cid"},
	}
}

func TestUserRepository_ListAll_RemoteSuccessWritesThrough(t *testing.T) {
	f := newUserFixture(t, nil)
	users := sampleUsers()

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).Return(users, nil)
	f.local.EXPECT().UpsertAll(mock.Anything, users).Return(nil)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusOK, result.Status)
	assert.Equal(t, repository.SourceRemote, result.Source)
	assert.False(t, result.Stale())
	assert.NoError(t, result.Reason)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_ListAll_WriteThroughFailureStillOK(t *testing.T) {
	f := newUserFixture(t, nil)
	users := sampleUsers()

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).Return(users, nil)
	f.local.EXPECT().UpsertAll(mock.Anything, users).Return(errors.New("disk full"))

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusOK, result.Status)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_ListAll_RemoteFailureServesLocal(t *testing.T) {
	f := newUserFixture(t, nil)
	users := sampleUsers()
	remoteErr := errors.New("unavailable")

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).Return(nil, remoteErr)
	f.local.EXPECT().GetAll(mock.Anything).Return(users, nil)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusDegraded, result.Status)
	assert.Equal(t, repository.SourceLocal, result.Source)
	assert.True(t, result.Stale())
	assert.ErrorIs(t, result.Reason, remoteErr)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_ListAll_OfflineNeverCallsRemote(t *testing.T) {
	f := newUserFixture(t, nil)
	users := sampleUsers()

	f.probe.EXPECT().IsReachable(mock.Anything).Return(false)
	f.local.EXPECT().GetAll(mock.Anything).Return(users, nil)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusDegraded, result.Status)
	assert.ErrorIs(t, result.Reason, repository.ErrOffline)
	assert.Equal(t, users, result.Data)
	f.remote.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestUserRepository_ListAll_BothFailReturnsEmpty(t *testing.T) {
	f := newUserFixture(t, nil)
	localErr := errors.New("no such table")

	f.probe.EXPECT().IsReachable(mock.Anything).Return(false)
	f.local.EXPECT().GetAll(mock.Anything).Return(nil, localErr)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusEmpty, result.Status)
	assert.Equal(t, repository.SourceNone, result.Source)
	assert.Nil(t, result.Data)
	assert.ErrorIs(t, result.Reason, repository.ErrOffline)
	assert.ErrorIs(t, result.Reason, localErr)
}

func TestUserRepository_ListAll_RemoteTimeoutServesLocal(t *testing.T) {
	f := newUserFixture(t, &config.StoreConfig{RemoteTimeout: 20 * time.Millisecond, RemoteMaxAttempts: 1})
	users := sampleUsers()

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).RunAndReturn(func(ctx context.Context) ([]*entity.User, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	})
	f.local.EXPECT().GetAll(mock.Anything).Return(users, nil)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusDegraded, result.Status)
	assert.ErrorIs(t, result.Reason, context.DeadlineExceeded)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_ListAll_RetriesUntilSuccess(t *testing.T) {
	f := newUserFixture(t, &config.StoreConfig{RemoteTimeout: 5 * time.Second, RemoteMaxAttempts: 3})
	users := sampleUsers()

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("transient")).Once()
	f.remote.EXPECT().ListAll(mock.Anything).Return(users, nil).Once()
	f.local.EXPECT().UpsertAll(mock.Anything, users).Return(nil)

	result := f.repo.ListAll(context.Background())

	assert.Equal(t, repository.StatusOK, result.Status)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_GetByID_RemoteNotFoundIsFinal(t *testing.T) {
	f := newUserFixture(t, &config.StoreConfig{RemoteTimeout: time.Second, RemoteMaxAttempts: 3})

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().GetByID(mock.Anything, "gone").Return(nil, repository.ErrUserNotFound).Once()

	result := f.repo.GetByID(context.Background(), "gone")

	assert.Equal(t, repository.StatusEmpty, result.Status)
	assert.Equal(t, repository.SourceRemote, result.Source)
	assert.ErrorIs(t, result.Reason, repository.ErrUserNotFound)
	assert.Nil(t, result.Data)
	f.local.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUserRepository_GetByID_WritesThroughSingleUser(t *testing.T) {
	f := newUserFixture(t, nil)
	user := sampleUsers()[0]

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.local.EXPECT().UpsertAll(mock.Anything, []*entity.User{user}).Return(nil)

	result := f.repo.GetByID(context.Background(), "u1")

	assert.Equal(t, repository.StatusOK, result.Status)
	assert.Same(t, user, result.Data)
}

func TestUserRepository_ListWithinBounds_Offline(t *testing.T) {
	f := newUserFixture(t, nil)
	bound := orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}}
	users := sampleUsers()[:1]

	f.probe.EXPECT().IsReachable(mock.Anything).Return(false)
	f.local.EXPECT().GetWithinBounds(mock.Anything, bound).Return(users, nil)

	result := f.repo.ListWithinBounds(context.Background(), bound)

	assert.Equal(t, repository.StatusDegraded, result.Status)
	assert.Equal(t, users, result.Data)
}

func TestUserRepository_ContextCancelledSkipsLocal(t *testing.T) {
	f := newUserFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	f.probe.EXPECT().IsReachable(mock.Anything).Return(true)
	f.remote.EXPECT().ListAll(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.User, error) {
		cancel()

		return nil, context.Canceled
	})

	result := f.repo.ListAll(ctx)

	assert.Equal(t, repository.StatusEmpty, result.Status)
	assert.ErrorIs(t, result.Reason, context.Canceled)
}

func TestProductRepository_ListByOwner(t *testing.T) {
	probe := mockService.NewMockConnectivityProbe(t)
	remote := mockRepo.NewMockRemoteProductStore(t)
	local := mockRepo.NewMockLocalProductStore(t)
	registry := prometheus.NewRegistry()
	recorder := metrics.NewWithRegistry(registry)
	repo := NewProductRepository(testParams(probe, &config.StoreConfig{RemoteTimeout: time.Second}, recorder), remote, local)

	products := []*entity.Product{{ID: "p1", OwnerID: "u2"}}
	probe.EXPECT().IsReachable(mock.Anything).Return(true)
	remote.EXPECT().ListByOwner(mock.Anything, "u2").Return(products, nil)
	local.EXPECT().UpsertAll(mock.Anything, products).Return(nil)

	result := repo.ListByOwner(context.Background(), "u2")

	assert.Equal(t, repository.StatusOK, result.Status)
	assert.Equal(t, products, result.Data)

	count, err := testutil.GatherAndCount(registry, "campusradar_store_fetch_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProductRepository_ListByOwner_RemoteFailureServesLocal(t *testing.T) {
	probe := mockService.NewMockConnectivityProbe(t)
	remote := mockRepo.NewMockRemoteProductStore(t)
	local := mockRepo.NewMockLocalProductStore(t)
	repo := NewProductRepository(testParams(probe, nil, nil), remote, local)

	products := []*entity.Product{{ID: "p1", OwnerID: "u2"}}
	probe.EXPECT().IsReachable(mock.Anything).Return(true)
	remote.EXPECT().ListByOwner(mock.Anything, "u2").Return(nil, errors.New("unavailable"))
	local.EXPECT().GetByOwner(mock.Anything, "u2").Return(products, nil)

	result := repo.ListByOwner(context.Background(), "u2")

	assert.Equal(t, repository.StatusDegraded, result.Status)
	assert.Equal(t, products, result.Data)
}

func TestProductRepository_IncrementCounter(t *testing.T) {
	probe := mockService.NewMockConnectivityProbe(t)
	remote := mockRepo.NewMockRemoteProductStore(t)
	local := mockRepo.NewMockLocalProductStore(t)
	repo := NewProductRepository(testParams(probe, nil, nil), remote, local)

	probe.EXPECT().IsReachable(mock.Anything).Return(true)
	remote.EXPECT().IncrementCounter(mock.Anything, "p1", "detail").Return(nil).Once()

	require.NoError(t, repo.IncrementCounter(context.Background(), "p1", "detail"))
}

func TestProductRepository_IncrementCounter_Offline(t *testing.T) {
	probe := mockService.NewMockConnectivityProbe(t)
	remote := mockRepo.NewMockRemoteProductStore(t)
	local := mockRepo.NewMockLocalProductStore(t)
	repo := NewProductRepository(testParams(probe, nil, nil), remote, local)

	probe.EXPECT().IsReachable(mock.Anything).Return(false)

	err := repo.IncrementCounter(context.Background(), "p1", "detail")
	assert.ErrorIs(t, err, repository.ErrRemoteUnavailable)
	remote.AssertNotCalled(t, "IncrementCounter", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductRepository_IncrementCounter_Failure(t *testing.T) {
	probe := mockService.NewMockConnectivityProbe(t)
	remote := mockRepo.NewMockRemoteProductStore(t)
	local := mockRepo.NewMockLocalProductStore(t)
	repo := NewProductRepository(testParams(probe, nil, nil), remote, local)

	probe.EXPECT().IsReachable(mock.Anything).Return(true)
	remote.EXPECT().IncrementCounter(mock.Anything, "p1", "detail").Return(repository.ErrProductNotFound).Once()

	err := repo.IncrementCounter(context.Background(), "p1", "detail")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
