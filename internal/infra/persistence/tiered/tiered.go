// Package tiered implements repositories that read from the remote document store when it is reachable
// and fall back to the local snapshot store otherwise.
package tiered

import (
	"context"
	"log/slog"
	"time"

	"campusradar/config"
	deliverycontext "campusradar/internal/delivery/context"
	"campusradar/internal/domain/repository"
	"campusradar/internal/domain/service"
	"campusradar/internal/errors"
	"campusradar/internal/infra/metrics"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/fx"
)

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = time.Second
)

// Params defines the dependencies shared by the tiered repositories
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Probe   service.ConnectivityProbe
	Metrics *metrics.Recorder `optional:"true"`
}

// fetcher runs the remote-then-local read policy for one entity kind.
type fetcher struct {
	entity        string
	probe         service.ConnectivityProbe
	logger        *slog.Logger
	metrics       *metrics.Recorder
	remoteTimeout time.Duration
	maxAttempts   uint
}

func newFetcher(entity string, params Params) *fetcher {
	f := &fetcher{
		entity:      entity,
		probe:       params.Probe,
		logger:      params.Logger,
		metrics:     params.Metrics,
		maxAttempts: 1,
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if params.Config != nil && params.Config.Store != nil {
		f.remoteTimeout = params.Config.Store.RemoteTimeout
		if params.Config.Store.RemoteMaxAttempts > 1 {
			f.maxAttempts = uint(params.Config.Store.RemoteMaxAttempts)
		}
	}

	return f
}

func (f *fetcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// read is the single fallback policy shared by every tiered read:
//  1. probe the remote store, skip it when unreachable
//  2. query remote under the timeout; on success write through to local and return OK
//  3. on remote failure serve the local snapshot as Degraded
//  4. when local fails too return Empty
//
// An error matched by authoritative is final: it is returned as Empty without consulting local data.
func read[T any](
	ctx context.Context,
	f *fetcher,
	op string,
	attrs []slog.Attr,
	remote func(context.Context) (T, error),
	local func(context.Context) (T, error),
	save func(context.Context, T) error,
	authoritative func(error) bool,
) repository.Result[T] {
	logAttrs := append([]slog.Attr{slog.String("entity", f.entity), slog.String("op", op)}, attrs...)

	result := func() repository.Result[T] {
		var reason error
		if !f.probe.IsReachable(ctx) {
			reason = repository.ErrOffline
		} else {
			data, err := fetchRemote(ctx, f, remote, authoritative)
			if err == nil {
				if save != nil {
					if saveErr := save(ctx, data); saveErr != nil {
						f.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to refresh local snapshot",
							append(logAttrs, slog.Any("error", saveErr))...)
					}
				}

				return repository.OK(data)
			}
			if authoritative != nil && authoritative(err) {
				return repository.Empty[T](repository.SourceRemote, err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return repository.Empty[T](repository.SourceNone, ctxErr)
			}
			reason = err
		}

		data, err := local(ctx)
		if err != nil {
			return repository.Empty[T](repository.SourceNone, errors.Join(reason, err))
		}

		return repository.Degraded(data, reason)
	}()

	f.metrics.StoreFetch(f.entity, op, result.Status.String())
	level := slog.LevelDebug
	if result.Status != repository.StatusOK {
		level = slog.LevelWarn
		logAttrs = append(logAttrs, slog.Any("reason", result.Reason))
	}
	f.log(ctx).LogAttrs(ctx, level, "Tiered read served",
		append(logAttrs, slog.String("status", result.Status.String()), slog.String("source", result.Source.String()))...)

	return result
}

// fetchRemote calls remote under the configured timeout, retrying with exponential backoff when more
// than one attempt is configured. Authoritative errors are never retried.
func fetchRemote[T any](
	ctx context.Context,
	f *fetcher,
	remote func(context.Context) (T, error),
	authoritative func(error) bool,
) (T, error) {
	if f.remoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.remoteTimeout)
		defer cancel()
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = retryInitialInterval
	expBackoff.MaxInterval = retryMaxInterval

	data, err := backoff.Retry(ctx, func() (T, error) {
		data, err := remote(ctx)
		if err != nil && authoritative != nil && authoritative(err) {
			return data, backoff.Permanent(err)
		}

		return data, err
	}, backoff.WithBackOff(expBackoff), backoff.WithMaxTries(f.maxAttempts))
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}

		return data, err
	}

	return data, nil
}
