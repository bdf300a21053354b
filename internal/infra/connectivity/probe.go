// Package connectivity implements the remote reachability probe.
package connectivity

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"campusradar/config"
	"campusradar/internal/domain/service"
	"campusradar/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// Params defines the dependencies of the probe provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New picks the probe implementation configured in connectivity.mode
func New(params Params) (service.ConnectivityProbe, error) {
	cfg := params.Config.Connectivity

	switch cfg.Mode {
	case config.ConnectivityModeOnline:
		params.Logger.Info("Connectivity probe fixed to online")

		return NewStaticProbe(true), nil
	case config.ConnectivityModeOffline:
		params.Logger.Warn("Connectivity probe fixed to offline, remote store will not be queried")

		return NewStaticProbe(false), nil
	case config.ConnectivityModeDial:
		params.Logger.Info("Using dial connectivity probe",
			slog.String("address", cfg.Address),
			slog.Duration("dial_timeout", cfg.DialTimeout),
			slog.Duration("cache_ttl", cfg.CacheTTL),
		)

		return NewDialProbe(cfg.Address, cfg.DialTimeout, cfg.CacheTTL, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown connectivity mode: %s", cfg.Mode)
	}
}

// StaticProbe always returns the same verdict
type StaticProbe struct {
	reachable bool
}

// NewStaticProbe creates a probe with a fixed verdict
func NewStaticProbe(reachable bool) *StaticProbe {
	return &StaticProbe{reachable: reachable}
}

// IsReachable returns the fixed verdict
func (p *StaticProbe) IsReachable(_ context.Context) bool {
	return p.reachable
}

// DialFunc opens a connection; net.Dialer.DialContext satisfies it
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// DialProbe decides reachability by opening a TCP connection to the remote endpoint.
// The last verdict is reused for cacheTTL, and concurrent probes share one dial.
type DialProbe struct {
	address     string
	dialTimeout time.Duration
	cacheTTL    time.Duration
	dial        DialFunc
	now         func() time.Time
	logger      *slog.Logger

	group singleflight.Group

	mu        sync.Mutex
	verdict   bool
	checkedAt time.Time
}

// NewDialProbe creates a DialProbe for address (host:port)
func NewDialProbe(address string, dialTimeout, cacheTTL time.Duration, logger *slog.Logger) *DialProbe {
	dialer := &net.Dialer{}

	return &DialProbe{
		address:     address,
		dialTimeout: dialTimeout,
		cacheTTL:    cacheTTL,
		dial:        dialer.DialContext,
		now:         time.Now,
		logger:      logger,
	}
}

// IsReachable reports whether the remote endpoint accepted a connection recently
func (p *DialProbe) IsReachable(ctx context.Context) bool {
	if verdict, ok := p.cached(); ok {
		return verdict
	}

	// Detached from the caller so one cancelled caller does not fail the shared probe
	result, _, _ := p.group.Do(p.address, func() (any, error) {
		return p.probe(context.WithoutCancel(ctx)), nil
	})

	reachable, _ := result.(bool)

	return reachable
}

func (p *DialProbe) cached() (verdict, ok bool) {
	if p.cacheTTL <= 0 {
		return false, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.checkedAt.IsZero() || p.now().Sub(p.checkedAt) >= p.cacheTTL {
		return false, false
	}

	return p.verdict, true
}

func (p *DialProbe) probe(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, p.dialTimeout)
	defer cancel()

	reachable := true
	conn, err := p.dial(dialCtx, "tcp", p.address)
	if err != nil {
		reachable = false
		p.logger.Debug("Connectivity probe failed",
			slog.String("address", p.address),
			slog.Any("error", err),
		)
	} else {
		_ = conn.Close()
	}

	p.mu.Lock()
	if p.verdict != reachable && !p.checkedAt.IsZero() {
		p.logger.Info("Remote store reachability changed",
			slog.String("address", p.address),
			slog.Bool("reachable", reachable),
		)
	}
	p.verdict = reachable
	p.checkedAt = p.now()
	p.mu.Unlock()

	return reachable
}
