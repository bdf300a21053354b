package connectivity

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"campusradar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticProbe(t *testing.T) {
	assert.True(t, NewStaticProbe(true).IsReachable(context.Background()))
	assert.False(t, NewStaticProbe(false).IsReachable(context.Background()))
}

func TestDialProbe_ReachableListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	probe := NewDialProbe(listener.Addr().String(), time.Second, 0, newDiscardLogger())

	assert.True(t, probe.IsReachable(context.Background()))
}

func TestDialProbe_UnreachableAddress(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	probe := NewDialProbe(addr, 200*time.Millisecond, 0, newDiscardLogger())

	assert.False(t, probe.IsReachable(context.Background()))
}

func TestDialProbe_CachesVerdictForTTL(t *testing.T) {
	var dials atomic.Int32
	probe := NewDialProbe("remote:443", time.Second, time.Minute, newDiscardLogger())
	probe.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
		dials.Add(1)
		client, server := net.Pipe()
		server.Close()

		return client, nil
	}

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	probe.now = func() time.Time { return now }

	assert.True(t, probe.IsReachable(context.Background()))
	assert.True(t, probe.IsReachable(context.Background()))
	assert.Equal(t, int32(1), dials.Load())

	now = now.Add(2 * time.Minute)
	assert.True(t, probe.IsReachable(context.Background()))
	assert.Equal(t, int32(2), dials.Load())
}

func TestDialProbe_CoalescesConcurrentChecks(t *testing.T) {
	var dials atomic.Int32
	release := make(chan struct{})
	probe := NewDialProbe("remote:443", time.Second, time.Minute, newDiscardLogger())
	probe.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
		dials.Add(1)
		<-release
		client, server := net.Pipe()
		server.Close()

		return client, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]bool, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = probe.IsReachable(context.Background())
		}()
	}

	// Give every caller time to join the in-flight probe before releasing it
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.True(t, r)
	}
	assert.LessOrEqual(t, dials.Load(), int32(callers))
	assert.GreaterOrEqual(t, dials.Load(), int32(1))
}

func TestNew_SelectsImplementation(t *testing.T) {
	tests := []struct {
		mode    string
		want    any
		wantErr bool
	}{
		{mode: config.ConnectivityModeOnline, want: &StaticProbe{}},
		{mode: config.ConnectivityModeOffline, want: &StaticProbe{}},
		{mode: config.ConnectivityModeDial, want: &DialProbe{}},
		{mode: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &config.Config{Connectivity: &config.ConnectivityConfig{Mode: tt.mode}}
			cfg.ApplyDefaults()

			probe, err := New(Params{Config: cfg, Logger: newDiscardLogger()})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, probe)
		})
	}
}
