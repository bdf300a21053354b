package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: campusradar-test
  log:
    level: info
connectivity:
  mode: online
  dialTimeout: 2s
store:
  remoteTimeout: 3s
proximity:
  defaultRadius: 400
  maxRadius: 5000
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "radartest.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("PROXIMITY_MAXRADIUS", "800")
	t.Setenv("STORE_REMOTETIMEOUT", "750ms")

	cfg, err := LoadWithEnv[Config]("radartest")
	require.NoError(t, err)

	assert.Equal(t, "campusradar-test", cfg.Env.ServiceName)
	assert.Equal(t, ConnectivityModeOnline, cfg.Connectivity.Mode)
	assert.Equal(t, 2*time.Second, cfg.Connectivity.DialTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Store.RemoteTimeout)
	assert.InDelta(t, 800.0, cfg.Proximity.MaxRadius, 1e-9)
	assert.InDelta(t, 400.0, cfg.Proximity.DefaultRadius, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
