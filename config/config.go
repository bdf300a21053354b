package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultProbeAddress     = "firestore.googleapis.com:443"
	defaultProbeDialTimeout = 2 * time.Second
	defaultRemoteTimeout    = 5 * time.Second
	defaultSlowQuery        = 200 * time.Millisecond
	defaultRadiusMeters     = 400
	defaultMaxRadiusMeters  = 5000
)

// Connectivity probe modes
const (
	ConnectivityModeDial    = "dial"
	ConnectivityModeOnline  = "online"
	ConnectivityModeOffline = "offline"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres hosts the local snapshot store
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// LocalStore configuration for the local snapshot store
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// Firebase configuration for the remote document store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Connectivity configuration for the remote reachability probe
	Connectivity *ConnectivityConfig `json:"connectivity" yaml:"connectivity"`

	// Store configuration for the tiered remote/local repositories
	Store *StoreConfig `json:"store" yaml:"store"`

	// Proximity configuration for the proximity resolver
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project backing the remote document store
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// LocalStoreConfig defines local snapshot store behaviour
type LocalStoreConfig struct {
	// Create or update the snapshot tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks snapshot queries slower than this as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// ConnectivityConfig defines how remote reachability is decided
type ConnectivityConfig struct {
	// Mode is "dial" (TCP probe), "online" or "offline" (fixed verdicts)
	Mode string `json:"mode" yaml:"mode"`

	// Address dialed by the probe, host:port
	Address string `json:"address" yaml:"address"`

	// DialTimeout bounds a single probe
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`

	// CacheTTL is how long a verdict is reused before probing again
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// StoreConfig defines the remote stage of tiered reads
type StoreConfig struct {
	// RemoteTimeout bounds the remote query; on expiry the read falls back to local data
	RemoteTimeout time.Duration `json:"remoteTimeout" yaml:"remoteTimeout"`

	// RemoteMaxAttempts is the number of remote attempts per read (1 = no retry)
	RemoteMaxAttempts int `json:"remoteMaxAttempts" yaml:"remoteMaxAttempts"`
}

// ProximityConfig defines proximity resolver behaviour
type ProximityConfig struct {
	// DefaultRadius in meters, used by the HTTP layer when the caller omits one
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`

	// MaxRadius in meters accepted by the HTTP layer
	MaxRadius float64 `json:"maxRadius" yaml:"maxRadius"`

	// PrefilterBounds makes user scans query a bounding box around the origin instead of every user
	PrefilterBounds bool `json:"prefilterBounds" yaml:"prefilterBounds"`

	// Bounding-box pre-filter radius multiplier (e.g., 1.3 = box covers 1.3x the search radius)
	PreFilterRadiusMultiplier float64 `json:"preFilterRadiusMultiplier" yaml:"preFilterRadiusMultiplier"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills in missing optional sections and zero values.
func (cfg *Config) ApplyDefaults() {
	if cfg.LocalStore == nil {
		cfg.LocalStore = &LocalStoreConfig{}
	}
	if cfg.LocalStore.SlowQueryThreshold <= 0 {
		cfg.LocalStore.SlowQueryThreshold = defaultSlowQuery
	}

	if cfg.Connectivity == nil {
		cfg.Connectivity = &ConnectivityConfig{}
	}
	if cfg.Connectivity.Mode == "" {
		cfg.Connectivity.Mode = ConnectivityModeDial
	}
	if cfg.Connectivity.Address == "" {
		cfg.Connectivity.Address = defaultProbeAddress
	}
	if cfg.Connectivity.DialTimeout <= 0 {
		cfg.Connectivity.DialTimeout = defaultProbeDialTimeout
	}
	if cfg.Connectivity.CacheTTL < 0 {
		cfg.Connectivity.CacheTTL = 0
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.RemoteTimeout <= 0 {
		cfg.Store.RemoteTimeout = defaultRemoteTimeout
	}
	if cfg.Store.RemoteMaxAttempts <= 0 {
		cfg.Store.RemoteMaxAttempts = 1
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.DefaultRadius <= 0 {
		cfg.Proximity.DefaultRadius = defaultRadiusMeters
	}
	if cfg.Proximity.MaxRadius <= 0 {
		cfg.Proximity.MaxRadius = defaultMaxRadiusMeters
	}
	if cfg.Proximity.PreFilterRadiusMultiplier < 1 {
		cfg.Proximity.PreFilterRadiusMultiplier = 1
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
