package config

import (
	"fmt"
	"time"
)

// Default sync tunables applied when the merged configuration leaves them
// unset. The batch size bounds concurrent payload fetches; the throttle is
// the minimum time between two non-forced sync passes.
const (
	DefaultSyncInterval  = 5 * time.Minute
	DefaultSyncThrottle  = 30 * time.Second
	DefaultSyncBatchSize = 5
	DefaultTimeout       = 15 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache contains local cache settings for the client.
type ClientCache struct {
	// Path is the SQLite file path for the persistent store. An empty
	// path selects the in-memory store outright.
	Path string
}

// ClientSync contains the sync engine tunables.
type ClientSync struct {
	Interval  time.Duration
	Throttle  time.Duration
	BatchSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Cache contains client storage settings.
	Cache ClientCache
	// Sync contains sync engine tunables.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset tunables, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			Path: cfg.Storage.Cache.Path,
		},
		Sync: ClientSync{
			Interval:  cfg.Sync.Interval,
			Throttle:  cfg.Sync.Throttle,
			BatchSize: cfg.Sync.BatchSize,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.Throttle <= 0 {
		cfg.Sync.Throttle = DefaultSyncThrottle
	}
	if cfg.Sync.BatchSize <= 0 {
		cfg.Sync.BatchSize = DefaultSyncBatchSize
	}
}
