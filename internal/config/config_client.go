package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a value is absent from every
// configuration source.
const (
	DefaultRequestTimeout    = 15 * time.Second
	DefaultEventBuffer       = 32
	DefaultKeepAliveInterval = 30 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the marketplace server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound REST requests.
	RequestTimeout time.Duration
}

// ClientStream holds realtime stream layer settings.
type ClientStream struct {
	// EventBuffer is the per-subscriber event channel capacity.
	EventBuffer int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path for the session database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// KeepAliveEnabled turns the stream keep-alive worker on.
	KeepAliveEnabled bool
	// KeepAliveInterval defines how often the keep-alive worker re-issues
	// ConnectAll.
	KeepAliveInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Stream contains realtime stream settings.
	Stream ClientStream
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for optional values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Stream: ClientStream{
			EventBuffer: cfg.Stream.EventBuffer,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			KeepAliveEnabled:  cfg.Workers.KeepAliveEnabled,
			KeepAliveInterval: cfg.Workers.KeepAliveInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Stream.EventBuffer == 0 {
		cfg.Stream.EventBuffer = DefaultEventBuffer
	}
	if cfg.Workers.KeepAliveInterval == 0 {
		cfg.Workers.KeepAliveInterval = DefaultKeepAliveInterval
	}
}
