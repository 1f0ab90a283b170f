// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// work-link client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Adapter holds network address and timeout settings for the REST
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Stream holds settings for the server-push stream layer.
	Stream Stream `envPrefix:"STREAM_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings used by the outbound REST transport.
type Adapter struct {
	// HTTPAddress is the marketplace server base URL, with or without a
	// scheme (e.g. "https://api.worklink.dev" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound REST requests.
	// It does not apply to stream connections, which are long-lived.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Stream holds settings for the realtime event stream layer.
type Stream struct {
	// EventBuffer is the per-subscriber event channel capacity. Events
	// beyond this backlog are dropped for the slow subscriber.
	// Env: STREAM_EVENT_BUFFER
	EventBuffer int `env:"EVENT_BUFFER"`
}

// Storage groups the configuration for the client's local persistence.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path used for the session database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// KeepAliveEnabled turns on the stream keep-alive worker that
	// periodically re-issues ConnectAll while a session exists.
	// Env: WORKERS_KEEPALIVE_ENABLED
	KeepAliveEnabled bool `env:"KEEPALIVE_ENABLED"`

	// KeepAliveInterval defines how often the keep-alive worker runs.
	// Env: WORKERS_KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}
