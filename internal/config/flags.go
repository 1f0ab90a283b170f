package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://api.worklink.dev or localhost:8080)
//	-d session database path (SQLite file)
//	-c/-config json file path with configs
//	-request-timeout REST request timeout (e.g., "30s", "1m")
//	-event-buffer per-subscriber stream event buffer size
//	-keepalive enable the stream keep-alive worker
//	-keepalive-interval keep-alive worker period (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var eventBuffer int
	var keepAliveEnabled bool
	var keepAliveInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Session database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "REST request timeout (e.g., 30s, 1m)")
	flag.IntVar(&eventBuffer, "event-buffer", 0, "Per-subscriber stream event buffer size")
	flag.BoolVar(&keepAliveEnabled, "keepalive", false, "Enable the stream keep-alive worker")
	flag.DurationVar(&keepAliveInterval, "keepalive-interval", 0, "Keep-alive worker period (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Stream: Stream{
			EventBuffer: eventBuffer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			KeepAliveEnabled:  keepAliveEnabled,
			KeepAliveInterval: keepAliveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
