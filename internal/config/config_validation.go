// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Stream.EventBuffer < 0 {
		return ErrInvalidStreamConfigs
	}

	if cfg.Workers.KeepAliveEnabled && cfg.Workers.KeepAliveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
