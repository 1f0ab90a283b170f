package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidStreamConfigs indicates invalid stream settings
	// (for example, a negative event buffer size).
	ErrInvalidStreamConfigs = errors.New("invalid stream configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero keep-alive interval with the worker enabled).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
