package config

import "errors"

// Validation errors returned when a merged configuration is incomplete or
// inconsistent. They are wrapped with details about the offending field.
var (
	// ErrInvalidAppConfigs indicates invalid application settings, for
	// example a missing token sign key or an unknown verify OTP mode.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPredictConfigs indicates a test share outside [0, 1).
	ErrInvalidPredictConfigs = errors.New("invalid predict configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
