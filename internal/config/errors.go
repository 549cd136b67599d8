package config

import "errors"

// Validation errors returned by the per-runtime config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, missing base URL or request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote store configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty SQLite DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine timing settings
	// (for example, a zero debounce delay or poll interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates invalid devstore settings
	// (for example, missing listen address or token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
