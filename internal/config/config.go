// Package config loads, merges, and validates the smartcards configuration.
//
// Values come from three sources merged in priority order (first non-zero
// value wins): environment variables, command-line flags, and an optional
// JSON file whose path is itself taken from the first two sources.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// smartcards client and the development blob store. It is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Remote holds the remote document store endpoint and credentials used
	// by the client.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds local persistence settings for the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds sync engine timing knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds listen address and token settings for the development
	// blob store binary.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string stamped into snapshot
	// metadata on save.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds the client's view of the remote document store.
type Remote struct {
	// Address is the base URL of the remote store
	// (e.g. "http://localhost:8080").
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// AccessToken is the bearer token presented on every store request.
	// Env: REMOTE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RequestTimeout bounds every outbound store call; timeouts surface as
	// transient network errors and are retried on the next cycle.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite mirror.
type DB struct {
	// DSN is the SQLite file path used for the snapshot mirror and the
	// crash-recovery slot.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the timing parameters of the sync engine.
type Sync struct {
	// DebounceDelay is the quiet period after the last local mutation
	// before an autosave attempt fires.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// PollInterval is the fixed interval of the drift poll.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// GuardWindow is the minimum distance from the last local mutation
	// before a drift poll may pull remote content. Environmental triggers
	// bypass the poll interval but never this window.
	// Env: SYNC_GUARD_WINDOW
	GuardWindow time.Duration `env:"GUARD_WINDOW"`
}

// Server holds settings for the development blob store.
type Server struct {
	// HTTPAddress is the TCP address the store listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey is the secret used to sign and verify bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in priority order (first non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
