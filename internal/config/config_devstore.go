package config

import (
	"fmt"
	"time"
)

// DevStoreServer holds listen and token settings for the development blob
// store.
type DevStoreServer struct {
	// HTTPAddress is the listen address, "host:port".
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// TokenSignKey signs and verifies bearer tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// DevStoreConfig is the configuration view for the devstore binary.
type DevStoreConfig struct {
	// Server contains devstore network and token settings.
	Server DevStoreServer
}

// Devstore defaults applied when the corresponding setting is unset.
const (
	DefaultTokenIssuer   = "smartcards-devstore"
	DefaultTokenDuration = 24 * time.Hour
)

// GetDevStoreConfig builds and validates the devstore config view from the
// merged structured configuration.
func GetDevStoreConfig() (*DevStoreConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	storeCfg := &DevStoreConfig{
		Server: DevStoreServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			TokenSignKey:   cfg.Server.TokenSignKey,
			TokenIssuer:    cfg.Server.TokenIssuer,
			TokenDuration:  cfg.Server.TokenDuration,
		},
	}

	if storeCfg.Server.TokenIssuer == "" {
		storeCfg.Server.TokenIssuer = DefaultTokenIssuer
	}
	if storeCfg.Server.TokenDuration == 0 {
		storeCfg.Server.TokenDuration = DefaultTokenDuration
	}

	return storeCfg, storeCfg.validate()
}
