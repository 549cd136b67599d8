package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is stamped into snapshot metadata on save.
	Version string
}

// ClientRemote holds network settings used by the remote store adapter.
type ClientRemote struct {
	// Address is the base URL of the remote document store.
	Address string
	// AccessToken is the bearer token presented on every request.
	AccessToken string
	// RequestTimeout is the default timeout for outbound store calls.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync groups the sync engine timing knobs.
type ClientSync struct {
	// DebounceDelay is the autosave quiet period.
	DebounceDelay time.Duration
	// PollInterval is the drift poll interval.
	PollInterval time.Duration
	// GuardWindow protects active edit bursts from remote pulls.
	GuardWindow time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains remote store address, token, and timeout.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine timing settings.
	Sync ClientSync
}

// Sync engine defaults applied when the corresponding knob is unset.
const (
	DefaultDebounceDelay = 2 * time.Second
	DefaultPollInterval  = 30 * time.Second
	DefaultGuardWindow   = 5 * time.Second
)

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies sync timing defaults, and validates
// the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Remote: ClientRemote{
			Address:        cfg.Remote.Address,
			AccessToken:    cfg.Remote.AccessToken,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			DebounceDelay: cfg.Sync.DebounceDelay,
			PollInterval:  cfg.Sync.PollInterval,
			GuardWindow:   cfg.Sync.GuardWindow,
		},
	}

	clientCfg.Sync.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (s *ClientSync) applyDefaults() {
	if s.DebounceDelay == 0 {
		s.DebounceDelay = DefaultDebounceDelay
	}
	if s.PollInterval == 0 {
		s.PollInterval = DefaultPollInterval
	}
	if s.GuardWindow == 0 {
		s.GuardWindow = DefaultGuardWindow
	}
}
