package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source merging cannot tell which runtime (client or devstore) the
// config will serve, so requiredness is enforced by the per-runtime views
// instead; the merged config itself is always acceptable.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.Address == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.DebounceDelay <= 0 || cfg.Sync.PollInterval <= 0 || cfg.Sync.GuardWindow < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *DevStoreConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
