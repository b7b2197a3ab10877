package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token signing key is a startup-time fatal condition: tokens can
// neither be issued nor verified without it, and discovering that per-request
// would turn every login into a server error.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenAudience == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "postgres", "sqlite":
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case "memory", "":
		// in-process store needs no DSN
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
