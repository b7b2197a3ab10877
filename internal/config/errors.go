package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. All of them are fatal at
// startup.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// configured. Tokens cannot be issued or verified without it.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token issuer/audience or non-positive duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN for a SQL driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
