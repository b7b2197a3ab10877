// Package service holds the application core: credential verification and
// token lifecycle, policy-based authorization, and the catalog with its
// checkout state machine. Handlers call into this package and translate its
// sentinel errors to HTTP statuses; repositories below it only move data.
package service

import (
	"errors"

	"github.com/avoronov/go-library-api/internal/config"
	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/store"
)

// ErrMissingTokenSignKey aborts startup when no signing secret is configured.
// Running without one would make every issued token forgeable.
var ErrMissingTokenSignKey = errors.New("token sign key is not set")

// Services bundles the application core behind a single handle for the
// transport layer.
type Services struct {
	Auth    AuthService
	Authz   AuthzService
	Library LibraryService
}

// NewServices wires the services on top of the given storages.
func NewServices(cfg config.App, storages *store.Storages, log *logger.Logger) (*Services, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingTokenSignKey
	}

	return &Services{
		Auth:    NewAuthService(cfg, storages.Users, log),
		Authz:   NewAuthzService(log),
		Library: NewLibraryService(storages.Books, log),
	}, nil
}
