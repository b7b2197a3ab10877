package store

import (
	"context"
	"fmt"

	"github.com/avoronov/go-library-api/internal/config"
	"github.com/avoronov/go-library-api/internal/logger"
)

// Storages bundles all repositories behind a single startup handle.
type Storages struct {
	Users UserRepository
	Books BookRepository

	db *DB // nil for the memory driver
}

// NewStorages opens the storage backend selected by cfg and wires the
// repositories on top of it.
//
// Drivers:
//   - "postgres" — pgx over database/sql
//   - "sqlite"   — file-backed SQLite
//   - "memory" / "" — in-process store for local development and tests
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case "postgres":
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Users: NewUserRepository(db, log),
			Books: NewBookRepository(db, log),
			db:    db,
		}, nil

	case "sqlite":
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Users: NewUserRepository(db, log),
			Books: NewBookRepository(db, log),
			db:    db,
		}, nil

	case "memory", "":
		log.Info().Msg("using in-process memory storage")
		mem := newMemoryStore()
		return &Storages{Users: mem, Books: mem}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
}

// NewMemoryStorages returns storages backed by the in-process memory store.
// Intended for tests.
func NewMemoryStorages() *Storages {
	mem := newMemoryStore()
	return &Storages{Users: mem, Books: mem}
}

// Migrate applies the embedded schema migrations. It is a no-op for the
// memory driver.
func (s *Storages) Migrate() error {
	if s.db == nil {
		return nil
	}
	return s.db.Migrate()
}

// Ping reports whether the storage backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the underlying database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
