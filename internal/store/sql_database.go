package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/migrations"
)

// DB wraps a database/sql connection together with the dialect metadata the
// repositories need: the goose dialect name for migrations and the parameter
// placeholder format for query building.
type DB struct {
	*sql.DB
	dialect     string
	placeholder sq.PlaceholderFormat
	logger      *logger.Logger
}

// Migrate applies all embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder configured with the
// connection's placeholder format ($n for postgres, ? for sqlite).
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
