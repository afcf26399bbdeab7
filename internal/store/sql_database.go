package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/keypass/internal/config"
	"github.com/MKhiriev/keypass/internal/logger"
	"github.com/MKhiriev/keypass/migrations"
)

// DB wraps the shared *sql.DB together with everything the repositories
// need that differs between backends: the error classifier, the statement
// builder with the backend's placeholder format ($N for PostgreSQL, ? for
// SQLite), and the dialect label consumed by the migration runner.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	builder         sq.StatementBuilderType
	dialect         string
	logger          *logger.Logger
}

// Migrate runs the idempotent embedded schema migrations for this backend.
// It is called once at startup, outside the request-handling path.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// NewConnect opens the database backend selected by the DSN: a value
// starting with "postgres://" or "postgresql://" connects to PostgreSQL via
// pgx, anything else is treated as an SQLite database file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
