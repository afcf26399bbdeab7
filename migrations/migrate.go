package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite3/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies the embedded schema migrations for the given goose dialect
// ("sqlite3" or "pgx"). The SQL differs per backend (autoincrement keys,
// timestamp defaults), so each dialect keeps its own migration directory.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "sqlite3"
	if dialect == "pgx" {
		dir = "postgres"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
