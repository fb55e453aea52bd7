package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql
var clientMigrations embed.FS

//go:embed server/*.sql
var serverMigrations embed.FS

// MigrateClient applies the SQLite schema for the client's local cache.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientMigrations, "client", "sqlite3")
}

// MigrateServer applies the PostgreSQL schema for the reference backend.
func MigrateServer(db *sql.DB) error {
	return migrate(db, serverMigrations, "server", "pgx")
}

func migrate(db *sql.DB, fs embed.FS, dir string, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(fs)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
