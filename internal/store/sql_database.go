package store

import (
	"database/sql"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/migrations"
)

// DB wraps the standard sql.DB with the application logger and the
// dialect-specific error classifier selected at connect time.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateClient applies the embedded client (SQLite) schema migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateServer applies the embedded server (PostgreSQL) schema migrations.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}
