package store

import (
	"context"
	"fmt"

	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
)

// NewPersistentStore initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateClient].
//  3. Constructs and returns an SQLite-backed [PersistentStore].
//
// Storage failure is never fatal to the application: if the database cannot
// be opened or migrated, the error is logged and an in-memory
// [PersistentStore] is returned instead. Sync and gameplay keep working for
// the session; only durability across restarts is lost.
func NewPersistentStore(cfg config.ClientCache, logger *logger.Logger) PersistentStore {
	logger.Info().Msg("creating persistent store...")

	db, err := newDurableStore(cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("durable storage unavailable, falling back to in-memory store")
		return NewMemoryPersistentStore()
	}

	return db
}

func newDurableStore(cfg config.ClientCache, logger *logger.Logger) (PersistentStore, error) {
	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLitePersistentStore(db, logger), nil
}
