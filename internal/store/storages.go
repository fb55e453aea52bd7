package store

import (
	"context"
	"fmt"

	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
)

// Storages groups the backend's repositories into a single value that can be
// passed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	PlayerStateRepository PlayerStateRepository
	ContentCatalog        ContentCatalog
}

// NewStorages initialises the backend storage layer. With a configured
// PostgreSQL DSN it connects, runs pending migrations and wires the
// SQL-backed repositories; with an empty DSN it falls back to in-memory
// repositories so the backend can run without provisioning. The content
// catalog is always in-memory, loaded from the configured seed file or the
// built-in sample set.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	catalog, err := NewContentCatalog(cfg.Server.ContentSeedPath, logger)
	if err != nil {
		return nil, fmt.Errorf("content catalog init failed: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		logger.Warn().Msg("no database DSN configured, using in-memory repositories")
		return &Storages{
			UserRepository:        NewMemoryUserRepository(),
			PlayerStateRepository: NewMemoryPlayerStateRepository(),
			ContentCatalog:        catalog,
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		PlayerStateRepository: NewPlayerStateRepository(db, logger),
		ContentCatalog:        catalog,
	}, nil
}
