package service

import (
	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	PlayerService  PlayerService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ContentService: NewContentService(storages.ContentCatalog, logger),
		PlayerService:  NewPlayerService(storages.PlayerStateRepository, logger),
	}
}
