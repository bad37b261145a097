package service

import (
	"github.com/sparkkhoj/spark-khoj/internal/config"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/store"
)

// Services aggregates every server-side service behind their interfaces.
type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	LeaderboardService LeaderboardService
	MessageService     MessageService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProfileService:     NewProfileService(storages.UserRepository, logger),
		LeaderboardService: NewLeaderboardService(storages.UserRepository, logger),
		MessageService:     NewMessageService(storages.MessageRepository, logger),
	}
}
