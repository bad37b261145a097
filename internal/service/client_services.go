package service

import (
	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
)

// ClientServices aggregates the client-side services consumed by the TUI.
type ClientServices struct {
	AuthService        ClientAuthService
	ProfileService     ClientProfileService
	LeaderboardService ClientLeaderboardService
	MessageService     ClientMessageService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:        NewClientAuthService(serverAdapter, logger),
		ProfileService:     NewClientProfileService(serverAdapter, logger),
		LeaderboardService: NewClientLeaderboardService(serverAdapter, logger),
		MessageService:     NewClientMessageService(serverAdapter, logger),
	}
}
