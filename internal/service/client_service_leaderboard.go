package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

type clientLeaderboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientLeaderboardService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientLeaderboardService {
	return &clientLeaderboardService{adapter: serverAdapter, logger: logger}
}

func (l *clientLeaderboardService) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	entries, err := l.adapter.Leaderboard(ctx, filter)
	if err != nil {
		l.logger.Err(err).Msg("leaderboard fetch failed")
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}

	return entries, nil
}
