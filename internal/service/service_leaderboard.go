package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/models"
)

// leaderboardService implements LeaderboardService on top of the user
// repository. Ordering and rank computation live in the database; this layer
// only validates the filter.
type leaderboardService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewLeaderboardService(userRepository store.UserRepository, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (l *leaderboardService) GetLeaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if filter.Role != "" && !filter.Role.IsValid() {
		log.Error().Str("role", string(filter.Role)).Msg("invalid leaderboard role filter")
		return nil, ErrInvalidRole
	}

	entries, err := l.userRepository.Leaderboard(ctx, filter)
	if err != nil {
		log.Err(err).Msg("leaderboard query failed")
		return nil, fmt.Errorf("leaderboard query failed: %w", err)
	}

	return entries, nil
}
