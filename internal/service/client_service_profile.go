package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, logger: logger}
}

func (p *clientProfileService) Me(ctx context.Context) (models.User, error) {
	user, err := p.adapter.Me(ctx)
	if err != nil {
		p.logger.Err(err).Msg("profile fetch failed")
		return models.User{}, fmt.Errorf("fetch profile: %w", err)
	}

	return user, nil
}

// UpdateProfile rejects updates where every field is nil: the server would
// answer 200 without changing anything, which only confuses the user.
func (p *clientProfileService) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error) {
	if update.Name == nil && update.Sport == nil && update.Location == nil && update.ProfilePictureURL == nil {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := p.adapter.UpdateProfile(ctx, update)
	if err != nil {
		p.logger.Err(err).Msg("profile update failed")
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}
