package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/models"
)

// profileService implements ProfileService on top of the user repository.
// Ranking stats and the role are not client-writable: the update request
// model has no fields for them, so no code path here can change them.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
// Empty-string values are rejected for name, sport, and location: a field is
// either omitted (nil) or carries a usable value. The profile picture may be
// cleared with an empty string.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if isEmpty(update.Name) || isEmpty(update.Sport) || isEmpty(update.Location) {
		log.Error().Int64("id", userID).Msg("invalid profile update provided")
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := p.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

func isEmpty(s *string) bool {
	return s != nil && *s == ""
}
