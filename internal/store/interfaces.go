package store

import (
	"context"

	"github.com/sparkkhoj/spark-khoj/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error)
	Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

// MessageRepository is the persistence contract for direct messages.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message models.Message) (models.Message, error)
	FindConversation(ctx context.Context, userID, correspondentID int64) ([]models.Message, error)
	FindConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
}
