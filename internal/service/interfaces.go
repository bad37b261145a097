package service

import (
	"context"

	"github.com/sparkkhoj/spark-khoj/models"
)

// AuthService covers the credential flows: account creation, login
// verification, and the JWT lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and updates the authenticated user's own profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error)
}

// LeaderboardService produces the ranked user listing.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

// MessageService covers direct messaging between users.
type MessageService interface {
	SendMessage(ctx context.Context, senderID int64, req models.SendMessageRequest) (models.Message, error)
	GetConversation(ctx context.Context, userID, correspondentID int64) ([]models.Message, error)
	GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
}
