package service

import (
	"context"

	"github.com/sparkkhoj/spark-khoj/models"
)

// ClientAuthService defines the client-side contract for registration and
// login. Implementations validate the form input before touching the network
// so the user gets immediate feedback, then delegate to the server adapter.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not authenticate;
	// the caller is expected to log in with the same credentials next.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates against the server and returns the in-memory
	// session (token plus user record). The adapter keeps the token for all
	// subsequent authenticated calls.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout clears the adapter's stored token.
	Logout()
}

// ClientProfileService reads and updates the logged-in user's profile.
type ClientProfileService interface {
	Me(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error)
}

// ClientLeaderboardService fetches the ranked listing for the leaderboard
// screen.
type ClientLeaderboardService interface {
	Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

// ClientMessageService backs the messages screen: the inbox overview, a
// single conversation, and sending.
type ClientMessageService interface {
	Conversations(ctx context.Context) ([]models.Conversation, error)
	Conversation(ctx context.Context, correspondentID int64) ([]models.Message, error)
	Send(ctx context.Context, req models.SendMessageRequest) (models.Message, error)
}
