// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the spark-khoj server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Every non-2xx server response carries a JSON body {"message"}; the adapter
// surfaces it as an [*Error] whose Error() text is exactly that message, so
// upper layers can display failures verbatim.
package adapter

import (
	"context"

	"github.com/sparkkhoj/spark-khoj/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the spark-khoj
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to [*Error] values.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server. Registration does
	// not authenticate: the server answers with a confirmation message and the
	// new user's id, and the caller is expected to log in next.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the token together with the full
	// user record (password hash stripped server-side).
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me fetches the authenticated user's own profile.
	Me(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial update to the authenticated user's
	// profile and returns the updated record. Nil fields are left unchanged.
	UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error)

	// Leaderboard fetches the ranked user listing. Zero-valued filter fields
	// are omitted from the query string.
	Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)

	// Conversations fetches the authenticated user's inbox: the latest
	// message exchanged with each correspondent.
	Conversations(ctx context.Context) ([]models.Conversation, error)

	// Conversation fetches the full message history with one correspondent,
	// oldest first.
	Conversation(ctx context.Context, correspondentID int64) ([]models.Message, error)

	// SendMessage delivers a direct message and returns the stored record.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)
}
