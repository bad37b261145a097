package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Register validates the form input locally, mirroring the server's own
// checks, then submits it. Local failures use the same message texts the
// server would answer with, so the user sees one vocabulary either way.
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.Role == "" || req.Sport == "" || req.Location == "" {
		return models.RegisterResponse{}, ErrInvalidDataProvided
	}
	if !req.Role.IsValid() {
		return models.RegisterResponse{}, ErrInvalidRole
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("register on server failed")
		return models.RegisterResponse{}, fmt.Errorf("register on server: %w", err)
	}

	return resp, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if req.Email == "" || req.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("login on server failed")
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	return models.Session{Token: resp.Token, User: resp.User}, nil
}

// Logout drops the bearer token held by the adapter. Purely local; the
// server keeps no session state to invalidate.
func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
	a.logger.Info().Msg("logged out, token cleared")
}
