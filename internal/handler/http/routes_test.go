// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routerServices returns mocks that succeed for every route, so the tests
// below can focus on wiring rather than handler behaviour.
func routerServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{UserID: 1, Email: req.Email}, nil
			},
			loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{UserID: 1, Email: req.Email}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return models.Token{SignedString: "signed.jwt.token"}, nil
			},
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 1}, nil
			},
		},
		ProfileService: &mockProfileService{
			getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
				return models.User{UserID: userID}, nil
			},
			updateProfileFn: func(_ context.Context, userID int64, _ models.UpdateProfileRequest) (models.User, error) {
				return models.User{UserID: userID}, nil
			},
		},
		LeaderboardService: &mockLeaderboardService{
			getLeaderboardFn: func(_ context.Context, _ models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
				return []models.LeaderboardEntry{}, nil
			},
		},
		MessageService: &mockMessageService{
			sendMessageFn: func(_ context.Context, senderID int64, req models.SendMessageRequest) (models.Message, error) {
				return models.Message{MessageID: 1, SenderID: senderID, RecipientID: req.RecipientID, Body: req.Body}, nil
			},
			getConversationFn: func(_ context.Context, _, _ int64) ([]models.Message, error) {
				return []models.Message{}, nil
			},
			getConversationsFn: func(_ context.Context, _ int64) ([]models.Conversation, error) {
				return []models.Conversation{}, nil
			},
		},
	}
}

func TestRoutes_PublicAndProtected(t *testing.T) {
	h := newTestHandler(t, routerServices())
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		withToken  bool
		wantStatus int
	}{
		{name: "register", method: http.MethodPost, target: "/api/auth/register", body: `{"name":"A"}`, wantStatus: http.StatusCreated},
		{name: "login", method: http.MethodPost, target: "/api/auth/login", body: `{"email":"a@x.com"}`, wantStatus: http.StatusOK},
		{name: "me requires token", method: http.MethodGet, target: "/api/users/me", wantStatus: http.StatusUnauthorized},
		{name: "me with token", method: http.MethodGet, target: "/api/users/me", withToken: true, wantStatus: http.StatusOK},
		{name: "update me with token", method: http.MethodPut, target: "/api/users/me", body: `{"name":"B"}`, withToken: true, wantStatus: http.StatusOK},
		{name: "leaderboard requires token", method: http.MethodGet, target: "/api/leaderboard", wantStatus: http.StatusUnauthorized},
		{name: "leaderboard with token", method: http.MethodGet, target: "/api/leaderboard", withToken: true, wantStatus: http.StatusOK},
		{name: "inbox with token", method: http.MethodGet, target: "/api/messages", withToken: true, wantStatus: http.StatusOK},
		{name: "send message with token", method: http.MethodPost, target: "/api/messages", body: `{"recipientId":2,"body":"hi"}`, withToken: true, wantStatus: http.StatusCreated},
		{name: "unknown route", method: http.MethodGet, target: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.withToken {
				req.Header.Set("Authorization", "Bearer valid.jwt.token")
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestRoutes_TraceIDPropagated verifies that every response carries a trace id
// and that an inbound one is echoed back unchanged.
func TestRoutes_TraceIDPropagated(t *testing.T) {
	h := newTestHandler(t, routerServices())
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(traceIDHeader, "trace-123")
	rec = httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

// TestRoutes_BodyLimit verifies that a payload over the request cap is
// rejected instead of being buffered.
func TestRoutes_BodyLimit(t *testing.T) {
	h := newTestHandler(t, routerServices())
	router := h.Init()

	oversized := strings.Repeat("x", maxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":"`+oversized+`"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
