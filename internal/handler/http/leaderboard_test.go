// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_Handler(t *testing.T) {
	board := &mockLeaderboardService{
		getLeaderboardFn: func(_ context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
			assert.Equal(t, models.RoleAthlete, filter.Role)
			assert.Equal(t, "Football", filter.Sport)
			assert.Equal(t, uint64(10), filter.Limit)
			return []models.LeaderboardEntry{
				{Rank: 1, UserID: 3, Name: "C", TotalScore: 90},
				{Rank: 2, UserID: 1, Name: "A", TotalScore: 40},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{LeaderboardService: board})

	req := authedRequest(t, http.MethodGet, "/api/leaderboard?role=Athlete&sport=Football&limit=10", nil, 7)
	rec := httptest.NewRecorder()

	h.leaderboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, 1, body[0].Rank)
	assert.Equal(t, int64(3), body[0].UserID)
}

func TestLeaderboard_EmptyBoardIsJSONArray(t *testing.T) {
	board := &mockLeaderboardService{
		getLeaderboardFn: func(_ context.Context, _ models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, &service.Services{LeaderboardService: board})

	req := authedRequest(t, http.MethodGet, "/api/leaderboard", nil, 7)
	rec := httptest.NewRecorder()

	h.leaderboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLeaderboard_InvalidLimit(t *testing.T) {
	h := newTestHandler(t, &service.Services{LeaderboardService: &mockLeaderboardService{}})

	for _, target := range []string{
		"/api/leaderboard?limit=abc",
		"/api/leaderboard?limit=0",
		"/api/leaderboard?limit=-5",
	} {
		req := authedRequest(t, http.MethodGet, target, nil, 7)
		rec := httptest.NewRecorder()

		h.leaderboard(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestLeaderboard_InvalidRoleFilter(t *testing.T) {
	board := &mockLeaderboardService{
		getLeaderboardFn: func(_ context.Context, _ models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
			return nil, service.ErrInvalidRole
		},
	}
	h := newTestHandler(t, &service.Services{LeaderboardService: board})

	req := authedRequest(t, http.MethodGet, "/api/leaderboard?role=Referee", nil, 7)
	rec := httptest.NewRecorder()

	h.leaderboard(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid leaderboard filters.", errorMessage(t, rec))
}
