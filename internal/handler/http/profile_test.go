// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/internal/utils"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request whose context already carries the
// authenticated user's id, as the auth middleware would have left it.
func authedRequest(t *testing.T, method, target string, body io.Reader, userID int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

func TestGetProfile_Handler(t *testing.T) {
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Name: "A", Email: "a@x.com"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(t, http.MethodGet, "/api/users/me", nil, 7)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.UserID)
	assert.Equal(t, "a@x.com", body.Email)
}

func TestGetProfile_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile_OwnerGone(t *testing.T) {
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(t, http.MethodGet, "/api/users/me", nil, 7)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile_Handler(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error) {
			require.NotNil(t, update.Name)
			return models.User{UserID: userID, Name: *update.Name}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(t, http.MethodPut, "/api/users/me", strings.NewReader(`{"name":"New Name"}`), 7)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "New Name", body.Name)
}

func TestUpdateProfile_EmptyField(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.UpdateProfileRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profile})

	req := authedRequest(t, http.MethodPut, "/api/users/me", strings.NewReader(`{"name":""}`), 7)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Profile fields cannot be empty.", errorMessage(t, rec))
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	req := authedRequest(t, http.MethodPut, "/api/users/me", strings.NewReader("{not json"), 7)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed.", errorMessage(t, rec))
}
