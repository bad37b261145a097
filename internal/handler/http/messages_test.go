// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessages_Inbox(t *testing.T) {
	messages := &mockMessageService{
		getConversationsFn: func(_ context.Context, userID int64) ([]models.Conversation, error) {
			assert.Equal(t, int64(7), userID)
			return []models.Conversation{
				{CorrespondentID: 9, CorrespondentName: "B", LastMessage: models.Message{Body: "hey"}},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodGet, "/api/messages", nil, 7)
	rec := httptest.NewRecorder()

	h.getMessages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "B", body[0].CorrespondentName)
}

func TestGetMessages_Conversation(t *testing.T) {
	messages := &mockMessageService{
		getConversationFn: func(_ context.Context, userID, correspondentID int64) ([]models.Message, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(9), correspondentID)
			return []models.Message{
				{MessageID: 1, SenderID: 7, RecipientID: 9, Body: "hi"},
				{MessageID: 2, SenderID: 9, RecipientID: 7, Body: "hey"},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodGet, "/api/messages?with=9", nil, 7)
	rec := httptest.NewRecorder()

	h.getMessages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "hi", body[0].Body)
}

func TestGetMessages_BadCorrespondentID(t *testing.T) {
	h := newTestHandler(t, &service.Services{MessageService: &mockMessageService{}})

	req := authedRequest(t, http.MethodGet, "/api/messages?with=abc", nil, 7)
	rec := httptest.NewRecorder()

	h.getMessages(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMessages_EmptyConversationIsJSONArray(t *testing.T) {
	messages := &mockMessageService{
		getConversationFn: func(_ context.Context, _, _ int64) ([]models.Message, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodGet, "/api/messages?with=9", nil, 7)
	rec := httptest.NewRecorder()

	h.getMessages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSendMessage_Handler(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, senderID int64, req models.SendMessageRequest) (models.Message, error) {
			assert.Equal(t, int64(7), senderID)
			return models.Message{MessageID: 1, SenderID: senderID, RecipientID: req.RecipientID, Body: req.Body}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodPost, "/api/messages",
		strings.NewReader(`{"recipientId":9,"body":"hello"}`), 7)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.MessageID)
	assert.Equal(t, "hello", body.Body)
}

func TestSendMessage_Invalid(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, _ int64, _ models.SendMessageRequest) (models.Message, error) {
			return models.Message{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodPost, "/api/messages", strings.NewReader(`{"recipientId":9}`), 7)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please enter a recipient and a message.", errorMessage(t, rec))
}

func TestSendMessage_UnknownRecipient(t *testing.T) {
	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, _ int64, _ models.SendMessageRequest) (models.Message, error) {
			return models.Message{}, store.ErrRecipientNotFound
		},
	}
	h := newTestHandler(t, &service.Services{MessageService: messages})

	req := authedRequest(t, http.MethodPost, "/api/messages",
		strings.NewReader(`{"recipientId":404,"body":"hello"}`), 7)
	rec := httptest.NewRecorder()

	h.sendMessage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Recipient not found.", errorMessage(t, rec))
}
