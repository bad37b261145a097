package service

import (
	"context"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMessageRepository implements store.MessageRepository for unit tests.
type mockMessageRepository struct {
	saveMessageFn       func(ctx context.Context, message models.Message) (models.Message, error)
	findConversationFn  func(ctx context.Context, userID, correspondentID int64) ([]models.Message, error)
	findConversationsFn func(ctx context.Context, userID int64) ([]models.Conversation, error)
}

func (m *mockMessageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return m.saveMessageFn(ctx, message)
}

func (m *mockMessageRepository) FindConversation(ctx context.Context, userID, correspondentID int64) ([]models.Message, error) {
	return m.findConversationFn(ctx, userID, correspondentID)
}

func (m *mockMessageRepository) FindConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return m.findConversationsFn(ctx, userID)
}

func TestSendMessage(t *testing.T) {
	repo := &mockMessageRepository{
		saveMessageFn: func(_ context.Context, message models.Message) (models.Message, error) {
			message.MessageID = 1
			return message, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	sent, err := svc.SendMessage(context.Background(), 7, models.SendMessageRequest{
		RecipientID: 9,
		Body:        "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sent.MessageID)
	assert.Equal(t, int64(7), sent.SenderID)
	assert.Equal(t, int64(9), sent.RecipientID)
}

func TestSendMessage_InvalidRequest(t *testing.T) {
	repo := &mockMessageRepository{
		saveMessageFn: func(_ context.Context, _ models.Message) (models.Message, error) {
			t.Fatal("SaveMessage must not be called for invalid input")
			return models.Message{}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	tests := []struct {
		name string
		req  models.SendMessageRequest
	}{
		{name: "empty body", req: models.SendMessageRequest{RecipientID: 9}},
		{name: "zero recipient", req: models.SendMessageRequest{Body: "hello"}},
		{name: "negative recipient", req: models.SendMessageRequest{RecipientID: -1, Body: "hello"}},
		{name: "self send", req: models.SendMessageRequest{RecipientID: 7, Body: "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendMessage(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSendMessage_UnknownRecipient(t *testing.T) {
	repo := &mockMessageRepository{
		saveMessageFn: func(_ context.Context, _ models.Message) (models.Message, error) {
			return models.Message{}, store.ErrRecipientNotFound
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	_, err := svc.SendMessage(context.Background(), 7, models.SendMessageRequest{RecipientID: 404, Body: "hello"})
	assert.ErrorIs(t, err, store.ErrRecipientNotFound)
}

func TestGetConversation(t *testing.T) {
	repo := &mockMessageRepository{
		findConversationFn: func(_ context.Context, userID, correspondentID int64) ([]models.Message, error) {
			return []models.Message{
				{MessageID: 1, SenderID: userID, RecipientID: correspondentID, Body: "hi"},
				{MessageID: 2, SenderID: correspondentID, RecipientID: userID, Body: "hey"},
			}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	messages, err := svc.GetConversation(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestGetConversation_InvalidCorrespondent(t *testing.T) {
	svc := NewMessageService(&mockMessageRepository{}, logger.Nop())

	_, err := svc.GetConversation(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetConversations(t *testing.T) {
	repo := &mockMessageRepository{
		findConversationsFn: func(_ context.Context, userID int64) ([]models.Conversation, error) {
			return []models.Conversation{
				{CorrespondentID: 9, CorrespondentName: "B", LastMessage: models.Message{Body: "hey"}},
			}, nil
		},
	}
	svc := NewMessageService(repo, logger.Nop())

	conversations, err := svc.GetConversations(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "B", conversations[0].CorrespondentName)
}
