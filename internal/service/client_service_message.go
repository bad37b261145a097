package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

type clientMessageService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientMessageService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientMessageService {
	return &clientMessageService{adapter: serverAdapter, logger: logger}
}

func (m *clientMessageService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	conversations, err := m.adapter.Conversations(ctx)
	if err != nil {
		m.logger.Err(err).Msg("conversations fetch failed")
		return nil, fmt.Errorf("fetch conversations: %w", err)
	}

	return conversations, nil
}

func (m *clientMessageService) Conversation(ctx context.Context, correspondentID int64) ([]models.Message, error) {
	if correspondentID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	messages, err := m.adapter.Conversation(ctx, correspondentID)
	if err != nil {
		m.logger.Err(err).Int64("with", correspondentID).Msg("conversation fetch failed")
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}

	return messages, nil
}

func (m *clientMessageService) Send(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	if req.Body == "" || req.RecipientID <= 0 {
		return models.Message{}, ErrInvalidDataProvided
	}

	sent, err := m.adapter.SendMessage(ctx, req)
	if err != nil {
		m.logger.Err(err).Int64("recipient", req.RecipientID).Msg("message send failed")
		return models.Message{}, fmt.Errorf("send message: %w", err)
	}

	return sent, nil
}
