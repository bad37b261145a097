package service

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/models"
)

// messageService implements MessageService on top of the message repository.
// Recipient existence is enforced by the foreign key on messages.recipient_id,
// so this layer only validates the request shape.
type messageService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// SendMessage persists a message from senderID to the requested recipient.
//
// Returns:
//   - ErrInvalidDataProvided if the body is empty, the recipient id is not
//     positive, or the sender addresses themselves.
//   - store.ErrRecipientNotFound (wrapped) if the recipient does not exist.
func (m *messageService) SendMessage(ctx context.Context, senderID int64, req models.SendMessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	if req.Body == "" || req.RecipientID <= 0 || req.RecipientID == senderID {
		log.Error().Int64("sender", senderID).Int64("recipient", req.RecipientID).Msg("invalid message provided")
		return models.Message{}, ErrInvalidDataProvided
	}

	saved, err := m.messageRepository.SaveMessage(ctx, models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		log.Err(err).Int64("sender", senderID).Msg("message save failed")
		return models.Message{}, fmt.Errorf("message save failed: %w", err)
	}

	return saved, nil
}

func (m *messageService) GetConversation(ctx context.Context, userID, correspondentID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if correspondentID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	messages, err := m.messageRepository.FindConversation(ctx, userID, correspondentID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("conversation lookup failed")
		return nil, fmt.Errorf("conversation lookup failed: %w", err)
	}

	return messages, nil
}

func (m *messageService) GetConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	conversations, err := m.messageRepository.FindConversations(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("conversations lookup failed")
		return nil, fmt.Errorf("conversations lookup failed: %w", err)
	}

	return conversations, nil
}
