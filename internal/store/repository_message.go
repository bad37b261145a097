package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It persists direct messages and builds the two
// projections the client needs: a full conversation with one correspondent
// and the inbox view (latest message per correspondent).
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMessage persists a new message and returns it with server-assigned
// fields (MessageID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on recipient_id →
//     [ErrRecipientNotFound]; the FK constraint is the existence check.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveMessage, message.SenderID, message.RecipientID, message.Body)

	var saved models.Message
	if err := row.Scan(&saved.MessageID, &saved.SenderID, &saved.RecipientID, &saved.Body, &saved.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Message{}, ErrRecipientNotFound
		}

		log.Err(err).Str("func", "*messageRepository.SaveMessage").Msg("error: message insert failed")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindConversation returns every message exchanged between userID and
// correspondentID in either direction, oldest first.
func (r *messageRepository) FindConversation(ctx context.Context, userID, correspondentID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findConversation, userID, correspondentID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.FindConversation").Msg("error: conversation query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err = rows.Scan(&m.MessageID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*messageRepository.FindConversation").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// FindConversations returns the inbox view for userID: the latest message
// exchanged with each correspondent, joined with the correspondent's name.
func (r *messageRepository) FindConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findConversations, userID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.FindConversations").Msg("error: conversations query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		var c models.Conversation
		if err = rows.Scan(
			&c.CorrespondentID,
			&c.CorrespondentName,
			&c.LastMessage.MessageID,
			&c.LastMessage.SenderID,
			&c.LastMessage.RecipientID,
			&c.LastMessage.Body,
			&c.LastMessage.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*messageRepository.FindConversations").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		conversations = append(conversations, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conversations, nil
}
