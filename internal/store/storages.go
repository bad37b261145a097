package store

import (
	"context"
	"fmt"

	"github.com/sparkkhoj/spark-khoj/internal/config"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
)

// Storages aggregates every repository the server needs, sharing a single
// PostgreSQL connection pool.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages connects to PostgreSQL, runs the embedded migrations, and
// constructs the repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
	}, nil
}
