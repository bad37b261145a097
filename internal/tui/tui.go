// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the SPARK KHOJ client,
// built on Bubble Tea. One root model owns the in-memory session and
// switches between the welcome, auth, home, leaderboard, messages and
// profile screens; all network calls run as asynchronous commands
// against the client service layer.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
)

// TUI runs the Bubble Tea program for the terminal client.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.logger.Info().Msg("starting terminal ui")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// Shutdown signal, not a UI failure.
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
