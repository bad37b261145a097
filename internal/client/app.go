package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sparkkhoj/spark-khoj/internal/adapter"
	"github.com/sparkkhoj/spark-khoj/internal/config"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the full client: server adapter, client services and the
// terminal UI, all from the merged configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(serverAdapter, log)
	ui := tui.New(services, log)

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run starts the terminal UI and blocks until the user quits or the
// process receives a termination signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.tui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("terminal ui exited with error")
		fmt.Fprintf(os.Stderr, "spark-khoj client error: %v\n", err)
		return err
	}

	a.logger.Info().Msg("client exited")
	return nil
}
