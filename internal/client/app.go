package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/adapter"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
)

// UI is the interactive front end. It blocks until the user leaves.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	cfg     *config.ClientConfig

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config is nil")
	}

	return &App{adapter: serverAdapter, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run mints the caller token and hands the terminal to the UI until the user
// quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.authorize(); err != nil {
		return err
	}

	a.logger.Info().Int64("identity", a.cfg.Adapter.Identity).Msg("client session started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client session finished")
	return nil
}

// authorize signs a token for the configured identity with the key shared
// with the backend.
func (a *App) authorize() error {
	token, err := utils.GenerateJWTToken(
		a.cfg.App.TokenIssuer,
		a.cfg.Adapter.Identity,
		a.cfg.App.TokenDuration,
		a.cfg.App.TokenSignKey,
	)
	if err != nil {
		return fmt.Errorf("create client token: %w", err)
	}

	a.adapter.SetToken(token.SignedString)
	return nil
}
