package tui

import (
	"context"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/adapter"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}
}

// Run shows the chat screen until the user quits. Commands are sent with ctx.
func (t *TUI) Run(ctx context.Context) error {
	model := newChatModel(ctx, t.adapter, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(chatModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
