package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tui/internal/chat"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/responses"
	"github.com/rocketscienceinc/tictactoe-tui/internal/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	chatConf := conf.ChatConfig()
	log.Info("Starting game", "chat_enabled", chatConf.Enabled, "chat_ready", chatConf.Ready(), "model", chatConf.Model)

	client := responses.New(logger, nil, chatConf.BaseURL, chatConf.APIKey, chatConf.Model)
	widget := chat.NewWidget(logger, chatConf, client)
	model := ui.New(ctx, logger, tictactoe.NewGameController(), widget)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("program error: %w", err)
	}

	log.Info("Game closed")
	return nil
}
