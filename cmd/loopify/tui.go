package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hazadus/loopify/internal/logger"
	"github.com/hazadus/loopify/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing, playing and editing the playlist.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.launchTUI(cmd.Context())
		},
	}
}

func (app *Application) launchTUI(ctx context.Context) error {
	logger.Debug("запуск TUI", "songs", app.Playlist.Len())

	err := tui.NewApp(app.Playlist).Run(ctx)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
