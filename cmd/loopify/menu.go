package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/hazadus/loopify/internal/menu"
)

// createMenuCommand создает команду menu с привязкой к экземпляру приложения
func (app *Application) createMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive text menu",
		Long:  `Run the numbered text menu: add, remove, list, play next or previous song and shuffle the playlist.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runMenu(cmd.Context())
		},
	}
}

func (app *Application) runMenu(ctx context.Context) error {
	var opts []menu.Option
	if app.Config.NoColor {
		opts = append(opts, menu.WithNoColor())
	}

	err := menu.New(app.Playlist, app.In, app.Out, opts...).Run(ctx)
	// Прерывание с клавиатуры завершает меню штатно
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
