package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/loopify/internal/menu"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var shuffle bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the playlist",
		Long:  `Print the songs of the playlist in order, optionally shuffled first.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.listSongs(shuffle)
		},
	}
	cmd.Flags().BoolVarP(&shuffle, "shuffle", "s", false, "shuffle the playlist before printing")
	return cmd
}

func (app *Application) listSongs(shuffle bool) {
	if app.Playlist.Len() == 0 {
		fmt.Fprintln(app.Out, "📚 Плейлист пуст. Добавьте песни в конфигурацию или укажите --import-dir.")
		return
	}

	if shuffle {
		app.Playlist.Shuffle()
	}

	fmt.Fprintf(app.Out, "📚 Песен в плейлисте: %d\n\n", app.Playlist.Len())
	menu.PrintNumbered(app.Out, app.Playlist)
}
