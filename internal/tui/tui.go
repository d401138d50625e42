// Package tui содержит текстовый пользовательский интерфейс плейлиста
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/loopify/internal/playlist"
)

// App представляет TUI приложение
type App struct {
	playlist *playlist.Playlist
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(p *playlist.Playlist) *App {
	return &App{playlist: p}
}

// Run запускает TUI приложение и блокируется до выхода или отмены контекста
func (a *App) Run(ctx context.Context) error {
	p := tea.NewProgram(newModel(a.playlist), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
