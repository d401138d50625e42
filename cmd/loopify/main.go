package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/loopify/internal/config"
	"github.com/hazadus/loopify/internal/playlist"
)

// Application связывает конфигурацию, плейлист и потоки ввода-вывода
type Application struct {
	Config   *config.Config
	Playlist *playlist.Playlist
	In       io.Reader
	Out      io.Writer

	flags     flags
	logCloser io.Closer
}

// flags содержит значения глобальных флагов командной строки
type flags struct {
	configPath string
	importDir  string
	bucket     string
	logLevel   string
	noColor    bool
	seed       int64
}

// NewApplication создает приложение, работающее с указанными потоками
func NewApplication(in io.Reader, out io.Writer) *Application {
	return &Application{
		In:  in,
		Out: out,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := NewApplication(os.Stdin, os.Stdout)
	err := app.createRootCommand(ctx).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
