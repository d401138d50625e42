package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/hazadus/loopify/internal/config"
	"github.com/hazadus/loopify/internal/logger"
	"github.com/hazadus/loopify/internal/metadata"
	"github.com/hazadus/loopify/internal/playlist"
	"github.com/hazadus/loopify/internal/s3"
	"github.com/hazadus/loopify/internal/track"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loopify",
		Short: "A looping playlist manager built on a doubly linked list",
		Long: `Loopify keeps an ordered playlist of song titles with a playback cursor.
Songs can be added, removed, listed, shuffled and played back in a loop
from an interactive menu or a terminal user interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.prepare(cmd.Context(), cmd.Name() == "tui")
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runMenu(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&app.flags.configPath, "config", "c", config.DefaultPath, "path to the configuration file")
	pf.StringVar(&app.flags.importDir, "import-dir", "", "directory with mp3 files to import song titles from")
	pf.StringVar(&app.flags.bucket, "bucket", "", "S3 bucket to import song titles from")
	pf.StringVar(&app.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&app.flags.noColor, "no-color", false, "disable colored output")
	pf.Int64Var(&app.flags.seed, "seed", 0, "seed for shuffling, 0 means time-based")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createMenuCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createTUICommand())

	rootCmd.SetContext(ctx)
	rootCmd.SetIn(app.In)
	rootCmd.SetOut(app.Out)
	return rootCmd
}

// prepare загружает конфигурацию, настраивает логирование и заполняет плейлист.
// В режиме TUI логи не пишутся в stderr, чтобы не портить экран.
func (app *Application) prepare(ctx context.Context, tui bool) error {
	if app.Config == nil {
		cfg, err := config.LoadOrDefault(app.flags.configPath)
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
		app.Config = cfg
	}
	app.applyFlags()

	closer, err := logger.Init(logger.Options{
		Level:  app.Config.LogLevel,
		File:   app.Config.LogFile,
		Stderr: app.flags.logLevel != "" && !tui,
	})
	if err != nil {
		return fmt.Errorf("ошибка настройки логирования: %w", err)
	}
	app.logCloser = closer

	if app.Playlist == nil {
		app.Playlist = playlist.New(app.playlistOptions()...)
	}
	return app.seed(ctx)
}

// applyFlags переопределяет значения конфигурации флагами командной строки
func (app *Application) applyFlags() {
	if app.flags.importDir != "" {
		app.Config.ImportDir = app.flags.importDir
	}
	if app.flags.bucket != "" {
		app.Config.AwsBucketName = app.flags.bucket
	}
	if app.flags.logLevel != "" {
		app.Config.LogLevel = app.flags.logLevel
	}
	if app.flags.noColor {
		app.Config.NoColor = true
	}
}

func (app *Application) playlistOptions() []playlist.Option {
	if app.flags.seed == 0 {
		return nil
	}
	seed := app.flags.seed
	return []playlist.Option{
		playlist.WithRandSource(func() rand.Source {
			return rand.NewSource(seed)
		}),
	}
}

// seed заполняет плейлист из конфигурации, каталога и бакета.
// Недоступный источник не мешает работе: выводится предупреждение.
func (app *Application) seed(ctx context.Context) error {
	var bucket track.TitleLister
	if app.Config.HasBucket() {
		lister, err := s3.NewLister(&s3.Config{
			Region:     app.Config.AwsRegion,
			AccessKey:  app.Config.AwsAccessKey,
			SecretKey:  app.Config.AwsSecretKey,
			Endpoint:   app.Config.AwsEndpoint,
			BucketName: app.Config.AwsBucketName,
			Prefix:     app.Config.AwsPrefix,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания S3 клиента: %w", err)
		}
		bucket = lister
	}

	manager := track.NewManager(app.Config, metadata.NewExtractor(), bucket)
	if _, err := manager.Seed(ctx, app.Playlist); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		logger.Warn("не все песни загружены", "error", err)
		fmt.Fprintf(app.Out, "⚠️  Не все песни удалось загрузить: %v\n", err)
	}
	return nil
}

func (app *Application) close() {
	if app.logCloser != nil {
		app.logCloser.Close()
		app.logCloser = nil
	}
}
