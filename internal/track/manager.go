// Package track содержит логику заполнения плейлиста из источников песен
package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazadus/loopify/internal/config"
	"github.com/hazadus/loopify/internal/logger"
	"github.com/hazadus/loopify/internal/metadata"
	"github.com/hazadus/loopify/internal/playlist"
	"github.com/hazadus/loopify/internal/utils"
)

// Scanner находит песни в локальном каталоге
type Scanner interface {
	ScanDir(ctx context.Context, dir string) ([]metadata.Track, error)
}

// TitleLister возвращает названия песен из внешнего хранилища
type TitleLister interface {
	ListTitles(ctx context.Context) ([]string, error)
}

// Manager собирает названия песен из конфигурации, каталога и бакета
type Manager struct {
	songs     []string
	importDir string
	scanner   Scanner
	bucket    TitleLister
}

// NewManager создает новый экземпляр Manager.
// scanner и bucket могут быть nil — тогда соответствующий источник не используется.
func NewManager(cfg *config.Config, scanner Scanner, bucket TitleLister) *Manager {
	return &Manager{
		songs:     cfg.Songs,
		importDir: cfg.ImportDir,
		scanner:   scanner,
		bucket:    bucket,
	}
}

// Seed добавляет в плейлист песни из всех настроенных источников по порядку:
// список из конфигурации, затем каталог, затем бакет.
// Ошибка одного источника не мешает остальным; все ошибки возвращаются вместе.
func (m *Manager) Seed(ctx context.Context, p *playlist.Playlist) (int, error) {
	added := 0
	for _, title := range m.songs {
		p.Add(title)
		added++
	}

	var errs []error

	if m.importDir != "" && m.scanner != nil {
		tracks, err := m.scanner.ScanDir(ctx, m.importDir)
		if err != nil {
			errs = append(errs, fmt.Errorf("ошибка импорта каталога: %w", err))
		}
		for _, t := range tracks {
			p.Add(t.DisplayTitle())
			added++
			logger.Debug("песня импортирована", "title", t.DisplayTitle(), "path", t.Path, "duration", utils.FormatDuration(t.Duration))
		}
	}

	if m.bucket != nil {
		titles, err := m.bucket.ListTitles(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("ошибка импорта из бакета: %w", err))
		}
		for _, title := range titles {
			p.Add(title)
			added++
		}
	}

	logger.Info("плейлист заполнен", "songs", added)
	return added, errors.Join(errs...)
}
