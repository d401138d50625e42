// Package metadata предоставляет функционал для извлечения названий песен из аудио файлов
package metadata

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/loopify/internal/logger"
)

const unknownArtist = "Unknown Artist"

// Track хранит метаданные найденного файла
type Track struct {
	Path     string
	Artist   string
	Title    string
	Album    string
	Duration time.Duration // 0, если файл не удалось декодировать
}

// DisplayTitle возвращает название для плейлиста в формате "Исполнитель - Название"
func (t Track) DisplayTitle() string {
	if t.Artist == "" || t.Artist == unknownArtist {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) Track {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil || strings.TrimSpace(metadata.Title()) == "" {
		return e.getDefaultMetadata(source)
	}

	return Track{
		Path:   source,
		Artist: strings.TrimSpace(metadata.Artist()),
		Title:  strings.TrimSpace(metadata.Title()),
		Album:  strings.TrimSpace(metadata.Album()),
	}
}

// ExtractFromFile извлекает метаданные и длительность из файла
func (e *Extractor) ExtractFromFile(filePath string) Track {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	track := e.ExtractFromReader(file, filePath)

	duration, err := e.GetDuration(filePath)
	if err != nil {
		logger.Debug("не удалось определить длительность", "path", filePath, "error", err)
	}
	track.Duration = duration

	return track
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// ScanDir находит mp3 файлы в каталоге (рекурсивно) и извлекает их метаданные.
// Файлы возвращаются в лексическом порядке путей.
func (e *Extractor) ScanDir(ctx context.Context, dir string) ([]Track, error) {
	var tracks []Track

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		tracks = append(tracks, e.ExtractFromFile(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования каталога %s: %w", dir, err)
	}

	return tracks, nil
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) Track {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return Track{
			Path:   source,
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return Track{
		Path:   source,
		Artist: unknownArtist,
		Title:  nameWithoutExt,
	}
}
