// Package logger настраивает структурированное логирование приложения
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options описывает, куда и с каким уровнем писать логи
type Options struct {
	Level  string
	File   string // пустая строка — без файла
	Stderr bool
}

// До вызова Init логи отбрасываются
var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLevel преобразует строку конфигурации в уровень slog
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("неизвестный уровень логирования: %q", level)
	}
}

// Init настраивает логгер по умолчанию.
// Возвращенный io.Closer закрывает файл лога, если он был открыт.
func Init(opts Options) (io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		// 0750: владелец rwx, группа rx
		if err := os.MkdirAll(filepath.Dir(opts.File), 0750); err != nil {
			return nil, fmt.Errorf("ошибка создания каталога для лога: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err != nil {
			return nil, fmt.Errorf("ошибка открытия файла лога: %w", err)
		}
		writers = append(writers, file)
		closer = file
	}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

// SetLogger заменяет логгер по умолчанию, например в тестах
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// L возвращает текущий логгер
func L() *slog.Logger {
	return defaultLogger
}

// Info пишет информационное сообщение
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Debug пишет отладочное сообщение
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn пишет предупреждение
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error пишет сообщение об ошибке
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
