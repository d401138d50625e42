// Package menu содержит текстовое меню для управления плейлистом
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hazadus/loopify/internal/logger"
	"github.com/hazadus/loopify/internal/playlist"
)

// Пункты меню
const (
	choiceAdd      = "0"
	choiceRemove   = "1"
	choicePrint    = "2"
	choiceNext     = "3"
	choicePrevious = "4"
	choiceShuffle  = "5"
)

// EmptyMessage выводится, когда в плейлисте нечего воспроизводить
const EmptyMessage = "📭 Плейлист пуст. Нечего воспроизводить."

// Menu читает команды построчно и применяет их к плейлисту
type Menu struct {
	playlist *playlist.Playlist
	scanner  *bufio.Scanner
	out      io.Writer

	lines chan string
	done  chan struct{}

	title   *color.Color
	success *color.Color
	warn    *color.Color
	failure *color.Color
	playing *color.Color
}

// Option настраивает меню
type Option func(*Menu)

// WithNoColor отключает цветной вывод
func WithNoColor() Option {
	return func(m *Menu) {
		for _, c := range m.colors() {
			c.DisableColor()
		}
	}
}

// New создает меню, которое читает команды из in и пишет результат в out
func New(p *playlist.Playlist, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		playlist: p,
		scanner:  bufio.NewScanner(in),
		out:      out,
		title:    color.New(color.FgCyan, color.Bold),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		failure:  color.New(color.FgRed),
		playing:  color.New(color.FgMagenta, color.Bold),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Menu) colors() []*color.Color {
	return []*color.Color{m.title, m.success, m.warn, m.failure, m.playing}
}

// Run выполняет цикл меню до выбора выхода, конца ввода или отмены контекста
func (m *Menu) Run(ctx context.Context) error {
	m.lines = make(chan string)
	m.done = make(chan struct{})
	defer close(m.done)
	go m.scan()

	fmt.Fprint(m.out, "\n")
	m.title.Fprintln(m.out, "Loopify: плейлист на двусвязном списке")
	fmt.Fprintln(m.out, "Собирайте плейлист и переключайте песни по кругу.")
	fmt.Fprint(m.out, "\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()

		input, ok := m.readLine(ctx)
		if !ok {
			fmt.Fprintln(m.out)
			return m.inputErr(ctx)
		}
		choice := strings.TrimSpace(input)
		logger.Debug("команда меню", "choice", choice)

		switch strings.ToLower(choice) {
		case choiceAdd:
			if !m.add(ctx) {
				return m.inputErr(ctx)
			}
		case choiceRemove:
			if !m.remove(ctx) {
				return m.inputErr(ctx)
			}
		case choicePrint:
			fmt.Fprintln(m.out)
			m.printPlaylist()
		case choiceNext:
			title, ok := m.playlist.Next()
			m.printPlaying("следующая", title, ok)
		case choicePrevious:
			title, ok := m.playlist.Previous()
			m.printPlaying("предыдущая", title, ok)
		case choiceShuffle:
			m.playlist.Shuffle()
			fmt.Fprintln(m.out)
			m.success.Fprintln(m.out, "🔀 Плейлист перемешан.")
			m.printPlaylist()
		case "q":
			fmt.Fprintln(m.out)
			m.title.Fprintln(m.out, "👋 Спасибо, что пользуетесь Loopify!")
			return nil
		default:
			fmt.Fprintln(m.out)
			m.failure.Fprintln(m.out, "❌ Неверный ввод. Введите 0-5 или Q для выхода.")
		}

		fmt.Fprintln(m.out)
	}
}

func (m *Menu) printMenu() {
	m.title.Fprintln(m.out, "Меню плейлиста")
	fmt.Fprintln(m.out, "0 - Добавить песню")
	fmt.Fprintln(m.out, "1 - Удалить песню")
	fmt.Fprintln(m.out, "2 - Показать плейлист")
	fmt.Fprintln(m.out, "3 - Следующая песня")
	fmt.Fprintln(m.out, "4 - Предыдущая песня")
	fmt.Fprintln(m.out, "5 - Перемешать плейлист")
	fmt.Fprintln(m.out, "Q - Выход")
	fmt.Fprint(m.out, "Выберите пункт: ")
}

// scan читает ввод построчно, пока Run не завершится
func (m *Menu) scan() {
	defer close(m.lines)
	for m.scanner.Scan() {
		select {
		case m.lines <- strings.TrimSuffix(m.scanner.Text(), "\r"):
		case <-m.done:
			return
		}
	}
}

// readLine ждет строку целиком; false — ввод закончился или контекст отменен
func (m *Menu) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-m.lines:
		return line, ok
	}
}

// inputErr возвращает причину, по которой ввод прекратился
func (m *Menu) inputErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.scanner.Err()
}

func (m *Menu) add(ctx context.Context) bool {
	fmt.Fprint(m.out, "\nВведите название песни: ")
	title, ok := m.readLine(ctx)
	if !ok {
		return false
	}

	m.playlist.Add(title)
	logger.Debug("песня добавлена", "title", title, "songs", m.playlist.Len())
	m.success.Fprintln(m.out, "✅ Песня добавлена в плейлист.")
	return true
}

func (m *Menu) remove(ctx context.Context) bool {
	fmt.Fprint(m.out, "\nВведите название песни для удаления: ")
	title, ok := m.readLine(ctx)
	if !ok {
		return false
	}

	if m.playlist.Remove(title) {
		logger.Debug("песня удалена", "title", title, "songs", m.playlist.Len())
		m.success.Fprintf(m.out, "🗑️  Песня удалена: %s\n", title)
	} else {
		m.warn.Fprintf(m.out, "ℹ️  Песня «%s» не найдена.\n", title)
	}
	return true
}

func (m *Menu) printPlaylist() {
	if m.playlist.Len() == 0 {
		m.warn.Fprintln(m.out, "📚 Плейлист пуст.")
		return
	}

	fmt.Fprintln(m.out, "📚 Текущий плейлист:")
	PrintNumbered(m.out, m.playlist)
}

func (m *Menu) printPlaying(direction, title string, ok bool) {
	fmt.Fprintln(m.out)
	if !ok {
		m.warn.Fprintln(m.out, EmptyMessage)
		return
	}
	m.playing.Fprintf(m.out, "🎵 Сейчас играет (%s): %s\n", direction, title)
}

// PrintNumbered выводит песни плейлиста с номерами, начиная с 1
func PrintNumbered(w io.Writer, p *playlist.Playlist) {
	i := 1
	for title := range p.Titles() {
		fmt.Fprintf(w, "%d. %s\n", i, title)
		i++
	}
}
