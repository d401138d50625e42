package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/loopify/internal/logger"
	"github.com/hazadus/loopify/internal/playlist"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	playingItemStyle  = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("205")).Bold(true)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("46"))
	warnStyle         = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("214"))
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// mode определяет, что сейчас принимает ввод: список или поле названия
type mode int

const (
	browseMode mode = iota
	addMode
)

// model представляет главный экран плейлиста
type model struct {
	playlist *playlist.Playlist
	list     list.Model
	input    textinput.Model
	mode     mode
	status   string
	warning  bool
	quitting bool
}

// newModel создает модель экрана для плейлиста
func newModel(p *playlist.Playlist) *model {
	l := list.New(nil, songItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	input := textinput.New()
	input.Placeholder = "Введите название песни"
	input.Prompt = "➕ "
	input.PromptStyle = promptStyle
	input.TextStyle = promptStyle

	m := &model{
		playlist: p,
		list:     l,
		input:    input,
	}
	m.refresh()
	return m
}

// Init инициализирует модель
func (m *model) Init() tea.Cmd {
	return nil
}

// refresh перестраивает список по плейлисту и выделяет текущую песню
func (m *model) refresh() {
	m.list.SetItems(songItems(m.playlist))
	if i := m.playlist.CurrentIndex(); i >= 0 {
		m.list.Select(i)
	}
}

func (m *model) setStatus(text string, warning bool) {
	m.status = text
	m.warning = warning
}

// Update обрабатывает сообщения и обновляет модель
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 6) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == addMode {
			return m.updateInput(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey выполняет команды плейлиста; false — клавишу обрабатывает список
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit, true

	case "n", "right":
		title, ok := m.playlist.Next()
		m.played("следующая", title, ok)
		return nil, true

	case "p", "left":
		title, ok := m.playlist.Previous()
		m.played("предыдущая", title, ok)
		return nil, true

	case "s":
		m.playlist.Shuffle()
		m.refresh()
		m.list.Select(0)
		m.setStatus("🔀 Плейлист перемешан.", false)
		logger.Debug("плейлист перемешан", "songs", m.playlist.Len())
		return nil, true

	case "a":
		m.mode = addMode
		m.input.SetValue("")
		return m.input.Focus(), true

	case "x", "delete":
		m.removeSelected()
		return nil, true
	}
	return nil, false
}

func (m *model) played(direction, title string, ok bool) {
	if !ok {
		m.setStatus("📭 Плейлист пуст. Нечего воспроизводить.", true)
		return
	}
	m.refresh()
	m.setStatus(fmt.Sprintf("🎵 Сейчас играет (%s): %s", direction, title), false)
}

func (m *model) removeSelected() {
	item, ok := m.list.SelectedItem().(songItem)
	if !ok {
		m.setStatus("📚 Плейлист пуст.", true)
		return
	}

	selected := m.list.Index()
	m.playlist.Remove(item.title)
	logger.Debug("песня удалена", "title", item.title, "songs", m.playlist.Len())

	m.refresh()
	if m.playlist.CurrentIndex() < 0 && selected < m.playlist.Len() {
		m.list.Select(selected)
	}
	m.setStatus(fmt.Sprintf("🗑️  Песня удалена: %s", item.title), false)
}

// updateInput обрабатывает ввод названия новой песни
func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.input.Value()
		m.playlist.Add(title)
		logger.Debug("песня добавлена", "title", title, "songs", m.playlist.Len())
		m.closeInput()
		m.refresh()
		m.setStatus("✅ Песня добавлена в плейлист.", false)
		return m, nil

	case "esc":
		m.closeInput()
		m.setStatus("", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = browseMode
}

// View отображает модель
func (m *model) View() string {
	if m.quitting {
		return quitTextStyle.Render("👋 Спасибо, что пользуетесь Loopify!")
	}

	view := m.list.View() + "\n"

	if m.mode == addMode {
		view += "\n    " + m.input.View() + "\n"
		return view + helpStyle.Render("Enter: добавить • Esc: отмена")
	}

	if m.status != "" {
		style := statusStyle
		if m.warning {
			style = warnStyle
		}
		view += style.Render(m.status) + "\n"
	}
	return view + helpStyle.Render("n/→: следующая • p/←: предыдущая • s: перемешать • a: добавить • x: удалить • q: выход")
}
