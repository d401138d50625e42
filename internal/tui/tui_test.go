package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/loopify/internal/playlist"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(titles ...string) *model {
	p := playlist.New(playlist.WithRandSource(func() rand.Source {
		return rand.NewSource(7)
	}))
	for _, title := range titles {
		p.Add(title)
	}
	return newModel(p)
}

func send(t *testing.T, m *model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		if updated != m {
			t.Fatal("Update должен возвращать ту же модель")
		}
	}
	return cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel("A", "B")

	if len(m.list.Items()) != 2 {
		t.Fatalf("Ожидалось 2 элемента, получено %d", len(m.list.Items()))
	}
	if m.mode != browseMode {
		t.Errorf("Ожидался режим просмотра, получено %v", m.mode)
	}
	for _, item := range m.list.Items() {
		if item.(songItem).playing {
			t.Error("Ни одна песня не должна играть до первого перехода")
		}
	}
}

func TestNextAndPrevious(t *testing.T) {
	m := newTestModel("A", "B", "C")

	send(t, m, runes("n"), runes("n"))
	if got, _ := m.playlist.Current(); got != "B" {
		t.Errorf("Ожидалась песня B, получено %q", got)
	}
	if !strings.Contains(m.status, "(следующая): B") {
		t.Errorf("Неожиданный статус: %q", m.status)
	}
	if m.list.Index() != 1 {
		t.Errorf("Должна быть выделена играющая песня, выделена %d", m.list.Index())
	}
	if !m.list.Items()[1].(songItem).playing {
		t.Error("Песня B должна быть отмечена как играющая")
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if got, _ := m.playlist.Current(); got != "C" {
		t.Errorf("Ожидался переход по кругу на C, получено %q", got)
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got, _ := m.playlist.Current(); got != "A" {
		t.Errorf("Ожидался переход по кругу на A, получено %q", got)
	}
}

func TestNextOnEmptyPlaylist(t *testing.T) {
	m := newTestModel()

	send(t, m, runes("n"))
	if !m.warning || !strings.Contains(m.status, "Плейлист пуст") {
		t.Errorf("Ожидалось предупреждение о пустом плейлисте, получено %q", m.status)
	}

	send(t, m, runes("x"))
	if m.playlist.Len() != 0 {
		t.Error("Удаление из пустого плейлиста не должно ничего менять")
	}
}

func TestAddSong(t *testing.T) {
	m := newTestModel("A")

	cmd := send(t, m, runes("a"))
	if m.mode != addMode {
		t.Fatal("Ожидался режим ввода после нажатия a")
	}
	if cmd == nil {
		t.Error("Ожидалась команда мигания курсора")
	}

	// В режиме ввода команды плейлиста не выполняются
	send(t, m, runes("New "), runes("q"), runes("n"))
	if m.quitting {
		t.Fatal("q в режиме ввода не должен завершать приложение")
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != browseMode {
		t.Error("После Enter ожидался режим просмотра")
	}
	if got := m.playlist.Slice(); len(got) != 2 || got[1] != "New qn" {
		t.Errorf("Неожиданный плейлист: %q", got)
	}
	if len(m.list.Items()) != 2 {
		t.Errorf("Список должен обновиться, получено %d элементов", len(m.list.Items()))
	}
}

func TestAddSongCancelled(t *testing.T) {
	m := newTestModel("A")

	send(t, m, runes("a"), runes("draft"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != browseMode {
		t.Error("После Esc ожидался режим просмотра")
	}
	if m.playlist.Len() != 1 {
		t.Errorf("Песня не должна быть добавлена, получено %q", m.playlist.Slice())
	}
	if m.input.Value() != "" {
		t.Errorf("Поле ввода должно быть очищено, получено %q", m.input.Value())
	}
}

func TestRemoveSelected(t *testing.T) {
	m := newTestModel("A", "B", "C")

	send(t, m, runes("n"), runes("n")) // B играет и выделена
	send(t, m, tea.KeyMsg{Type: tea.KeyDelete})

	if got := m.playlist.Slice(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("Неожиданный плейлист: %q", got)
	}
	if got, _ := m.playlist.Current(); got != "C" {
		t.Errorf("Курсор должен перейти на C, получено %q", got)
	}
	if !strings.Contains(m.status, "Песня удалена: B") {
		t.Errorf("Неожиданный статус: %q", m.status)
	}
}

func TestShuffle(t *testing.T) {
	m := newTestModel("A", "B", "C", "D")
	send(t, m, runes("n"))

	send(t, m, runes("s"))
	if _, ok := m.playlist.Current(); ok {
		t.Error("Перемешивание должно сбрасывать текущую песню")
	}
	if m.playlist.Len() != 4 {
		t.Errorf("Ожидалось 4 песни, получено %d", m.playlist.Len())
	}
	if m.list.Index() != 0 {
		t.Errorf("После перемешивания выделение должно быть на первой песне, получено %d", m.list.Index())
	}

	send(t, m, runes("n"))
	if got, _ := m.playlist.Current(); got != m.playlist.Slice()[0] {
		t.Errorf("После перемешивания Next должен вернуть первую песню, получено %q", got)
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel("A")
		cmd := send(t, m, msg)
		if cmd == nil {
			t.Fatalf("Ожидалась команда tea.Quit для %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Ожидалось сообщение tea.QuitMsg для %q", msg.String())
		}
		if !strings.Contains(m.View(), "Спасибо") {
			t.Errorf("Неожиданный экран выхода: %q", m.View())
		}
	}
}

func TestView(t *testing.T) {
	m := newTestModel("Song One")
	send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Song One") {
		t.Errorf("Экран должен содержать название песни:\n%s", view)
	}
	if !strings.Contains(view, "s: перемешать") {
		t.Errorf("Экран должен содержать справку:\n%s", view)
	}

	send(t, m, runes("a"))
	if !strings.Contains(m.View(), "Esc: отмена") {
		t.Errorf("Экран ввода должен содержать справку:\n%s", m.View())
	}
}
