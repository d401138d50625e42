package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/loopify/internal/playlist"
	"github.com/hazadus/loopify/internal/utils"
)

// songItem реализует интерфейс list.Item для песни
type songItem struct {
	number  int
	title   string
	playing bool
}

func (i songItem) FilterValue() string {
	return i.title
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct{}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	marker := "  "
	if i.playing {
		marker = "♪ "
	}
	str := fmt.Sprintf("%s%3d. %s", marker, i.number, utils.TruncateString(i.title, 60))

	fn := itemStyle.Render
	switch {
	case index == m.Index():
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	case i.playing:
		fn = playingItemStyle.Render
	}

	fmt.Fprint(w, fn(str))
}

// songItems преобразует плейлист в элементы списка
func songItems(p *playlist.Playlist) []list.Item {
	current := p.CurrentIndex()

	items := make([]list.Item, 0, p.Len())
	for title := range p.Titles() {
		n := len(items)
		items = append(items, songItem{
			number:  n + 1,
			title:   title,
			playing: n == current,
		})
	}
	return items
}
