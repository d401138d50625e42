// Package playlist содержит упорядоченный список песен с курсором воспроизведения
package playlist

import (
	"iter"
	"math/rand"
	"time"
)

// SourceFunc создает источник случайных чисел для одного перемешивания
type SourceFunc func() rand.Source

// Option настраивает плейлист
type Option func(*Playlist)

// WithRandSource задает фабрику источников случайности для Shuffle
func WithRandSource(fn SourceFunc) Option {
	return func(p *Playlist) {
		p.newSource = fn
	}
}

// Playlist хранит песни в двусвязном некольцевом списке.
//
// Воспроизведение ведет себя как кольцо: Next переходит с последней песни
// на первую, Previous — с первой на последнюю, но сами ссылки next/prev
// кольцо не образуют.
//
// Нулевое значение — готовый к работе пустой плейлист.
// Плейлист не безопасен для одновременного использования из нескольких горутин.
type Playlist struct {
	head   *song
	tail   *song
	cursor *song
	len    int

	newSource SourceFunc
}

// New создает пустой плейлист
func New(opts ...Option) *Playlist {
	p := &Playlist{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len возвращает количество песен
func (p *Playlist) Len() int {
	return p.len
}

// Add добавляет песню в конец плейлиста. Курсор не меняется:
// первая песня выбирается только при первом вызове Next или Previous.
func (p *Playlist) Add(title string) {
	s := &song{title: title}

	if p.head == nil {
		p.head = s
		p.tail = s
	} else {
		s.prev = p.tail
		p.tail.next = s
		p.tail = s
	}
	p.len++
}

// Remove удаляет первую (от начала) песню с точно совпадающим названием.
// Возвращает false, если такой песни нет; плейлист при этом не меняется.
func (p *Playlist) Remove(title string) bool {
	s := p.find(title)
	if s == nil {
		return false
	}

	// Курсор переносим до отвязки, чтобы он не указывал на удаленную песню
	if p.cursor == s {
		switch {
		case s.next != nil:
			p.cursor = s.next
		case s.prev != nil:
			p.cursor = s.prev
		default:
			p.cursor = nil
		}
	}

	if s == p.head {
		p.head = s.next
	}
	if s == p.tail {
		p.tail = s.prev
	}
	s.unlink()
	p.len--

	if p.head == nil {
		p.tail = nil
		p.cursor = nil
	}
	return true
}

// find возвращает первую песню с указанным названием или nil
func (p *Playlist) find(title string) *song {
	for s := p.head; s != nil; s = s.next {
		if s.title == title {
			return s
		}
	}
	return nil
}

// Titles возвращает названия песен от первой к последней.
// Последовательность можно обходить повторно; плейлист нельзя менять во время обхода.
func (p *Playlist) Titles() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := p.head; s != nil; s = s.next {
			if !yield(s.title) {
				return
			}
		}
	}
}

// Slice возвращает названия песен по порядку в виде среза
func (p *Playlist) Slice() []string {
	titles := make([]string, 0, p.len)
	for title := range p.Titles() {
		titles = append(titles, title)
	}
	return titles
}

// Current возвращает название текущей песни, если она выбрана
func (p *Playlist) Current() (string, bool) {
	if p.cursor == nil {
		return "", false
	}
	return p.cursor.title, true
}

// CurrentIndex возвращает позицию текущей песни (с нуля) или -1
func (p *Playlist) CurrentIndex() int {
	if p.cursor == nil {
		return -1
	}
	i := 0
	for s := p.head; s != p.cursor; s = s.next {
		i++
	}
	return i
}

// Next переходит к следующей песне и возвращает ее название.
// Для пустого плейлиста возвращает false.
func (p *Playlist) Next() (string, bool) {
	if p.head == nil {
		return "", false
	}

	if p.cursor == nil || p.cursor == p.tail {
		p.cursor = p.head
	} else {
		p.cursor = p.cursor.next
	}
	return p.cursor.title, true
}

// Previous переходит к предыдущей песне и возвращает ее название.
// Для пустого плейлиста возвращает false.
func (p *Playlist) Previous() (string, bool) {
	if p.head == nil {
		return "", false
	}

	if p.cursor == nil || p.cursor == p.head {
		p.cursor = p.tail
	} else {
		p.cursor = p.cursor.prev
	}
	return p.cursor.title, true
}

// Clear удаляет все песни и сбрасывает курсор
func (p *Playlist) Clear() {
	for s := p.head; s != nil; {
		next := s.next
		s.next = nil
		s.prev = nil
		s = next
	}
	p.head = nil
	p.tail = nil
	p.cursor = nil
	p.len = 0
}

func defaultSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}
