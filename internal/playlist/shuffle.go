package playlist

import "math/rand"

// Shuffle перемешивает песни алгоритмом Фишера–Йетса и сбрасывает курсор,
// так что следующий Next начнет с новой первой песни.
// Плейлист из нуля или одной песни не меняется.
func (p *Playlist) Shuffle() {
	if p.head == nil || p.head == p.tail {
		return
	}

	// Собираем указатели на существующие песни, новые не создаются
	songs := make([]*song, 0, p.len)
	for s := p.head; s != nil; s = s.next {
		songs = append(songs, s)
	}

	newSource := p.newSource
	if newSource == nil {
		newSource = defaultSource
	}
	r := rand.New(newSource())

	for i := len(songs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		songs[i], songs[j] = songs[j], songs[i]
	}

	last := len(songs) - 1
	for i, s := range songs {
		s.prev = nil
		s.next = nil
		if i > 0 {
			s.prev = songs[i-1]
		}
		if i < last {
			s.next = songs[i+1]
		}
	}

	p.head = songs[0]
	p.tail = songs[last]
	p.cursor = nil
}
