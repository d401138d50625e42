package playlist

// song — один элемент плейлиста: название и ссылки на соседей
type song struct {
	title string
	next  *song
	prev  *song
}

// unlink отвязывает песню от соседей и связывает их между собой
func (s *song) unlink() {
	if s.prev != nil {
		s.prev.next = s.next
	}
	if s.next != nil {
		s.next.prev = s.prev
	}
	s.next = nil
	s.prev = nil
}
