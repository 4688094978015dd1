package layout

// sideTable is a cursor over a sparse table sorted by a position in some
// dense stream. Inlines, Wrappeds and Blocks each merge their dense stream
// with one of these: an entry at the current position is emitted first, and
// a dense item is cut short where the next entry begins.
type sideTable[T any] struct {
	items []T
	pos   func(T) int
}

func newSideTable[T any](items []T, pos func(T) int) sideTable[T] {
	return sideTable[T]{items: items, pos: pos}
}

func (s *sideTable[T]) peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.pos(s.items[0]), true
}

// takeAt pops the next entry if it sits exactly at position.
func (s *sideTable[T]) takeAt(position int) (T, bool) {
	var zero T
	if p, ok := s.peek(); !ok || p != position {
		return zero, false
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item, true
}

// skipBefore drops entries positioned before position.
func (s *sideTable[T]) skipBefore(position int) {
	for len(s.items) > 0 && s.pos(s.items[0]) < position {
		s.items = s.items[1:]
	}
}

// span returns how much of a dense item of length n starting at position
// can be emitted before the next entry.
func (s *sideTable[T]) span(position, n int) int {
	if p, ok := s.peek(); ok && p > position && p-position < n {
		return p - position
	}
	return n
}

func identity(v int) int { return v }
