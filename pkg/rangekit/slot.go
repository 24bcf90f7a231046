package rangekit

// slot holds the element a cursor pulled ahead of time.
// An empty slot holds the zero value, the same as a moved-from element.
type slot[T any] struct {
	value T
}

func (s *slot[T]) set(v T) {
	s.value = v
}

// take moves the element out and leaves the slot empty.
func (s *slot[T]) take() T {
	v := s.value
	s.clear()
	return v
}

func (s *slot[T]) clear() {
	var zero T
	s.value = zero
}
