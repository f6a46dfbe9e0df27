package core

// Set is an unordered collection with O(1) insert, O(1) removal by value and
// O(1) access by index. Elements live in a dense slice; removal swaps the
// last element into the vacated slot, so iteration order changes on Remove
// but stays deterministic for a given sequence of operations.
type Set[T comparable] struct {
	items []T
	index map[T]int
}

// NewSet creates an empty set with room for capacity elements.
func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		items: make([]T, 0, capacity),
		index: make(map[T]int, capacity),
	}
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Add inserts v. Returns false if v was already present.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Remove deletes v. Returns false if v was not present.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	delete(s.index, v)
	return true
}

// At returns the element stored at position i (0 <= i < Len).
func (s *Set[T]) At(i int) T {
	return s.items[i]
}

// Clear removes every element, keeping allocated storage.
func (s *Set[T]) Clear() {
	clear(s.index)
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns a copy of the elements in storage order.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
