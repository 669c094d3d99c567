package automaton

import "slices"

// set keeps the first-insertion order of its members so that every walk
// over states, symbols and destinations is deterministic.
type set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newSet[T comparable](items ...T) *set[T] {
	s := &set[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *set[T]) add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *set[T]) addAll(other *set[T]) {
	for _, item := range other.items {
		s.add(item)
	}
}

func (s *set[T]) has(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s *set[T]) len() int {
	return len(s.items)
}

func (s *set[T]) values() []T {
	return slices.Clone(s.items)
}
