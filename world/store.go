package world

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const blockSize = 64

// store keeps one attribute type densely packed in fixed-size blocks, so
// growing the store never moves existing values. Slots are looked up through
// an intmap keyed by entity; removal moves the last slot into the hole, so
// pointers returned by get are valid until the next remove on this store.
type store[T any] struct {
	blocks []*[blockSize]T
	ids    []EntityId
	slots  *intmap.Map[EntityId, int]
}

func newStore[T any](capacity int) *store[T] {
	return &store[T]{
		blocks: make([]*[blockSize]T, 0, capacity/blockSize+1),
		ids:    make([]EntityId, 0, capacity),
		slots:  intmap.New[EntityId, int](capacity),
	}
}

func (s *store[T]) at(slot int) *T {
	return &s.blocks[slot/blockSize][slot%blockSize]
}

// put inserts or overwrites the value for id.
func (s *store[T]) put(id EntityId, value T) {
	if slot, ok := s.slots.Get(id); ok {
		*s.at(slot) = value
		return
	}

	slot := len(s.ids)
	if slot/blockSize >= len(s.blocks) {
		s.blocks = append(s.blocks, new([blockSize]T))
	}
	*s.at(slot) = value
	s.ids = append(s.ids, id)
	s.slots.Put(id, slot)
}

func (s *store[T]) get(id EntityId) *T {
	slot, ok := s.slots.Get(id)
	if !ok {
		return nil
	}
	return s.at(slot)
}

func (s *store[T]) remove(id EntityId) bool {
	slot, ok := s.slots.Get(id)
	if !ok {
		return false
	}
	s.slots.Del(id)

	last := len(s.ids) - 1
	if slot != last {
		*s.at(slot) = *s.at(last)
		s.ids[slot] = s.ids[last]
		s.slots.Put(s.ids[slot], slot)
	}

	var zero T
	*s.at(last) = zero
	s.ids = s.ids[:last]
	return true
}

func (s *store[T]) len() int {
	return len(s.ids)
}

// snapshot yields the ids present when it was called, in slot order.
func (s *store[T]) snapshot() iter.Seq[EntityId] {
	ids := make([]EntityId, len(s.ids))
	copy(ids, s.ids)
	return func(yield func(EntityId) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

func (s *store[T]) clear() {
	for _, block := range s.blocks {
		clear(block[:])
	}
	s.ids = s.ids[:0]
	s.slots.Clear()
}
