// Package history implements the undo log: a fixed-capacity ring of canvas
// snapshots (Store) and the navigation rules over it (Log).
package history

import "github.com/AntonJohansson/beak/internal/canvas"

// Store is a circular array of canvas snapshots. top is the slot that
// receives the next push and wraps modulo capacity; selected is the slot
// currently materialized into the live canvas. Once the ring is full a push
// releases the oldest entry before reusing its slot.
type Store struct {
	slots    []*canvas.Buffer
	used     int
	top      int
	selected int
}

// NewStore creates a store holding at most capacity snapshots.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		panic("history: capacity must be positive")
	}
	return &Store{slots: make([]*canvas.Buffer, capacity)}
}

// Cap returns the configured capacity.
func (s *Store) Cap() int { return len(s.slots) }

// Used returns the number of populated slots.
func (s *Store) Used() int { return s.used }

// Push copies src into the top slot, releasing whatever occupied it, and
// selects the slot just written.
func (s *Store) Push(src *canvas.Buffer) {
	s.slots[s.top] = src.Clone()
	s.selected = s.top
	s.top = (s.top + 1) % len(s.slots)
	if s.used < len(s.slots) {
		s.used++
	}
}

// Materialize returns a copy of the selected snapshot for loading into the
// live canvas. The store retains ownership of the slot itself.
func (s *Store) Materialize() *canvas.Buffer {
	return s.slots[s.selected].Clone()
}

// releaseRange frees every slot in the half-open circular range [from, to).
func (s *Store) releaseRange(from, to int) {
	for i := from; i != to; i = (i + 1) % len(s.slots) {
		s.slots[i] = nil
	}
}
