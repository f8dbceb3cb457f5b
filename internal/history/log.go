package history

import "github.com/AntonJohansson/beak/internal/canvas"

// Log wraps a Store with undo/redo navigation over a single timeline.
//
// dist counts the steps from the write frontier back to the selected
// snapshot: 1 at the tip of history, Used() at the oldest reachable entry,
// 0 only before the first push. It is tracked explicitly rather than
// derived as (top - selected) mod capacity, because once the ring is full
// that expression cannot tell the oldest entry (distance == capacity) apart
// from an empty log.
type Log struct {
	store *Store
	dist  int
}

// NewLog creates a log with a snapshot ring of the given capacity.
func NewLog(capacity int) *Log {
	return &Log{store: NewStore(capacity)}
}

// Len returns the number of snapshots currently held.
func (l *Log) Len() int { return l.store.Used() }

// CanUndo reports whether a snapshot older than the selected one exists.
func (l *Log) CanUndo() bool { return l.dist < l.store.Used() }

// CanRedo reports whether a snapshot newer than the selected one exists.
func (l *Log) CanRedo() bool { return l.dist > 1 }

// Push appends a snapshot of buf as the new tip. If the selection had been
// navigated away from the tip, the abandoned snapshots between the selected
// entry and the old frontier are discarded first, so the new snapshot
// becomes the sole successor of the selected one. Clearing the canvas goes
// through this same path and prunes just like a stroke commit.
func (l *Log) Push(buf *canvas.Buffer) {
	if l.dist > 1 {
		l.prune()
	}
	l.store.Push(buf)
	l.dist = 1
}

// Undo steps the selection one snapshot backward and returns a copy of it.
// Returns nil, false if no older snapshot exists.
func (l *Log) Undo() (*canvas.Buffer, bool) {
	if !l.CanUndo() {
		return nil, false
	}
	s := l.store
	s.selected = (s.selected + s.Cap() - 1) % s.Cap()
	l.dist++
	return s.Materialize(), true
}

// Redo steps the selection one snapshot toward the tip and returns a copy
// of it. Returns nil, false if the selection is already at the tip.
func (l *Log) Redo() (*canvas.Buffer, bool) {
	if !l.CanRedo() {
		return nil, false
	}
	s := l.store
	s.selected = (s.selected + 1) % s.Cap()
	l.dist--
	return s.Materialize(), true
}

// prune discards every snapshot strictly between the selected entry and the
// write frontier and moves the frontier to one past the selection.
func (l *Log) prune() {
	s := l.store
	s.releaseRange((s.selected+1)%s.Cap(), s.top)
	s.top = (s.selected + 1) % s.Cap()
	s.used -= l.dist - 1
	l.dist = 1
}
