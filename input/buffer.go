package input

import (
	"sync"
	"time"
)

// Buffer collects actions from the input goroutine until the scheduler latches them
type Buffer struct {
	mu       sync.Mutex
	hold     time.Duration
	repeat   time.Duration
	lastSeen [actionCount]time.Time
	released [actionCount]bool
	pending  uint32
}

// NewBuffer creates a buffer that keeps actions held for hold after their last event
// Events closer than repeat to the previous one are treated as terminal auto-repeat
func NewBuffer(hold, repeat time.Duration) *Buffer {
	return &Buffer{hold: hold, repeat: repeat}
}

// Press records a key event for a at now
// An event within the repeat gap of the previous one is an auto-repeat and only extends the hold
func (b *Buffer) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.repeatLocked(a, now) {
		b.pending |= 1 << a
	}
	b.lastSeen[a] = now
	b.released[a] = false
}

// Release ends a hold immediately
func (b *Buffer) Release(a Action) {
	if a >= actionCount {
		return
	}
	b.mu.Lock()
	b.released[a] = true
	b.mu.Unlock()
}

// Latch returns the snapshot for the tick starting at now and clears pending presses
func (b *Buffer) Latch(now time.Time) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{pressed: b.pending}
	for a := Action(1); a < actionCount; a++ {
		if b.heldLocked(a, now) {
			s.held |= 1 << a
		}
	}
	s.held |= b.pending
	b.pending = 0
	return s
}

// Reset forgets every hold and pending press
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastSeen = [actionCount]time.Time{}
	b.released = [actionCount]bool{}
	b.pending = 0
}

func (b *Buffer) heldLocked(a Action, now time.Time) bool {
	if b.released[a] || b.lastSeen[a].IsZero() {
		return false
	}
	return now.Sub(b.lastSeen[a]) <= b.hold
}

func (b *Buffer) repeatLocked(a Action, now time.Time) bool {
	if b.released[a] || b.lastSeen[a].IsZero() {
		return false
	}
	return now.Sub(b.lastSeen[a]) <= b.repeat
}
