package component

import (
	"time"

	"github.com/lixenwraith/trick-runner/trick"
)

// TrickComponent is the per-player trick session
type TrickComponent struct {
	// Keys is the recording buffer
	Keys []trick.Key

	// Pending is the recognized trick waiting for its commit window
	Pending    trick.Definition
	HasPending bool

	// Held is an exact match kept back because a longer trick starts with the same keys
	Held    trick.Definition
	HasHeld bool

	// Commit counts down Pending.Takes()
	Commit Countdown

	// LastKeyAt is the game time of the last directional press
	LastKeyAt time.Duration
}

// Committed reports whether a pending trick is inside its commit window
func (t *TrickComponent) Committed() bool {
	return t.HasPending && !t.Commit.Finished()
}

// ClearKeys empties the buffer and forgets any held match
func (t *TrickComponent) ClearKeys() {
	t.Keys = t.Keys[:0]
	t.Held = trick.Definition{}
	t.HasHeld = false
}

// DropPending forgets the pending trick
func (t *TrickComponent) DropPending() {
	t.Pending = trick.Definition{}
	t.HasPending = false
}

// ScoreComponent is the non-negative trick score of the player
type ScoreComponent struct {
	Points int
}
