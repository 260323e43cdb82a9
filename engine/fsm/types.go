// Package fsm is a small hierarchical finite state machine driven by game events and ticks
package fsm

import (
	"time"

	"github.com/lixenwraith/trick-runner/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic hierarchical state machine runtime
// T is the context passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after CompilePaths
	nodes map[StateID]*Node[T]

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> leaf
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from root to this node, used for LCA lookup
	Path []StateID

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated every update
	Guard    GuardFunc[T]    // nil = always
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect; ev is the triggering event, zero for tick transitions and Init
type ActionFunc[T any] func(ctx T, ev event.GameEvent)
