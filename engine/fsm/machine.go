package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/trick-runner/event"
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running OnEnter from root down
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("state %q has no compiled path", node.Name)
	}

	m.InitialStateID = initial
	m.activeStateID = initial
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx, event.GameEvent{})
		}
	}
	return nil
}

// Reset exits the active chain and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx, event.GameEvent{})
		}
	}
	m.activePath = m.activePath[:0]
	m.activeStateID = StateNone
	return m.Init(ctx, m.InitialStateID)
}

// Update advances the FSM by dt, running OnUpdate of the active chain and tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnUpdate {
			action(ctx, event.GameEvent{})
		}
	}

	m.fire(ctx, event.GameEvent{Type: event.EventTick})
}

// HandleEvent routes an event through the active chain, leaf first
// Returns true if a transition occurred
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	if m.activeStateID == StateNone || ev.Type == event.EventTick {
		return false
	}
	return m.fire(ctx, ev)
}

func (m *Machine[T]) fire(ctx T, ev event.GameEvent) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev.Type {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID, ev)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to target
func (m *Machine[T]) transition(ctx T, targetID StateID, ev event.GameEvent) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}

	lca := -1
	for i := 0; i < len(m.activePath) && i < len(target.Path); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx, ev)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], target.Path...)

	for i := lca + 1; i < len(target.Path); i++ {
		for _, action := range m.nodes[target.Path[i]].OnEnter {
			action(ctx, ev)
		}
	}
}

// ActiveStateID returns the active leaf
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// ActiveStateName returns the name of the active leaf
func (m *Machine[T]) ActiveStateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// IsActive reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) IsActive(id StateID) bool {
	for _, v := range m.activePath {
		if v == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the active leaf
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
