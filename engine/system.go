package engine

import "github.com/lixenwraith/trick-runner/event"

// System is a unit of per-tick game logic
type System interface {
	// Init resets session state
	Init()
	// Name returns a stable identifier for logs
	Name() string
	// Priority orders systems, lower runs first
	Priority() int
	// Update runs once per tick under the world update lock
	Update()
}

// EventHandler processes routed events
// Systems implementing it are registered with the scheduler router automatically
type EventHandler interface {
	// HandleEvent is called synchronously during dispatch, before systems update
	HandleEvent(ev event.GameEvent)
	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
