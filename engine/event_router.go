package engine

import "github.com/lixenwraith/trick-runner/event"

// EventRouter dispatches events to registered handlers
// Dispatch is single-threaded and runs under the world lock before systems update
// Handlers for one type are invoked in registration order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes a single event
func (r *EventRouter) Dispatch(ev event.GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
