package parameter

// System Execution Priorities (lower runs first)
// Probe placement must precede every reader of cast results within the same tick
const (
	PriorityProbe      = 10
	PriorityPhysics    = 20 // Integrates bodies, resolves casts at fresh origins
	PriorityLocomotion = 30
	PriorityCombat     = 40
	PriorityTrick      = 50 // Reads grounded state computed from this tick's casts
	PriorityCheckpoint = 60
	PriorityLevel      = 70
	PriorityCamera     = 80
	PriorityAudio      = 500
	PriorityDeath      = 900 // After all readers, sweeps tagged entities
)
