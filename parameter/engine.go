package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps dt fed to systems after a stall (debugger, suspended terminal)
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// StoreInitialCapacity is the preallocated dense array size of a component store
	StoreInitialCapacity = 64
)

// Terminal input
const (
	// KeyHoldWindow keeps an action held after its last key event; terminals report no key release
	KeyHoldWindow = 300 * time.Millisecond

	// KeyRepeatGap is the longest interval between key events still read as terminal auto-repeat
	// A repeat refreshes the hold without counting as a new press; slower taps are new presses
	KeyRepeatGap = 60 * time.Millisecond

	// InputEventBuffer is the channel capacity between the tcell poller and the reader
	InputEventBuffer = 100
)

// MaxDispatchRounds bounds event cascades processed within one tick
const MaxDispatchRounds = 8
