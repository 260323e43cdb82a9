package engine

import (
	"time"

	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/trick"
)

// TestEpoch is the wall clock start used by test schedulers
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates a world with default constants and an empty trick dictionary
// Used by package tests that drive systems directly
func NewTestWorld() *World {
	w := NewWorld(config.Default())
	if dict, err := trick.NewDictionary(nil); err == nil {
		w.Resources.Config.Tricks = dict
	}
	return w
}

// NewTestScheduler creates a scheduler on a mocked clock; drive it with Tick
func NewTestScheduler(w *World) (*ClockScheduler, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)
	return NewClockScheduler(w, clock, 16*time.Millisecond), clock
}
