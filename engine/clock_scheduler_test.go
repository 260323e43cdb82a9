package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/trick-runner/engine/fsm"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
)

type countingHandler struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (h *countingHandler) EventTypes() []event.EventType  { return h.types }
func (h *countingHandler) HandleEvent(ev event.GameEvent) { h.seen = append(h.seen, ev) }

const (
	stateHome fsm.StateID = iota + 2
	stateMap
)

func TestTickAdvancesTime(t *testing.T) {
	w := NewTestWorld()
	cs, _ := NewTestScheduler(w)

	cs.Tick(16 * time.Millisecond)
	cs.Tick(16 * time.Millisecond)

	if w.Resources.Time.GameTime != 32*time.Millisecond {
		t.Errorf("game time = %v, want 32ms", w.Resources.Time.GameTime)
	}
	if w.Resources.Time.FrameNumber != 2 || cs.TickCount() != 2 {
		t.Errorf("frames = %d, ticks = %d, want 2", w.Resources.Time.FrameNumber, cs.TickCount())
	}
}

func TestTickCapsDelta(t *testing.T) {
	w := NewTestWorld()
	cs, _ := NewTestScheduler(w)

	cs.Tick(5 * time.Second)

	if w.Resources.Time.DeltaTime != parameter.MaxTickDelta {
		t.Errorf("dt = %v, want %v", w.Resources.Time.DeltaTime, parameter.MaxTickDelta)
	}
}

func TestTickLatchesInput(t *testing.T) {
	w := NewTestWorld()
	cs, clock := NewTestScheduler(w)
	buf := input.NewBuffer(parameter.KeyHoldWindow, parameter.KeyRepeatGap)
	cs.SetInput(buf)

	buf.Press(input.ActionJump, clock.Now())
	cs.Tick(16 * time.Millisecond)

	snap := w.Resources.Input.Snapshot
	if !snap.Pressed(input.ActionJump) || !snap.Held(input.ActionJump) {
		t.Fatal("jump press not latched")
	}

	clock.Advance(16 * time.Millisecond)
	cs.Tick(16 * time.Millisecond)
	snap = w.Resources.Input.Snapshot
	if snap.Pressed(input.ActionJump) {
		t.Error("press latched twice")
	}
	if !snap.Held(input.ActionJump) {
		t.Error("jump released inside hold window")
	}
}

func TestEventsReachFSMThenHandlers(t *testing.T) {
	w := NewTestWorld()
	cs, _ := NewTestScheduler(w)

	h := &countingHandler{types: []event.EventType{event.EventSceneConfirm}}
	cs.RegisterEventHandler(h)

	var entered []string
	m := cs.FSM()
	m.AddState(fsm.StateRoot, "root", fsm.StateNone)
	m.AddState(stateHome, "home", fsm.StateRoot)
	m.AddState(stateMap, "map", fsm.StateRoot).Enter(func(w *World, ev event.GameEvent) {
		entered = append(entered, "map")
		// Emitted during dispatch, handled in the same pass
		w.PushEvent(event.EventSoundRequest, nil)
	})
	m.AddTransition(stateHome, fsm.Transition[*World]{TargetID: stateMap, Event: event.EventSceneConfirm})

	sound := &countingHandler{types: []event.EventType{event.EventSoundRequest}}
	cs.RegisterEventHandler(sound)

	if err := cs.InitFSM(stateHome); err != nil {
		t.Fatal(err)
	}

	w.PushEvent(event.EventSceneConfirm, nil)
	cs.Tick(16 * time.Millisecond)

	if !cs.IsInState(stateMap) {
		t.Fatalf("active = %s, want map", m.ActiveStateName())
	}
	if len(entered) != 1 {
		t.Errorf("map entered %d times, want 1", len(entered))
	}
	if len(h.seen) != 1 {
		t.Errorf("handler saw %d confirms, want 1", len(h.seen))
	}
	if len(sound.seen) != 1 {
		t.Errorf("cascaded event handled %d times, want 1", len(sound.seen))
	}
}

func TestRegisterSystemHandlers(t *testing.T) {
	w := NewTestWorld()
	w.AddSystem(&handlerSystem{})
	cs, _ := NewTestScheduler(w)
	cs.RegisterSystemHandlers()

	if n := cs.eventRouter.HandlerCount(event.EventGameReset); n != 1 {
		t.Errorf("reset handlers = %d, want 1", n)
	}
}

type handlerSystem struct{ resets int }

func (s *handlerSystem) Init()                          {}
func (s *handlerSystem) Name() string                   { return "handler" }
func (s *handlerSystem) Priority() int                  { return 1 }
func (s *handlerSystem) Update()                        {}
func (s *handlerSystem) EventTypes() []event.EventType  { return []event.EventType{event.EventGameReset} }
func (s *handlerSystem) HandleEvent(ev event.GameEvent) { s.resets++ }

func TestStartStop(t *testing.T) {
	w := NewTestWorld()
	cs := NewClockScheduler(w, NewMonotonicTimeProvider(), time.Millisecond)
	cs.Start()

	select {
	case <-cs.Frames():
	case <-time.After(2 * time.Second):
		t.Fatal("no tick within 2s")
	}

	cs.Stop()
	cs.Stop()
	n := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	if cs.TickCount() != n {
		t.Error("ticks continued after Stop")
	}
}
