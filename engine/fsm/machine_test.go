package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/trick-runner/event"
)

type trace struct {
	calls []string
	ready bool
}

func (tr *trace) record(s string) ActionFunc[*trace] {
	return func(ctx *trace, ev event.GameEvent) { ctx.calls = append(ctx.calls, s) }
}

const (
	sHome StateID = iota + 2
	sMap
	sLevel
	sPrePlay
	sPlaying
	sOver
)

// Scenes with a nested level machine
func buildScenes(t *testing.T, tr *trace) *Machine[*trace] {
	t.Helper()
	m := NewMachine[*trace]()
	m.AddState(StateRoot, "root", StateNone)
	m.AddState(sHome, "home", StateRoot).Enter(tr.record("+home")).Exit(tr.record("-home"))
	m.AddState(sMap, "map", StateRoot).Enter(tr.record("+map")).Exit(tr.record("-map"))
	m.AddState(sLevel, "level", StateRoot).Enter(tr.record("+level")).Exit(tr.record("-level"))
	m.AddState(sPrePlay, "preplay", sLevel).Enter(tr.record("+preplay")).Exit(tr.record("-preplay"))
	m.AddState(sPlaying, "playing", sLevel).Enter(tr.record("+playing")).Exit(tr.record("-playing")).Tick(tr.record("tick"))
	m.AddState(sOver, "over", sLevel).Enter(tr.record("+over")).Exit(tr.record("-over"))

	m.AddTransition(sHome, Transition[*trace]{TargetID: sMap, Event: event.EventSceneConfirm})
	m.AddTransition(sMap, Transition[*trace]{TargetID: sPrePlay, Event: event.EventLevelSelect})
	m.AddTransition(sPrePlay, Transition[*trace]{TargetID: sPlaying, Event: event.EventLevelLoaded})
	m.AddTransition(sPrePlay, Transition[*trace]{TargetID: sMap, Event: event.EventLevelLoadFailed})
	m.AddTransition(sPlaying, Transition[*trace]{TargetID: sOver, Event: event.EventLevelComplete})
	m.AddTransition(sOver, Transition[*trace]{
		TargetID: sHome,
		Event:    event.EventTick,
		Guard:    func(ctx *trace) bool { return ctx.ready },
	})
	// Back from anywhere inside the level
	m.AddTransition(sLevel, Transition[*trace]{TargetID: sHome, Event: event.EventSceneBack})

	if err := m.CompilePaths(); err != nil {
		t.Fatal(err)
	}
	if err := m.Init(tr, sHome); err != nil {
		t.Fatal(err)
	}
	return m
}

func fire(m *Machine[*trace], tr *trace, et event.EventType) bool {
	return m.HandleEvent(tr, event.GameEvent{Type: et})
}

func TestTransitionsEnterAndExitChains(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)

	fire(m, tr, event.EventSceneConfirm)
	fire(m, tr, event.EventLevelSelect)
	fire(m, tr, event.EventLevelLoaded)

	got := strings.Join(tr.calls, " ")
	want := "+home -home +map -map +level +preplay -preplay +playing"
	if got != want {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	if !m.IsActive(sLevel) || m.ActiveStateID() != sPlaying {
		t.Errorf("active = %s", m.ActiveStateName())
	}
}

func TestEventBubblesToParent(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)
	fire(m, tr, event.EventSceneConfirm)
	fire(m, tr, event.EventLevelSelect)
	fire(m, tr, event.EventLevelLoaded)
	tr.calls = nil

	if !fire(m, tr, event.EventSceneBack) {
		t.Fatal("back not handled by level parent")
	}
	got := strings.Join(tr.calls, " ")
	if got != "-playing -level +home" {
		t.Errorf("calls = %q", got)
	}
}

func TestUnhandledEventIgnored(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)

	if fire(m, tr, event.EventLevelComplete) {
		t.Error("home handled level complete")
	}
	if m.ActiveStateID() != sHome {
		t.Errorf("active = %s, want home", m.ActiveStateName())
	}
}

func TestGuardedTickTransition(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)
	fire(m, tr, event.EventSceneConfirm)
	fire(m, tr, event.EventLevelSelect)
	fire(m, tr, event.EventLevelLoaded)
	fire(m, tr, event.EventLevelComplete)

	m.Update(tr, 16*time.Millisecond)
	if m.ActiveStateID() != sOver {
		t.Fatalf("left over before guard passed: %s", m.ActiveStateName())
	}
	if m.TimeInState() != 16*time.Millisecond {
		t.Errorf("time in state = %v", m.TimeInState())
	}

	tr.ready = true
	m.Update(tr, 16*time.Millisecond)
	if m.ActiveStateID() != sHome {
		t.Errorf("active = %s, want home", m.ActiveStateName())
	}
}

func TestUpdateRunsActiveChainOnly(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)
	m.Update(tr, time.Millisecond)
	for _, c := range tr.calls {
		if c == "tick" {
			t.Fatal("inactive state ticked")
		}
	}

	fire(m, tr, event.EventSceneConfirm)
	fire(m, tr, event.EventLevelSelect)
	fire(m, tr, event.EventLevelLoaded)
	tr.calls = nil
	m.Update(tr, time.Millisecond)
	if len(tr.calls) != 1 || tr.calls[0] != "tick" {
		t.Errorf("calls = %v, want [tick]", tr.calls)
	}
}

func TestResetReentersInitial(t *testing.T) {
	tr := &trace{}
	m := buildScenes(t, tr)
	fire(m, tr, event.EventSceneConfirm)
	tr.calls = nil

	if err := m.Reset(tr); err != nil {
		t.Fatal(err)
	}
	got := strings.Join(tr.calls, " ")
	if got != "-map +home" {
		t.Errorf("calls = %q, want %q", got, "-map +home")
	}
}

func TestCompilePathsErrors(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(StateRoot, "root", StateNone)
	m.AddState(sHome, "home", 99)
	if err := m.CompilePaths(); err == nil {
		t.Error("missing parent accepted")
	}

	m = NewMachine[*trace]()
	m.AddState(sHome, "a", sMap)
	m.AddState(sMap, "b", sHome)
	if err := m.CompilePaths(); err == nil {
		t.Error("parent cycle accepted")
	}

	m = NewMachine[*trace]()
	if err := m.Init(&trace{}, sHome); err == nil {
		t.Error("unknown initial state accepted")
	}
}
