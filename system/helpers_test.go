package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/level"
	"github.com/lixenwraith/trick-runner/physics"
	"github.com/lixenwraith/trick-runner/trick"
)

const tick = 16 * time.Millisecond

// flatLevel is a long floor with its top at y=0 and the player standing on it
const flatLevel = `
id = "flat"

[[solid]]
x = 0.0
y = -16.0
width = 4000.0
height = 32.0

[[object]]
spawn = "player"
x = 0.0
y = 16.0
`

func spawnLevel(t *testing.T, src string) *engine.World {
	t.Helper()
	m, err := level.Decode(src)
	if err != nil {
		t.Fatal(err)
	}
	w := engine.NewTestWorld()
	if err := level.Spawn(w, m); err != nil {
		t.Fatal(err)
	}
	w.Resources.Level.ID = m.ID()
	w.Resources.Level.State = engine.LevelPlaying
	return w
}

func testTricks(t *testing.T, entries ...trick.Entry) *trick.Dictionary {
	t.Helper()
	d, err := trick.NewDictionary(entries)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func entry(name string, points, takesMs int, keys ...trick.Key) trick.Entry {
	return trick.Entry{Keys: keys, Trick: trick.Definition{Name: name, Points: points, TakesMs: takesMs}}
}

// advance moves the world clock by dt with the given input and runs one system update
func advance(w *engine.World, s engine.System, dt time.Duration, in input.Snapshot) {
	w.Resources.Time.Update(engine.TestEpoch, dt)
	w.Resources.Input.Snapshot = in
	s.Update()
}

// setProbeHit overwrites the current tick's hit of a player probe
func setProbeHit(t *testing.T, w *engine.World, purpose component.ProbePurpose, e core.Entity, point mgl32.Vec2) {
	t.Helper()
	pe, ok := w.Resources.Player.Probe(purpose)
	if !ok {
		t.Fatalf("no %s probe", purpose)
	}
	probe, _ := w.Components.Probe.GetComponent(pe)
	probe.Hit = physics.Hit{Entity: e, Point: point}
	probe.HasHit = true
	w.Components.Probe.SetComponent(pe, probe)
}

func clearProbeHit(t *testing.T, w *engine.World, purpose component.ProbePurpose) {
	t.Helper()
	pe, ok := w.Resources.Player.Probe(purpose)
	if !ok {
		t.Fatalf("no %s probe", purpose)
	}
	probe, _ := w.Components.Probe.GetComponent(pe)
	probe.Hit, probe.HasHit = physics.Hit{}, false
	w.Components.Probe.SetComponent(pe, probe)
}

// groundAt places the ground probe hit dist below the player's bottom edge
func groundAt(t *testing.T, w *engine.World, dist float32) {
	t.Helper()
	body, ok := w.PlayerBody()
	if !ok {
		t.Fatal("no player body")
	}
	setProbeHit(t, w, component.ProbeGround, 1, mgl32.Vec2{body.Position.X(), body.Bottom() - dist})
}

// drainEvents returns queued events of type et, discarding the rest
func drainEvents(w *engine.World, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Resources.Event.Queue.Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func countEvents(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}
