package system

import (
	"testing"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/physics"
)

// newPipeline wires the per-tick gameplay systems onto a scheduler with a mocked clock
func newPipeline(t *testing.T, src string) (*engine.World, *engine.ClockScheduler) {
	t.Helper()
	w := spawnLevel(t, src)
	w.AddSystem(NewProbeSystem(w))
	w.AddSystem(NewPhysicsSystem(w))
	w.AddSystem(NewLocomotionSystem(w))
	w.AddSystem(NewCombatSystem(w))
	w.AddSystem(NewTrickSystem(w))
	w.AddSystem(NewCheckpointSystem(w))
	w.AddSystem(NewCameraSystem(w))
	w.AddSystem(NewDeathSystem(w))
	cs, _ := engine.NewTestScheduler(w)
	cs.RegisterSystemHandlers()
	return w, cs
}

// jumpApex holds jump for heldTicks then releases, returning the highest bottom edge reached
func jumpApex(t *testing.T, heldTicks int) (float32, *engine.World) {
	t.Helper()
	w, cs := newPipeline(t, flatLevel)
	body, _ := w.PlayerBody()

	apex := body.Bottom()
	for i := 0; i < 300; i++ {
		in := input.Snapshot{}
		if i < heldTicks {
			in = in.WithHeld(input.ActionJump)
		}
		w.Resources.Input.Snapshot = in
		cs.Tick(tick)
		if b := body.Bottom(); b > apex {
			apex = b
		}
	}
	return apex, w
}

func TestPipeline_HeldJumpOutclimbsTap(t *testing.T) {
	tap, _ := jumpApex(t, 1)
	held, _ := jumpApex(t, 40)

	if tap <= 0 {
		t.Fatalf("tap jump never left the ground, apex %v", tap)
	}
	if held < 4*tap {
		t.Errorf("held apex %v not clearly above tap apex %v", held, tap)
	}
}

func TestPipeline_JumpLandsAgain(t *testing.T) {
	apex, w := jumpApex(t, 40)
	body, _ := w.PlayerBody()

	if apex < 20 {
		t.Fatalf("apex = %v, want a real jump", apex)
	}
	if !isGrounded(w, body) {
		t.Errorf("player still airborne after landing window, bottom %v", body.Bottom())
	}
	if body.Velocity.Y() != 0 {
		t.Errorf("landed vy = %v", body.Velocity.Y())
	}
}

func TestPipeline_RunRight(t *testing.T) {
	w, cs := newPipeline(t, flatLevel)
	body, _ := w.PlayerBody()
	c := w.Resources.Config.Constants

	for i := 0; i < 60; i++ {
		w.Resources.Input.Snapshot = input.Snapshot{}.WithHeld(input.ActionRight)
		cs.Tick(tick)
	}
	if body.Position.X() <= 100 {
		t.Errorf("x = %v after a second of running", body.Position.X())
	}
	if body.Velocity.X() != c.MaxPlayerSpeed {
		t.Errorf("vx = %v, want capped %v", body.Velocity.X(), c.MaxPlayerSpeed)
	}
	if w.Resources.Camera.Position != body.Position {
		t.Error("camera lagging the player")
	}
}

const stompLevel = `
id = "stomp"

[[solid]]
x = 0.0
y = -16.0
width = 4000.0
height = 32.0

[[object]]
spawn = "enemy_1"
x = 0.0
y = 8.0

[[object]]
spawn = "player"
x = 0.0
y = 100.0
`

func TestPipeline_StompEnemy(t *testing.T) {
	w, cs := newPipeline(t, stompLevel)
	body, _ := w.PlayerBody()
	if n := w.Components.Enemy.CountEntities(); n != 1 {
		t.Fatalf("enemies = %d, want 1", n)
	}

	for i := 0; i < 120 && w.Components.Enemy.CountEntities() > 0; i++ {
		cs.Tick(tick)
	}

	if n := w.Components.Enemy.CountEntities(); n != 0 {
		t.Fatalf("enemy survived the stomp, player bottom %v", body.Bottom())
	}
	if body.Velocity.Y() <= 0 {
		t.Errorf("no bounce after stomp, vy = %v", body.Velocity.Y())
	}
	for _, id := range w.Resources.Physics.Space.IDs() {
		if b, _ := w.Resources.Physics.Space.Body(id); b.Layer == physics.LayerEnemy {
			t.Error("enemy body left in the space")
		}
	}
}

func TestPipeline_AirborneSpawnCannotJump(t *testing.T) {
	const airborneLevel = `
id = "airborne"

[[solid]]
x = 0.0
y = -16.0
width = 4000.0
height = 32.0

[[object]]
spawn = "player"
x = 0.0
y = 300.0
`
	w, cs := newPipeline(t, airborneLevel)
	body, _ := w.PlayerBody()

	prev := body.Velocity.Y()
	for i := 0; i < 10; i++ {
		w.Resources.Input.Snapshot = input.Snapshot{}.WithHeld(input.ActionJump)
		cs.Tick(tick)

		vy := body.Velocity.Y()
		if vy >= prev {
			t.Fatalf("tick %d: vy %v did not fall below %v", i, vy, prev)
		}
		prev = vy
	}
	if !w.Resources.Player.JumpCharge.Finished() {
		t.Error("jump charge armed without ground contact")
	}
}
