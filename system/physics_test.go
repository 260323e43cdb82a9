package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
)

func TestProbe_FollowsOwner(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewProbeSystem(w)
	body, _ := w.PlayerBody()

	body.Position = mgl32.Vec2{120, 40}
	advance(w, s, tick, input.Snapshot{})

	for purpose := component.ProbeGround; purpose < component.ProbePurposeCount; purpose++ {
		pe, ok := w.Resources.Player.Probe(purpose)
		if !ok {
			t.Fatalf("no %s probe", purpose)
		}
		probe, _ := w.Components.Probe.GetComponent(pe)
		want := body.Position.Add(probe.Offset)
		if probe.Caster.Origin != want {
			t.Errorf("%s origin = %v, want %v", purpose, probe.Caster.Origin, want)
		}
		if probe.Caster.Exclude != body.ID {
			t.Errorf("%s does not exclude the player body", purpose)
		}
	}

	ground, _ := w.Resources.Player.Probe(component.ProbeGround)
	probe, _ := w.Components.Probe.GetComponent(ground)
	if want := (mgl32.Vec2{120, 40 + parameter.GroundProbeOffsetY}); probe.Caster.Origin != want {
		t.Errorf("ground probe origin = %v, want %v", probe.Caster.Origin, want)
	}
}

func TestPhysics_StandingGroundDistance(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	probes := NewProbeSystem(w)
	phys := NewPhysicsSystem(w)
	body, _ := w.PlayerBody()

	for i := 0; i < 3; i++ {
		advance(w, probes, tick, input.Snapshot{})
		phys.Update()
	}

	d, ok := groundDistance(w, body)
	if !ok {
		t.Fatal("standing player has no ground hit")
	}
	if d != 0 {
		t.Errorf("ground distance = %v, want 0", d)
	}
	if !isGrounded(w, body) {
		t.Error("standing player not grounded")
	}
	if body.Velocity.Y() != 0 {
		t.Errorf("resting vy = %v", body.Velocity.Y())
	}
	if _, ok := playerProbeHit(w, component.ProbeSquish); ok {
		t.Error("squish probe hit without enemies")
	}
}

func TestPhysics_FallingPlayerNotGrounded(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	probes := NewProbeSystem(w)
	phys := NewPhysicsSystem(w)
	body, _ := w.PlayerBody()

	body.Position[1] = 200
	advance(w, probes, tick, input.Snapshot{})
	phys.Update()

	d, ok := groundDistance(w, body)
	if !ok {
		t.Fatal("ground probe should reach the floor")
	}
	if d < 150 {
		t.Errorf("ground distance = %v, want well above the threshold", d)
	}
	if isGrounded(w, body) {
		t.Error("falling player reported grounded")
	}
	if got := w.Resources.Status.Ints.Get("physics.bodies").Load(); got != int64(w.Resources.Physics.Space.Len()) {
		t.Errorf("physics.bodies = %d", got)
	}
}

func TestCamera_FollowsPlayer(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewCameraSystem(w)
	body, _ := w.PlayerBody()

	body.Position = mgl32.Vec2{-42, 7}
	s.Update()
	if w.Resources.Camera.Position != body.Position {
		t.Errorf("camera = %v, want %v", w.Resources.Camera.Position, body.Position)
	}

	s.Init()
	if w.Resources.Camera.Position != (mgl32.Vec2{}) {
		t.Error("Init should recentre the camera")
	}
}
