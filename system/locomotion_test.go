package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/input"
)

func TestLocomotion_JumpVelocityNonDecreasingWhileHeld(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()
	jump := input.Snapshot{}.WithHeld(input.ActionJump)

	prev := body.Velocity.Y()
	for i := 0; i < 40; i++ {
		if i < 3 {
			groundAt(t, w, 0)
		} else {
			clearProbeHit(t, w, component.ProbeGround)
		}
		advance(w, s, tick, jump)

		vy := body.Velocity.Y()
		if vy < prev {
			t.Fatalf("tick %d: vy dropped from %v to %v", i, prev, vy)
		}
		prev = vy
	}

	if prev <= 0 {
		t.Errorf("jump produced no lift, vy = %v", prev)
	}
	if !w.Resources.Player.JumpCharge.Finished() {
		t.Error("jump charge should be spent after 640ms")
	}
}

func TestLocomotion_JumpForceDecays(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()
	jump := input.Snapshot{}.WithHeld(input.ActionJump)

	groundAt(t, w, 0)
	advance(w, s, tick, jump)
	clearProbeHit(t, w, component.ProbeGround)

	var gains []float32
	prev := body.Velocity.Y()
	for !w.Resources.Player.JumpCharge.Finished() {
		advance(w, s, tick, jump)
		gains = append(gains, body.Velocity.Y()-prev)
		prev = body.Velocity.Y()
	}

	for i := 1; i < len(gains); i++ {
		if gains[i] > gains[i-1] {
			t.Fatalf("gain %d (%v) exceeds gain %d (%v)", i, gains[i], i-1, gains[i-1])
		}
	}
	if last := gains[len(gains)-1]; last != 0 {
		t.Errorf("final tick gain = %v, want 0 at an empty charge", last)
	}
}

func TestLocomotion_NoJumpWithoutGround(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()

	clearProbeHit(t, w, component.ProbeGround)
	for i := 0; i < 5; i++ {
		advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionJump))
	}
	if vy := body.Velocity.Y(); vy != 0 {
		t.Errorf("airborne start jumped, vy = %v", vy)
	}
}

func TestLocomotion_NoForceWhileFalling(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()

	groundAt(t, w, 1)
	body.Velocity[1] = -10
	advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionJump))

	if vy := body.Velocity.Y(); vy != -10 {
		t.Errorf("vy = %v, want -10 untouched", vy)
	}
	if w.Resources.Player.JumpCharge.Finished() {
		t.Error("ground contact should re-arm the charge")
	}
}

func TestLocomotion_JumpResetAtThreshold(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()
	c := w.Resources.Config.Constants

	groundAt(t, w, c.GroundedThreshold)
	advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionJump))
	if body.Velocity.Y() <= 0 {
		t.Error("a gap equal to the threshold should still start a jump")
	}
}

func TestLocomotion_HorizontalNeedsGround(t *testing.T) {
	for _, c := range []struct {
		name string
		gap  float32
		move bool
	}{
		{"standing", 0, true},
		{"just below threshold", 1.9, true},
		{"at threshold", 2, false},
		{"high", 50, false},
	} {
		t.Run(c.name, func(t *testing.T) {
			w := spawnLevel(t, flatLevel)
			s := NewLocomotionSystem(w)
			body, _ := w.PlayerBody()

			groundAt(t, w, c.gap)
			advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionRight))

			moved := body.Velocity.X() > 0
			if moved != c.move {
				t.Errorf("moved = %v, want %v (vx %v)", moved, c.move, body.Velocity.X())
			}
			if got := w.Resources.Status.Bools.Get("player.grounded").Load(); got != c.move {
				t.Errorf("player.grounded = %v, want %v", got, c.move)
			}
		})
	}
}

func TestLocomotion_AirControl(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	w.Resources.Config.Constants.AirControl = true
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()

	clearProbeHit(t, w, component.ProbeGround)
	advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionLeft))
	if body.Velocity.X() >= 0 {
		t.Errorf("air control should steer, vx = %v", body.Velocity.X())
	}
}

func TestLocomotion_SpeedCap(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()
	c := w.Resources.Config.Constants

	for i := 0; i < 100; i++ {
		groundAt(t, w, 0)
		advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionLeft))
	}
	if vx := body.Velocity.X(); vx != -c.MaxPlayerSpeed {
		t.Errorf("vx = %v, want %v", vx, -c.MaxPlayerSpeed)
	}
}

func TestLocomotion_WallDash(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()

	clearProbeHit(t, w, component.ProbeGround)
	setProbeHit(t, w, component.ProbeLeftWall, 1, mgl32.Vec2{body.Left() - 1, body.Position.Y()})
	advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionJump))

	if body.Velocity.X() <= 0 {
		t.Errorf("dash should push away from the left wall, vx = %v", body.Velocity.X())
	}
	if body.Velocity.Y() <= 0 {
		t.Errorf("dash should push up, vy = %v", body.Velocity.Y())
	}
}

func TestLocomotion_WallOutOfReach(t *testing.T) {
	w := spawnLevel(t, flatLevel)
	s := NewLocomotionSystem(w)
	body, _ := w.PlayerBody()

	clearProbeHit(t, w, component.ProbeGround)
	setProbeHit(t, w, component.ProbeRightWall, 1, mgl32.Vec2{body.Right() + 200, body.Position.Y()})
	advance(w, s, tick, input.Snapshot{}.WithHeld(input.ActionJump))

	if v := body.Velocity; v.X() != 0 || v.Y() != 0 {
		t.Errorf("distant wall moved the player, v = %v", v)
	}
}
