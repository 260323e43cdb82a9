package system

import (
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/physics"
)

// LocomotionSystem turns held movement input and probe hits into player velocity
// Horizontal acceleration with a speed cap, wall dash, and a decaying jump force
type LocomotionSystem struct {
	world *engine.World

	statGrounded *atomic.Bool
}

func NewLocomotionSystem(world *engine.World) engine.System {
	s := &LocomotionSystem{world: world}
	s.statGrounded = world.Resources.Status.Bools.Get("player.grounded")
	s.Init()
	return s
}

// Init re-arms the jump charge as finished so a jump needs ground contact first
func (s *LocomotionSystem) Init() {
	c := s.world.Resources.Config.Constants
	s.world.Resources.Player.JumpCharge = component.NewFinishedCountdown(c.JumpDuration())
}

func (s *LocomotionSystem) Name() string {
	return "locomotion"
}

func (s *LocomotionSystem) Priority() int {
	return parameter.PriorityLocomotion
}

func (s *LocomotionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *LocomotionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *LocomotionSystem) Update() {
	body, ok := s.world.PlayerBody()
	if !ok {
		return
	}

	c := s.world.Resources.Config.Constants
	in := s.world.Resources.Input.Snapshot
	dtDur := s.world.Resources.Time.DeltaTime
	dt := float32(dtDur.Seconds())

	distance, hasGround := groundDistance(s.world, body)
	s.statGrounded.Store(hasGround && distance < c.GroundedThreshold)

	// Horizontal
	if (hasGround && distance < c.GroundedThreshold) || c.AirControl {
		if in.Held(input.ActionLeft) {
			body.Velocity[0] -= c.PlayerSpeed * dt
			body.Velocity[0], _ = physics.ClampSpeed(body.Velocity[0], c.MaxPlayerSpeed)
		}
		if in.Held(input.ActionRight) {
			body.Velocity[0] += c.PlayerSpeed * dt
			body.Velocity[0], _ = physics.ClampSpeed(body.Velocity[0], c.MaxPlayerSpeed)
		}
	}

	if !in.Held(input.ActionJump) {
		return
	}

	s.wallDash(body, dt)

	// Vertical
	charge := &s.world.Resources.Player.JumpCharge
	if hasGround && distance <= c.GroundedThreshold {
		charge.Reset()
	}
	if !charge.Finished() && body.Velocity.Y() >= 0 {
		charge.Tick(dtDur)
		force := c.JumpForce * math32.Pow(charge.FractionLeft(), c.CurvePow)
		body.Velocity[1] += force * dt
	}
}

// wallDash pushes up and away from any wall within reach of a side probe
func (s *LocomotionSystem) wallDash(body *physics.Body, dt float32) {
	c := s.world.Resources.Config.Constants
	reach := c.WallThreshold + parameter.WallProbeReach

	if hit, ok := playerProbeHit(s.world, component.ProbeLeftWall); ok {
		if gap := body.Left() - hit.Point.X(); gap <= reach {
			body.Velocity[1] += c.JumpForce * dt
			body.Velocity[0] += c.DashForce * dt
		}
	}
	if hit, ok := playerProbeHit(s.world, component.ProbeRightWall); ok {
		if gap := hit.Point.X() - body.Right(); gap <= reach {
			body.Velocity[1] += c.JumpForce * dt
			body.Velocity[0] -= c.DashForce * dt
		}
	}
}
