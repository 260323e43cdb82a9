package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// CombatSystem squishes an enemy the player lands on and bounces the player
// The enemy is only marked here; DeathSystem removes it at the end of the tick
type CombatSystem struct {
	world *engine.World

	statSquished *atomic.Int64
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{world: world}
	s.statSquished = world.Resources.Status.Ints.Get("combat.squished")
	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.statSquished.Store(0)
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CombatSystem) Update() {
	body, ok := s.world.PlayerBody()
	if !ok {
		return
	}
	hit, ok := playerProbeHit(s.world, component.ProbeSquish)
	if !ok || hit.Entity == core.NoEntity {
		return
	}
	if body.Bottom()-hit.Point.Y() >= parameter.SquishTolerance {
		return
	}

	// Already marked this tick or earlier
	if s.world.Components.Death.HasEntity(hit.Entity) {
		return
	}

	s.world.Components.Death.SetComponent(hit.Entity, component.DeathComponent{})
	body.Velocity[1] += s.world.Resources.Config.Constants.SquishBounceForce
	s.statSquished.Add(1)

	s.world.PushEvent(event.EventEnemySquished, &event.EnemySquishedPayload{Enemy: hit.Entity})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundSquish})
	s.world.Resources.Log.WithFields(logrus.Fields{
		"enemy": hit.Entity,
		"frame": s.world.Resources.Time.FrameNumber,
	}).Debug("enemy squished")
}
