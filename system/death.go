package system

import (
	"sync/atomic"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// DeathSystem destroys every entity tagged with DeathComponent
// Runs last so no system observes a half-removed entity within the tick
type DeathSystem struct {
	world *engine.World

	statKilled *atomic.Int64
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world: world,
	}

	s.statKilled = s.world.Resources.Status.Ints.Get("death.killed")

	s.Init()
	return s
}

// Init resets session state for new game
func (s *DeathSystem) Init() {
	s.statKilled.Store(0)
}

// Name returns system's name
func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update processes entities tagged with DeathComponent
func (s *DeathSystem) Update() {
	deathEntities := s.world.Components.Death.GetAllEntities()
	if len(deathEntities) == 0 {
		return
	}

	player := s.world.Resources.Player.Entity
	for _, e := range deathEntities {
		if e == 0 || e == player {
			// Player removal goes through the level scene release
			s.world.Components.Death.RemoveEntity(e)
			continue
		}
		s.world.DestroyEntity(e)
		s.statKilled.Add(1)
	}
}
