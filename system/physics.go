package system

import (
	"sync/atomic"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/parameter"
)

// PhysicsSystem resolves probe casts at their fresh origins, then integrates bodies
// Readers later in the tick see hits against the pre-step world and post-step body positions
type PhysicsSystem struct {
	world *engine.World

	statBodies *atomic.Int64
	statHits   *atomic.Int64
}

func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{world: world}
	s.statBodies = world.Resources.Status.Ints.Get("physics.bodies")
	s.statHits = world.Resources.Status.Ints.Get("physics.probe_hits")
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.statBodies.Store(0)
	s.statHits.Store(0)
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	space := s.world.Resources.Physics.Space
	store := s.world.Components.Probe

	hits := 0
	for _, e := range store.GetAllEntities() {
		probe, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		probe.Hit, probe.HasHit = space.Nearest(probe.Caster)
		if probe.HasHit {
			hits++
		}
		store.SetComponent(e, probe)
	}

	space.Step(s.world.Resources.Time.DeltaTime)

	s.statBodies.Store(int64(space.Len()))
	s.statHits.Store(int64(hits))
}
