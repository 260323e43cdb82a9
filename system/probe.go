package system

import (
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// ProbeSystem re-centres every probe on its owner before casts resolve
type ProbeSystem struct {
	world *engine.World
}

func NewProbeSystem(world *engine.World) engine.System {
	s := &ProbeSystem{world: world}
	s.Init()
	return s
}

func (s *ProbeSystem) Init() {}

func (s *ProbeSystem) Name() string {
	return "probe"
}

func (s *ProbeSystem) Priority() int {
	return parameter.PriorityProbe
}

func (s *ProbeSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ProbeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update moves each caster origin to owner position plus its fixed offset
// Probes whose owner has no body are left untouched
func (s *ProbeSystem) Update() {
	if !s.world.Resources.Player.Present() {
		return
	}

	store := s.world.Components.Probe
	for _, e := range store.GetAllEntities() {
		probe, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		body, ok := s.world.Body(probe.Owner)
		if !ok {
			continue
		}
		probe.Caster.Origin = body.Position.Add(probe.Offset)
		probe.Caster.Exclude = body.ID
		store.SetComponent(e, probe)
	}
}
