package system

import (
	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// CheckpointSystem signals level completion when the player stands at an end checkpoint
type CheckpointSystem struct {
	world *engine.World

	// signaled latches the one completion event of the current level
	signaled bool
}

func NewCheckpointSystem(world *engine.World) engine.System {
	s := &CheckpointSystem{world: world}
	s.Init()
	return s
}

func (s *CheckpointSystem) Init() {
	s.signaled = false
}

func (s *CheckpointSystem) Name() string {
	return "checkpoint"
}

func (s *CheckpointSystem) Priority() int {
	return parameter.PriorityCheckpoint
}

func (s *CheckpointSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset, event.EventLevelLoaded}
}

func (s *CheckpointSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset, event.EventLevelLoaded:
		s.Init()
	}
}

func (s *CheckpointSystem) Update() {
	lvl := s.world.Resources.Level
	if s.signaled || lvl.State != engine.LevelPlaying {
		return
	}
	body, ok := s.world.PlayerBody()
	if !ok {
		return
	}
	hit, ok := playerProbeHit(s.world, component.ProbeCheckpoint)
	if !ok || hit.Entity == core.NoEntity {
		return
	}
	if cp, ok := s.world.Components.Checkpoint.GetComponent(hit.Entity); !ok || cp.Kind != component.CheckpointEnd {
		return
	}
	if body.Bottom()-hit.Point.Y() > s.world.Resources.Config.Constants.GroundedThreshold {
		return
	}

	s.signaled = true
	s.world.PushEvent(event.EventLevelComplete, &event.LevelCompletePayload{
		LevelID:    lvl.ID,
		Checkpoint: hit.Entity,
	})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundCheckpoint})
	s.world.Resources.Log.WithField("level", lvl.ID).Info("end checkpoint reached")
}
