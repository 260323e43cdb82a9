package system

import (
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct audio access
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system reading the world's audio player
// A nil player keeps the system silent
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
	}
}

// HandleEvent processes sound request events
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	player := s.world.Resources.Audio.Player
	if player == nil || !player.IsRunning() {
		return
	}
	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		player.Play(payload.SoundType)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
