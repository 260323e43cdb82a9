package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/parameter"
)

// CameraSystem keeps the view centred on the player
type CameraSystem struct {
	world *engine.World
}

// NewCameraSystem creates camera following system
func NewCameraSystem(world *engine.World) engine.System {
	s := &CameraSystem{
		world: world,
	}

	s.Init()
	return s
}

// Init resets the camera to the origin
func (s *CameraSystem) Init() {
	s.world.Resources.Camera.Position = mgl32.Vec2{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CameraSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update follows the player, holding the last position while there is none
func (s *CameraSystem) Update() {
	body, ok := s.world.PlayerBody()
	if !ok {
		return
	}
	s.world.Resources.Camera.Position = body.Position
}
