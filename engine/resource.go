package engine

import (
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/physics"
	"github.com/lixenwraith/trick-runner/stats"
	"github.com/lixenwraith/trick-runner/status"
	"github.com/lixenwraith/trick-runner/trick"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	// World resources
	Time    *TimeResource
	Config  *ConfigResource
	Input   *InputResource
	Event   *EventQueueResource
	Physics *PhysicsResource

	// Session
	Scene  *SceneResource
	Player *PlayerResource
	Level  *LevelResource
	Camera *CameraResource

	// Telemetry
	Status *status.Registry
	Log    logrus.FieldLogger

	// Bridged collaborators
	Audio *AudioResource
	Stats *StatsResource
}

func newResource(constants *config.Constants) *Resource {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return &Resource{
		Time:    &TimeResource{},
		Config:  &ConfigResource{Constants: constants},
		Input:   &InputResource{},
		Event:   &EventQueueResource{Queue: event.NewEventQueue()},
		Physics: &PhysicsResource{Space: physics.NewSpace(constants.Gravity)},
		Scene:   &SceneResource{},
		Player:  &PlayerResource{},
		Level:   &LevelResource{},
		Camera:  &CameraResource{},
		Status:  status.NewRegistry(),
		Log:     quiet,
		Audio:   &AudioResource{},
		Stats:   &StatsResource{},
	}
}

// === World Resources ===

// TimeResource is updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// GameTime is simulation time accumulated from tick deltas
	GameTime time.Duration

	// RealTime is the wall clock at tick start
	RealTime time.Time

	// DeltaTime is the duration simulated by this tick
	DeltaTime time.Duration

	// FrameNumber is the tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock
func (tr *TimeResource) Update(realTime time.Time, dt time.Duration) {
	tr.GameTime += dt
	tr.RealTime = realTime
	tr.DeltaTime = dt
	tr.FrameNumber++
}

// ConfigResource holds read-only configuration
type ConfigResource struct {
	Constants *config.Constants
	Tricks    *trick.Dictionary
	Paths     config.Paths
}

// InputResource holds the input snapshot latched for the current tick
type InputResource struct {
	Snapshot input.Snapshot
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PhysicsResource wraps the physics space of the active level
type PhysicsResource struct {
	Space *physics.Space
}

// === Session Resources ===

// SceneResource mirrors the active top-level scene for renderers
// Written by scene enter actions only
type SceneResource struct {
	Active SceneID
}

// PlayerResource is the single-player handle, zero Entity means no player
type PlayerResource struct {
	Entity core.Entity
	Probes [component.ProbePurposeCount]core.Entity

	// JumpCharge is the jump force window, mutated by locomotion only
	JumpCharge component.Countdown
}

// Present reports whether a player is spawned
func (p *PlayerResource) Present() bool {
	return p.Entity != core.NoEntity
}

// Probe returns the probe entity for a purpose
func (p *PlayerResource) Probe(purpose component.ProbePurpose) (core.Entity, bool) {
	if purpose >= component.ProbePurposeCount {
		return core.NoEntity, false
	}
	e := p.Probes[purpose]
	return e, e != core.NoEntity
}

// Clear forgets the player and its probes
func (p *PlayerResource) Clear() {
	*p = PlayerResource{}
}

// LevelState is the lifecycle of the active level
type LevelState uint8

const (
	LevelNone LevelState = iota
	LevelPrePlay
	LevelPlaying
	LevelOver
)

func (s LevelState) String() string {
	switch s {
	case LevelPrePlay:
		return "preplay"
	case LevelPlaying:
		return "playing"
	case LevelOver:
		return "over"
	default:
		return "none"
	}
}

// LevelResource tracks the active level
type LevelResource struct {
	ID        string
	State     LevelState
	Stopwatch time.Duration

	// Result is assembled once on entering Over
	Result    stats.LevelResult
	HasResult bool

	// PostLevel counts down the result screen
	PostLevel component.Countdown

	// LoadErr is the last load failure, shown on the map screen
	LoadErr error
}

// Reset clears level state
func (l *LevelResource) Reset() {
	*l = LevelResource{}
}

// CameraResource is the view centre in world units
type CameraResource struct {
	Position mgl32.Vec2
}

// === Bridged Resources ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface, nil Player means silent
type AudioResource struct {
	Player AudioPlayer
}

// StatsResource wraps the persistence collaborator, nil Store disables recording
type StatsResource struct {
	Store stats.Store
}
