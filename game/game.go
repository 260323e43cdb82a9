// Package game assembles the world, systems, scene graph and renderers into a runnable session
package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/render"
	"github.com/lixenwraith/trick-runner/render/renderers"
	"github.com/lixenwraith/trick-runner/stats"
	"github.com/lixenwraith/trick-runner/system"
	"github.com/lixenwraith/trick-runner/trick"
)

// Options configures a game session; zero fields fall back to defaults
type Options struct {
	Constants *config.Constants
	Tricks    *trick.Dictionary
	Paths     config.Paths

	// Loader resolves level ids, defaults to FileLoader(Paths)
	Loader system.MapLoader

	Audio   engine.AudioPlayer
	Stats   stats.Store
	Records renderers.RecordSource

	// Debug adds the status registry line to the HUD
	Debug bool

	Log          logrus.FieldLogger
	Clock        engine.TimeProvider
	TickInterval time.Duration
}

// Game is one assembled session
type Game struct {
	World     *engine.World
	Scheduler *engine.ClockScheduler
	Input     *input.Buffer

	hud    *renderers.HUDRenderer
	scenes *renderers.SceneRenderer
}

// New wires resources, systems and the scene graph, and enters the home scene
func New(opts Options) (*Game, error) {
	if opts.Tricks == nil {
		dict, err := trick.NewDictionary(nil)
		if err != nil {
			return nil, err
		}
		opts.Tricks = dict
	}
	if opts.Loader == nil {
		opts.Loader = FileLoader(opts.Paths)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = parameter.GameUpdateInterval
	}

	world := engine.NewWorld(opts.Constants)
	res := world.Resources
	res.Config.Tricks = opts.Tricks
	res.Config.Paths = opts.Paths
	res.Audio.Player = opts.Audio
	res.Stats.Store = opts.Stats
	if opts.Log != nil {
		res.Log = opts.Log
	}

	world.AddSystem(system.NewProbeSystem(world))
	world.AddSystem(system.NewPhysicsSystem(world))
	world.AddSystem(system.NewLocomotionSystem(world))
	world.AddSystem(system.NewCombatSystem(world))
	world.AddSystem(system.NewTrickSystem(world))
	world.AddSystem(system.NewCheckpointSystem(world))
	world.AddSystem(system.NewLevelSystem(world, opts.Loader))
	world.AddSystem(system.NewCameraSystem(world))
	world.AddSystem(system.NewAudioSystem(world))
	world.AddSystem(system.NewDeathSystem(world))

	g := &Game{
		World:     world,
		Scheduler: engine.NewClockScheduler(world, opts.Clock, opts.TickInterval),
		Input:     input.NewBuffer(parameter.KeyHoldWindow, parameter.KeyRepeatGap),
		hud:       renderers.NewHUDRenderer(world, opts.Debug),
		scenes:    renderers.NewSceneRenderer(world, opts.Records),
	}
	g.Scheduler.SetInput(g.Input)
	g.Scheduler.RegisterSystemHandlers()
	g.Scheduler.RegisterEventHandler(g.hud)
	g.Scheduler.RegisterEventHandler(g.scenes)

	buildScenes(g.Scheduler.FSM())
	if err := g.Scheduler.InitFSM(StateHome); err != nil {
		return nil, fmt.Errorf("scene graph: %w", err)
	}

	res.Log.WithFields(logrus.Fields{
		"systems": len(world.Systems()),
		"tricks":  opts.Tricks.Len(),
	}).Info("game assembled")
	return g, nil
}

// Play skips the home and map scenes and loads levelID
func (g *Game) Play(levelID string) {
	g.World.RunSafe(func() {
		g.World.PushEvent(event.EventSceneConfirm, nil)
		g.World.PushEvent(event.EventLevelSelect, &event.LevelSelectPayload{LevelID: levelID})
	})
	g.Scheduler.DispatchEventsImmediately()
}

// Scene returns the name of the active scene state
func (g *Game) Scene() string {
	var name string
	g.World.RunSafe(func() { name = g.Scheduler.FSM().ActiveStateName() })
	return name
}

// NewRenderer builds the render pipeline drawing onto screen
func (g *Game) NewRenderer(screen render.Screen, width, height int) *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator(screen, width, height)
	o.Register(renderers.NewLevelRenderer(g.World), render.PriorityLevel)
	o.Register(renderers.NewActorRenderer(g.World), render.PriorityEntities)
	o.Register(g.hud, render.PriorityUI)
	o.Register(g.scenes, render.PriorityOverlay)
	return o
}
