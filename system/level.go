package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/level"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/stats"
	"github.com/lixenwraith/trick-runner/status"
)

// MapLoader resolves a level id to its map
type MapLoader func(levelID string) (level.Map, error)

// LevelSystem owns the level lifecycle: load on select, stopwatch while playing,
// result and post-level countdown when complete
type LevelSystem struct {
	world  *engine.World
	loader MapLoader

	statLoaded    *atomic.Int64
	statCompleted *atomic.Int64
	statState     *status.AtomicString
}

func NewLevelSystem(world *engine.World, loader MapLoader) engine.System {
	s := &LevelSystem{world: world, loader: loader}
	s.statLoaded = world.Resources.Status.Ints.Get("level.loaded")
	s.statCompleted = world.Resources.Status.Ints.Get("level.completed")
	s.statState = world.Resources.Status.Strings.Get("level.state")
	s.Init()
	return s
}

func (s *LevelSystem) Init() {
	s.statLoaded.Store(0)
	s.statCompleted.Store(0)
	s.statState.Store(engine.LevelNone.String())
}

func (s *LevelSystem) Name() string {
	return "level"
}

func (s *LevelSystem) Priority() int {
	return parameter.PriorityLevel
}

func (s *LevelSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventLevelSelect,
		event.EventLevelComplete,
	}
}

func (s *LevelSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Unload()
		s.Init()
	case event.EventLevelSelect:
		if p, ok := ev.Payload.(*event.LevelSelectPayload); ok {
			s.Load(p.LevelID)
		}
	case event.EventLevelComplete:
		s.Complete()
	}
}

// Update advances the stopwatch while playing and the post-level countdown when over
func (s *LevelSystem) Update() {
	lvl := s.world.Resources.Level
	dt := s.world.Resources.Time.DeltaTime
	switch lvl.State {
	case engine.LevelPlaying:
		lvl.Stopwatch += dt
	case engine.LevelOver:
		lvl.PostLevel.Tick(dt)
	}
	s.statState.Store(lvl.State.String())
}

// Load replaces the level arena with the map for levelID
// Emits EventLevelLoaded or EventLevelLoadFailed
func (s *LevelSystem) Load(levelID string) {
	s.Unload()

	lvl := s.world.Resources.Level
	lvl.ID = levelID
	lvl.State = engine.LevelPrePlay

	m, err := s.loader(levelID)
	if err == nil {
		err = level.Spawn(s.world, m)
	}
	if err != nil {
		s.Unload()
		lvl.LoadErr = err
		s.world.Resources.Log.WithError(err).WithField("level", levelID).Error("level load failed")
		s.world.PushEvent(event.EventLevelLoadFailed, &event.LevelLoadFailedPayload{LevelID: levelID, Err: err})
		return
	}

	lvl.State = engine.LevelPlaying
	s.statLoaded.Add(1)
	s.world.Resources.Log.WithFields(logrus.Fields{
		"level":  levelID,
		"bodies": s.world.Resources.Physics.Space.Len(),
	}).Info("level loaded")
	s.world.PushEvent(event.EventLevelLoaded, &event.LevelSelectPayload{LevelID: levelID})
}

// Complete assembles the result once, records it and starts the post-level countdown
func (s *LevelSystem) Complete() {
	lvl := s.world.Resources.Level
	if lvl.State != engine.LevelPlaying {
		return
	}
	lvl.State = engine.LevelOver

	score, _ := s.world.Components.Score.GetComponent(s.world.Resources.Player.Entity)
	lvl.Result = stats.LevelResult{
		LevelID: lvl.ID,
		TimeMs:  lvl.Stopwatch.Milliseconds(),
		Score:   score.Points,
	}
	lvl.HasResult = true
	lvl.PostLevel = component.NewCountdown(s.world.Resources.Config.Constants.PostLevelDuration())
	s.statCompleted.Add(1)

	log := s.world.Resources.Log.WithFields(logrus.Fields{
		"level": lvl.Result.LevelID,
		"time":  lvl.Result.TimeMs,
		"score": lvl.Result.Score,
	})
	log.Info("level complete")

	if store := s.world.Resources.Stats.Store; store != nil {
		if err := store.Record(lvl.Result); err != nil {
			log.WithError(err).Warn("level result not saved")
		}
	}
}

// Unload destroys the level arena and forgets the player
func (s *LevelSystem) Unload() {
	s.world.ReleaseScene(engine.SceneLevel)
	s.world.Resources.Physics.Space.Clear()
	s.world.Resources.Player.Clear()
	s.world.Resources.Level.Reset()
}

// PostLevelDone reports whether the result screen countdown has elapsed
func PostLevelDone(w *engine.World) bool {
	lvl := w.Resources.Level
	return lvl.State == engine.LevelOver && lvl.PostLevel.Finished()
}
