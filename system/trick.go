package system

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/input"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/trick"
)

// trickActions maps directional actions to trick keys, later entries win on the same tick
var trickActions = [...]struct {
	action input.Action
	key    trick.Key
}{
	{input.ActionUp, trick.KeyUp},
	{input.ActionLeft, trick.KeyLeft},
	{input.ActionDown, trick.KeyDown},
	{input.ActionRight, trick.KeyRight},
}

// TrickSystem records directional presses, recognizes dictionary sequences and scores them
// A recognized trick is pending until its commit window elapses airborne; landing first cancels it
type TrickSystem struct {
	world *engine.World

	statRecognized *atomic.Int64
	statLanded     *atomic.Int64
	statCanceled   *atomic.Int64
	statScore      *atomic.Int64
}

func NewTrickSystem(world *engine.World) engine.System {
	s := &TrickSystem{world: world}
	s.statRecognized = world.Resources.Status.Ints.Get("trick.recognized")
	s.statLanded = world.Resources.Status.Ints.Get("trick.landed")
	s.statCanceled = world.Resources.Status.Ints.Get("trick.canceled")
	s.statScore = world.Resources.Status.Ints.Get("trick.score")
	s.Init()
	return s
}

func (s *TrickSystem) Init() {
	s.statRecognized.Store(0)
	s.statLanded.Store(0)
	s.statCanceled.Store(0)
	s.statScore.Store(0)
}

func (s *TrickSystem) Name() string {
	return "trick"
}

func (s *TrickSystem) Priority() int {
	return parameter.PriorityTrick
}

func (s *TrickSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *TrickSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update runs only while playing so the score stays equal to the recorded result
func (s *TrickSystem) Update() {
	if s.world.Resources.Level.State != engine.LevelPlaying {
		return
	}
	pe := s.world.Resources.Player.Entity
	body, ok := s.world.PlayerBody()
	if !ok {
		return
	}
	tc, ok := s.world.Components.Trick.GetComponent(pe)
	if !ok {
		return
	}
	s.step(pe, &tc, isGrounded(s.world, body))
	s.world.Components.Trick.SetComponent(pe, tc)
}

// step advances one trick session by one tick
func (s *TrickSystem) step(pe core.Entity, tc *component.TrickComponent, grounded bool) {
	now := s.world.Resources.Time.GameTime
	window := s.world.Resources.Config.Constants.TrickWindow()

	tc.Commit.Tick(s.world.Resources.Time.DeltaTime)

	// Stale buffer; a held exact match gets its turn now that nothing extended it
	if len(tc.Keys) > 0 && now-tc.LastKeyAt > window {
		if tc.HasHeld {
			s.recognize(tc, tc.Held)
		}
		tc.ClearKeys()
	}

	// Landed inside the commit window
	if grounded && !tc.Commit.Finished() && tc.HasPending {
		s.cancel(pe, tc, false)
		return
	}

	if tc.Commit.JustFinished() && tc.HasPending {
		s.land(pe, tc)
		return
	}

	key, ok := s.pressedKey()
	if !ok {
		return
	}
	tc.LastKeyAt = now

	if tc.Committed() {
		if len(tc.Keys) == 0 {
			// First key of the next sequence, looked up once the window settles
			tc.Keys = append(tc.Keys, key)
			return
		}
		s.cancel(pe, tc, true)
	}

	tc.Keys = append(tc.Keys, key)
	s.lookup(tc)
}

// lookup matches the buffer against the dictionary
func (s *TrickSystem) lookup(tc *component.TrickComponent) {
	dict := s.world.Resources.Config.Tricks
	if dict == nil {
		return
	}

	def, kind := dict.Lookup(tc.Keys)
	switch kind {
	case trick.MatchExact:
		s.recognize(tc, def)
	case trick.MatchHeld:
		tc.Held, tc.HasHeld = def, true
	case trick.MatchPrefix:
		tc.Held, tc.HasHeld = trick.Definition{}, false
	case trick.MatchNone:
		if len(tc.Keys) > 1 {
			tc.ClearKeys()
			tc.Commit.Reset()
		} else {
			tc.Held, tc.HasHeld = trick.Definition{}, false
		}
	}
}

// pressedKey returns the trick key pressed this tick, the last in table order wins
func (s *TrickSystem) pressedKey() (trick.Key, bool) {
	in := s.world.Resources.Input.Snapshot
	key, ok := trick.KeyNone, false
	for _, m := range trickActions {
		if in.Pressed(m.action) {
			key, ok = m.key, true
		}
	}
	return key, ok
}

func (s *TrickSystem) recognize(tc *component.TrickComponent, def trick.Definition) {
	tc.ClearKeys()
	tc.Pending, tc.HasPending = def, true
	tc.Commit.SetDuration(def.Takes())
	tc.Commit.Reset()

	s.statRecognized.Add(1)
	s.emit(event.EventTrickRecognized, core.SoundTrickStart, def, s.score())
}

func (s *TrickSystem) land(pe core.Entity, tc *component.TrickComponent) {
	def := tc.Pending
	score, _ := s.world.Components.Score.GetComponent(pe)
	score.Points += def.Points
	s.world.Components.Score.SetComponent(pe, score)

	tc.DropPending()
	tc.ClearKeys()

	s.statLanded.Add(1)
	s.statScore.Store(int64(score.Points))
	s.emit(event.EventTrickLanded, core.SoundTrickLand, def, score.Points)
}

// cancel drops the pending trick; a cancel by key press also restarts the commit countdown
func (s *TrickSystem) cancel(pe core.Entity, tc *component.TrickComponent, byKey bool) {
	def := tc.Pending
	tc.ClearKeys()
	tc.DropPending()
	if byKey {
		tc.Commit.Reset()
	}

	s.statCanceled.Add(1)
	s.emit(event.EventTrickCanceled, core.SoundTrickFail, def, s.score())
}

func (s *TrickSystem) score() int {
	score, _ := s.world.Components.Score.GetComponent(s.world.Resources.Player.Entity)
	return score.Points
}

func (s *TrickSystem) emit(et event.EventType, sound core.SoundType, def trick.Definition, score int) {
	s.world.PushEvent(et, &event.TrickPayload{Name: def.Name, Points: def.Points, Score: score})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: sound})

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("trick", def.Name)
	data.Set("points", def.Points)
	data.Set("score", score)
	data.Set("frame", s.world.Resources.Time.FrameNumber)
	s.world.Resources.Log.Infof("%s %s", et, orderedMapToString(data))
}

// orderedMapToString renders key=value pairs in insertion order
func orderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for el := data.Front(); el != nil; el = el.Next() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", el.Key, el.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
