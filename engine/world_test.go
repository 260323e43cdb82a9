package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/event"
	"github.com/lixenwraith/trick-runner/physics"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Init()         {}
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.ScoreComponent]()
	s.SetComponent(1, component.ScoreComponent{Points: 5})
	s.SetComponent(2, component.ScoreComponent{Points: 7})
	s.SetComponent(3, component.ScoreComponent{Points: 9})

	s.RemoveEntity(2)

	if s.HasEntity(2) {
		t.Fatal("removed entity still present")
	}
	got, ok := s.GetComponent(3)
	if !ok || got.Points != 9 {
		t.Fatalf("entity 3 = %+v (ok=%v), want 9 points", got, ok)
	}
	all := s.GetAllEntities()
	if len(all) != 2 || all[0] != 1 || all[1] != 3 {
		t.Errorf("entities = %v, want [1 3] in insertion order", all)
	}

	s.SetComponent(1, component.ScoreComponent{Points: 6})
	if got, _ := s.GetComponent(1); got.Points != 6 {
		t.Errorf("overwrite = %d, want 6", got.Points)
	}
	if s.CountEntities() != 2 {
		t.Errorf("count = %d, want 2", s.CountEntities())
	}
}

func TestAddSystemSortsByPriority(t *testing.T) {
	w := NewTestWorld()
	var log []string

	w.AddSystem(&recordingSystem{name: "death", priority: 900, log: &log})
	w.AddSystem(&recordingSystem{name: "probe", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "trick", priority: 50, log: &log})
	w.AddSystem(&recordingSystem{name: "trick2", priority: 50, log: &log})

	w.Update()

	want := []string{"probe", "trick", "trick2", "death"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ran %v, want %v", log, want)
		}
	}
}

func TestDestroyEntityRemovesBody(t *testing.T) {
	w := NewTestWorld()
	e := w.CreateEntity()
	id := w.Resources.Physics.Space.Add(physics.Body{
		Entity:      e,
		Kind:        physics.Dynamic,
		HalfExtents: mgl32.Vec2{8, 8},
		Layer:       physics.LayerEnemy,
		Mask:        physics.LayerAll,
	})
	w.Components.Body.SetComponent(e, component.BodyComponent{ID: id})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Kind: "enemy_1"})

	if _, ok := w.Body(e); !ok {
		t.Fatal("body not resolvable before destroy")
	}

	w.DestroyEntity(e)

	if _, ok := w.Resources.Physics.Space.Body(id); ok {
		t.Error("body left in space")
	}
	if w.Components.Enemy.HasEntity(e) || w.Components.Body.HasEntity(e) {
		t.Error("components left after destroy")
	}
}

func TestReleaseSceneFreesOnlyThatScene(t *testing.T) {
	w := NewTestWorld()

	keep := w.CreateEntityIn(SceneMap)
	w.Components.Solid.SetComponent(keep, component.SolidComponent{})
	for range 3 {
		e := w.CreateEntityIn(SceneLevel)
		w.Components.Solid.SetComponent(e, component.SolidComponent{})
	}

	if n := w.ReleaseScene(SceneLevel); n != 3 {
		t.Fatalf("released %d, want 3", n)
	}
	if w.Components.Solid.CountEntities() != 1 || !w.Components.Solid.HasEntity(keep) {
		t.Error("release touched entities of another scene")
	}
	if w.Arena.Count(SceneLevel) != 0 {
		t.Error("arena still tracks released scene")
	}
}

func TestPushEventTagsFrame(t *testing.T) {
	w := NewTestWorld()
	w.Resources.Time.FrameNumber = 42

	w.PushEvent(event.EventEnemySquished, &event.EnemySquishedPayload{Enemy: 7})

	events := w.Resources.Event.Queue.Consume()
	if len(events) != 1 {
		t.Fatalf("queued %d events, want 1", len(events))
	}
	if events[0].Frame != 42 || events[0].Type != event.EventEnemySquished {
		t.Errorf("event = %+v", events[0])
	}
}

func TestPlayerBodyAbsent(t *testing.T) {
	w := NewTestWorld()
	if _, ok := w.PlayerBody(); ok {
		t.Error("player body resolved with no player")
	}
	if _, ok := w.Resources.Player.Probe(component.ProbeGround); ok {
		t.Error("probe resolved with no player")
	}
}
