package level

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/physics"
)

// ErrMissingSpawnPoint is returned when a level has no player spawn
var ErrMissingSpawnPoint = errors.New("no player spawn point")

// Spawn creates the level geometry, actors and player probes in the level scene arena
// Caller holds the world update lock
func Spawn(w *engine.World, m Map) error {
	playerSpawn, ok := PlayerSpawn(m)
	if !ok {
		return fmt.Errorf("level %s: %w", m.ID(), ErrMissingSpawnPoint)
	}

	space := w.Resources.Physics.Space
	space.SetGravity(w.Resources.Config.Constants.Gravity)

	for _, r := range m.Solids() {
		e := w.CreateEntityIn(engine.SceneLevel)
		id := space.Add(physics.Body{
			Entity:      e,
			Kind:        physics.Static,
			Position:    r.Center,
			HalfExtents: r.HalfExtents,
			Layer:       physics.LayerGround,
			Mask:        physics.LayerPlayer | physics.LayerEnemy | physics.LayerCheckpoint,
		})
		w.Components.Body.SetComponent(e, component.BodyComponent{ID: id})
		w.Components.Solid.SetComponent(e, component.SolidComponent{})
	}

	for _, cp := range m.Checkpoints() {
		e := w.CreateEntityIn(engine.SceneLevel)
		id := space.Add(physics.Body{
			Entity:      e,
			Kind:        physics.Sensor,
			Position:    cp.Rect.Center,
			HalfExtents: cp.Rect.HalfExtents,
			Layer:       physics.LayerCheckpoint,
			Mask:        physics.LayerPlayer,
		})
		w.Components.Body.SetComponent(e, component.BodyComponent{ID: id})
		w.Components.Checkpoint.SetComponent(e, component.CheckpointComponent{Kind: cp.Kind})
	}

	skipped := 0
	for _, sp := range m.SpawnPoints() {
		switch sp.Tag {
		case SpawnEnemy:
			spawnEnemy(w, sp)
		case SpawnPlayer:
		default:
			skipped++
		}
	}
	if skipped > 0 {
		w.Resources.Log.WithFields(logrus.Fields{"level": m.ID(), "skipped": skipped}).Debug("unknown spawn tags")
	}

	spawnPlayer(w, playerSpawn)
	return nil
}

func spawnEnemy(w *engine.World, sp SpawnPoint) core.Entity {
	e := w.CreateEntityIn(engine.SceneLevel)
	id := w.Resources.Physics.Space.Add(physics.Body{
		Entity:      e,
		Kind:        physics.Dynamic,
		Position:    sp.Rect.Center,
		HalfExtents: sp.Rect.HalfExtents,
		Layer:       physics.LayerEnemy,
		Mask:        physics.LayerGround | physics.LayerPlayer,
	})
	w.Components.Body.SetComponent(e, component.BodyComponent{ID: id})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Kind: sp.Tag})
	return e
}

// spawnPlayer creates the player body, its trick session and one probe per purpose
func spawnPlayer(w *engine.World, sp SpawnPoint) core.Entity {
	c := w.Resources.Config.Constants
	e := w.CreateEntityIn(engine.SceneLevel)
	id := w.Resources.Physics.Space.Add(physics.Body{
		Entity:      e,
		Kind:        physics.Dynamic,
		Position:    sp.Rect.Center,
		HalfExtents: sp.Rect.HalfExtents,
		Layer:       physics.LayerPlayer,
		Mask:        physics.LayerGround | physics.LayerEnemy,
	})
	w.Components.Body.SetComponent(e, component.BodyComponent{ID: id})
	w.Components.Player.SetComponent(e, component.PlayerComponent{})
	w.Components.Score.SetComponent(e, component.ScoreComponent{})
	w.Components.Trick.SetComponent(e, component.TrickComponent{
		Commit: component.NewFinishedCountdown(0),
	})

	player := w.Resources.Player
	player.Entity = e
	player.JumpCharge = component.NewFinishedCountdown(c.JumpDuration())

	for purpose, caster := range probeCasters(id) {
		purpose := component.ProbePurpose(purpose)
		pe := w.CreateEntityIn(engine.SceneLevel)
		w.Components.Probe.SetComponent(pe, component.ProbeComponent{
			Owner:   e,
			Purpose: purpose,
			Offset:  probeOffset(purpose),
			Caster:  caster,
		})
		player.Probes[purpose] = pe
	}
	return e
}

func probeOffset(purpose component.ProbePurpose) mgl32.Vec2 {
	if purpose == component.ProbeGround {
		return mgl32.Vec2{0, parameter.GroundProbeOffsetY}
	}
	return mgl32.Vec2{}
}

// probeCasters builds the fixed caster of every probe purpose, origins are set per tick
func probeCasters(player physics.BodyID) [component.ProbePurposeCount]physics.Caster {
	down := mgl32.Vec2{0, -1}
	return [component.ProbePurposeCount]physics.Caster{
		component.ProbeGround: {
			Direction:   down,
			Shape:       physics.ShapeBox,
			HalfExtents: mgl32.Vec2{parameter.GroundProbeHalfWidth, parameter.GroundProbeHalfHeight},
			MaxDistance: parameter.ProbeMaxDistance,
			Mask:        physics.LayerGround,
			Exclude:     player,
		},
		component.ProbeLeftWall: {
			Direction:   mgl32.Vec2{-1, 0},
			MaxDistance: parameter.ProbeMaxDistance,
			Mask:        physics.LayerGround,
			Exclude:     player,
		},
		component.ProbeRightWall: {
			Direction:   mgl32.Vec2{1, 0},
			MaxDistance: parameter.ProbeMaxDistance,
			Mask:        physics.LayerGround,
			Exclude:     player,
		},
		component.ProbeSquish: {
			Direction:   down,
			MaxDistance: parameter.ProbeMaxDistance,
			Mask:        physics.LayerEnemy,
			Exclude:     player,
		},
		component.ProbeCheckpoint: {
			Direction:   down,
			MaxDistance: parameter.ProbeMaxDistance,
			Mask:        physics.LayerCheckpoint,
			Exclude:     player,
		},
	}
}
