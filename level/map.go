// Package level reads level description files and spawns their contents into the world
package level

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/component"
)

// Rect is an axis-aligned box by centre and half-extents, y up
type Rect struct {
	Center      mgl32.Vec2
	HalfExtents mgl32.Vec2
}

// SpawnPoint is a tagged object placing an actor, tags "player" and "enemy_1" are spawned
type SpawnPoint struct {
	Tag  string
	Rect Rect
}

// Checkpoint is a recognized checkpoint object
type Checkpoint struct {
	Kind component.CheckpointKind
	Rect Rect
}

// Spawn tags
const (
	SpawnPlayer = "player"
	SpawnEnemy  = "enemy_1"
)

// Map is the tile map collaborator a level is built from
type Map interface {
	ID() string
	SpawnPoints() []SpawnPoint
	Checkpoints() []Checkpoint
	Solids() []Rect
}

// PlayerSpawn returns the first player spawn point of m
func PlayerSpawn(m Map) (SpawnPoint, bool) {
	for _, sp := range m.SpawnPoints() {
		if sp.Tag == SpawnPlayer {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}
