package component

import "github.com/lixenwraith/trick-runner/physics"

// BodyComponent links an entity to its body in the physics space
type BodyComponent struct {
	ID physics.BodyID
}

// SolidComponent tags level geometry
type SolidComponent struct{}

// EnemyComponent tags a squishable enemy
type EnemyComponent struct {
	Kind string // spawn tag from the level file
}

// PlayerComponent tags the single player entity
type PlayerComponent struct{}
