package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/core"
)

// BodyID is a handle into a Space, zero is never assigned
type BodyID uint32

const NoBody BodyID = 0

// BodyKind selects whether the space integrates a body
type BodyKind uint8

const (
	// Static bodies never move and are only swept against
	Static BodyKind = iota
	// Dynamic bodies receive gravity and are resolved against the bodies their mask selects
	Dynamic
	// Sensor bodies are hit by casts but never block movement
	Sensor
)

// Body is an axis-aligned box in a Space, y grows upward
type Body struct {
	ID          BodyID
	Entity      core.Entity
	Kind        BodyKind
	Position    mgl32.Vec2 // centre
	Velocity    mgl32.Vec2 // units per second
	HalfExtents mgl32.Vec2
	Layer       Layer // membership
	Mask        Layer // layers this body collides with
}

// Bottom returns the y of the lower edge
func (b *Body) Bottom() float32 {
	return b.Position.Y() - b.HalfExtents.Y()
}

// Top returns the y of the upper edge
func (b *Body) Top() float32 {
	return b.Position.Y() + b.HalfExtents.Y()
}

// Left returns the x of the left edge
func (b *Body) Left() float32 {
	return b.Position.X() - b.HalfExtents.X()
}

// Right returns the x of the right edge
func (b *Body) Right() float32 {
	return b.Position.X() + b.HalfExtents.X()
}

// BBox returns the body box lifted into 3D with a fixed depth of [-1, 1]
func (b *Body) BBox() cube.BBox {
	return boxAround(b.Position, b.HalfExtents)
}

func boxAround(centre, half mgl32.Vec2) cube.BBox {
	return cube.Box(
		centre.X()-half.X(), centre.Y()-half.Y(), -1,
		centre.X()+half.X(), centre.Y()+half.Y(), 1,
	)
}

func vec3(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), 0}
}
