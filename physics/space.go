// Package physics is a small AABB world: gravity, axis-separated sweep resolution and layer-filtered ray and box casts
package physics

import (
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/core"
)

// Space owns every body of a level
// Not safe for concurrent use; callers hold the world update lock
type Space struct {
	gravity float32
	bodies  map[BodyID]*Body
	order   []BodyID // insertion order for deterministic stepping
	nextID  BodyID

	scratch []cube.BBox
}

// NewSpace creates an empty space pulling dynamic bodies down by gravity units/s²
func NewSpace(gravity float32) *Space {
	return &Space{
		gravity: gravity,
		bodies:  make(map[BodyID]*Body),
		nextID:  1,
	}
}

// Gravity returns the downward acceleration
func (s *Space) Gravity() float32 {
	return s.gravity
}

// SetGravity replaces the downward acceleration
func (s *Space) SetGravity(g float32) {
	s.gravity = g
}

// Add inserts a copy of b and returns its handle
func (s *Space) Add(b Body) BodyID {
	id := s.nextID
	s.nextID++
	b.ID = id
	s.bodies[id] = &b
	s.order = append(s.order, id)
	return id
}

// Remove deletes a body, unknown ids are ignored
func (s *Space) Remove(id BodyID) {
	if _, ok := s.bodies[id]; !ok {
		return
	}
	delete(s.bodies, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// RemoveEntity deletes every body owned by e
func (s *Space) RemoveEntity(e core.Entity) {
	for _, id := range s.IDs() {
		if b := s.bodies[id]; b.Entity == e {
			s.Remove(id)
		}
	}
}

// Body returns a live pointer to a body
func (s *Space) Body(id BodyID) (*Body, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// IDs returns body handles in insertion order
func (s *Space) IDs() []BodyID {
	out := make([]BodyID, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the body count
func (s *Space) Len() int {
	return len(s.order)
}

// Clear removes every body and restarts handle numbering
func (s *Space) Clear() {
	s.bodies = make(map[BodyID]*Body)
	s.order = s.order[:0]
	s.nextID = 1
}

// Step integrates all dynamic bodies by dt
// Velocity on a blocked axis is zeroed
func (s *Space) Step(dt time.Duration) {
	secs := float32(dt.Seconds())
	if secs <= 0 {
		return
	}

	for _, id := range s.order {
		b := s.bodies[id]
		if b.Kind != Dynamic {
			continue
		}

		b.Velocity[1] -= s.gravity * secs
		delta := b.Velocity.Mul(secs)

		obstacles := s.obstaclesFor(b, delta)
		moved, blockedX, blockedY := sweep(b.BBox(), delta, obstacles)

		b.Position = b.Position.Add(moved)
		if blockedX {
			b.Velocity[0] = 0
		}
		if blockedY {
			b.Velocity[1] = 0
		}
	}
}

// obstaclesFor collects boxes the moving body may touch this step
func (s *Space) obstaclesFor(b *Body, delta mgl32.Vec2) []cube.BBox {
	reach := b.BBox().Extend(vec3(delta)).Grow(contactEpsilon)
	s.scratch = s.scratch[:0]
	for _, id := range s.order {
		if id == b.ID {
			continue
		}
		o := s.bodies[id]
		if o.Kind == Sensor || !b.Mask.Has(o.Layer) || !o.Mask.Has(b.Layer) {
			continue
		}
		bb := o.BBox()
		if reach.IntersectsWith(bb) {
			s.scratch = append(s.scratch, bb)
		}
	}
	return s.scratch
}
