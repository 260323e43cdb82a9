package physics

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/core"
)

// Shape is the swept shape of a caster
type Shape uint8

const (
	ShapeRay Shape = iota
	ShapeBox
)

// Caster describes one ray or box cast
type Caster struct {
	Origin      mgl32.Vec2
	Direction   mgl32.Vec2 // unit length
	Shape       Shape
	HalfExtents mgl32.Vec2 // ShapeBox only
	MaxDistance float32
	Mask        Layer
	Exclude     BodyID
}

// Hit is one intersection of a cast
type Hit struct {
	Entity       core.Entity
	Body         BodyID
	TimeOfImpact float32    // distance travelled along Direction
	Point        mgl32.Vec2 // Origin + Direction*TimeOfImpact
}

// Cast returns all hits of c sorted by ascending time of impact
func (s *Space) Cast(c Caster) []Hit {
	if c.MaxDistance <= 0 || c.Direction.Len() == 0 {
		return nil
	}
	dir := c.Direction.Normalize()
	start := vec3(c.Origin)
	end := vec3(c.Origin.Add(dir.Mul(c.MaxDistance)))

	var hits []Hit
	for _, id := range s.order {
		b := s.bodies[id]
		if id == c.Exclude || !c.Mask.Has(b.Layer) {
			continue
		}

		half := b.HalfExtents
		if c.Shape == ShapeBox {
			half = half.Add(c.HalfExtents)
		}
		target := boxAround(b.Position, half)

		toi, ok := intercept(target, start, end)
		if !ok || toi > c.MaxDistance {
			continue
		}
		hits = append(hits, Hit{
			Entity:       b.Entity,
			Body:         id,
			TimeOfImpact: toi,
			Point:        c.Origin.Add(dir.Mul(toi)),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].TimeOfImpact < hits[j].TimeOfImpact
	})
	return hits
}

// Nearest returns the first hit of c
func (s *Space) Nearest(c Caster) (Hit, bool) {
	hits := s.Cast(c)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// intercept returns the distance from start to the entry point of the segment into bb
// A start inside bb is an immediate hit
func intercept(bb cube.BBox, start, end mgl32.Vec3) (float32, bool) {
	min, max := bb.Min(), bb.Max()
	if start.X() >= min.X() && start.X() <= max.X() && start.Y() >= min.Y() && start.Y() <= max.Y() {
		return 0, true
	}

	result, ok := trace.BBoxIntercept(bb, start, end)
	if !ok {
		return 0, false
	}
	d := result.Position().Sub(start)
	return math32.Sqrt(d.X()*d.X() + d.Y()*d.Y()), true
}
