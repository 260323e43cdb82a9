package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const contactEpsilon = 1e-5

// clipAxis limits the movement of moving along a single axis (0 = x, 1 = y) so it stops at the face of stationary
// Boxes already overlapping on the axis are left alone so a body spawned inside a solid can walk out of it
func clipAxis(stationary, moving cube.BBox, axis int, delta float32) float32 {
	if delta == 0 {
		return 0
	}

	other := 1 - axis
	sMin, sMax := stationary.Min(), stationary.Max()
	mMin, mMax := moving.Min(), moving.Max()

	// Must overlap on the other axis, touching edges do not count
	if mMax[other] <= sMin[other]+contactEpsilon || mMin[other] >= sMax[other]-contactEpsilon {
		return delta
	}

	if delta > 0 {
		gap := sMin[axis] - mMax[axis]
		if gap >= -contactEpsilon && gap < delta {
			return math32.Max(0, gap)
		}
	} else {
		gap := sMax[axis] - mMin[axis]
		if gap <= contactEpsilon && gap > delta {
			return math32.Min(0, gap)
		}
	}
	return delta
}

// sweep moves box by delta against obstacles, y first then x, and reports which axes were blocked
func sweep(box cube.BBox, delta mgl32.Vec2, obstacles []cube.BBox) (mgl32.Vec2, bool, bool) {
	dy := delta.Y()
	for i := len(obstacles) - 1; i >= 0; i-- {
		dy = clipAxis(obstacles[i], box, 1, dy)
	}
	box = box.Translate(mgl32.Vec3{0, dy, 0})

	dx := delta.X()
	for i := len(obstacles) - 1; i >= 0; i-- {
		dx = clipAxis(obstacles[i], box, 0, dx)
	}

	return mgl32.Vec2{dx, dy}, dx != delta.X(), dy != delta.Y()
}
