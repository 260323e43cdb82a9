package physics

import (
	"github.com/chewxy/math32"
)

// ClampSpeed limits |v| to max while keeping the sign of v
// Returns the clamped value and whether clamping occurred
func ClampSpeed(v, max float32) (float32, bool) {
	if max < 0 {
		max = -max
	}
	if math32.Abs(v) <= max {
		return v, false
	}
	if v < 0 {
		return -max, true
	}
	return max, true
}
