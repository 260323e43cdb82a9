package parameter

// Probe geometry relative to the player centre, in world units
const (
	// GroundProbeOffsetY places the ground shape cast below the player centre
	GroundProbeOffsetY = -16

	// GroundProbeHalfWidth is the half-width of the ground shape cast box
	GroundProbeHalfWidth = 4

	// GroundProbeHalfHeight is the half-height of the ground shape cast box
	GroundProbeHalfHeight = 1

	// ProbeMaxDistance bounds every probe cast
	ProbeMaxDistance = 4096

	// WallProbeReach is added to wall_threshold when testing side probe hits
	WallProbeReach = 32

	// SquishTolerance is the maximum bottom-edge to hit gap that counts as a stomp (exclusive)
	SquishTolerance = 1.0
)

// Default spawn body sizes when the level file omits them
const (
	DefaultPlayerWidth  = 16
	DefaultPlayerHeight = 32
	DefaultEnemyWidth   = 16
	DefaultEnemyHeight  = 16

	DefaultCheckpointSize = 100
)
