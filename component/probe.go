package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trick-runner/core"
	"github.com/lixenwraith/trick-runner/physics"
)

// ProbePurpose names what a probe is read for
type ProbePurpose uint8

const (
	ProbeGround ProbePurpose = iota
	ProbeLeftWall
	ProbeRightWall
	ProbeSquish
	ProbeCheckpoint

	ProbePurposeCount
)

var probePurposeNames = [ProbePurposeCount]string{
	ProbeGround:     "ground",
	ProbeLeftWall:   "left_wall",
	ProbeRightWall:  "right_wall",
	ProbeSquish:     "squish",
	ProbeCheckpoint: "checkpoint",
}

func (p ProbePurpose) String() string {
	if p < ProbePurposeCount {
		return probePurposeNames[p]
	}
	return "unknown"
}

// ProbeComponent is a caster re-centred on its owner every tick
// Hit holds the nearest intersection of the current tick only
type ProbeComponent struct {
	Owner   core.Entity
	Purpose ProbePurpose
	Offset  mgl32.Vec2 // from owner centre
	Caster  physics.Caster

	Hit    physics.Hit
	HasHit bool
}

// Nearest returns this tick's closest hit
func (p *ProbeComponent) Nearest() (physics.Hit, bool) {
	return p.Hit, p.HasHit
}
