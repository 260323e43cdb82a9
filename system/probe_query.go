package system

import (
	"github.com/lixenwraith/trick-runner/component"
	"github.com/lixenwraith/trick-runner/engine"
	"github.com/lixenwraith/trick-runner/physics"
)

// playerProbeHit returns this tick's nearest hit of the player's probe for purpose
func playerProbeHit(w *engine.World, purpose component.ProbePurpose) (physics.Hit, bool) {
	pe, ok := w.Resources.Player.Probe(purpose)
	if !ok {
		return physics.Hit{}, false
	}
	probe, ok := w.Components.Probe.GetComponent(pe)
	if !ok {
		return physics.Hit{}, false
	}
	return probe.Nearest()
}

// groundDistance is the gap from the body's bottom edge down to the ground probe hit
func groundDistance(w *engine.World, body *physics.Body) (float32, bool) {
	hit, ok := playerProbeHit(w, component.ProbeGround)
	if !ok {
		return 0, false
	}
	return body.Bottom() - hit.Point.Y(), true
}

// isGrounded applies the strict grounded threshold to the ground distance
func isGrounded(w *engine.World, body *physics.Body) bool {
	d, ok := groundDistance(w, body)
	return ok && d < w.Resources.Config.Constants.GroundedThreshold
}
