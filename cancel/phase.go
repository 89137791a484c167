// Package cancel: explicit phase bookkeeping for the sweep.
package cancel

import "math"

// PhaseAccumulator collects the e^{iφ} factors extracted from cancelled
// pairs during one sweep. It is a plain value threaded through the pass
// and folded into Circuit.GlobalPhase exactly once at the end, keeping
// the phase-update invariant auditable in a single place.
type PhaseAccumulator struct {
	theta float64 // radians, unnormalized running sum
}

// Add accumulates delta radians (any sign). Complexity: O(1).
func (p *PhaseAccumulator) Add(delta float64) { p.theta += delta }

// Value returns the accumulated phase normalized to [0, 2π).
// Complexity: O(1).
func (p *PhaseAccumulator) Value() float64 {
	phi := math.Mod(p.theta, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}

	return phi
}
