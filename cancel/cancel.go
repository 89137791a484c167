// Package cancel: the greedy cancellation sweep.
package cancel

import (
	"github.com/katalvlaran/qopt/circuit"
)

// Run executes one commutation-and-inverse cancellation sweep over c,
// mutating it in place and returning the same circuit for chaining.
//
// Algorithm: for each live node op1 in topological order, scan forward
// over later nodes. Disjoint nodes impose no constraint. For a node
// sharing a qubit with op1:
//
//	(a) if it is op1's inverse (up to phase), remove both, accumulate
//	    the phase difference, and move on to the next op1;
//	(b) else if the rule table licenses commuting op1 past it, keep
//	    scanning — op1 can conceptually slide rightward;
//	(c) else the wire is blocked; stop scanning for this op1.
//
// Because op1 only ever cancels against a partner it could have been
// made adjacent to by licensed swaps, every removal preserves the
// circuit's unitary action up to GlobalPhase.
//
// Malformed or opaque nodes are reported via WithOnSkip and never
// removed; on a shared wire they block like any non-commuting node, so
// cancellation never reaches across an unrecognized boundary.
//
// One call is a single greedy sweep; drive it to a fixed point with
// pipeline.FixedPoint.
//
// Errors: ErrCircuitNil, ErrBadTolerance; graph construction errors
// are forwarded as-is.
// Complexity: O(n²) pair checks, O(1) each.
func Run(c *circuit.Circuit, opts ...Option) (*circuit.Circuit, error) {
	// Stage 1: Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c == nil {
		return nil, ErrCircuitNil
	}

	// Stage 2: Build the dependency view and snapshot the order.
	dg, err := circuit.NewDepGraph(c)
	if err != nil {
		return nil, err
	}
	order := dg.Topological()

	// Stage 3: Pairwise sweep.
	var (
		acc        PhaseAccumulator
		op1, op2   *circuit.Operation
		id1, id2   circuit.NodeID
		ok         bool
		phase      float64
		idx, jdx   int
	)
	for idx = 0; idx < len(order); idx++ {
		id1 = order[idx]
		if dg.Removed(id1) {
			continue
		}
		op1, _ = dg.Op(id1)
		if reason := malformed(op1); reason != nil {
			o.OnSkip(op1.Name, reason)

			continue
		}

		for jdx = idx + 1; jdx < len(order); jdx++ {
			id2 = order[jdx]
			if dg.Removed(id2) {
				continue
			}
			op2, _ = dg.Op(id2)

			// Disjoint nodes impose no ordering constraint on op1.
			if !op1.SharesQubit(op2) {
				continue
			}

			// An opaque node on a shared wire blocks: conservative stop.
			if reason := malformed(op2); reason != nil {
				break
			}

			// (a) inverse partner: splice both out, bank the phase.
			if ok, phase = isInverse(op1, op2, o.Tolerance); ok {
				_ = dg.Remove(id1)
				_ = dg.Remove(id2)
				acc.Add(phase)
				o.OnRemove(op1.Name, op2.Name, phase)

				break
			}

			// (b) licensed swap: op1 slides past, keep scanning.
			if commute(op1, op2) {
				continue
			}

			// (c) blocked wire.
			break
		}
	}

	// Stage 4: Fold the accumulated phase and write the program back.
	c.AddGlobalPhase(acc.Value())
	dg.Rebuild()

	return c, nil
}
