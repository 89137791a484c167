// Package cancel implements the commutation-and-inverse cancellation
// pass: a greedy, single-sweep simplifier that removes pairs of
// operations whose combined action is the identity up to global phase.
//
// What
//
//   - Run(c) walks the circuit's dependency graph in topological order
//     and, for each operation, scans forward along its wires: crossing
//     only operations it is licensed to commute past, it looks for an
//     inverse partner. Found pairs are spliced out; the extracted phase
//     difference e^{iφ} is accumulated and folded into the circuit's
//     GlobalPhase once, at the end of the sweep.
//   - Commutation is decided structurally, by which qubit each operation
//     touches, not by recomputing tensor products per pair: entangling
//     (controlled-X-like), target-axis rotations (x-axis family) and
//     control-axis rotations (z-axis family) have named rules; every
//     other sharing pair is conservatively non-commuting.
//   - Two operations are inverses iff they act on the same operands and
//     op1†·op2 equals the identity up to a scalar phase, tested
//     element-wise within a tolerance after normalizing the phase out of
//     the first non-negligible entry.
//
// Why
//
//	Redundant entangling gates dominate the cost of near-term circuits.
//	The structural commutation table is the performance shortcut: the
//	O(n²) pair sweep stays cheap because each licensing decision is a
//	handful of qubit comparisons.
//
// Guarantees and limits
//
//   - The rewritten circuit has the same unitary action up to GlobalPhase.
//   - Operations without a unitary (measurements, directives, unknown
//     gates) are never removed and never crossed on a shared wire; a
//     malformed node is skipped, reported through WithOnSkip, and never
//     aborts the rest of the sweep.
//   - One call is a single greedy sweep, not a fixed point. Iterating
//     until no removals occur is the orchestrator's responsibility
//     (pipeline.FixedPoint).
//
// Concurrency
//
//	The pass mutates the circuit in place and holds no global state.
//	Never share one Circuit between concurrent invocations.
//
// Complexity (n = operations)
//
//	O(n²) pairwise comparisons; each comparison is O(1) qubit checks
//	plus, for candidate partners, an O(d³)=O(1) matrix test (d ≤ 4).
//
// Errors
//
//   - ErrCircuitNil   — nil circuit.
//   - ErrBadTolerance — non-positive tolerance option.
//
// Skip reasons passed to the WithOnSkip hook:
//
//   - ErrNoUnitary   — operation carries no matrix.
//   - ErrBadOperands — operand count outside {1,2} or unitary shape mismatch.
package cancel
