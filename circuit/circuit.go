// Package circuit: the Circuit container (qubit set, program order, global phase).
package circuit

import (
	"fmt"
	"math"
)

// twoPi is the normalization modulus for the global-phase tag.
const twoPi = 2 * math.Pi

// Circuit is an ordered collection of operations over a fixed qubit set
// plus a global phase in [0, 2π).
//
// A Circuit is created once by an upstream adapter, repeatedly mutated
// in place by passes, and handed back to the orchestrator. It is not
// safe for concurrent use; callers optimizing circuits in parallel must
// use independent instances.
type Circuit struct {
	numQubits   int          // qubits are the dense set 0..numQubits-1
	ops         []*Operation // program order
	globalPhase float64      // radians, always normalized to [0, 2π)
}

// New creates an empty circuit over qubits 0..numQubits-1.
// Returns ErrBadQubitCount for numQubits <= 0.
// Complexity: O(1).
func New(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("New(%d): %w", numQubits, ErrBadQubitCount)
	}

	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the size of the qubit set. Complexity: O(1).
func (c *Circuit) NumQubits() int { return c.numQubits }

// Qubits returns the qubit set in ascending order.
// Complexity: O(q) time and memory.
func (c *Circuit) Qubits() []QubitID {
	out := make([]QubitID, c.numQubits)
	for i := range out {
		out[i] = QubitID(i)
	}

	return out
}

// Has reports whether q is a member of the qubit set. Complexity: O(1).
func (c *Circuit) Has(q QubitID) bool {
	return q >= 0 && int(q) < c.numQubits
}

// Append validates op against the qubit set and adds it at the end of
// the program.
//
// Contract (enforced):
//   - 1 or 2 distinct operands, all members of the qubit set;
//   - a non-nil unitary must be 2^k×2^k for k operands.
//
// Errors: ErrNilOperation, ErrBadArity, ErrUnknownQubit.
// Complexity: O(1) (amortized append; unitary check is ≤ 4 rows).
func (c *Circuit) Append(op *Operation) error {
	// Stage 1: Validate the operation shape.
	if op == nil {
		return ErrNilOperation
	}
	k := op.Arity()
	if k < 1 || k > 2 {
		return fmt.Errorf("Append(%s): %d operands: %w", op.Name, k, ErrBadArity)
	}
	if k == 2 && op.Qubits[0] == op.Qubits[1] {
		return fmt.Errorf("Append(%s): repeated operand: %w", op.Name, ErrBadArity)
	}
	for _, q := range op.Qubits {
		if !c.Has(q) {
			return fmt.Errorf("Append(%s): qubit %d: %w", op.Name, q, ErrUnknownQubit)
		}
	}
	if op.Unitary != nil {
		dim := 1 << k
		if len(op.Unitary) != dim {
			return fmt.Errorf("Append(%s): %dx? unitary for %d operands: %w", op.Name, len(op.Unitary), k, ErrBadArity)
		}
		for _, row := range op.Unitary {
			if len(row) != dim {
				return fmt.Errorf("Append(%s): ragged unitary: %w", op.Name, ErrBadArity)
			}
		}
	}

	// Stage 2: Commit.
	c.ops = append(c.ops, op)

	return nil
}

// Operations returns the program-ordered operation sequence.
// The returned slice is the circuit's own backing storage; callers must
// not reorder it — passes mutate through DepGraph.Rebuild instead.
// Complexity: O(1).
func (c *Circuit) Operations() []*Operation { return c.ops }

// Len returns the number of operations. Complexity: O(1).
func (c *Circuit) Len() int { return len(c.ops) }

// GlobalPhase returns the phase tag in [0, 2π). Complexity: O(1).
func (c *Circuit) GlobalPhase() float64 { return c.globalPhase }

// AddGlobalPhase folds delta (radians, any sign) into the phase tag,
// renormalizing to [0, 2π). This is the only mutation point for the
// tag; the cancellation pass is its only core caller.
// Complexity: O(1).
func (c *Circuit) AddGlobalPhase(delta float64) {
	phi := math.Mod(c.globalPhase+delta, twoPi)
	if phi < 0 {
		phi += twoPi
	}
	c.globalPhase = phi
}

// setOperations replaces the program with the given sequence.
// Used by DepGraph.Rebuild after node removals.
func (c *Circuit) setOperations(ops []*Operation) { c.ops = ops }
