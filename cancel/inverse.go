// Package cancel: the up-to-phase inverse test.
package cancel

import (
	"math/cmplx"

	"github.com/katalvlaran/qopt/circuit"
)

// isInverse reports whether executing op1 then op2 is the identity up
// to a scalar phase e^{iφ}, returning φ on success.
//
// The test requires identical ordered operands (cancelling X(q0)
// against X(q1) would be nonsense) and then compares op1† against
// op2.Unitary element-wise: the phase is extracted from the first
// entry of op2 with magnitude above tol, the candidate is divided
// through, and every entry must match within tol. op2 = e^{iφ}·op1†
// is exactly op2·op1 = e^{iφ}·I.
//
// Complexity: O(d²) for d×d unitaries, d ≤ 4.
func isInverse(op1, op2 *circuit.Operation, tol float64) (bool, float64) {
	// Stage 1: Structural gate — same ordered operands, same dimension.
	if op1.Unitary == nil || op2.Unitary == nil {
		return false, 0
	}
	if op1.Arity() != op2.Arity() {
		return false, 0
	}
	for i := range op1.Qubits {
		if op1.Qubits[i] != op2.Qubits[i] {
			return false, 0
		}
	}
	adj := op1.Adjoint()
	d := len(adj)
	if len(op2.Unitary) != d {
		return false, 0
	}

	// Stage 2: Extract the candidate phase from the first non-negligible
	// entry ratio op2[i][j] / op1†[i][j].
	var (
		factor complex128
		found  bool
		i, j   int
	)
	for i = 0; i < d && !found; i++ {
		for j = 0; j < d; j++ {
			if cmplx.Abs(op2.Unitary[i][j]) > tol {
				if cmplx.Abs(adj[i][j]) <= tol {
					return false, 0 // sparsity patterns disagree
				}
				factor = op2.Unitary[i][j] / adj[i][j]
				found = true

				break
			}
		}
	}
	if !found {
		return false, 0 // zero matrix is not a unitary
	}
	// A unitary ratio must be a pure phase.
	if mag := cmplx.Abs(factor); mag < 1-tol || mag > 1+tol {
		return false, 0
	}

	// Stage 3: Compare op2 against e^{iφ}·op1† element-wise.
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			if cmplx.Abs(op2.Unitary[i][j]-factor*adj[i][j]) > tol {
				return false, 0
			}
		}
	}

	return true, cmplx.Phase(factor)
}

// malformed classifies an operation the sweep cannot reason about,
// returning the skip reason or nil for a well-formed unitary node.
func malformed(op *circuit.Operation) error {
	k := op.Arity()
	if k < 1 || k > 2 {
		return ErrBadOperands
	}
	if op.Unitary == nil {
		return ErrNoUnitary
	}
	dim := 1 << k
	if len(op.Unitary) != dim {
		return ErrBadOperands
	}
	for _, row := range op.Unitary {
		if len(row) != dim {
			return ErrBadOperands
		}
	}

	return nil
}
