// Package circuit: Operation type and the working gate set.
//
// Matrix convention: for two-qubit gates, Qubits[0] (the control/first
// operand) is the most significant bit of the 4×4 basis index, so the
// basis order is |q0 q1⟩ = |00⟩,|01⟩,|10⟩,|11⟩.
package circuit

import (
	"math"
	"math/cmplx"
)

// Operation is a single gate acting on one or two qubits.
//
// Fields are exported for read access by passes; treat a constructed
// Operation as immutable. Passes never edit an Operation in place —
// they remove it from a DepGraph and, where needed, append a fresh one.
type Operation struct {
	// Name is the lower-case gate name ("cx", "rx", "rz", ...).
	Name string

	// Qubits are the operands, in order. Length 1 or 2.
	// For two-qubit gates Qubits[0] is the control, Qubits[1] the target.
	Qubits []QubitID

	// Params holds real gate parameters (rotation angles, radians).
	Params []float64

	// Unitary is the exact 2^k×2^k gate matrix, k = len(Qubits).
	// Nil for operations the optimizer must pass through untouched
	// (measurements, directives, adapter-supplied opaque gates).
	Unitary [][]complex128
}

// Arity returns the number of operands. Complexity: O(1).
func (op *Operation) Arity() int { return len(op.Qubits) }

// Touches reports whether op acts on qubit q. Complexity: O(1) (≤2 operands).
func (op *Operation) Touches(q QubitID) bool {
	for _, oq := range op.Qubits {
		if oq == q {
			return true
		}
	}

	return false
}

// SharesQubit reports whether op and other act on any common qubit.
// Complexity: O(1) (≤4 comparisons).
func (op *Operation) SharesQubit(other *Operation) bool {
	for _, q := range op.Qubits {
		if other.Touches(q) {
			return true
		}
	}

	return false
}

// Adjoint returns the conjugate transpose of the unitary, or nil when
// the operation carries no matrix. The receiver is not modified.
// Complexity: O(d²) for a d×d unitary.
func (op *Operation) Adjoint() [][]complex128 {
	if op.Unitary == nil {
		return nil
	}
	d := len(op.Unitary)
	out := make([][]complex128, d)

	var i, j int
	for i = 0; i < d; i++ {
		out[i] = make([]complex128, d)
		for j = 0; j < d; j++ {
			out[i][j] = cmplx.Conj(op.Unitary[j][i])
		}
	}

	return out
}

// single builds a one-qubit Operation from a 2×2 matrix literal.
func single(name string, q QubitID, params []float64, u [][]complex128) *Operation {
	return &Operation{Name: name, Qubits: []QubitID{q}, Params: params, Unitary: u}
}

// H returns a Hadamard gate on q.
func H(q QubitID) *Operation {
	s := complex(1/math.Sqrt2, 0)

	return single("h", q, nil, [][]complex128{
		{s, s},
		{s, -s},
	})
}

// X returns a Pauli-X gate on q.
func X(q QubitID) *Operation {
	return single("x", q, nil, [][]complex128{
		{0, 1},
		{1, 0},
	})
}

// Z returns a Pauli-Z gate on q.
func Z(q QubitID) *Operation {
	return single("z", q, nil, [][]complex128{
		{1, 0},
		{0, -1},
	})
}

// S returns the phase gate diag(1, i) on q.
func S(q QubitID) *Operation {
	return single("s", q, nil, [][]complex128{
		{1, 0},
		{0, 1i},
	})
}

// T returns the π/8 gate diag(1, e^{iπ/4}) on q.
func T(q QubitID) *Operation {
	return single("t", q, nil, [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	})
}

// RX returns a rotation about the X axis by theta radians on q.
func RX(q QubitID, theta float64) *Operation {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return single("rx", q, []float64{theta}, [][]complex128{
		{c, s},
		{s, c},
	})
}

// RY returns a rotation about the Y axis by theta radians on q.
func RY(q QubitID, theta float64) *Operation {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return single("ry", q, []float64{theta}, [][]complex128{
		{c, -s},
		{s, c},
	})
}

// RZ returns a rotation about the Z axis by theta radians on q.
func RZ(q QubitID, theta float64) *Operation {
	return single("rz", q, []float64{theta}, [][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
}

// CX returns a controlled-X gate with the given control and target.
func CX(control, target QubitID) *Operation {
	return &Operation{
		Name:   "cx",
		Qubits: []QubitID{control, target},
		Unitary: [][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		},
	}
}

// Custom wraps an adapter-supplied gate. A nil unitary marks an opaque
// operation (measurement, barrier, classical control) that optimization
// passes skip and carry through unchanged.
func Custom(name string, qubits []QubitID, params []float64, unitary [][]complex128) *Operation {
	qs := append([]QubitID(nil), qubits...)
	ps := append([]float64(nil), params...)

	return &Operation{Name: name, Qubits: qs, Params: ps, Unitary: unitary}
}
