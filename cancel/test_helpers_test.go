package cancel_test

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/qopt/circuit"
)

// Operator-equivalence helpers: the invariants of the cancellation pass
// are stated on full circuit unitaries, so the tests build the 2^n×2^n
// matrix of a circuit the slow exact way and compare before/after.
//
// Bit convention matches circuit.Operation: qubit 0 is the most
// significant bit of the basis index.

// embed lifts op's unitary to the full 2^n space.
func embed(op *circuit.Operation, n int) [][]complex128 {
	dim := 1 << n
	out := make([][]complex128, dim)
	for i := range out {
		out[i] = make([]complex128, dim)
	}

	// bit position (from MSB) of each operand
	shift := func(q circuit.QubitID) uint { return uint(n - 1 - int(q)) }

	// sub-index of a basis state restricted to the operands
	sub := func(state int) int {
		idx := 0
		for _, q := range op.Qubits {
			idx = idx<<1 | (state>>shift(q))&1
		}

		return idx
	}

	// mask of the operand bits; everything outside must match
	mask := 0
	for _, q := range op.Qubits {
		mask |= 1 << shift(q)
	}

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if row&^mask == col&^mask {
				out[row][col] = op.Unitary[sub(row)][sub(col)]
			}
		}
	}

	return out
}

// mulC multiplies two square complex matrices.
func mulC(a, b [][]complex128) [][]complex128 {
	d := len(a)
	out := make([][]complex128, d)
	for i := 0; i < d; i++ {
		out[i] = make([]complex128, d)
		for j := 0; j < d; j++ {
			var s complex128
			for k := 0; k < d; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

// circuitUnitary computes e^{i·GlobalPhase} · U_k···U_1 for a circuit
// of k operations. Opaque (nil-unitary) operations are not supported
// here; tests that involve them compare structure instead.
func circuitUnitary(c *circuit.Circuit) [][]complex128 {
	n := c.NumQubits()
	dim := 1 << n

	// identity accumulator
	acc := make([][]complex128, dim)
	for i := range acc {
		acc[i] = make([]complex128, dim)
		acc[i][i] = 1
	}

	for _, op := range c.Operations() {
		acc = mulC(embed(op, n), acc)
	}

	phase := cmplx.Exp(complex(0, c.GlobalPhase()))
	for i := range acc {
		for j := range acc[i] {
			acc[i][j] *= phase
		}
	}

	return acc
}

// equalC compares two matrices element-wise within tol.
func equalC(a, b [][]complex128, tol float64) bool {
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// mustCircuit builds an n-qubit circuit from ops, panicking on
// construction errors so tests stay terse.
func mustCircuit(n int, ops ...*circuit.Operation) *circuit.Circuit {
	c, err := circuit.New(n)
	if err != nil {
		panic(err)
	}
	for _, op := range ops {
		if err = c.Append(op); err != nil {
			panic(err)
		}
	}

	return c
}

// randomCircuit generates a reproducible circuit over n qubits from the
// recognized gate set, heavy on cancellation-prone structure.
func randomCircuit(n, length int, seed int64) *circuit.Circuit {
	rng := rand.New(rand.NewSource(seed))
	c, err := circuit.New(n)
	if err != nil {
		panic(err)
	}

	for i := 0; i < length; i++ {
		q := circuit.QubitID(rng.Intn(n))
		switch rng.Intn(6) {
		case 0:
			_ = c.Append(circuit.H(q))
		case 1:
			_ = c.Append(circuit.X(q))
		case 2:
			_ = c.Append(circuit.RX(q, rng.Float64()*2*math.Pi))
		case 3:
			_ = c.Append(circuit.RZ(q, rng.Float64()*2*math.Pi))
		case 4:
			_ = c.Append(circuit.S(q))
		default:
			r := circuit.QubitID(rng.Intn(n))
			if r == q {
				r = (r + 1) % circuit.QubitID(n)
			}
			_ = c.Append(circuit.CX(q, r))
		}
	}

	return c
}
