package circuit_test

import (
	"math/cmplx"

	"github.com/katalvlaran/qopt/circuit"
)

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

// isIdentityC reports whether m is the identity within tol.
func isIdentityC(m [][]complex128, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(m[i][j]-want) > tol {
				return false
			}
		}
	}

	return true
}

// mustCircuit builds an n-qubit circuit from ops, failing loudly on
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
