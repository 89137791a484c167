package layout_test

import (
	"fmt"

	"github.com/katalvlaran/qopt/circuit"
	"github.com/katalvlaran/qopt/layout"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-qubit circuit whose only interaction is cx(0,1), placed on a
//	two-node device with the single edge 0—1. The interaction graph and
//	the device region are the same graph, so the spectral match is
//	exact: both qubits land on adjacent hardware and no interacting
//	pair is left unconnected.
//
// Complexity: dominated by the eigendecompositions, O(N³)-ish for N qubits.
func ExampleCompute() {
	cg, _ := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}})

	c, _ := circuit.New(2)
	_ = c.Append(circuit.CX(0, 1))

	l, err := layout.Compute(c, cg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, q := range c.Qubits() {
		p, _ := l.Physical(q)
		fmt.Printf("q%d -> p%d\n", q, p)
	}

	ig, _ := layout.NewInteraction(c)
	fmt.Printf("missing=%d\n", layout.MissingEdges(l, ig, cg))
	// Output:
	// q0 -> p0
	// q1 -> p1
	// missing=0
}
