// Package layout: the circuit's qubit-interaction graph (derived, read-only).
package layout

import (
	"github.com/katalvlaran/qopt/circuit"
	"github.com/katalvlaran/qopt/matrix"
)

// qubitPair is an unordered virtual-qubit pair, stored normalized (a < b).
type qubitPair struct {
	a, b circuit.QubitID
}

// pairOf normalizes (a, b) into a qubitPair key.
func pairOf(a, b circuit.QubitID) qubitPair {
	if a > b {
		a, b = b, a
	}

	return qubitPair{a: a, b: b}
}

// InteractionGraph is an undirected weighted graph over a circuit's
// virtual qubits: edge weight counts two-qubit operations between the
// pair. Derived read-only from a Circuit; recompute after any mutation.
type InteractionGraph struct {
	qubits []circuit.QubitID // ascending, dense 0..N-1
	weight map[qubitPair]int
}

// NewInteraction scans c once and tallies two-qubit operations per
// unordered qubit pair. Single-qubit and opaque operations contribute
// nothing.
//
// Errors: ErrCircuitNil.
// Complexity: O(n) time, O(pairs) memory.
func NewInteraction(c *circuit.Circuit) (*InteractionGraph, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}

	ig := &InteractionGraph{
		qubits: c.Qubits(),
		weight: make(map[qubitPair]int),
	}
	for _, op := range c.Operations() {
		if op.Arity() == 2 {
			ig.weight[pairOf(op.Qubits[0], op.Qubits[1])]++
		}
	}

	return ig, nil
}

// Order returns the number of virtual qubits. Complexity: O(1).
func (ig *InteractionGraph) Order() int { return len(ig.qubits) }

// Qubits returns the virtual qubits in ascending order (a copy).
// Complexity: O(N).
func (ig *InteractionGraph) Qubits() []circuit.QubitID {
	return append([]circuit.QubitID(nil), ig.qubits...)
}

// Weight returns the interaction count between a and b (order-free).
// Complexity: O(1).
func (ig *InteractionGraph) Weight(a, b circuit.QubitID) int {
	return ig.weight[pairOf(a, b)]
}

// Adjacency returns the N×N weighted adjacency matrix; row/column i
// corresponds to qubit i.
// Complexity: O(N² + pairs).
func (ig *InteractionGraph) Adjacency() (*matrix.Dense, error) {
	n := len(ig.qubits)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for p, w := range ig.weight {
		if err = m.Set(int(p.a), int(p.b), float64(w)); err != nil {
			return nil, err
		}
		if err = m.Set(int(p.b), int(p.a), float64(w)); err != nil {
			return nil, err
		}
	}

	return m, nil
}
