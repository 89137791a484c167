package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qopt/circuit"
)

// lineCircuit builds [H(0), CX(0,1), RX(1,θ), CX(0,1)] over 2 qubits —
// enough structure to exercise wires on both operands.
func lineCircuit() *circuit.Circuit {
	return mustCircuit(2,
		circuit.H(0),
		circuit.CX(0, 1),
		circuit.RX(1, 0.5),
		circuit.CX(0, 1),
	)
}

// TestNewDepGraph_NilCircuit rejects nil input.
func TestNewDepGraph_NilCircuit(t *testing.T) {
	_, err := circuit.NewDepGraph(nil)
	assert.ErrorIs(t, err, circuit.ErrNilCircuit)
}

// TestDepGraph_Wires verifies the per-qubit next links of a fresh graph.
func TestDepGraph_Wires(t *testing.T) {
	g, err := circuit.NewDepGraph(lineCircuit())
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	// qubit 0 wire: H(0) → CX → CX
	assert.Equal(t, circuit.NodeID(1), g.NextOn(0, 0))
	assert.Equal(t, circuit.NodeID(3), g.NextOn(1, 0))
	assert.Equal(t, circuit.NoNode, g.NextOn(3, 0))

	// qubit 1 wire: CX → RX(1) → CX
	assert.Equal(t, circuit.NodeID(2), g.NextOn(1, 1))
	assert.Equal(t, circuit.NodeID(3), g.NextOn(2, 1))

	// H does not sit on qubit 1
	assert.Equal(t, circuit.NoNode, g.NextOn(0, 1))
}

// TestDepGraph_RemoveSplices checks that removal reconnects predecessor
// and successor on every touched wire.
func TestDepGraph_RemoveSplices(t *testing.T) {
	g, err := circuit.NewDepGraph(lineCircuit())
	require.NoError(t, err)

	// remove the middle CX (node 1): wires must splice around it
	require.NoError(t, g.Remove(1))
	assert.Equal(t, 3, g.Len())

	// qubit 0: H now links straight to the tail CX
	assert.Equal(t, circuit.NodeID(3), g.NextOn(0, 0))
	// qubit 1: RX became the head, still links to the tail CX
	assert.Equal(t, circuit.NodeID(3), g.NextOn(2, 1))

	// removed node is gone from every accessor
	assert.True(t, g.Removed(1))
	_, err = g.Op(1)
	assert.ErrorIs(t, err, circuit.ErrNodeRemoved)
	assert.ErrorIs(t, g.Remove(1), circuit.ErrNodeRemoved)
}

// TestDepGraph_RemoveBounds rejects ids outside the arena.
func TestDepGraph_RemoveBounds(t *testing.T) {
	g, err := circuit.NewDepGraph(lineCircuit())
	require.NoError(t, err)

	assert.ErrorIs(t, g.Remove(-1), circuit.ErrUnknownNode)
	assert.ErrorIs(t, g.Remove(99), circuit.ErrUnknownNode)
	_, err = g.Op(99)
	assert.ErrorIs(t, err, circuit.ErrUnknownNode)
}

// TestDepGraph_TopologicalAndRebuild verifies order stability and the
// write-back of survivors.
func TestDepGraph_TopologicalAndRebuild(t *testing.T) {
	c := lineCircuit()
	g, err := circuit.NewDepGraph(c)
	require.NoError(t, err)

	assert.Equal(t, []circuit.NodeID{0, 1, 2, 3}, g.Topological())

	require.NoError(t, g.Remove(1))
	require.NoError(t, g.Remove(3))
	assert.Equal(t, []circuit.NodeID{0, 2}, g.Topological())

	g.Rebuild()
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "h", c.Operations()[0].Name)
	assert.Equal(t, "rx", c.Operations()[1].Name)
}

// TestDepGraph_EmptyWire removes every node on a wire and verifies the
// graph still behaves.
func TestDepGraph_EmptyWire(t *testing.T) {
	c := mustCircuit(1, circuit.X(0), circuit.X(0))
	g, err := circuit.NewDepGraph(c)
	require.NoError(t, err)

	require.NoError(t, g.Remove(0))
	require.NoError(t, g.Remove(1))
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Topological())

	g.Rebuild()
	assert.Equal(t, 0, c.Len())
}
