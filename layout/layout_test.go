package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qopt/circuit"
	"github.com/katalvlaran/qopt/layout"
)

// mustCircuit builds an n-qubit circuit from ops.
func mustCircuit(t *testing.T, n int, ops ...*circuit.Operation) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n)
	require.NoError(t, err)
	for _, op := range ops {
		require.NoError(t, c.Append(op))
	}

	return c
}

// TestNewCoupling_Validation covers the ingestion contract.
func TestNewCoupling_Validation(t *testing.T) {
	_, err := layout.NewCoupling(nil)
	assert.ErrorIs(t, err, layout.ErrNoEdges)

	_, err = layout.NewCoupling([][2]layout.PhysicalID{{2, 2}})
	assert.ErrorIs(t, err, layout.ErrSelfLoop)

	_, err = layout.NewCoupling([][2]layout.PhysicalID{{-1, 0}})
	assert.ErrorIs(t, err, layout.ErrNegativeNode)
}

// TestCoupling_Accessors checks degrees, adjacency and node order on a
// small T-shaped device.
func TestCoupling_Accessors(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}, {1, 3}})
	require.NoError(t, err)

	assert.Equal(t, 4, cg.Order())
	assert.Equal(t, []layout.PhysicalID{0, 1, 2, 3}, cg.Nodes())
	assert.Equal(t, 3, cg.Degree(1))
	assert.Equal(t, 1, cg.Degree(3))
	assert.Equal(t, 0, cg.Degree(9), "unknown nodes have degree 0")

	assert.True(t, cg.HasEdge(0, 1))
	assert.True(t, cg.HasEdge(1, 0), "edges are undirected")
	assert.False(t, cg.HasEdge(0, 2))

	// duplicate edges collapse
	dup, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, dup.Order())
}

// TestNewInteraction_Weights counts two-qubit operations per unordered
// pair and ignores single-qubit operations.
func TestNewInteraction_Weights(t *testing.T) {
	c := mustCircuit(t, 3,
		circuit.CX(0, 1),
		circuit.CX(1, 0), // same unordered pair
		circuit.H(2),
		circuit.CX(1, 2),
		circuit.Custom("measure", []circuit.QubitID{0}, nil, nil),
	)

	ig, err := layout.NewInteraction(c)
	require.NoError(t, err)

	assert.Equal(t, 3, ig.Order())
	assert.Equal(t, 2, ig.Weight(0, 1))
	assert.Equal(t, 2, ig.Weight(1, 0), "weights are order-free")
	assert.Equal(t, 1, ig.Weight(1, 2))
	assert.Equal(t, 0, ig.Weight(0, 2))

	m, err := ig.Adjacency()
	require.NoError(t, err)
	v01, _ := m.At(0, 1)
	v10, _ := m.At(1, 0)
	assert.Equal(t, 2.0, v01)
	assert.Equal(t, v01, v10, "adjacency is symmetric")
	diag, _ := m.At(1, 1)
	assert.Equal(t, 0.0, diag)
}

// TestNewInteraction_NilCircuit rejects nil input.
func TestNewInteraction_NilCircuit(t *testing.T) {
	_, err := layout.NewInteraction(nil)
	assert.ErrorIs(t, err, layout.ErrCircuitNil)
}

// TestCompute_LayoutValidity: every returned layout is total over the
// circuit's qubits and injective into the coupling nodes.
func TestCompute_LayoutValidity(t *testing.T) {
	// 5-node ring device, 3-qubit circuit
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	c := mustCircuit(t, 3, circuit.CX(0, 1), circuit.CX(1, 2), circuit.CX(0, 1))

	l, err := layout.Compute(c, cg, layout.WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, 3, l.Len(), "layout is total")

	valid := map[layout.PhysicalID]bool{0: true, 1: true, 2: true, 3: true, 4: true}
	seen := map[layout.PhysicalID]bool{}
	for _, q := range c.Qubits() {
		p, ok := l.Physical(q)
		require.True(t, ok, "qubit %d unmapped", q)
		assert.True(t, valid[p], "image must lie within coupling nodes")
		assert.False(t, seen[p], "layout must be injective")
		seen[p] = true
	}
}

// TestCompute_SizingError: 6 qubits on a 5-node device fails before any
// decomposition, never a partial mapping.
func TestCompute_SizingError(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	c := mustCircuit(t, 6, circuit.CX(0, 5))

	l, err := layout.Compute(c, cg)
	assert.ErrorIs(t, err, layout.ErrCircuitTooLarge)
	assert.Nil(t, l, "no partial mapping on failure")
}

// TestCompute_InsufficientConnectivity: a fragmented device region is a
// distinct, typed failure.
func TestCompute_InsufficientConnectivity(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {2, 3}})
	require.NoError(t, err)
	c := mustCircuit(t, 3, circuit.CX(0, 1), circuit.CX(1, 2))

	l, err := layout.Compute(c, cg)
	assert.ErrorIs(t, err, layout.ErrInsufficientConnectivity)
	assert.Nil(t, l)
}

// TestCompute_InputValidation covers nil inputs and bad options.
func TestCompute_InputValidation(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}})
	require.NoError(t, err)
	c := mustCircuit(t, 1, circuit.H(0))

	_, err = layout.Compute(nil, cg)
	assert.ErrorIs(t, err, layout.ErrCircuitNil)

	_, err = layout.Compute(c, nil)
	assert.ErrorIs(t, err, layout.ErrCouplingNil)

	_, err = layout.Compute(c, cg, layout.WithEta(-0.5))
	assert.ErrorIs(t, err, layout.ErrOptionViolation)

	_, err = layout.Compute(c, cg, layout.WithEigenBudget(0, 10))
	assert.ErrorIs(t, err, layout.ErrOptionViolation)
}

// TestCompute_IsomorphicLineRecovery: a 3-qubit line interaction graph
// against a 3-node line region must place every interacting pair on
// adjacent hardware (zero missing edges).
func TestCompute_IsomorphicLineRecovery(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}})
	require.NoError(t, err)
	c := mustCircuit(t, 3, circuit.CX(0, 1), circuit.CX(1, 2))

	ig, err := layout.NewInteraction(c)
	require.NoError(t, err)

	l, err := layout.Compute(c, cg, layout.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 0, layout.MissingEdges(l, ig, cg), "isomorphic placement must be exact")

	// the middle virtual qubit must sit on the middle physical qubit
	p, ok := l.Physical(1)
	require.True(t, ok)
	assert.Equal(t, layout.PhysicalID(1), p)
}

// TestCompute_IsomorphicLineOnLargerDevice embeds the same line into a
// 5-node path; the greedy subgraph keeps a connected 3-line, so an
// exact placement still exists and must be found.
func TestCompute_IsomorphicLineOnLargerDevice(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	c := mustCircuit(t, 3, circuit.CX(0, 1), circuit.CX(1, 2))

	ig, err := layout.NewInteraction(c)
	require.NoError(t, err)

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		l, cerr := layout.Compute(c, cg, layout.WithSeed(seed))
		require.NoError(t, cerr, "seed %d", seed)
		assert.Equal(t, 0, layout.MissingEdges(l, ig, cg), "seed %d: line must map onto a path segment", seed)
	}
}

// TestCompute_Deterministic: identical seeds produce identical layouts.
func TestCompute_Deterministic(t *testing.T) {
	cg, err := layout.NewCoupling([][2]layout.PhysicalID{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
	require.NoError(t, err)
	c := mustCircuit(t, 3, circuit.CX(0, 1), circuit.CX(1, 2), circuit.CX(2, 0))

	a, err := layout.Compute(c, cg, layout.WithSeed(99))
	require.NoError(t, err)
	b, err := layout.Compute(c, cg, layout.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
