// Package layout: identifiers, Layout, options and the sentinel error set.
package layout

import (
	"errors"

	"github.com/katalvlaran/qopt/circuit"
)

// PhysicalID identifies a hardware qubit in a CouplingGraph.
type PhysicalID int

// Sentinel errors for the layout stage.
var (
	// ErrCircuitNil is returned if a nil circuit pointer is passed.
	ErrCircuitNil = errors.New("layout: circuit is nil")

	// ErrCouplingNil is returned if a nil coupling graph is passed.
	ErrCouplingNil = errors.New("layout: coupling graph is nil")

	// ErrNoEdges indicates an empty coupling edge list.
	ErrNoEdges = errors.New("layout: coupling graph has no edges")

	// ErrSelfLoop indicates a coupling edge from a node to itself.
	ErrSelfLoop = errors.New("layout: coupling edge is a self-loop")

	// ErrNegativeNode indicates a negative physical qubit id in an edge.
	ErrNegativeNode = errors.New("layout: negative physical qubit id")

	// ErrCircuitTooLarge is the sizing failure: the circuit needs more
	// qubits than the coupling graph has nodes.
	ErrCircuitTooLarge = errors.New("layout: circuit qubit count exceeds coupling graph size")

	// ErrInsufficientConnectivity is the structural failure: greedy
	// growth stalled before reaching the required connected size.
	ErrInsufficientConnectivity = errors.New("layout: no connected coupling region of required size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Layout is a bijection from virtual qubits onto (a subset of) the
// coupling graph's physical qubits. Total over the circuit's qubit set,
// injective into the coupling nodes. Never mutated after construction.
type Layout map[circuit.QubitID]PhysicalID

// Physical returns the physical qubit assigned to v.
// Complexity: O(1).
func (l Layout) Physical(v circuit.QubitID) (PhysicalID, bool) {
	p, ok := l[v]

	return p, ok
}

// Len returns the number of mapped virtual qubits. Complexity: O(1).
func (l Layout) Len() int { return len(l) }

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the tunables of the layout stage.
type Options struct {
	// Seed drives the candidate shuffle in subgraph growth.
	// 0 selects the fixed default seed (deterministic by default).
	Seed int64

	// Eta is the Cauchy kernel bandwidth; 0 selects 0.1/ln(N).
	Eta float64

	// EigenTol and EigenMaxIter bound the Jacobi decomposition.
	EigenTol     float64
	EigenMaxIter int

	// internal error recorded during option parsing
	err error
}

// Default Jacobi budget: tolerance tight enough for adjacency spectra,
// rotation cap generous for the qubit counts this engine targets.
const (
	defaultEigenTol     = 1e-10
	defaultEigenMaxIter = 10000
)

// DefaultOptions returns Options with deterministic defaults.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		Eta:          0,
		EigenTol:     defaultEigenTol,
		EigenMaxIter: defaultEigenMaxIter,
		err:          nil,
	}
}

// WithSeed fixes the tie-break shuffle seed. 0 keeps the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithEta overrides the kernel bandwidth.
//
//	eta > 0:  use eta
//	eta == 0: automatic 0.1/ln(N)
//	eta < 0:  invalid option → ErrOptionViolation from Compute
func WithEta(eta float64) Option {
	return func(o *Options) {
		if eta < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.Eta = eta
	}
}

// WithEigenBudget overrides the Jacobi tolerance and rotation cap.
// Non-positive values are invalid.
func WithEigenBudget(tol float64, maxIter int) Option {
	return func(o *Options) {
		if tol <= 0 || maxIter <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.EigenTol = tol
		o.EigenMaxIter = maxIter
	}
}
