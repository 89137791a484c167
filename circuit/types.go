// Package circuit: identifiers and the sentinel error set.
// All algorithms in this module return these sentinels and tests match
// them via errors.Is. No function panics on user input.
package circuit

import "errors"

// QubitID identifies a virtual qubit within a Circuit.
// IDs are dense integers 0..NumQubits-1; passes rely on that density
// when building adjacency matrices.
type QubitID int

// NodeID is an arena index into a DepGraph. Assigned in program order.
type NodeID int

// NoNode marks an absent wire neighbour (head-of-wire prev, tail-of-wire next).
const NoNode NodeID = -1

// Sentinel errors for circuit construction and dependency-graph mutation.
var (
	// ErrBadQubitCount indicates a non-positive qubit count at construction.
	ErrBadQubitCount = errors.New("circuit: qubit count must be > 0")

	// ErrUnknownQubit indicates an operation referencing a qubit outside the circuit's set.
	ErrUnknownQubit = errors.New("circuit: unknown qubit")

	// ErrBadArity indicates an operand list that is not 1 or 2 distinct qubits,
	// or a unitary whose dimension does not match the operand count.
	ErrBadArity = errors.New("circuit: bad operand arity")

	// ErrNilCircuit indicates a nil *Circuit was passed.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrNilOperation indicates a nil *Operation was appended.
	ErrNilOperation = errors.New("circuit: operation is nil")

	// ErrNodeRemoved indicates a DepGraph node was removed twice.
	ErrNodeRemoved = errors.New("circuit: node already removed")

	// ErrUnknownNode indicates a NodeID outside the arena.
	ErrUnknownNode = errors.New("circuit: unknown node id")
)
