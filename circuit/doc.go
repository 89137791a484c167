// Package circuit provides the canonical in-memory model shared by all
// qopt passes: gate operations carrying exact unitaries, an ordered
// circuit with a global-phase tag, and a per-qubit dependency graph with
// O(1) node removal.
//
// What
//
//   - Operation: a named gate over one or two qubits with optional
//     parameters and a 2^k×2^k complex unitary. Immutable once built.
//   - Circuit: a fixed qubit set, program-ordered operations, and a
//     GlobalPhase in [0, 2π). Two circuits whose matrices differ only by
//     e^{iθ} are logically identical; AddGlobalPhase is the single
//     mutation point for the tag.
//   - DepGraph: an arena of operations indexed by NodeID with explicit
//     next/prev wire links per qubit. Removing a node splices its
//     predecessor and successor on every touched wire in O(1) per wire.
//     A topological order always exists (a program is acyclic).
//
// Why
//
//   - Rewrite passes reason about "same-qubit, must-execute-before"
//     ordering; wire links make legal-reordering queries and pair removal
//     cheap without live pointer surgery.
//   - Exact unitaries let passes test operator identities (inverse pairs,
//     phase extraction) numerically instead of by gate-name tables alone.
//
// Determinism
//
//	NodeIDs are assigned in program order; Topological() returns live
//	nodes in ascending id, so traversal order is fully reproducible.
//
// Complexity (n = operations, q = qubits per operation ≤ 2)
//
//   - NewDepGraph: O(n·q) time and memory.
//   - Remove:      O(q) relinks.
//   - Topological: O(n).
//   - Rebuild:     O(n).
//
// Errors
//
//   - ErrBadQubitCount     if a circuit is created with no qubits.
//   - ErrUnknownQubit      if an operation references a qubit outside the set.
//   - ErrBadArity          if operand count is not 1 or 2, operands repeat,
//     or the unitary dimension does not match the operand count.
//   - ErrNilCircuit        if a nil *Circuit is passed.
//   - ErrNodeRemoved       if a DepGraph node is removed twice.
package circuit
