// Package layout maps a circuit's virtual qubits onto physical qubits
// of a hardware coupling graph using spectral graph matching.
//
// What
//
//	Compute(c, cg) runs four stages:
//	 1. Subgraph selection — starting from the coupling node of maximum
//	    degree, greedily grow a candidate set of exactly N = NumQubits
//	    nodes, each step adding the node that maximizes edges internal
//	    to the induced subgraph. Ties are broken by a per-round shuffle
//	    of the candidates (seeded; see Determinism).
//	 2. Interaction graph — the N×N weighted adjacency matrix counting
//	    two-qubit operations per unordered virtual-qubit pair.
//	 3. Spectral matching — symmetric eigendecomposition of both
//	    adjacency matrices; similarity P = Σ w(i,j)·outer(uA_i, uB_j)
//	    with the Cauchy kernel w = η/(η²+(λA_i−λB_j)²), η = 0.1/ln N.
//	    Nodes with similar spectral signatures score as likely
//	    correspondents; matrix.Eigen's canonical eigenvector signs make
//	    the outer products comparable, and the kernel-weighted sum
//	    softens the pairing across near-degenerate eigenvalues.
//	 4. Assignment — a Hungarian solve on −P yields a strict one-to-one
//	    row→column permutation; composed with the subgraph node labels
//	    it is the Layout.
//
// Why
//
//	Graph matching against hardware is NP-hard in general; the spectral
//	relaxation plus optimal assignment is a cheap O(N³) heuristic that
//	recovers isomorphic placements exactly on well-separated spectra and
//	degrades gracefully otherwise.
//
// Determinism
//
//	The candidate shuffle is the only randomness. Policy follows the
//	house rule: WithSeed(s), s==0 ⇒ fixed default seed, never a
//	time-based source. Same seed ⇒ identical layouts.
//
// Failure semantics
//
//   - N exceeding the coupling-graph order fails with ErrCircuitTooLarge
//     before any decomposition — never a partial mapping.
//   - Greedy growth stalling below N (disconnected device region) fails
//     with ErrInsufficientConnectivity — never silently padded.
//   - Non-finite matrix entries surface as matrix.ErrNaNInf; retrying
//     an identical input is pointless and the caller must fix it.
//
// Complexity (N = qubits, M = coupling nodes)
//
//	Growth O(N·M²) worst case; eigendecompositions O(N³)-ish via Jacobi;
//	assignment O(N³). Memory O(N² + M).
//
// Errors
//
//   - ErrCouplingNil / ErrCircuitNil / ErrNoEdges / ErrSelfLoop
//   - ErrCircuitTooLarge (sizing), ErrInsufficientConnectivity (structure)
//   - ErrOptionViolation for invalid options
//   - matrix.ErrNaNInf, matrix.ErrEigenFailed propagated (numerical)
package layout
