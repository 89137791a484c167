// Package layout: spectral graph matching and the Compute entry point.
package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qopt/circuit"
	"github.com/katalvlaran/qopt/matrix"
)

// etaNumerator fixes the kernel bandwidth relative to problem size:
// eta = etaNumerator / ln(N). Smaller eta ⇒ sharper eigenvalue pairing.
const etaNumerator = 0.1

// autoEta resolves the kernel bandwidth for an N-node problem.
// ln(1) and ln(2)≈0.69 keep eta finite for the degenerate small sizes.
func autoEta(n int) float64 {
	if n < 2 {
		return etaNumerator
	}

	return etaNumerator / math.Log(float64(n))
}

// similarity builds P = Σ_{i,j} w(i,j)·outer(uA_i, uB_j) with the
// Cauchy kernel w(i,j) = η/(η²+(λA_i−λB_j)²), which peaks when the two
// eigenvalues match. The outer products are only comparable because
// matrix.Eigen fixes each eigenvector's sign; the kernel sum then
// softens the pairing across near-degenerate eigenvalues.
//
// A and B must be same-size real symmetric matrices (the equal-size
// contract holds after subgraph selection).
// Complexity: O(n⁴) worst case (n² kernel terms, O(n²) outer each);
// n is a qubit count, so this is cheap in practice.
func similarity(A, B *matrix.Dense, eta, eigTol float64, eigMaxIter int) (*matrix.Dense, error) {
	// Stage 1: Validate the equal-size contract.
	n := A.Rows()
	if B.Rows() != n || A.Cols() != n || B.Cols() != n {
		return nil, fmt.Errorf("similarity: %dx%d vs %dx%d: %w", A.Rows(), A.Cols(), B.Rows(), B.Cols(), matrix.ErrBadShape)
	}

	// Stage 2: Decompose both adjacency matrices.
	valsA, vecsA, err := matrix.Eigen(A, eigTol, eigMaxIter)
	if err != nil {
		return nil, fmt.Errorf("similarity: interaction matrix: %w", err)
	}
	valsB, vecsB, err := matrix.Eigen(B, eigTol, eigMaxIter)
	if err != nil {
		return nil, fmt.Errorf("similarity: coupling matrix: %w", err)
	}

	// Stage 3: Accumulate the kernel-weighted outer products.
	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j, r, c int
		w, d       float64
		pv, av, bv float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = valsA[i] - valsB[j]
			w = eta / (eta*eta + d*d)
			for r = 0; r < n; r++ {
				av, _ = vecsA.At(r, i)
				for c = 0; c < n; c++ {
					bv, _ = vecsB.At(c, j)
					pv, _ = P.At(r, c)
					if err = P.Set(r, c, pv+w*av*bv); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return P, nil
}

// spectralMatch aligns two same-size graphs and returns perm with
// perm[i] = index in B's node order assigned to A's node i, by solving
// the assignment problem on the negated similarity matrix (maximize
// similarity = minimize −P).
// Complexity: eigendecompositions + O(n⁴) similarity + O(n³) assignment.
func spectralMatch(A, B *matrix.Dense, eta, eigTol float64, eigMaxIter int) ([]int, error) {
	P, err := similarity(A, B, eta, eigTol, eigMaxIter)
	if err != nil {
		return nil, err
	}

	// negate in place: assignment minimizes
	n := P.Rows()
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = P.At(i, j)
			if err = P.Set(i, j, -v); err != nil {
				return nil, err
			}
		}
	}

	return assign(P)
}

// Compute produces a virtual→physical Layout for c on cg.
//
// Pipeline: greedy coupling-subgraph selection (exactly N nodes),
// interaction-graph extraction, spectral matching, Hungarian
// assignment. The Layout is all-or-nothing: every failure path returns
// a nil map and a typed error, never a partial mapping.
//
// Errors: ErrCircuitNil, ErrCouplingNil, ErrOptionViolation,
// ErrCircuitTooLarge, ErrInsufficientConnectivity, and numerical
// failures propagated from matrix (ErrNaNInf, ErrEigenFailed).
// Complexity: see package doc.
func Compute(c *circuit.Circuit, cg *CouplingGraph, opts ...Option) (Layout, error) {
	// Stage 1: Resolve options and validate inputs.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c == nil {
		return nil, ErrCircuitNil
	}
	if cg == nil {
		return nil, ErrCouplingNil
	}
	n := c.NumQubits()
	if n > cg.Order() {
		// sizing failure before any decomposition work
		return nil, fmt.Errorf("Compute: %d qubits, %d coupling nodes: %w", n, cg.Order(), ErrCircuitTooLarge)
	}

	// Stage 2: Select the hardware subgraph.
	sub, err := growSubgraph(cg, n, rngFromSeed(o.Seed))
	if err != nil {
		return nil, err
	}

	// Stage 3: Build both adjacency matrices.
	ig, err := NewInteraction(c)
	if err != nil {
		return nil, err
	}
	A, err := ig.Adjacency()
	if err != nil {
		return nil, err
	}
	B, err := cg.adjacencyAmong(sub)
	if err != nil {
		return nil, err
	}

	// Stage 4: Match spectra and compose with the subgraph labels.
	eta := o.Eta
	if eta == 0 {
		eta = autoEta(n)
	}
	perm, err := spectralMatch(A, B, eta, o.EigenTol, o.EigenMaxIter)
	if err != nil {
		return nil, err
	}

	l := make(Layout, n)
	for i, q := range ig.Qubits() {
		l[q] = sub[perm[i]]
	}

	return l, nil
}

// MissingEdges counts interacting virtual-qubit pairs whose assigned
// physical qubits are not adjacent on hardware — the layout-quality
// regression metric: an isomorphic placement scores 0.
// Complexity: O(pairs).
func MissingEdges(l Layout, ig *InteractionGraph, cg *CouplingGraph) int {
	missing := 0
	for p := range ig.weight {
		if !cg.HasEdge(l[p.a], l[p.b]) {
			missing++
		}
	}

	return missing
}
