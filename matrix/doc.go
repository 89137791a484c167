// Package matrix provides the dense float64 primitives the layout
// engine needs: a row-major Dense matrix and a symmetric Jacobi
// eigendecomposition.
//
// What
//
//   - Dense: a two-dimensional mutable array of float64 with bounds
//     checking, finite-value policy, and deep Clone.
//   - Eigen: all eigenvalues and orthonormal eigenvectors of a real
//     symmetric matrix via Jacobi rotations, eigenpairs sorted by
//     ascending eigenvalue.
//
// Why
//
//	Spectral graph matching compares eigenvalue/eigenvector structure of
//	two adjacency matrices. Adjacency matrices of undirected graphs are
//	real symmetric, so eigenvalues are real and eigenvectors orthonormal;
//	Jacobi is simple, numerically robust, and more than fast enough at
//	qubit-count scale.
//
// Numeric policy
//
//	NaN/±Inf are rejected at Set and at Eigen entry (ErrNaNInf): a
//	malformed matrix must fail loudly before decomposition, never feed
//	garbage into an assignment solve.
//
// Complexity
//
//	Dense accessors are O(1); Clone is O(r·c); Eigen is O(n²) per
//	rotation with at most maxIter rotations, O(n²) memory.
//
// Errors
//
//   - ErrBadShape    — non-positive dimensions at construction.
//   - ErrOutOfRange  — index outside bounds in At/Set.
//   - ErrNaNInf      — non-finite value at Set or inside Eigen input.
//   - ErrNonSquare   — Eigen on a non-square matrix.
//   - ErrAsymmetry   — Eigen on an asymmetric matrix.
//   - ErrEigenFailed — Jacobi did not converge within maxIter rotations.
package matrix
