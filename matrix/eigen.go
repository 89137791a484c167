// Package matrix: symmetric eigendecomposition via Jacobi rotations.
package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Eigen computes all eigenvalues and eigenvectors of the real symmetric
// matrix m using classical Jacobi rotations (largest off-diagonal pivot).
//
// It returns the eigenvalues sorted ascending and a matrix Q whose
// column k is the orthonormal eigenvector for eigenvalue k. The sort is
// part of the contract: spectral matching pairs eigenvalues of two
// decompositions by position-independent kernel weights, but tests and
// callers rely on a canonical order. Each column's sign is fixed so
// that its largest-magnitude entry is positive (ties broken by the
// lowest row index); without a canonical sign, matching two
// decompositions of permutation-similar matrices is ill-defined.
//
// tol is the convergence threshold for off-diagonal magnitude; maxIter
// caps the number of rotations.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrEigenFailed.
// Complexity: O(n²) per rotation, worst-case O(maxIter·n²); memory O(n²).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1: Validate input.
	if m == nil {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrNilMatrix)
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("Eigen: %dx%d: %w", n, m.Cols(), ErrNonSquare)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := m.at(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, fmt.Errorf("Eigen: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if j > i && math.Abs(v-m.at(j, i)) > tol {
				return nil, nil, fmt.Errorf("Eigen: entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	// Stage 2: Prepare working copy A and rotation accumulator Q.
	A := m.Clone()
	Q, err := Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	// Stage 3: Execute Jacobi rotations until off-diagonal mass is gone.
	var (
		iter       int     // rotation counter
		p, q       int     // pivot indices
		maxOff     float64 // largest off-diagonal magnitude
		app, aqq   float64 // pivot diagonal entries
		apq        float64 // pivot off-diagonal entry
		theta, t   float64 // rotation parameters
		cos, sin   float64
		aip, aiq   float64 // row/column temporaries
		converged  bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// 3.1: find the largest off-diagonal |A[p][q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(A.at(i, j)); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		// 3.2: compute the rotation annihilating A[p][q].
		app = A.at(p, p)
		aqq = A.at(q, q)
		apq = A.at(p, q)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		cos = 1 / math.Sqrt(t*t+1)
		sin = t * cos

		// 3.3: apply the rotation to rows/columns p and q of A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.at(i, p)
			aiq = A.at(i, q)
			A.set(i, p, cos*aip-sin*aiq)
			A.set(p, i, cos*aip-sin*aiq)
			A.set(i, q, sin*aip+cos*aiq)
			A.set(q, i, sin*aip+cos*aiq)
		}
		A.set(p, p, app-t*apq)
		A.set(q, q, aqq+t*apq)
		A.set(p, q, 0)
		A.set(q, p, 0)

		// 3.4: accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			aip = Q.at(i, p)
			aiq = Q.at(i, q)
			Q.set(i, p, cos*aip-sin*aiq)
			Q.set(i, q, sin*aip+cos*aiq)
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("Eigen: %d rotations: %w", maxIter, ErrEigenFailed)
	}

	// Stage 4: Extract eigenvalues and sort eigenpairs ascending.
	type pair struct {
		val float64
		col int
	}
	pairs := make([]pair, n)
	for i = 0; i < n; i++ {
		pairs[i] = pair{val: A.at(i, i), col: i}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].val < pairs[b].val })

	vals := make([]float64, n)
	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for j = 0; j < n; j++ {
		vals[j] = pairs[j].val
		for i = 0; i < n; i++ {
			vecs.set(i, j, Q.at(i, pairs[j].col))
		}
	}

	// Stage 5: Canonicalize column signs — largest-magnitude entry
	// positive, lowest index winning ties.
	var pivotVal, pivotAbs float64
	for j = 0; j < n; j++ {
		pivotVal, pivotAbs = 0, 0
		for i = 0; i < n; i++ {
			if a := math.Abs(vecs.at(i, j)); a > pivotAbs {
				pivotAbs = a
				pivotVal = vecs.at(i, j)
			}
		}
		if pivotVal < 0 {
			for i = 0; i < n; i++ {
				vecs.set(i, j, -vecs.at(i, j))
			}
		}
	}

	return vals, vecs, nil
}
