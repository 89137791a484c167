// Package layout: linear assignment (Hungarian algorithm) on a dense cost matrix.
package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qopt/matrix"
)

// assign solves the linear sum assignment problem: given an n×n cost
// matrix it returns perm with perm[row] = column minimizing the total
// cost over all strict one-to-one assignments.
//
// Implementation: shortest augmenting paths with row/column potentials
// (the Jonker–Volgenant formulation of the Hungarian method). The dual
// potentials keep reduced costs non-negative, so each of the n
// augmentations is a Dijkstra-like scan.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
// Complexity: O(n³) time, O(n) extra memory.
func assign(cost *matrix.Dense) ([]int, error) {
	// Stage 1: Validate.
	if cost == nil {
		return nil, fmt.Errorf("assign: %w", matrix.ErrNilMatrix)
	}
	n := cost.Rows()
	if n != cost.Cols() {
		return nil, fmt.Errorf("assign: %dx%d: %w", n, cost.Cols(), matrix.ErrNonSquare)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = cost.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("assign: entry (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
		}
	}

	// Stage 2: Augment one row at a time, maintaining potentials.
	// Arrays are 1-based; matchedRow[j] is the row matched to column j,
	// column 0 is the virtual "unmatched" column.
	var (
		inf        = math.Inf(1)
		uPot       = make([]float64, n+1) // row potentials
		vPot       = make([]float64, n+1) // column potentials
		matchedRow = make([]int, n+1)     // column -> row (0 = free)
		way        = make([]int, n+1)     // augmenting-path back links
		minv       []float64
		used       []bool
		row        int
		j0, j1     int
		i0         int
		cur, delta float64
	)
	for row = 1; row <= n; row++ {
		matchedRow[0] = row
		j0 = 0
		minv = make([]float64, n+1)
		used = make([]bool, n+1)
		for j = 0; j <= n; j++ {
			minv[j] = inf
		}

		// grow the alternating tree until a free column is reached
		for {
			used[j0] = true
			i0 = matchedRow[j0]
			delta = inf
			j1 = -1
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur, _ = cost.At(i0-1, j-1)
				cur -= uPot[i0] + vPot[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					uPot[matchedRow[j]] += delta
					vPot[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if matchedRow[j0] == 0 {
				break
			}
		}

		// flip matches along the augmenting path
		for j0 != 0 {
			j1 = way[j0]
			matchedRow[j0] = matchedRow[j1]
			j0 = j1
		}
	}

	// Stage 3: Read the permutation back out.
	perm := make([]int, n)
	for j = 1; j <= n; j++ {
		if matchedRow[j] > 0 {
			perm[matchedRow[j]-1] = j - 1
		}
	}

	return perm, nil
}
