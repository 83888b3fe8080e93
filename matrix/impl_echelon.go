// SPDX-License-Identifier: MIT

// Package matrix - forward elimination to row-echelon form.
//
// Purpose:
//   - Reduce any Repr to row-echelon form in place (forward elimination only,
//     no back-substitution, no normalization of pivots to 1).
//   - Report rank, row-swap count and pivot columns from the same pass, so
//     determinant sign and rank never need a second reduction.
//
// Determinism:
//   - Columns left→right, candidate rows top→bottom, first acceptable pivot wins
//     (no partial pivoting by magnitude). Identical inputs give identical outputs.
package matrix

import "math"

// EchelonInPlace reduces r to row-echelon form in place and describes the pass.
// Implementation (pivot cursor p starts at row 0; for each column c, left→right):
//   - Stage 1: scan rows p..m-1 in column c for the first |v| > tol.
//     None found ⇒ c is a free column; move on without advancing p.
//   - Stage 2: if that row is not p, swap it into position p (Swaps++).
//   - Stage 3: for every row below p: factor = v/pivot; row -= factor*row[p]
//     via the fold kernel; the eliminated cell is stored as an exact zero.
//   - Stage 4: record c as a pivot column and advance p.
//
// Behavior highlights:
//   - Zero pivots are skipped, never an error: rank-deficient and rectangular
//     inputs are fine.
//   - Every entry below an established pivot is exactly 0 afterwards, which
//     makes the reduction idempotent.
//
// Inputs:
//   - r  : any Repr; its buffer is mutated.
//   - tol: zero-pivot threshold (≥ 0); 0 means exact comparison.
//
// Returns:
//   - Reduction{Rank, Swaps, PivotCols}.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(min(m,n)) for PivotCols.
func EchelonInPlace(r Repr, tol float64) Reduction {
	d := r.Dim()
	m, n := d.Rows(), d.Cols()
	data := r.Data()

	var (
		red            = Reduction{PivotCols: make([]int, 0, min(m, n))}
		p, c, row, idx int
		pivot, v       float64
	)
	for c = 0; c < n && p < m; c++ {
		// Stage 1: first acceptable pivot at or below the cursor.
		idx = -1
		for row = p; row < m; row++ {
			if math.Abs(data[row*n+c]) > tol {
				idx = row
				break
			}
		}
		if idx < 0 {
			continue // free column
		}

		// Stage 2: promote the pivot row.
		if idx != p {
			swapRows(data, n, idx, p)
			red.Swaps++
		}

		// Stage 3: eliminate strictly below the pivot.
		pivot = data[p*n+c]
		for row = p + 1; row < m; row++ {
			v = data[row*n+c]
			if v == 0 {
				continue // nothing to eliminate
			}
			foldRow(data, n, row, p, -(v / pivot))
			data[row*n+c] = 0
		}

		// Stage 4: pivot established.
		red.PivotCols = append(red.PivotCols, c)
		p++
	}
	red.Rank = p

	return red
}

// Rank returns the number of pivots of the echelon form of g.
// The receiver is left untouched (a clone is reduced).
// Complexity: O(m·n·min(m,n)).
func (g *grid) Rank() int {
	work := g.clone()

	return EchelonInPlace(&work, g.opts.pivotTol).Rank
}
