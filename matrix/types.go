// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces shared by Matrix and SquareMatrix.
// This file intentionally contains ONLY the interfaces and small value
// types; storage lives in impl_dense.go, kernels in impl_*.go.
package matrix

// Repr exposes raw storage and shape to the generic kernels.
//
// Contract:
//   - Data returns the live row-major buffer: len(Data()) == Dim().Len() and
//     cell (i, j) is Data()[i*Dim().Cols()+j].
//   - The buffer is shared, not copied. Kernels that accept a Repr (FoldRows,
//     SwapRows, Reduce, Multiply, ToGonum, ...) read and write it in place.
//   - The shape never changes for the lifetime of a value.
//
// Both *Matrix and *SquareMatrix implement Repr.
type Repr interface {
	// Data returns the row-major cell buffer (shared storage).
	// Complexity: O(1).
	Data() []float64

	// Dim returns the current shape.
	// Complexity: O(1).
	Dim() Dim
}

// Reduction describes one forward-elimination pass.
//   - Rank      : number of pivots established (== number of non-free columns).
//   - Swaps     : number of row exchanges performed; the determinant sign is (−1)^Swaps.
//   - PivotCols : column index of each pivot, in pivot-row order (len == Rank).
type Reduction struct {
	Rank      int
	Swaps     int
	PivotCols []int
}

// Sign returns (−1)^Swaps.
func (r Reduction) Sign() float64 {
	if r.Swaps%2 == 0 {
		return 1
	}

	return -1
}

// Compile-time assertions for capability conformance.
var (
	_ Repr = (*Matrix)(nil)
	_ Repr = (*SquareMatrix)(nil)
)
