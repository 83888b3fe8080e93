// SPDX-License-Identifier: MIT

// Package matrix - general M×N matrix.
//
// What & Why:
//
//	Matrix is a thin owner of a grid at an arbitrary Dim. All behavior comes
//	from the shared grid methods (row ops, fills, Multiply, Rank, Render) and
//	from the reduction kernel; Matrix only adds constructors and the methods
//	that must return *Matrix (Clone, ToEchelonForm, Reduce).
//
// Complexity:
//
//	Construction and Clone are O(rows*cols); accessors are O(1).
package matrix

import "fmt"

const (
	opFromRows    = "FromRows"
	opNewMatrixRC = "NewMatrixRC"
	opIdentity    = "NewIdentity"
)

// Matrix is a dense rows×cols matrix of float64 cells in row-major order.
// The shape is fixed at construction. A Matrix has a single owner and is not
// safe for concurrent mutation.
type Matrix struct {
	grid
}

// NewMatrix allocates a zero-filled matrix of exactly the given shape.
// Complexity: O(rows*cols).
func NewMatrix(dim Dim, opts ...Option) *Matrix {
	return &Matrix{grid: newGrid(dim, gatherOptions(opts...))}
}

// NewMatrixRC is NewMatrix(NewDim(rows, cols)) with the dimension error surfaced.
// Errors: ErrInvalidDimensions for negative extents.
func NewMatrixRC(rows, cols int, opts ...Option) (*Matrix, error) {
	dim, err := NewDim(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewMatrixRC, err)
	}

	return NewMatrix(dim, opts...), nil
}

// FromRows builds a matrix from a row-major 2-D slice (values are copied).
// Implementation:
//   - Stage 1: shape = len(rows) × len(rows[0]); every row must match.
//   - Stage 2: copy values, enforcing the numeric policy.
//
// Errors:
//   - ErrShapeMismatch for ragged input, ErrNaNInf for non-finite values
//     when the policy is on.
//
// Notes:
//   - An empty outer slice yields a 0×0 matrix.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := NewMatrix(Dim{m: r, n: c}, opts...)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), c, ErrShapeMismatch))
		}
		for j, v := range row {
			if err := validateFinite(m.opts, v); err != nil {
				return nil, matrixErrorf(opFromRows, gridErrorf(opFromRows, i, j, err))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity as a *SquareMatrix.
// Errors: ErrInvalidDimensions when n < 0.
func NewIdentity(n int, opts ...Option) (*SquareMatrix, error) {
	sq, err := NewSquareMatrix(n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	_ = sq.FillFn(identityFn) // 0/1 are always finite

	return sq, nil
}

// Clone returns a deep copy; mutations never leak between the two.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{grid: m.grid.clone()}
}

// ToEchelonForm returns a row-echelon copy of m; m itself is not modified.
// See EchelonInPlace for the algorithm.
func (m *Matrix) ToEchelonForm() *Matrix {
	out, _ := m.Reduce()

	return out
}

// Reduce is ToEchelonForm plus the pass description (rank, swaps, pivot columns).
func (m *Matrix) Reduce() (*Matrix, Reduction) {
	out := m.Clone()
	red := EchelonInPlace(out, out.opts.pivotTol)

	return out, red
}

// Rows2D returns a copy of the cells as a row-major 2-D slice.
func (g *grid) Rows2D() [][]float64 {
	out := make([][]float64, g.dim.m)
	for i := range out {
		out[i] = make([]float64, g.dim.n)
		copy(out[i], g.data[i*g.dim.n:(i+1)*g.dim.n])
	}

	return out
}
