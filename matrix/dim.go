// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dim is a (rows, cols) shape. The zero value is the legal 0×0 shape.
// Construct through NewDim so negative extents are rejected.
type Dim struct {
	m int // row count
	n int // column count
}

// NewDim returns the shape rows×cols or ErrInvalidDimensions if either is negative.
// Zero extents are accepted; the resulting matrix is empty and has rank 0.
func NewDim(rows, cols int) (Dim, error) {
	if rows < 0 || cols < 0 {
		return Dim{}, fmt.Errorf("NewDim(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return Dim{m: rows, n: cols}, nil
}

// Rows returns the row count m.
func (d Dim) Rows() int { return d.m }

// Cols returns the column count n.
func (d Dim) Cols() int { return d.n }

// Len returns the number of cells, m*n.
func (d Dim) Len() int { return d.m * d.n }

// IsSquare reports whether m == n.
func (d Dim) IsSquare() bool { return d.m == d.n }

// Flip swaps rows and columns in place.
// It only changes the shape value; it never touches any matrix storage.
func (d *Dim) Flip() { d.m, d.n = d.n, d.m }

// Transposed returns the flipped shape and leaves d untouched.
func (d Dim) Transposed() Dim { return Dim{m: d.n, n: d.m} }

// String renders the shape as "m×n".
func (d Dim) String() string { return fmt.Sprintf("%d×%d", d.m, d.n) }
