// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations over a Repr buffer.
//
// Purpose:
//   - Provide the single elimination primitive (row fold: to += k*from) and
//     the row exchange used for pivot promotion.
//   - Provide transient views: RowView (non-owning window into the buffer)
//     and Col (owned copy of a column).
//
// Aliasing:
//   - FoldRow requires to != from. A self-fold would read the row it is
//     writing; it is rejected with ErrAliasedRows.
//   - SwapRows(a, a) is a no-op.
package matrix

import "fmt"

// Operation name constants for row-level error wrapping.
const (
	opFoldRow  = "FoldRow"
	opSwapRows = "SwapRows"
	opRow      = "Row"
	opCol      = "Col"
)

// RowView is a non-owning window over one matrix row.
// Writes through the view reflect in the matrix; the view is only valid while
// the matrix is alive and is meant as scratch inside a single call.
type RowView struct {
	cells []float64 // sub-slice of the owner's buffer (len == cols)
}

// Len returns the number of cells in the row.
func (r RowView) Len() int { return len(r.cells) }

// At returns cell j of the row. Panics when j is out of range.
func (r RowView) At(j int) float64 { return r.cells[j] }

// Values returns a copy of the row cells.
func (r RowView) Values() []float64 {
	out := make([]float64, len(r.cells))
	copy(out, r.cells)

	return out
}

// Fold performs r[c] += k*from[c] for every column c; from is left unchanged.
// Rows of different lengths fold over the common prefix.
// Callers must not pass a view of the same row (see FoldRow).
func (r RowView) Fold(from RowView, k float64) {
	n := len(r.cells)
	if len(from.cells) < n {
		n = len(from.cells)
	}
	for c := 0; c < n; c++ {
		r.cells[c] += k * from.cells[c]
	}
}

// rowSlice returns the buffer window of row i (no bounds checks).
func rowSlice(data []float64, cols, i int) []float64 {
	return data[i*cols : (i+1)*cols : (i+1)*cols]
}

// foldRow is the unchecked kernel: data[to,*] += k*data[from,*].
// Complexity: O(cols).
func foldRow(data []float64, cols, to, from int, k float64) {
	dst := to * cols
	src := from * cols
	for c := 0; c < cols; c++ {
		data[dst+c] += k * data[src+c]
	}
}

// swapRows is the unchecked kernel: exchanges rows a and b column by column.
// Complexity: O(cols).
func swapRows(data []float64, cols, a, b int) {
	ra := a * cols
	rb := b * cols
	for c := 0; c < cols; c++ {
		data[ra+c], data[rb+c] = data[rb+c], data[ra+c]
	}
}

// FoldRows performs row[to] += k*row[from] on any Repr.
// Implementation:
//   - Stage 1: validate both row indices.
//   - Stage 2: reject to == from with ErrAliasedRows.
//   - Stage 3: single pass over the columns, reading from and writing to.
//
// Behavior highlights:
//   - Row from is never modified; only row to changes.
//   - to[c] == old_to[c] + k*from[c] for every column c.
//
// Errors:
//   - ErrOutOfRange (bad index), ErrAliasedRows (to == from).
//
// Complexity:
//   - Time O(cols), Space O(1).
func FoldRows(r Repr, to, from int, k float64) error {
	if err := ValidateRowIndex(r, to); err != nil {
		return matrixErrorf(opFoldRow, err)
	}
	if err := ValidateRowIndex(r, from); err != nil {
		return matrixErrorf(opFoldRow, err)
	}
	if to == from {
		return matrixErrorf(opFoldRow, fmt.Errorf("row %d: %w", to, ErrAliasedRows))
	}
	foldRow(r.Data(), r.Dim().Cols(), to, from, k)

	return nil
}

// SwapRows exchanges rows a and b on any Repr; a == b is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(cols).
func SwapRows(r Repr, a, b int) error {
	if err := ValidateRowIndex(r, a); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(r, b); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if a != b {
		swapRows(r.Data(), r.Dim().Cols(), a, b)
	}

	return nil
}

// Row returns a view bound to row i.
// Panics with an error wrapping ErrOutOfRange when i is outside [0, Rows).
func (g *grid) Row(i int) RowView {
	if err := ValidateRowIndex(g, i); err != nil {
		panic(matrixErrorf(opRow, err))
	}

	return RowView{cells: rowSlice(g.data, g.dim.n, i)}
}

// Col returns an owned copy of column j.
// Panics with an error wrapping ErrOutOfRange when j is outside [0, Cols).
func (g *grid) Col(j int) []float64 {
	if err := ValidateColIndex(g, j); err != nil {
		panic(matrixErrorf(opCol, err))
	}
	out := make([]float64, g.dim.m)
	for i := 0; i < g.dim.m; i++ {
		out[i] = g.data[i*g.dim.n+j]
	}

	return out
}

// FoldRow performs row[to] += k*row[from] in place. See FoldRows.
func (g *grid) FoldRow(to, from int, k float64) error { return FoldRows(g, to, from, k) }

// SwapRows exchanges rows a and b in place. See SwapRows.
func (g *grid) SwapRows(a, b int) error { return SwapRows(g, a, b) }
