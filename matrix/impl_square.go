// SPDX-License-Identifier: MIT

// Package matrix - N×N specialization: determinant, main diagonal, narrowing.
//
// Purpose:
//   - Guarantee rows == cols == Size() by construction.
//   - Compute the determinant from the echelon form of a clone.
//   - Provide the fallible Matrix → SquareMatrix narrowing (by value and by
//     reference) and the infallible widening back to *Matrix.
//
// Determinant sign:
//   - Det multiplies the echelon diagonal by (−1)^swaps, where swaps is the
//     number of row exchanges made during reduction. Without that factor a
//     matrix such as [[0,1],[1,0]] would report +1 instead of −1.
package matrix

const (
	opNewSquare = "NewSquareMatrix"
	opAsSquare  = "AsSquare"
	opToSquare  = "ToSquare"
)

// SquareMatrix is a dense size×size matrix.
// Invariant: Rows() == Cols() == Size() for the whole lifetime.
type SquareMatrix struct {
	grid
}

// NewSquareMatrix allocates a zero-filled size×size matrix.
// Errors: ErrInvalidDimensions when size < 0.
func NewSquareMatrix(size int, opts ...Option) (*SquareMatrix, error) {
	dim, err := NewDim(size, size)
	if err != nil {
		return nil, matrixErrorf(opNewSquare, err)
	}

	return &SquareMatrix{grid: newGrid(dim, gatherOptions(opts...))}, nil
}

// AsSquare narrows m to a SquareMatrix, taking over m's storage (no copy).
// After a successful call m must no longer be used; both values would share cells.
// Errors: ErrShapeMismatch when m is not square.
func AsSquare(m *Matrix) (*SquareMatrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAsSquare, err)
	}

	return &SquareMatrix{grid: m.grid}, nil
}

// ToSquare copies any square Repr into a new SquareMatrix; r is untouched.
// Options are inherited when r is a *Matrix or *SquareMatrix, defaults otherwise.
// Errors: ErrShapeMismatch when r is not square.
func ToSquare(r Repr) (*SquareMatrix, error) {
	if err := ValidateSquare(r); err != nil {
		return nil, matrixErrorf(opToSquare, err)
	}
	out := &SquareMatrix{grid: newGrid(r.Dim(), optionsOf(r))}
	copy(out.data, r.Data())

	return out, nil
}

// Size returns the common row/column count.
func (s *SquareMatrix) Size() int { return s.dim.m }

// Clone returns a deep copy.
func (s *SquareMatrix) Clone() *SquareMatrix {
	return &SquareMatrix{grid: s.grid.clone()}
}

// Matrix widens s into an independent *Matrix with the same cells and shape.
func (s *SquareMatrix) Matrix() *Matrix {
	return &Matrix{grid: s.grid.clone()}
}

// ToEchelonForm returns a row-echelon copy of s; s itself is not modified.
func (s *SquareMatrix) ToEchelonForm() *SquareMatrix {
	out, _ := s.Reduce()

	return out
}

// Reduce is ToEchelonForm plus the pass description (rank, swaps, pivot columns).
func (s *SquareMatrix) Reduce() (*SquareMatrix, Reduction) {
	out := s.Clone()
	red := EchelonInPlace(out, out.opts.pivotTol)

	return out, red
}

// MainDiagonal returns cell[i][i] for i in [0, Size()), in order.
func (s *SquareMatrix) MainDiagonal() []float64 {
	n := s.dim.m
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.data[i*n+i]
	}

	return out
}

// Det returns the determinant: (−1)^swaps · Π diag(echelon(s)).
// Implementation:
//   - Stage 1: reduce a clone of s, counting row exchanges.
//   - Stage 2: multiply the echelon main diagonal; apply the swap sign.
//
// Behavior highlights:
//   - Singular input yields 0 (a zero lands on the diagonal) rather than an error.
//   - The 0×0 matrix has determinant 1 (empty product).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the clone.
func (s *SquareMatrix) Det() float64 {
	ech, red := s.Reduce()
	det := red.Sign()
	for _, v := range ech.MainDiagonal() {
		det *= v
	}

	return det
}

// optionsOf returns the options carried by r, or defaults for foreign Reprs.
func optionsOf(r Repr) Options {
	switch v := r.(type) {
	case *grid:
		return v.opts
	case *Matrix:
		return v.opts
	case *SquareMatrix:
		return v.opts
	default:
		return defaultOptions()
	}
}
