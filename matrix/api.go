// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points that work on any Repr (including foreign
//     implementations), delegating to the canonical kernels.
//   - Avoid logic duplication: each facade composes Clone/ToSquare with the
//     kernels in impl_*.go.

package matrix

const opDet = "Det"

// Product is an alias for Multiply: a × b.
// Complexity: O(m*n*p).
func Product(a, b Repr) (*Matrix, error) { return Multiply(a, b) }

// T is an alias for Transpose.
func T(r Repr) *Matrix { return Transpose(r) }

// EchelonForm returns a reduced copy of any Repr as a *Matrix, plus the pass
// description. r is not modified.
// Complexity: O(m·n·min(m,n)).
func EchelonForm(r Repr) (*Matrix, Reduction) {
	out := CloneMatrix(r)
	red := EchelonInPlace(out, out.opts.pivotTol)

	return out, red
}

// Rank returns the rank of any Repr (number of echelon pivots).
func Rank(r Repr) int {
	_, red := EchelonForm(r)

	return red.Rank
}

// Det returns the determinant of any square Repr.
// Errors: ErrShapeMismatch when r is not square.
func Det(r Repr) (float64, error) {
	sq, err := ToSquare(r)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return sq.Det(), nil
}

// CloneMatrix returns an independent *Matrix copy of any Repr.
func CloneMatrix(r Repr) *Matrix {
	out := NewMatrix(r.Dim(), optionOverride(r)...)
	copy(out.data, r.Data())

	return out
}
