// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Repr implementation:
// matrix multiplication, transpose and tolerant comparison. All functions
// perform fail-fast validation and return wrapped sentinels on shape mismatch.
//
// Notes:
//   - Kernels read operands through Repr.Data() with explicit row-major strides.
//   - Results are fresh *Matrix values; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMultiply = "Multiply"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops over row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Shape mismatch is a recoverable result (ErrShapeMismatch), never a panic.
//   - Deterministic triple loop; one allocation for C.
//
// Inputs:
//   - a: left operand with shape (m × n).
//   - b: right operand with shape (n × p).
//
// Returns:
//   - *Matrix C with shape (m × p), C[i,j] = Σ_k A[i,k]·B[k,j]; options of C
//     are inherited from a when a is a *Matrix or *SquareMatrix.
//
// Errors:
//   - ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Multiply(a, b Repr) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	m, n, p := a.Dim().Rows(), a.Dim().Cols(), b.Dim().Cols()
	res := NewMatrix(Dim{m: m, n: p}, optionOverride(a)...)
	ad, bd := a.Data(), b.Data()

	var (
		i, j, k          int
		av               float64
		rowA, rowB, rowR int
	)
	for i = 0; i < m; i++ {
		rowA = i * n
		rowR = i * p
		for k = 0; k < n; k++ {
			av = ad[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * p
			for j = 0; j < p; j++ {
				res.data[rowR+j] += av * bd[rowB+j]
			}
		}
	}

	return res, nil
}

// Multiply returns g × rhs. See the package-level Multiply.
func (g *grid) Multiply(rhs Repr) (*Matrix, error) { return Multiply(g, rhs) }

// Transpose returns a new matrix with rows and columns swapped (rᵀ).
// The result shape is r.Dim().Transposed(); r is never mutated.
// Complexity: O(r*c).
func Transpose(r Repr) *Matrix {
	d := r.Dim()
	rows, cols := d.Rows(), d.Cols()
	res := NewMatrix(d.Transposed(), optionOverride(r)...)
	src := r.Data()

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[base+j]
		}
	}

	return res
}

// Transpose returns gᵀ as a new *Matrix.
func (g *grid) Transpose() *Matrix { return Transpose(g) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never matches; +Inf matches +Inf and -Inf matches -Inf.
// Policy: rtol and atol are used as absolute values.
// Errors: ErrShapeMismatch when shapes differ.
// Complexity: O(r*c).
func AllClose(a, b Repr, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	bd := b.Data()
	for k, av := range a.Data() {
		bv := bd[k]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if isNonFinite(av) || isNonFinite(bv) {
			if av != bv {
				return false, nil
			}
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// optionOverride replays r's options onto a freshly built result.
func optionOverride(r Repr) []Option {
	o := optionsOf(r)

	return []Option{func(dst *Options) { *dst = o }}
}
