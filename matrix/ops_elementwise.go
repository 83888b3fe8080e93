// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise arithmetic (Add, Sub, Scale) on any Repr.
//   - Share one private zip kernel so the tight loops exist once.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over the row-major buffers.
//   - One allocation for the result; operands are never mutated.

package matrix

const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
)

// ewZip computes out[k] = f(a[k], b[k]) for two operands of identical shape.
// The result inherits the options of a.
// Time: O(r*c). Space: O(r*c).
func ewZip(tag string, a, b Repr, f func(x, y float64) float64) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := NewMatrix(a.Dim(), optionOverride(a)...)
	ad, bd := a.Data(), b.Data()
	for k := range out.data {
		out.data[k] = f(ad[k], bd[k])
	}

	return out, nil
}

// Add returns a + b element-wise.
// Errors: ErrShapeMismatch when shapes differ.
func Add(a, b Repr) (*Matrix, error) {
	return ewZip(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b element-wise.
// Errors: ErrShapeMismatch when shapes differ.
func Sub(a, b Repr) (*Matrix, error) {
	return ewZip(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Scale returns k·r as a new matrix.
// Time: O(r*c). Space: O(r*c).
func Scale(r Repr, k float64) *Matrix {
	out := NewMatrix(r.Dim(), optionOverride(r)...)
	for i, v := range r.Data() {
		out.data[i] = k * v
	}

	return out
}

// Add returns g + rhs. See the package-level Add.
func (g *grid) Add(rhs Repr) (*Matrix, error) { return Add(g, rhs) }

// Sub returns g - rhs. See the package-level Sub.
func (g *grid) Sub(rhs Repr) (*Matrix, error) { return Sub(g, rhs) }

// Scale returns k·g. See the package-level Scale.
func (g *grid) Scale(k float64) *Matrix { return Scale(g, k) }
