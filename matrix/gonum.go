// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum for work this package does not do
//     (LU with partial pivoting, SVD, solvers) and bring results back.
//   - Give tests an independent oracle (mat.Det, mat.Dense.Mul).
//
// Notes:
//   - gonum rejects zero-sized dense matrices; ToGonum returns nil for them.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies r into a new *mat.Dense with the same shape.
// Returns nil when r has zero rows or zero columns.
// Complexity: O(r*c).
func ToGonum(r Repr) *mat.Dense {
	d := r.Dim()
	if d.Len() == 0 {
		return nil
	}
	buf := make([]float64, d.Len())
	copy(buf, r.Data())

	return mat.NewDense(d.Rows(), d.Cols(), buf)
}

// FromGonum copies any gonum matrix into a new *Matrix.
// Values are copied verbatim; the numeric policy is not applied.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) *Matrix {
	rows, cols := src.Dims()
	out := NewMatrix(Dim{m: rows, n: cols}, opts...)
	// Fast path: raw row-major access for *mat.Dense.
	if dense, ok := src.(*mat.Dense); ok {
		raw := dense.RawMatrix()
		for i := 0; i < rows; i++ {
			copy(out.data[i*cols:(i+1)*cols], raw.Data[i*raw.Stride:i*raw.Stride+cols])
		}

		return out
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = src.At(i, j)
		}
	}

	return out
}

// Gonum returns a gonum copy of g. See ToGonum.
func (g *grid) Gonum() *mat.Dense { return ToGonum(g) }
