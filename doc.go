// Package echelon is a small dense-matrix toolkit built around forward
// elimination: row folding, row-echelon reduction and the determinant that
// falls out of it.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/         Dim, Matrix, SquareMatrix, row operations, echelon
//	                reduction, determinant, multiplication, rendering and
//	                gonum interop
//	random/         seedable random source used by the matrix fills
//	cmd/matrixlab/  command-line demo: random matrix → echelon form → det
//	examples/       runnable scenario showing rank-based system classification
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	sq, _ := matrix.AsSquare(m)
//	fmt.Print(sq.ToEchelonForm()) // [1, 2]\n[0, -2]\n
//	fmt.Println(sq.Det())         // -2
package echelon
