// Package matrix is a small dense-matrix library built around forward
// elimination.
//
// The matrix package provides:
//
//   - Dim, an immutable-by-default (rows, cols) shape with IsSquare/Flip.
//   - Matrix (any M×N) and SquareMatrix (N×N) over one contiguous row-major
//     float64 buffer, both exposing the Repr capability (Data, Dim).
//   - Row primitives: FoldRow (row[to] += k·row[from]) and SwapRows, plus
//     RowView/Col scratch views.
//   - Row-echelon reduction (ToEchelonForm, Reduce, EchelonInPlace) with rank,
//     swap count and pivot columns from the same pass.
//   - Determinant as the signed product of the echelon diagonal, Multiply,
//     Transpose, and the fallible Matrix → SquareMatrix narrowing.
//   - Random fills through a pluggable RandomSource, text rendering with a
//     configurable precision, and gonum interop.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	sq, _ := matrix.AsSquare(a)
//	sq.ToEchelonForm() // [[1, 2], [0, -2]]
//	sq.Det()           // -2
//
// All operations are synchronous and single-threaded; a matrix has one owner
// and must not be mutated from several goroutines without external locking.
package matrix
