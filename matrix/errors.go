// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (usually wrapped with a call-site
// tag) and tests check them via errors.Is.
//
// Panics are reserved for index violations in Get/Row/Col: indices there are
// always derived by the caller from the same shape, so a miss is a programmer
// error. The panic value is still an error wrapping ErrOutOfRange.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Context is attached at the detection site with matrixErrorf;
// callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// dimensions -> index -> aliasing -> shape mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero is legal and yields a degenerate (empty) matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible shapes for an operation:
	// Multiply with a.Cols != b.Rows, a square conversion of a non-square
	// matrix, or ragged input rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrAliasedRows is returned by FoldRow when source and target rows coincide.
	ErrAliasedRows = errors.New("matrix: fold source and target rows are the same")

	// ErrInvalidRange signals an empty or non-finite [min, max) sampling range.
	ErrInvalidRange = errors.New("matrix: invalid value range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, FillFn, FromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
