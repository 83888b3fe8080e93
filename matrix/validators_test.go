// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/echelon/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateIndices covers both bounds of rows and columns.
func TestValidateIndices(t *testing.T) {
	m := matrix.NewMatrix(mustDim(t, 2, 3))

	require.NoError(t, matrix.ValidateRowIndex(m, 0))
	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(m, -1), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateColIndex(m, 2))
	require.ErrorIs(t, matrix.ValidateColIndex(m, 3), matrix.ErrOutOfRange)
}

// TestValidateShapes covers square, multiply and same-shape checks.
func TestValidateShapes(t *testing.T) {
	a := matrix.NewMatrix(mustDim(t, 2, 3))
	b := matrix.NewMatrix(mustDim(t, 3, 2))

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrShapeMismatch)
	require.NoError(t, matrix.ValidateSquare(matrix.NewMatrix(mustDim(t, 0, 0))))

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrShapeMismatch)

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrShapeMismatch)
}

// TestValidateRange covers empty, reversed and non-finite intervals.
func TestValidateRange(t *testing.T) {
	require.NoError(t, matrix.ValidateRange(-1, 1))
	require.ErrorIs(t, matrix.ValidateRange(1, 1), matrix.ErrInvalidRange)
	require.ErrorIs(t, matrix.ValidateRange(2, 1), matrix.ErrInvalidRange)
	require.ErrorIs(t, matrix.ValidateRange(math.Inf(-1), 0), matrix.ErrInvalidRange)
	require.ErrorIs(t, matrix.ValidateRange(0, math.NaN()), matrix.ErrInvalidRange)
}
