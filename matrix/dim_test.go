package matrix_test

import (
	"testing"

	"github.com/katalvlaran/echelon/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDim covers valid, zero and negative extents.
func TestNewDim(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"square", 3, 3, false},
		{"wide", 2, 5, false},
		{"zero rows", 0, 4, false},
		{"empty", 0, 0, false},
		{"negative rows", -1, 2, true},
		{"negative cols", 2, -3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.NewDim(tc.rows, tc.cols)
			if tc.wantErr {
				require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, d.Rows())
			require.Equal(t, tc.cols, d.Cols())
			require.Equal(t, tc.rows*tc.cols, d.Len())
			require.Equal(t, tc.rows == tc.cols, d.IsSquare())
		})
	}
}

// TestDimFlip verifies in-place swapping and the non-mutating Transposed.
func TestDimFlip(t *testing.T) {
	d := mustDim(t, 2, 5)

	tr := d.Transposed()
	require.Equal(t, 5, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, 2, d.Rows(), "Transposed must not mutate")

	d.Flip()
	require.Equal(t, tr, d)
	d.Flip()
	require.Equal(t, mustDim(t, 2, 5), d)
}

// TestDimString checks the "m×n" rendering.
func TestDimString(t *testing.T) {
	require.Equal(t, "3×4", mustDim(t, 3, 4).String())
}

// TestDimZeroValue ensures the zero Dim is the legal empty shape.
func TestDimZeroValue(t *testing.T) {
	var d matrix.Dim
	require.True(t, d.IsSquare())
	require.Zero(t, d.Len())
}
