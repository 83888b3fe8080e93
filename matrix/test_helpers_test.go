// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep random data seeded so every failure is reproducible.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/echelon/matrix"
	"github.com/katalvlaran/echelon/random"
	"github.com/stretchr/testify/require"
)

// The seedable generator is the production RandomSource.
var _ matrix.RandomSource = (*random.Rand)(nil)

// foreign is a minimal Repr that is neither *Matrix nor *SquareMatrix.
// It forces facades through their generic (options-less) path.
type foreign struct {
	dim  matrix.Dim
	data []float64
}

func (f *foreign) Data() []float64 { return f.data }
func (f *foreign) Dim() matrix.Dim { return f.dim }

// newForeign copies rows into a foreign Repr.
func newForeign(t *testing.T, rows [][]float64) *foreign {
	t.Helper()
	m := mustFromRows(t, rows)

	return &foreign{dim: m.Dim(), data: append([]float64(nil), m.Data()...)}
}

// mustDim builds a Dim or fails the test.
func mustDim(t *testing.T, rows, cols int) matrix.Dim {
	t.Helper()
	d, err := matrix.NewDim(rows, cols)
	require.NoError(t, err)

	return d
}

// mustFromRows builds a *Matrix from a 2-D literal or fails the test.
func mustFromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// mustSquare builds a *SquareMatrix from a 2-D literal or fails the test.
func mustSquare(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.SquareMatrix {
	t.Helper()
	sq, err := matrix.AsSquare(mustFromRows(t, rows, opts...))
	require.NoError(t, err)

	return sq
}

// randomSquare returns an n×n matrix with seeded values in [-1, 1).
func randomSquare(t *testing.T, n int, seed int64) *matrix.SquareMatrix {
	t.Helper()
	sq, err := matrix.NewSquareMatrix(n)
	require.NoError(t, err)
	require.NoError(t, sq.FillRandomInRange(random.New(seed), -1, 1))

	return sq
}

// randomMatrix returns a rows×cols matrix with seeded values in [-1, 1).
func randomMatrix(t *testing.T, rows, cols int, seed int64) *matrix.Matrix {
	t.Helper()
	m := matrix.NewMatrix(mustDim(t, rows, cols))
	require.NoError(t, m.FillRandomInRange(random.New(seed), -1, 1))

	return m
}

// requireRows asserts exact cell equality against a 2-D literal.
func requireRows(t *testing.T, want [][]float64, got matrix.Repr) {
	t.Helper()
	exp := mustFromRows(t, want)
	require.Equal(t, exp.Dim(), got.Dim(), "shape")
	require.Equal(t, exp.Data(), got.Data(), "cells")
}

// requirePanicsIs asserts that f panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// belowPivotsAreZero checks the echelon shape: each row's leading non-zero
// entry is strictly right of the previous row's, and zero rows trail.
func belowPivotsAreZero(t *testing.T, r matrix.Repr) {
	t.Helper()
	rows, cols := r.Dim().Rows(), r.Dim().Cols()
	data := r.Data()
	prevLead := -1
	for i := 0; i < rows; i++ {
		lead := cols
		for j := 0; j < cols; j++ {
			if data[i*cols+j] != 0 {
				lead = j
				break
			}
		}
		if lead == cols {
			prevLead = cols // every following row must be zero too
			continue
		}
		require.Greaterf(t, lead, prevLead, "row %d leads at %d, previous at %d", i, lead, prevLead)
		prevLead = lead
	}
}
