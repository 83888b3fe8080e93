// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/echelon/matrix"
	"github.com/katalvlaran/echelon/random"
	"github.com/stretchr/testify/require"
)

// countingSource is a scripted RandomSource that records every draw.
type countingSource struct {
	calls int
}

func (c *countingSource) Uniform() float64 {
	c.calls++

	return float64(c.calls) / 100
}

func (c *countingSource) UniformInRange(lo, hi float64) float64 {
	c.calls++

	return lo + (hi-lo)*float64(c.calls)/100
}

func (c *countingSource) IntInRange(lo, _ int) int {
	c.calls++

	return lo + c.calls
}

// TestFill broadcasts a constant and rejects non-finite values.
func TestFill(t *testing.T) {
	m := matrix.NewMatrix(mustDim(t, 2, 3))
	require.NoError(t, m.Fill(7))
	for v := range m.All() {
		require.Equal(t, 7.0, v)
	}

	require.ErrorIs(t, m.Fill(math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, 7.0, m.Get(0, 0), "failed fill leaves cells intact")
}

// TestFillFnRowMajor checks f sees every index pair once, in row-major order.
func TestFillFnRowMajor(t *testing.T) {
	m := matrix.NewMatrix(mustDim(t, 2, 3))
	var seen [][2]int
	require.NoError(t, m.FillFn(func(i, j int) float64 {
		seen = append(seen, [2]int{i, j})

		return float64(10*i + j)
	}))
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, seen)
	requireRows(t, [][]float64{{0, 1, 2}, {10, 11, 12}}, m)
}

// TestFillFnNaNPolicy checks early abort under the policy and pass-through without it.
func TestFillFnNaNPolicy(t *testing.T) {
	inf := func(i, j int) float64 { return math.Inf(1) }

	strict := matrix.NewMatrix(mustDim(t, 2, 2))
	require.ErrorIs(t, strict.FillFn(inf), matrix.ErrNaNInf)

	loose := matrix.NewMatrix(mustDim(t, 2, 2), matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.FillFn(inf))
	require.True(t, math.IsInf(loose.Get(1, 1), 1))
}

// TestFillRandomDrawsPerCell checks one independent draw per cell.
func TestFillRandomDrawsPerCell(t *testing.T) {
	src := &countingSource{}
	m := matrix.NewMatrix(mustDim(t, 2, 2))
	m.FillRandom(src)
	require.Equal(t, 4, src.calls)
	requireRows(t, [][]float64{{0.01, 0.02}, {0.03, 0.04}}, m)
}

// TestFillRandomDeterministic checks the same seed gives the same matrix.
func TestFillRandomDeterministic(t *testing.T) {
	a := matrix.NewMatrix(mustDim(t, 3, 3))
	b := matrix.NewMatrix(mustDim(t, 3, 3))
	a.FillRandom(random.New(99))
	b.FillRandom(random.New(99))
	require.True(t, a.Equal(b))

	for v := range a.All() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

// TestFillRandomInRange checks bounds and invalid intervals.
func TestFillRandomInRange(t *testing.T) {
	m := matrix.NewMatrix(mustDim(t, 10, 10))
	require.NoError(t, m.FillRandomInRange(random.New(1), -3, 2))
	for v := range m.All() {
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 2.0)
	}

	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		require.ErrorIs(t, m.FillRandomInRange(random.New(1), r[0], r[1]), matrix.ErrInvalidRange)
	}
}

// TestFillRandomIntegers checks integer values in [lo, hi).
func TestFillRandomIntegers(t *testing.T) {
	m := matrix.NewMatrix(mustDim(t, 8, 8))
	require.NoError(t, m.FillRandomIntegers(random.New(3), 1, 5))
	for v := range m.All() {
		require.Equal(t, math.Trunc(v), v)
		require.GreaterOrEqual(t, v, 1.0)
		require.Less(t, v, 5.0)
	}

	require.ErrorIs(t, m.FillRandomIntegers(random.New(3), 5, 5), matrix.ErrInvalidRange)
}
