// SPDX-License-Identifier: MIT

// Package matrix - bulk writers: constant fill, index-driven fill, random fill.
//
// Random values come from a caller-supplied RandomSource (see package random
// for a seedable implementation), so fills are reproducible in tests.
package matrix

import (
	"fmt"
	"math"
)

const (
	opFill              = "Fill"
	opFillFn            = "FillFn"
	opFillRandomInRange = "FillRandomInRange"
	opFillRandomInts    = "FillRandomIntegers"
)

// RandomSource is the random-value collaborator used by the random fills.
// Each call is an independent draw.
type RandomSource interface {
	// Uniform returns a value in [0, 1).
	Uniform() float64
	// UniformInRange returns a value in [lo, hi); callers guarantee lo < hi.
	UniformInRange(lo, hi float64) float64
	// IntInRange returns an integer in [lo, hi); callers guarantee lo < hi.
	IntInRange(lo, hi int) int
}

// Fill broadcast-assigns v to every cell.
// Errors: ErrNaNInf when v is not finite and the numeric policy is on.
func (g *grid) Fill(v float64) error {
	if err := validateFinite(g.opts, v); err != nil {
		return matrixErrorf(opFill, err)
	}
	for k := range g.data {
		g.data[k] = v
	}

	return nil
}

// FillFn assigns cell[i][j] = f(i, j) for every index pair in row-major order.
// Implementation:
//   - Stage 1: nested loops rows→cols; compute f(i, j).
//   - Stage 2: reject NaN/Inf when the policy is on; write back.
//
// Behavior highlights:
//   - f is called exactly once per cell, in row-major order.
//   - Early error aborts; cells written before the error keep their new values.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (g *grid) FillFn(f func(i, j int) float64) error {
	var i, j, base int
	var v float64
	for i = 0; i < g.dim.m; i++ {
		base = i * g.dim.n
		for j = 0; j < g.dim.n; j++ {
			v = f(i, j)
			if err := validateFinite(g.opts, v); err != nil {
				return matrixErrorf(opFillFn, gridErrorf(opFillFn, i, j, err))
			}
			g.data[base+j] = v
		}
	}

	return nil
}

// FillRandom draws every cell independently from src over [0, 1).
func (g *grid) FillRandom(src RandomSource) {
	for k := range g.data {
		g.data[k] = src.Uniform()
	}
}

// FillRandomInRange draws every cell independently from src over [lo, hi).
// Errors: ErrInvalidRange when the interval is empty or not finite.
func (g *grid) FillRandomInRange(src RandomSource, lo, hi float64) error {
	if err := ValidateRange(lo, hi); err != nil {
		return matrixErrorf(opFillRandomInRange, err)
	}
	for k := range g.data {
		g.data[k] = src.UniformInRange(lo, hi)
	}

	return nil
}

// FillRandomIntegers draws integer-valued cells independently from src over [lo, hi).
// Handy for hand-checkable fixtures and demo output.
// Errors: ErrInvalidRange when lo >= hi.
func (g *grid) FillRandomIntegers(src RandomSource, lo, hi int) error {
	if lo >= hi {
		return matrixErrorf(opFillRandomInts, fmt.Errorf("[%d,%d): %w", lo, hi, ErrInvalidRange))
	}
	for k := range g.data {
		g.data[k] = float64(src.IntInRange(lo, hi))
	}

	return nil
}

// identityFn is the FillFn rule for an identity pattern.
func identityFn(i, j int) float64 {
	if i == j {
		return 1
	}

	return 0
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
