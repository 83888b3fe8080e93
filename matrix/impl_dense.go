// SPDX-License-Identifier: MIT

// Package matrix - grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide one contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Let row kernels read one row while writing another through plain index
//     arithmetic over that buffer (no per-cell indirection, single owner).
//   - Offer two access tiers: At/Set return errors; Get panics (programmer error).
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - newGrid: O(r*c) zero-init; At/Set/Get: O(1); clone: O(r*c); All: O(r*c) lazily.

package matrix

import (
	"fmt"
	"iter"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxGet = "Get" // method tag used in panic values
)

// gridErrorf wraps an error with a uniform context and callsite indices.
// Produces "matrix.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, row, col, err)
}

// grid is the storage shared by Matrix and SquareMatrix.
//   - dim holds the shape (rows, cols); it never changes after construction.
//   - data is a flat buffer of length rows*cols in row-major order (offset = i*cols + j).
//   - opts carries precision, pivot tolerance and the NaN/Inf policy.
//
// A grid has exactly one owner; it is not safe for concurrent mutation.
type grid struct {
	dim  Dim
	data []float64
	opts Options
}

// newGrid allocates a zero-filled grid of the given shape.
// make() zero-fills deterministically; the shape was validated by NewDim.
func newGrid(dim Dim, opts Options) grid {
	return grid{
		dim:  dim,
		data: make([]float64, dim.Len()),
		opts: opts,
	}
}

// Data returns the live row-major buffer.
// Complexity: O(1).
func (g *grid) Data() []float64 { return g.data }

// Dim returns the shape.
// Complexity: O(1).
func (g *grid) Dim() Dim { return g.dim }

// Rows returns the row count. No side effects.
func (g *grid) Rows() int { return g.dim.m }

// Cols returns the column count. No side effects.
func (g *grid) Cols() int { return g.dim.n }

// Options returns the configuration captured at construction.
func (g *grid) Options() Options { return g.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates and method name.
func (g *grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.dim.m {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.dim.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.dim.n + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Never panics.
func (g *grid) At(row, col int) (float64, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
func (g *grid) Set(row, col int, v float64) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	if g.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return gridErrorf(ctxSet, row, col, ErrNaNInf)
	}
	g.data[off] = v

	return nil
}

// Get returns the value at (i, j).
// Out-of-range indices are a programming error: Get panics with an error
// wrapping ErrOutOfRange. Use At for a checked read.
func (g *grid) Get(i, j int) float64 {
	off, err := g.indexOf(i, j)
	if err != nil {
		panic(gridErrorf(ctxGet, i, j, err))
	}

	return g.data[off]
}

// All returns a lazy row-major sequence over every cell.
// Each call yields a fresh sequence; values are read at iteration time, so
// mutations made between two iterations are observed by the second one.
// Complexity: O(r*c) per full iteration, O(1) to create.
func (g *grid) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells returns a lazy row-major sequence of ((i, j), value) pairs.
func (g *grid) Cells() iter.Seq2[[2]int, float64] {
	return func(yield func([2]int, float64) bool) {
		var i, j, base int
		for i = 0; i < g.dim.m; i++ {
			base = i * g.dim.n
			for j = 0; j < g.dim.n; j++ {
				if !yield([2]int{i, j}, g.data[base+j]) {
					return
				}
			}
		}
	}
}

// Equal reports whether other has the same shape and bit-identical cells
// (NaN never equals NaN). Use AllClose for tolerant comparison.
func (g *grid) Equal(other Repr) bool {
	if other == nil || g.dim != other.Dim() {
		return false
	}
	od := other.Data()
	for k, v := range g.data {
		if v != od[k] {
			return false
		}
	}

	return true
}

// clone returns a deep copy (new buffer, same shape and options).
// Complexity: O(r*c).
func (g *grid) clone() grid {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return grid{dim: g.dim, data: cp, opts: g.opts}
}
