// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are captured once at construction and carried by Clone, by the
//     reduction kernels and by square conversions (single source of truth).
//   - Results of Multiply/Transpose inherit the options of the left operand.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of fractional digits used by Render and Pretty.
	DefaultPrecision = 4

	// DefaultPivotTolerance is the magnitude at or below which a candidate pivot
	// is treated as zero during echelon reduction. Zero means exact comparison.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// FillFn and FromRows.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, 17]"
	panicToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// maxPrecision bounds the render precision; float64 carries at most 17 significant digits.
const maxPrecision = 17

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	precision      int     // >= 0; DefaultPrecision
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPrecision sets the default number of fractional digits for Pretty and Render.
// Panics when p is outside [0, 17].
func WithPrecision(p int) Option {
	if p < 0 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithPivotTolerance sets the zero-pivot threshold used by ToEchelonForm/Reduce.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter writing tol into Options.
//
// Behavior highlights:
//   - A candidate pivot v is accepted iff |v| > tol.
//   - With tol == 0 (default) only exact zeros are skipped.
//
// Notes:
//   - A positive tol also makes Rank robust against rounding residue left
//     by elimination (e.g. 1e-17 instead of 0).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set, FillFn and FromRows.
// Arithmetic kernels (FoldRow, Multiply) never validate; they propagate IEEE values.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Precision returns the effective render precision.
func (o Options) Precision() int { return o.precision }

// PivotTolerance returns the effective zero-pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether finite-only validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		precision:      DefaultPrecision,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
