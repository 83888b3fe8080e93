// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/index/range checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRowIndex ensures 0 ≤ i < Rows(r).
// Complexity: O(1).
func ValidateRowIndex(r Repr, i int) error {
	if i < 0 || i >= r.Dim().Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < Cols(r).
// Complexity: O(1).
func ValidateColIndex(r Repr, j int) error {
	if j < 0 || j >= r.Dim().Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}

// ValidateSquare checks that r is square (Rows == Cols).
// Errors: ErrShapeMismatch if not square.
func ValidateSquare(r Repr) error {
	if !r.Dim().IsSquare() {
		return validatorErrorf("ValidateSquare", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Errors: ErrShapeMismatch on inner-dimension disagreement.
func ValidateMulCompatible(a, b Repr) error {
	if a.Dim().Cols() != b.Dim().Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible(%s·%s)", a.Dim(), b.Dim()), ErrShapeMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape(a, b Repr) error {
	if a.Dim() != b.Dim() {
		return validatorErrorf("ValidateSameShape", ErrShapeMismatch)
	}

	return nil
}

// ValidateRange ensures [lo, hi) is a non-empty finite interval.
// Errors: ErrInvalidRange.
func ValidateRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return validatorErrorf("ValidateRange", ErrInvalidRange)
	}
	if lo >= hi {
		return validatorErrorf("ValidateRange", ErrInvalidRange)
	}

	return nil
}

// validateFinite rejects NaN/±Inf when the policy is on.
func validateFinite(o Options, v float64) error {
	if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}
