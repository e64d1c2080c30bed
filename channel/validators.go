// SPDX-License-Identifier: MIT
// Package: channel
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateTransfer runs O(c) on the top row only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g., NotNil → Shape).

package channel

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes NotNil (both) and SameShape.
// Fixed sequence: a nil → b nil → shape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Errors: ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks non-nil operands and inner-dimension agreement
// (a.Cols == b.Rows). Fixed sequence: a nil → b nil → inner dims.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that x has exactly want elements.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, want int) error {
	if len(x) != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTransfer checks the structural invariant of a Pauli transfer matrix:
// square shape and top row equal to (1, 0, ..., 0) within the configured
// tolerance (trace preservation of the underlying channel). The tolerance is
// DefaultEpsilon; override with WithEpsilon.
// Fixed sequence: NotNil → Square → top row.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotStochastic. Complexity: O(c).
func ValidateTransfer(m *Dense, opts ...Option) error {
	eps := gatherOptions(opts...).epsilon
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	// Top row must read (1, 0, ..., 0) within eps.
	if math.Abs(m.data[0]-1) > eps {
		return validatorErrorf("ValidateTransfer", ErrNotStochastic)
	}
	for j := 1; j < m.c; j++ {
		if math.Abs(m.data[j]) > eps {
			return validatorErrorf("ValidateTransfer", ErrNotStochastic)
		}
	}

	return nil
}
