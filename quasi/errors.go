// SPDX-License-Identifier: MIT
// Package quasi: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the quasi
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in option
// constructors.

package quasi

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "quasi: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR TAXONOMY (documented, enforced in tests):
// infeasible basis -> degenerate distribution -> invalid parameter ->
// execution failure. A failed execution always fails the whole estimation:
// dropping samples would silently bias the estimator.

var (
	// ErrInfeasibleBasis indicates that the requested decomposition cannot
	// reconstruct the ideal channel within the span of the given noisy basis
	// (rank-deficient basis, or residual above the configured tolerance).
	ErrInfeasibleBasis = errors.New("quasi: basis cannot reconstruct the ideal channel")

	// ErrDegenerate indicates a zero-weight quasi-probability distribution
	// (gamma == 0). Well-formed representations always have gamma >= 1, so
	// hitting this usually means a hand-built representation is broken.
	ErrDegenerate = errors.New("quasi: degenerate quasi-probability distribution")

	// ErrInvalidParameter indicates a non-positive sample count, mismatched
	// representation/circuit lengths, a nil random source, or similarly
	// malformed caller input.
	ErrInvalidParameter = errors.New("quasi: invalid parameter")

	// ErrExecution indicates that the supplied executor failed for some
	// sampled circuit. The whole estimation fails: no silent skipping.
	ErrExecution = errors.New("quasi: circuit execution failed")

	// ErrMissingMatrix indicates that an operation without a transfer matrix
	// was passed to a construction that requires one (representation
	// solving). Sampling and execution accept matrix-less operations.
	ErrMissingMatrix = errors.New("quasi: noisy operation has no transfer matrix")

	// ErrNilExecutor indicates that a nil executor function was supplied.
	ErrNilExecutor = errors.New("quasi: executor is nil")
)

// opErrorf wraps err with an operation tag, preserving the original error via
// %w. Keeps a stable "Op: underlying" shape for uniform reporting across
// facades. Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// executionError tags sample index i onto ErrExecution while recording the
// executor's own failure text. errors.Is(err, ErrExecution) still matches.
func executionError(i int, cause error) error {
	return fmt.Errorf("sample %d: %w (cause: %v)", i, ErrExecution, cause)
}
