// SPDX-License-Identifier: MIT
// Package channel: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the channel
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package channel

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "channel: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("channel: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("channel: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("channel: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Factorizations (LU, QR) and Compose require square operands.
	ErrNonSquare = errors.New("channel: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("channel: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("channel: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// triangular solves in a non-pivoting scheme (intentional for determinism
	// and simplicity).
	ErrSingular = errors.New("channel: singular matrix")

	// ErrUnknownGate indicates that a gate name has no registered transfer
	// matrix. Callers building bases from named gates must handle it.
	ErrUnknownGate = errors.New("channel: unknown gate")

	// ErrBadParameter is returned when a channel parameter is outside its
	// documented domain (e.g., a depolarizing probability not in [0,1]).
	ErrBadParameter = errors.New("channel: parameter out of domain")

	// ErrNotStochastic signals that a matrix expected to be a valid Pauli
	// transfer matrix violated the unit top-row structure within eps.
	ErrNotStochastic = errors.New("channel: top row is not (1,0,...,0) within eps")
)
