// SPDX-License-Identifier: MIT

// Package channel: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package channel

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance for structural
	// checks that consume options (ValidateTransfer). Kernels taking an
	// explicit eps parameter (ApproxEqual) are unaffected.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (NewDenseFromRows). Set is always strict.
	DefaultValidateNaNInf = true
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "channel: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the numeric policy for ingestion and comparisons.
// Fields are unexported; use WithX constructors and gatherOptions.
type Options struct {
	epsilon        float64 // tolerance for structural/equality checks
	validateNaNInf bool    // reject NaN/±Inf at ingestion
}

// defaultOptions returns the documented zero-configuration behavior.
func defaultOptions() Options {
	return Options{
		epsilon:        DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// WithEpsilon sets the non-negative tolerance used by structural checks.
// Panics if eps is negative, NaN, or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if !isFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithValidateNaNInf toggles finite-value validation at ingestion.
// Disable only for trusted, pre-validated data paths.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// gatherOptions applies opts over defaults and returns the resolved state.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
