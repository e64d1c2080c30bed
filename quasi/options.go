// SPDX-License-Identifier: MIT

// Package quasi: functional configuration for representation solving,
// sampling, and estimation. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness — the
//     random source is always an explicit, caller-owned object.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); values with a documented error condition (sample count) are
//     validated at call sites instead and surface ErrInvalidParameter.
package quasi

import "math/rand"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultNumSamples is how many Monte Carlo circuit samples Run draws
	// when WithNumSamples is not supplied.
	DefaultNumSamples = 1000

	// DefaultSeed seeds the random source when neither WithSeed nor
	// WithRand is supplied. A fixed default keeps runs reproducible.
	DefaultSeed = 1

	// DefaultMaxConcurrency is the executor fan-out bound. 1 means fully
	// serial execution; raise it for expensive executors.
	DefaultMaxConcurrency = 1

	// DefaultEpsilon is the non-negative tolerance used by coefficient-sum
	// checks and representation equality.
	DefaultEpsilon = 1e-9

	// DefaultResidualTolerance bounds the decomposition error (Frobenius
	// residual) above which the numeric solver declares the basis
	// infeasible.
	DefaultResidualTolerance = 1e-6
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid     = "quasi: WithEpsilon: eps must be finite, non-negative"
	panicResidualTolInvalid = "quasi: WithResidualTolerance: tol must be finite, non-negative"
	panicConcurrencyInvalid = "quasi: WithMaxConcurrency: limit must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the resolved configuration for one call.
// Fields are unexported; use WithX constructors and gatherOptions.
type Options struct {
	numSamples     int        // Monte Carlo draws for Run
	seed           int64      // seed for the derived random source
	rng            *rand.Rand // explicit source; overrides seed when set
	maxConcurrency int        // executor fan-out bound (>= 1)
	epsilon        float64    // tolerance for sum/equality checks
	residualTol    float64    // solver feasibility bound
}

// defaultOptions returns the documented zero-configuration behavior.
func defaultOptions() Options {
	return Options{
		numSamples:     DefaultNumSamples,
		seed:           DefaultSeed,
		rng:            nil,
		maxConcurrency: DefaultMaxConcurrency,
		epsilon:        DefaultEpsilon,
		residualTol:    DefaultResidualTolerance,
	}
}

// WithNumSamples sets the Monte Carlo sample count for Run.
// Non-positive values are NOT rejected here: a bad sample count surfaces
// as ErrInvalidParameter at call time, not as a panic.
func WithNumSamples(n int) Option {
	return func(o *Options) { o.numSamples = n }
}

// WithSeed sets the seed for the random source Run derives when no explicit
// source is supplied via WithRand.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies an explicit random source, taking precedence over
// WithSeed. The source is used single-threaded: all draws happen up front,
// so concurrent execution order never affects the draw sequence.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithMaxConcurrency bounds how many circuit executions may run in flight
// simultaneously. Panics if limit < 1 (programmer error).
func WithMaxConcurrency(limit int) Option {
	if limit < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.maxConcurrency = limit }
}

// WithEpsilon sets the non-negative tolerance used by coefficient-sum checks
// and representation equality. Panics if eps is negative, NaN, or ±Inf.
func WithEpsilon(eps float64) Option {
	if !isFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithResidualTolerance sets the decomposition-error bound for the numeric
// representation solver. Panics if tol is negative, NaN, or ±Inf.
func WithResidualTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicResidualTolInvalid)
	}

	return func(o *Options) { o.residualTol = tol }
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
