// SPDX-License-Identifier: MIT
// Package quasi — top-level facade.
//
// Run wires the whole pipeline together: sample N circuits from the
// quasi-probability representations, execute them, aggregate. Each stage is
// also available separately (SampleCircuit, Estimate) for callers that want
// custom batching or diagnostics between stages.

package quasi

import (
	"context"
	"math/rand"

	"github.com/quasarlab/quasiq/circuit"
)

// Run estimates the noiseless expectation value of an ideal circuit using
// probabilistic error cancellation: it draws WithNumSamples whole-circuit
// samples from the per-position representations, executes every sample
// through exec, and returns the unbiased aggregate.
//
// Randomness: an explicit source via WithRand, or one derived from WithSeed
// (DefaultSeed when unset). All draws happen before any execution starts,
// so the draw sequence depends only on the seed — never on executor timing
// or concurrency.
//
// Errors: ErrInvalidParameter (nil circuit, non-positive sample count,
// representation/circuit length mismatch), ErrNilExecutor, ErrDegenerate,
// ErrExecution. See SampleCircuit and Estimate for details.
func Run(ctx context.Context, ideal *circuit.Circuit, reps []*Representation, exec Executor, opts ...Option) (*Result, error) {
	const tag = "Run"
	o := gatherOptions(opts...)

	// A non-positive sample count is caller error, not a panic.
	if o.numSamples <= 0 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	// Resolve the random source: explicit beats seeded.
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(o.seed))
	}

	samples, _, _, err := SampleCircuit(ideal, reps, o.numSamples, rng)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	res, err := Estimate(ctx, samples, exec, opts...)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return res, nil
}
