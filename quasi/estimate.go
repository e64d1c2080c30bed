// SPDX-License-Identifier: MIT
// Package quasi: estimator aggregation.
//
// Execution of sampled circuits is embarrassingly parallel: each sample is
// independent and results land in an index-aligned, append-only slice, so
// concurrent execution order never changes the aggregate beyond
// floating-point summation order (the reduction itself runs serially after
// all executions complete). A failed execution fails the whole estimation —
// dropping samples would bias the estimator.

package quasi

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/quasarlab/quasiq/circuit"
)

// Executor runs one circuit on a noisy backend (simulator or hardware) and
// returns a scalar measurement. It is the only I/O-bound operation in the
// pipeline; the context carries cancellation across in-flight executions.
// Executors must be safe for concurrent use when WithMaxConcurrency > 1.
type Executor func(ctx context.Context, c *circuit.Circuit) (float64, error)

// Result is the aggregated, error-mitigated estimate: the rescaled mean,
// its statistical error, and the raw per-sample unbiased values for
// downstream diagnostics (histogramming, batching). Immutable.
type Result struct {
	value    float64
	stderr   float64
	unbiased []float64
}

// Value returns the point estimate: mean of the per-sample unbiased values.
func (r *Result) Value() float64 { return r.value }

// StdErr returns the statistical error: stddev(unbiased) / sqrt(N), with
// the population standard deviation (matching the reference estimator).
func (r *Result) StdErr() float64 { return r.stderr }

// NumSamples returns how many circuit samples entered the aggregate.
func (r *Result) NumSamples() int { return len(r.unbiased) }

// Unbiased returns a fresh copy of the per-sample unbiased values
// gamma·sign_i·measured_i, index-aligned with the input samples.
func (r *Result) Unbiased() []float64 {
	out := make([]float64, len(r.unbiased))
	copy(out, r.unbiased)

	return out
}

// Estimate executes every circuit sample and reduces to the unbiased
// estimate with its statistical error.
//
// Stage 1 (Validate): non-nil executor, at least one sample.
// Stage 2 (Execute): fan out up to WithMaxConcurrency executions via an
// errgroup; each goroutine writes its measurement into a distinct index of
// a preallocated slice (no shared mutable state, no locks). The first
// executor failure cancels the group's context; in-flight executions finish
// or abandon without corrupting collected results.
// Stage 3 (Reduce): after ALL executions complete, compute per-sample
// unbiased values gamma·sign_i·measured_i, their mean, and the standard
// error stddev/sqrt(N). No partial aggregate is ever reported.
//
// Errors: ErrNilExecutor, ErrInvalidParameter (no samples), ErrExecution
// (any executor failure, with the failing sample index and cause recorded;
// estimation never silently drops a failed sample).
// Determinism: the reduction visits samples in index order, so the result
// is identical for serial and concurrent execution of the same samples.
// Complexity: N executor calls + O(N) reduction.
func Estimate(ctx context.Context, samples []CircuitSample, exec Executor, opts ...Option) (*Result, error) {
	const tag = "Estimate"
	o := gatherOptions(opts...)

	if exec == nil {
		return nil, opErrorf(tag, ErrNilExecutor)
	}
	// Mean over zero samples is undefined.
	if len(samples) == 0 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	// Index-aligned measurement collection: one slot per sample.
	measured := make([]float64, len(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrency)
	for i := range samples {
		g.Go(func() error {
			// Bail out early once a sibling failed or the caller canceled.
			if err := gctx.Err(); err != nil {
				return executionError(i, err)
			}

			v, err := exec(gctx, samples[i].Circuit)
			if err != nil {
				return executionError(i, err)
			}
			// A non-finite measurement would poison the whole aggregate.
			if !isFinite(v) {
				return executionError(i, ErrInvalidParameter)
			}

			// Distinct index per goroutine: no synchronization required.
			measured[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, opErrorf(tag, err)
	}

	// Rescale and reduce, in index order.
	unbiased := make([]float64, len(samples))
	var sum float64
	for i, s := range samples {
		unbiased[i] = s.Gamma * s.Sign * measured[i]
		sum += unbiased[i]
	}
	n := float64(len(unbiased))
	mean := sum / n

	var variance, d float64
	for _, v := range unbiased {
		d = v - mean
		variance += d * d
	}
	variance /= n

	return &Result{
		value:    mean,
		stderr:   math.Sqrt(variance) / math.Sqrt(n),
		unbiased: unbiased,
	}, nil
}
