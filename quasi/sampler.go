// SPDX-License-Identifier: MIT
// Package quasi: Monte Carlo samplers.
//
// Operation-level: one draw from a representation's quasi-probability
// distribution. Circuit-level: N independent whole-circuit draws, one
// operation draw per gate position, programs concatenated in original order.
//
// All randomness flows through an explicit *rand.Rand supplied by the
// caller — no hidden global state — so a fixed seed reproduces the exact
// draw sequence regardless of how results are later executed or collected.

package quasi

import (
	"math/rand"

	"github.com/quasarlab/quasiq/circuit"
)

// Sample is one draw from a representation: the chosen noisy operation, the
// sign of its coefficient, and the original coefficient. Ephemeral.
type Sample struct {
	// Op is the drawn implementable operation.
	Op NoisyOperation

	// Sign is sign(eta_j) ∈ {+1, −1}.
	Sign float64

	// Coeff is the original quasi-probability coefficient eta_j.
	Coeff float64
}

// Sample draws one basis term with probability |eta_j| / gamma using
// cumulative-distribution inversion over the precomputed prefix sums.
//
// Stage 1 (Validate): non-nil receiver and random source; gamma > 0.
// Stage 2 (Execute): u = rng.Float64()·gamma, linear scan of the prefix.
// Errors: ErrInvalidParameter (nil receiver or rng), ErrDegenerate
// (gamma == 0 — cannot occur for representations built by this package,
// since valid ones have gamma >= 1).
// Determinism: exactly one rng.Float64() call per draw.
// Complexity: O(k) per call for k basis terms.
func (r *Representation) Sample(rng *rand.Rand) (Sample, error) {
	const tag = "Sample"

	if r == nil || rng == nil {
		return Sample{}, opErrorf(tag, ErrInvalidParameter)
	}
	if r.gamma == 0 {
		return Sample{}, opErrorf(tag, ErrDegenerate)
	}

	// Cumulative inversion: first index whose prefix exceeds u.
	u := rng.Float64() * r.gamma
	j := len(r.cum) - 1 // fallback to the last term for u at the boundary
	for i, c := range r.cum {
		if u < c {
			j = i
			break
		}
	}

	eta := r.etas[j]
	sign := 1.0
	if eta < 0 {
		sign = -1.0
	}

	return Sample{Op: r.basis[j], Sign: sign, Coeff: eta}, nil
}

// CircuitSample is one whole-circuit Monte Carlo draw: the concatenated
// noisy program, the aggregate sign (product of per-position signs), and
// the circuit-level gamma (product of per-position gammas — identical for
// every sample of a fixed circuit and representation set).
type CircuitSample struct {
	// Circuit is the executable sampled program.
	Circuit *circuit.Circuit

	// Sign is the product of the per-position coefficient signs.
	Sign float64

	// Gamma is the circuit-level one-norm, constant across all samples.
	Gamma float64
}

// SampleCircuit produces n independent whole-circuit samples for an ideal
// circuit with one representation per gate position.
//
// Per sample: one operation draw per position, chosen programs concatenated
// in original order, signs multiplied. The circuit-level gamma is computed
// once as the product of per-position gammas — it is a deterministic
// function of the representation set, never of the draws.
//
// Stage 1 (Validate): non-nil circuit and rng, n > 0, len(reps) equal to
// the circuit length, each representation non-nil; when a representation
// carries an ideal handle it must match the operation at its position.
// Stage 2 (Prepare): compute the constant circuit gamma.
// Stage 3 (Execute): n sweeps of per-position draws.
//
// Returns the samples, the aligned slice of signs, and the scalar gamma.
// Errors: ErrInvalidParameter, ErrDegenerate (propagated from Sample).
// Determinism: exactly n·Len draws from rng in position order — concurrent
// execution downstream can never reorder them.
// Complexity: O(n · Len · k) draws plus O(n · totalOps) concatenation.
func SampleCircuit(ideal *circuit.Circuit, reps []*Representation, n int, rng *rand.Rand) ([]CircuitSample, []float64, float64, error) {
	const tag = "SampleCircuit"

	// Validate caller input.
	if ideal == nil || rng == nil || n <= 0 {
		return nil, nil, 0, opErrorf(tag, ErrInvalidParameter)
	}
	if len(reps) != ideal.Len() {
		return nil, nil, 0, opErrorf(tag, ErrInvalidParameter)
	}

	// Cross-check representations against circuit positions and compute the
	// constant circuit-level gamma up front.
	gamma := 1.0
	for i, rep := range reps {
		if rep == nil {
			return nil, nil, 0, opErrorf(tag, ErrInvalidParameter)
		}
		if rep.ideal != nil {
			op, err := ideal.At(i)
			if err != nil {
				return nil, nil, 0, opErrorf(tag, err)
			}
			if !rep.ideal.Equal(op) {
				return nil, nil, 0, opErrorf(tag, ErrInvalidParameter)
			}
		}
		gamma *= rep.gamma
	}

	samples := make([]CircuitSample, 0, n)
	signs := make([]float64, 0, n)
	var (
		draw Sample
		err  error
	)
	for i := 0; i < n; i++ {
		// One operation draw per gate position, in original order.
		ops := make([]circuit.Operation, 0, ideal.Len())
		sign := 1.0
		for _, rep := range reps {
			draw, err = rep.Sample(rng)
			if err != nil {
				return nil, nil, 0, opErrorf(tag, err)
			}
			ops = append(ops, draw.Op.programOps()...)
			sign *= draw.Sign
		}

		prog, cErr := circuit.New(ops...)
		if cErr != nil {
			return nil, nil, 0, opErrorf(tag, cErr)
		}
		samples = append(samples, CircuitSample{Circuit: prog, Sign: sign, Gamma: gamma})
		signs = append(signs, sign)
	}

	return samples, signs, gamma, nil
}
