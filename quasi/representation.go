// SPDX-License-Identifier: MIT
// Package quasi: OperationRepresentation — a quasi-probability decomposition
// of an ideal operation over a basis of implementable (noisy) operations.
//
// Invariants (validated at construction, relied on by the sampler):
//   - len(basis) == len(etas) > 0, all etas finite;
//   - sum(etas) == 1 within the configured eps (exact decomposition of the
//     identity-normalized channel);
//   - gamma = sum(|eta_j|) >= 1 for any valid representation, with equality
//     only in the noiseless case.

package quasi

import (
	"math"

	"github.com/quasarlab/quasiq/circuit"
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Representation maps an ideal operation to a signed mixture of noisy basis
// operations. Immutable once constructed; safe to share across goroutines.
type Representation struct {
	ideal circuit.Operation // may be nil for matrix-only constructions
	basis []NoisyOperation  // ordered; referenced, coefficients aligned
	etas  []float64         // real quasi-probability coefficients
	gamma float64           // cached one-norm sum(|eta_j|)
	cum   []float64         // cumulative |eta| prefix sums for O(k) draws
}

// NewRepresentation constructs a representation from an ordered basis and
// aligned coefficients. The ideal handle may be nil when the caller only has
// channel matrices; when present, SampleCircuit cross-checks it against the
// circuit being sampled.
//
// Stage 1 (Validate): non-empty aligned slices, finite coefficients,
// sum(etas) within eps of 1 (WithEpsilon to adjust).
// Stage 2 (Prepare): copy slices, cache gamma and the cumulative prefix.
// Errors: ErrInvalidParameter. Complexity: O(k) for k basis terms.
func NewRepresentation(ideal circuit.Operation, basis []NoisyOperation, etas []float64, opts ...Option) (*Representation, error) {
	const tag = "NewRepresentation"
	o := gatherOptions(opts...)

	// Aligned, non-empty inputs.
	if len(basis) == 0 || len(basis) != len(etas) {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	// Copy coefficients, accumulate sum and one-norm, build prefix sums.
	etasCopy := make([]float64, len(etas))
	cum := make([]float64, len(etas))
	var sum, gamma float64
	for i, eta := range etas {
		if !isFinite(eta) {
			return nil, opErrorf(tag, ErrInvalidParameter)
		}
		etasCopy[i] = eta
		sum += eta
		gamma += math.Abs(eta)
		cum[i] = gamma
	}

	// Exact-decomposition invariant: coefficients sum to 1.
	if math.Abs(sum-1) > o.epsilon {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	basisCopy := make([]NoisyOperation, len(basis))
	copy(basisCopy, basis)

	return &Representation{
		ideal: ideal,
		basis: basisCopy,
		etas:  etasCopy,
		gamma: gamma,
		cum:   cum,
	}, nil
}

// Gamma returns the one-norm of the quasi-probability distribution — the
// sampling-overhead factor of the unbiased estimator. Gamma >= 1 for every
// valid representation; gamma == 1 only when the basis is noiseless.
func (r *Representation) Gamma() float64 {
	return r.gamma
}

// NumTerms returns the number of basis terms.
func (r *Representation) NumTerms() int {
	return len(r.etas)
}

// Ideal returns the ideal operation handle this representation decomposes,
// or nil for matrix-only constructions.
func (r *Representation) Ideal() circuit.Operation {
	return r.ideal
}

// Coeffs returns a fresh copy of the quasi-probability coefficients, aligned
// with Basis().
func (r *Representation) Coeffs() []float64 {
	out := make([]float64, len(r.etas))
	copy(out, r.etas)

	return out
}

// Basis returns a fresh slice of the basis operations, aligned with Coeffs().
// The operations themselves are immutable and shared.
func (r *Representation) Basis() []NoisyOperation {
	out := make([]NoisyOperation, len(r.basis))
	copy(out, r.basis)

	return out
}

// Equal reports whether two representations decompose over program-equal
// bases with coefficients matching within eps, term by term in order.
// Representations built via different construction paths (closed-form vs
// numeric solve) for the same operation and noise level compare equal.
// A nil receiver equals only a nil other.
func (r *Representation) Equal(other *Representation, eps float64) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.etas) != len(other.etas) {
		return false
	}
	for i := range r.etas {
		if math.Abs(r.etas[i]-other.etas[i]) > eps {
			return false
		}
		if !r.basis[i].Equal(other.basis[i]) {
			return false
		}
	}

	return true
}
