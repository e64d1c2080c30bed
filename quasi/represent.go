// SPDX-License-Identifier: MIT
// Package quasi: representation solvers.
//
// Two construction paths produce the same Representation:
//   - RepresentDepolarizing: closed-form coefficients for single-qubit gates
//     under local depolarizing noise;
//   - Represent: numeric least-squares solve over arbitrary bases with
//     explicit channel matrices.
//
// Property tests pin the two paths to each other within tolerance.

package quasi

import (
	"errors"

	"github.com/quasarlab/quasiq/channel"
	"github.com/quasarlab/quasiq/circuit"
)

// RepresentDepolarizing builds the exact representation of a single-qubit
// ideal gate over its DepolarizingBasis using the closed-form coefficients.
// With effective parameter eps = (4/3)·p:
//
//	eta_1 = 1 + (3/4)·eps/(1−eps)
//	eta_2 = eta_3 = eta_4 = −(1/4)·eps/(1−eps)
//
// against the basis order {ideal∘I, ideal∘X, ideal∘Y, ideal∘Z}. The
// resulting gamma is (1 + eps/2)/(1 − eps), monotone in p and equal to 1
// only at p == 0 (noiseless).
//
// Stage 1 (Validate): p in [0, 3/4) so that eps < 1 keeps the formula
// finite (at eps == 1 the noise erases all Pauli components and no finite
// decomposition exists).
// Stage 2 (Execute): build the basis, evaluate the formula, assemble.
// Errors: ErrInvalidParameter (p out of domain, multi-qubit ideal),
// channel.ErrUnknownGate.
// Complexity: O(1).
func RepresentDepolarizing(ideal circuit.Gate, p float64, opts ...Option) (*Representation, error) {
	const tag = "RepresentDepolarizing"

	// Domain: eps = 4p/3 must stay below 1.
	if !isFinite(p) || p < 0 || p >= 0.75 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	basis, err := DepolarizingBasis(ideal, p)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// Closed-form coefficients.
	eps := (4.0 / 3.0) * p
	offDiag := -(1.0 / 4.0) * eps / (1 - eps)
	etas := []float64{
		1 + (3.0/4.0)*eps/(1-eps),
		offDiag,
		offDiag,
		offDiag,
	}

	rep, err := NewRepresentation(ideal, basis, etas, opts...)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return rep, nil
}

// Represent numerically decomposes an ideal channel over an arbitrary basis
// of noisy operations with known transfer matrices: it solves
//
//	min ‖A·x − b‖₂  with  A[:,j] = vec(B_j),  b = vec(ideal)
//
// and accepts the solution only when the achieved decomposition error
// (Frobenius residual) is within WithResidualTolerance. For spanning bases
// the solution is the exact quasi-probability decomposition; rank-deficient
// or out-of-span bases surface as ErrInfeasibleBasis.
//
// Stage 1 (Validate): non-nil ideal matrix, non-empty basis, every basis
// element in the matrix-carrying variant, shapes agree with the ideal.
// Stage 2 (Solve): column-stack vectorized channels, least squares via the
// channel package, translate ErrSingular into infeasibility.
// Stage 3 (Finalize): residual gate, then NewRepresentation (which enforces
// the sum-to-1 invariant on the solved coefficients).
//
// The ideal handle may be nil; pass it when available so SampleCircuit can
// cross-check representations against circuit positions.
// Errors: ErrInvalidParameter, ErrMissingMatrix, ErrInfeasibleBasis.
// Complexity: O(m²·k²) for an m×m channel and k basis terms (normal
// equations dominate).
func Represent(ideal circuit.Operation, idealMatrix *channel.Dense, basis []NoisyOperation, opts ...Option) (*Representation, error) {
	const tag = "Represent"
	o := gatherOptions(opts...)

	// Validate inputs.
	if idealMatrix == nil || len(basis) == 0 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}
	rows, cols := idealMatrix.Rows(), idealMatrix.Cols()
	for _, op := range basis {
		if !op.HasMatrix() {
			return nil, opErrorf(tag, ErrMissingMatrix)
		}
		m := op.matrix()
		if m.Rows() != rows || m.Cols() != cols {
			return nil, opErrorf(tag, ErrInvalidParameter)
		}
	}

	// b = vec(ideal).
	b, err := channel.Vec(idealMatrix)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// A: one column per basis term, A[:,j] = vec(B_j).
	k := len(basis)
	a, err := channel.NewDense(rows*cols, k)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	for j, op := range basis {
		col, vErr := channel.Vec(op.matrix())
		if vErr != nil {
			return nil, opErrorf(tag, vErr)
		}
		for i, v := range col {
			if sErr := a.Set(i, j, v); sErr != nil {
				return nil, opErrorf(tag, sErr)
			}
		}
	}

	// Solve the least-squares system.
	x, residual, err := channel.LeastSquares(a, b)
	if err != nil {
		// A singular Gram matrix means the basis is rank-deficient: the
		// ideal channel cannot be reconstructed from its span.
		if errors.Is(err, channel.ErrSingular) {
			return nil, opErrorf(tag, ErrInfeasibleBasis)
		}

		return nil, opErrorf(tag, err)
	}

	// Feasibility gate: the decomposition must actually reconstruct the
	// ideal channel, not merely be the least-bad projection onto the span.
	if residual > o.residualTol {
		return nil, opErrorf(tag, ErrInfeasibleBasis)
	}

	rep, err := NewRepresentation(ideal, basis, x, opts...)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return rep, nil
}
