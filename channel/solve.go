// SPDX-License-Identifier: MIT
// Package channel: linear solvers built on the factorization kernels.
//
// Purpose:
//   - SolveLU: exact solve of a square system A·x = b (Doolittle LU).
//   - LeastSquares: min ‖A·x − b‖₂ for tall systems via normal equations,
//     returning the residual norm so callers can judge feasibility.

package channel

import "math"

// SolveLU solves the square system A·x = b via LU decomposition followed by
// forward and back substitution.
// Implementation:
//   - Stage 1: Validate A (not nil, square) and len(b) == n.
//   - Stage 2: Factor A = L·U; forward solve L·y = b; back solve U·x = y.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Determinism: fixed substitution order.
// Complexity: Time O(n³) (factorization dominates), Space O(n²).
func SolveLU(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opSolveLU, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, kernelErrorf(opSolveLU, err)
	}
	n := a.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, kernelErrorf(opSolveLU, err)
	}

	// Factor A = L·U
	l, u, err := LU(a)
	if err != nil {
		return nil, kernelErrorf(opSolveLU, err)
	}

	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = b (L has unit diagonal)
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Back substitution: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += u.data[i*n+k] * x[k]
		}
		// Zero-pivot guard (U diagonal verified nonzero by LU, kept for safety)
		if u.data[i*n+i] == ZeroPivot {
			return nil, kernelErrorf(opSolveLU, ErrSingular)
		}
		x[i] = (y[i] - sum) / u.data[i*n+i]
	}

	return x, nil
}

// LeastSquares solves min ‖A·x − b‖₂ for an m×n system with m >= n via the
// normal equations (AᵀA)·x = Aᵀb, and returns both the solution and the
// achieved residual norm ‖A·x − b‖₂.
// Implementation:
//   - Stage 1: Validate A (not nil), len(b) == A.Rows, A.Rows >= A.Cols.
//   - Stage 2: Form G = AᵀA and rhs = Aᵀb; solve G·x = rhs via SolveLU.
//   - Stage 3: Compute residual r = ‖A·x − b‖₂.
//
// Behavior highlights:
//   - A rank-deficient A yields a singular Gram matrix G, surfaced as
//     ErrSingular; callers translate this into their own infeasibility
//     condition.
//   - Exactly determined square systems are accepted (m == n) and reduce to
//     the same path with a zero residual up to rounding.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Determinism: fixed accumulation orders throughout.
// Complexity: Time O(m·n²) for the Gram product + O(n³) solve, Space O(n²).
func LeastSquares(a *Dense, b []float64) (x []float64, residual float64, err error) {
	if err = ValidateNotNil(a); err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}
	if err = ValidateVecLen(b, a.r); err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}
	if a.r < a.c {
		return nil, 0, kernelErrorf(opLstSq, ErrDimensionMismatch)
	}

	// Form G = AᵀA
	at, err := Transpose(a)
	if err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}
	g, err := Mul(at, a)
	if err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}

	// Form rhs = Aᵀb
	rhs, err := MatVec(at, b)
	if err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}

	// Solve G·x = rhs
	x, err = SolveLU(g, rhs)
	if err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}

	// Compute residual ‖A·x − b‖₂
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, 0, kernelErrorf(opLstSq, err)
	}
	var sum, d float64
	for i := 0; i < len(b); i++ {
		d = ax[i] - b[i]
		sum += d * d
	}

	return x, math.Sqrt(sum), nil
}
