// SPDX-License-Identifier: MIT
// Package channel: factorization kernels (LU, QR).
//
// Purpose:
//   - Provide the decompositions backing SolveLU and LeastSquares.
//   - Keep determinism: fixed loop orders, non-pivoting schemes, explicit
//     zero-pivot detection via ErrSingular.

package channel

import "math"

// LU computes the Doolittle decomposition A = L·U for a square matrix,
// where L is unit lower triangular and U is upper triangular.
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L (unit diagonal) and U.
//   - Stage 2: Doolittle sweep i=0..n-1 on flat slices.
//
// Behavior highlights:
//   - Non-pivoting by design: deterministic, and a zero pivot surfaces as
//     ErrSingular instead of being silently permuted away.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot).
// Determinism: fixed i→j→k visitation.
// Complexity: Time O(n³), Space O(n²).
func LU(m *Dense) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}

	// Allocate L and U
	n := m.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	// Execute Doolittle decomposition on flat slices
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		if u.data[i*n+i] == ZeroPivot {
			return nil, nil, kernelErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			pivot = u.data[i*n+i]
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	// Return L and U
	return l, u, nil
}

// QR computes a Householder-based factorization such that A ≈ Qᵀ · R.
// Implementation:
//   - Stage 1: Validate m (not nil, square); clone A; init Q to identity.
//   - Stage 2: For k=0..n-1, build a column reflector and apply it to A
//     (forming R) and to Q.
//
// Behavior highlights:
//   - Deterministic column order; no sign canonicalization inside.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Determinism: fixed k→{i,j} visitation; stable column-wise accumulation.
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - If you need A ≈ Q·R with diag(R) ≥ 0, post-process via
//     S = diag(sign(R[i,i])): use (S·Q, S·R).
func QR(m *Dense) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, kernelErrorf(opQR, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, kernelErrorf(opQR, err)
	}
	n := m.r

	// Prepare working copy A and orthogonal accumulator Q
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, kernelErrorf(opQR, err)
	}
	// initialize Q to identity: Q[i,i]=1
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Allocate Householder vector
	v := make([]float64, n)
	var (
		i, j, k    int
		norm, beta float64 // vector norm and β = vᵀv
		alpha, tau float64 // reflection scalar and 2/β factor
		sum, aij   float64
	)
	for k = 0; k < n; k++ {
		// Compute norm of A[k:n][k]
		norm = ZeroSum
		for i = k; i < n; i++ {
			aij = a.data[i*n+k]
			norm += aij * aij
		}
		norm = math.Sqrt(norm)
		if norm == ZeroSum {
			continue // skip zero column
		}

		// Compute alpha = -sign(A[k,k]) * norm
		alpha = -math.Copysign(norm, a.data[k*n+k])

		// Build Householder vector v
		for i = 0; i < n; i++ {
			v[i] = 0.0
		}
		for i = k; i < n; i++ {
			v[i] = a.data[i*n+k]
		}
		v[k] -= alpha

		// Compute β = vᵀv and τ = 2/β
		beta = ZeroSum
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		// Guard: avoid division by zero if v is degenerate.
		if beta == ZeroSum {
			continue
		}
		tau = 2.0 / beta

		// Apply reflection to A (update R)
		for j = k; j < n; j++ {
			sum = ZeroSum
			for i = k; i < n; i++ {
				sum += v[i] * a.data[i*n+j]
			}
			for i = k; i < n; i++ {
				a.data[i*n+j] -= tau * v[i] * sum
			}
		}

		// Apply reflection to Q
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for i = k; i < n; i++ {
				sum += v[i] * q.data[i*n+j]
			}
			for i = k; i < n; i++ {
				q.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	// Finalize R = a and return Q, R
	return q, a, nil
}
