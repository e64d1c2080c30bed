// SPDX-License-Identifier: MIT
// Package channel — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package channel

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		ident.data[i*n+i] = 1.0
	}

	// Return the identity matrix.
	return ident, nil
}

// Vec flattens m column-major into a fresh slice of length r*c:
// Vec(m)[j*r+i] = m[i,j]. Column-major vectorization is the convention the
// representation solver relies on (columns of the design matrix are Vec's
// of basis transfer matrices). Errors: ErrNilMatrix. Complexity: O(r*c).
func Vec(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	out := make([]float64, m.r*m.c)
	var i, j int
	for j = 0; j < m.c; j++ { // fixed column-major order
		for i = 0; i < m.r; i++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}
