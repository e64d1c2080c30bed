// SPDX-License-Identifier: MIT
// Package channel provides universal operations on Dense matrices, including
// element-wise addition, subtraction, matrix multiplication, transpose,
// scalar scaling, matrix-vector products, and the Kronecker (tensor) product.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and return plain sentinels wrapped
//     via kernelErrorf at the facade.
//   - Inputs are never mutated; every kernel allocates a fresh result.

package channel

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulation loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/solve routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opKron      = "Kron"
	opLU        = "LU"
	opQR        = "QR"
	opSolveLU   = "SolveLU"
	opLstSq     = "LeastSquares"
	opCompose   = "Compose"
	opFrobenius = "FrobeniusDistance"
)

// kernelErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and allocation.
// Determinism: single flat slice walk 0..(r*c−1).
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	// Element-wise combination on backing slices
	length := a.r * a.c
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; skip zero A[i,k].
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
// Determinism: fixed loop order i→k→j.
// Complexity: Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids
// useless multiplies (transfer matrices are often sparse diagonals).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	var (
		i, j, k                            int // loop iterators
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale computes C = alpha * A and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrNaNInf (non-finite alpha).
// Complexity: Time O(r*c), Space O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opScale, err)
	}
	if !isFinite(alpha) {
		return nil, kernelErrorf(opScale, ErrNaNInf)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, kernelErrorf(opScale, err)
	}
	length := a.r * a.c
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		res.data[idx] = alpha * a.data[idx]
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense.
// Errors: ErrNilMatrix. Determinism: fixed i→j visitation.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}

	res, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = A · x and returns a fresh slice of length A.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols).
// Determinism: fixed i→j order. Complexity: Time O(r*c), Space O(r).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	y := make([]float64, a.r)
	var (
		i, j      int
		rowOffset int
		sum       float64
	)
	for i = 0; i < a.r; i++ {
		sum = ZeroSum
		rowOffset = i * a.c
		for j = 0; j < a.c; j++ {
			sum += a.data[rowOffset+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Kron computes the Kronecker (tensor) product C = A ⊗ B and returns a fresh
// Dense of shape (a.r*b.r)×(a.c*b.c). Used to lift single-qubit transfer
// matrices onto multi-qubit registers.
// Errors: ErrNilMatrix.
// Determinism: fixed (i,j) over A, then (p,q) over B.
// Complexity: Time O(a.r*a.c*b.r*b.c), Space same.
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, kernelErrorf(opKron, err)
	}

	res, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, kernelErrorf(opKron, err)
	}
	var (
		i, j, p, q int
		av         float64
		cols       = a.c * b.c
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			av = a.data[i*a.c+j]
			if av == 0 {
				continue // zero block, skip
			}
			for p = 0; p < b.r; p++ {
				for q = 0; q < b.c; q++ {
					res.data[(i*b.r+p)*cols+(j*b.c+q)] = av * b.data[p*b.c+q]
				}
			}
		}
	}

	return res, nil
}

// ApproxEqual reports whether a and b have identical shapes and agree
// element-wise within eps (absolute difference). Nil inputs are equal only
// to each other. Complexity: O(r*c).
func ApproxEqual(a, b *Dense, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	length := a.r * a.c
	for idx := 0; idx < length; idx++ {
		if math.Abs(a.data[idx]-b.data[idx]) > eps {
			return false
		}
	}

	return true
}

// FrobeniusDistance returns ‖A − B‖_F, the square root of the sum of squared
// element-wise differences. Used as the decomposition-error metric by the
// representation solver. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func FrobeniusDistance(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, kernelErrorf(opFrobenius, err)
	}

	var sum, d float64
	length := a.r * a.c
	for idx := 0; idx < length; idx++ {
		d = a.data[idx] - b.data[idx]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
