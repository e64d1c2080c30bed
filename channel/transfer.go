// SPDX-License-Identifier: MIT
// Package channel: Pauli-transfer-matrix constructors.
//
// A quantum operation acting on n qubits is represented here by its Pauli
// transfer matrix (PTM): the real 4ⁿ×4ⁿ matrix R with
//
//	R[i][j] = (1/2ⁿ) · Tr[ P_i · E(P_j) ]
//
// over the n-qubit Pauli basis {I,X,Y,Z}^⊗n, indexed base-4 with the most
// significant digit on qubit 0. The PTM of a composite circuit is the
// product of per-operation PTMs in reverse application order, which is what
// Compose implements. Trace preservation shows up as a (1,0,...,0) top row
// (ValidateTransfer).
//
// Unitary gates are converted through FromUnitary; common gates and noise
// channels get named constructors on top of it.

package channel

import (
	"math"
	"math/cmplx"
)

// One-qubit Pauli matrices as flat 2×2 complex storage, row-major.
var (
	cmatI = []complex128{1, 0, 0, 1}
	cmatX = []complex128{0, 1, 1, 0}
	cmatY = []complex128{0, -1i, 1i, 0}
	cmatZ = []complex128{1, 0, 0, -1}
)

// pauli1q lists the single-qubit Pauli basis in canonical I,X,Y,Z order.
var pauli1q = [][]complex128{cmatI, cmatX, cmatY, cmatZ}

// cmul multiplies two square complex matrices of dimension n (row-major flat).
func cmul(a, b []complex128, n int) []complex128 {
	out := make([]complex128, n*n)
	var i, j, k int
	var av complex128
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			av = a[i*n+k]
			if av == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				out[i*n+j] += av * b[k*n+j]
			}
		}
	}

	return out
}

// cdag returns the conjugate transpose of a square complex matrix.
func cdag(a []complex128, n int) []complex128 {
	out := make([]complex128, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[j*n+i] = cmplx.Conj(a[i*n+j])
		}
	}

	return out
}

// ckron returns the Kronecker product of square complex matrices a (na×na)
// and b (nb×nb).
func ckron(a []complex128, na int, b []complex128, nb int) []complex128 {
	n := na * nb
	out := make([]complex128, n*n)
	var i, j, p, q int
	var av complex128
	for i = 0; i < na; i++ {
		for j = 0; j < na; j++ {
			av = a[i*na+j]
			if av == 0 {
				continue
			}
			for p = 0; p < nb; p++ {
				for q = 0; q < nb; q++ {
					out[(i*nb+p)*n+(j*nb+q)] = av * b[p*nb+q]
				}
			}
		}
	}

	return out
}

// ctrace returns the trace of a square complex matrix.
func ctrace(a []complex128, n int) complex128 {
	var t complex128
	for i := 0; i < n; i++ {
		t += a[i*n+i]
	}

	return t
}

// pauliBasis builds the full n-qubit Pauli basis of 4ⁿ flat d×d matrices,
// d = 2ⁿ, in base-4 index order with qubit 0 most significant.
func pauliBasis(nQubits int) [][]complex128 {
	dim := 1
	for q := 0; q < 2*nQubits; q++ {
		dim *= 2 // dim = 4^nQubits
	}

	basis := make([][]complex128, dim)
	var idx, q, digit, size int
	for idx = 0; idx < dim; idx++ {
		// Decode base-4 digits from most significant (qubit 0) down.
		cur := []complex128{1}
		size = 1
		rem := idx
		div := dim / 4
		for q = 0; q < nQubits; q++ {
			digit = (rem / div) % 4
			cur = ckron(cur, size, pauli1q[digit], 2)
			size *= 2
			div /= 4
		}
		basis[idx] = cur
	}

	return basis
}

// FromUnitary converts a d×d unitary (d = 2ⁿ, row-major rows) into its real
// Pauli transfer matrix of shape 4ⁿ×4ⁿ.
// Implementation:
//   - Stage 1: Validate square shape and power-of-two dimension.
//   - Stage 2: Build the n-qubit Pauli basis; for each (i,j) compute
//     R[i][j] = Re(Tr[P_i · U · P_j · U†]) / d.
//
// Errors: ErrBadShape (empty / non-square / d not a power of two),
// ErrDimensionMismatch (ragged rows).
// Determinism: fixed (i,j) visitation; the imaginary parts cancel exactly
// for unitary input and are discarded.
// Complexity: Time O(16ⁿ · 8ⁿ) — fine for the 1–2 qubit gates this library
// targets; larger registers should supply PTMs directly.
func FromUnitary(u [][]complex128) (*Dense, error) {
	// Validate outer shape
	d := len(u)
	if d == 0 {
		return nil, ErrBadShape
	}
	// d must be a power of two (qubit register)
	nQubits := 0
	for v := d; v > 1; v /= 2 {
		if v%2 != 0 {
			return nil, ErrBadShape
		}
		nQubits++
	}
	if nQubits == 0 {
		return nil, ErrBadShape
	}

	// Flatten with rectangularity check
	flat := make([]complex128, d*d)
	for i := 0; i < d; i++ {
		if len(u[i]) != d {
			return nil, ErrDimensionMismatch
		}
		copy(flat[i*d:(i+1)*d], u[i])
	}

	basis := pauliBasis(nQubits)
	dim := len(basis) // 4^nQubits
	res, err := NewDense(dim, dim)
	if err != nil {
		return nil, err
	}

	udag := cdag(flat, d)
	var i, j int
	var conj []complex128
	for j = 0; j < dim; j++ {
		// E(P_j) = U · P_j · U† for a unitary channel
		conj = cmul(cmul(flat, basis[j], d), udag, d)
		for i = 0; i < dim; i++ {
			res.data[i*dim+j] = real(ctrace(cmul(basis[i], conj, d), d)) / float64(d)
		}
	}

	return res, nil
}

// NewIdentityTransfer returns the PTM of the identity operation on nQubits
// qubits (the 4ⁿ×4ⁿ identity matrix). Errors: ErrBadShape (nQubits < 1).
func NewIdentityTransfer(nQubits int) (*Dense, error) {
	if nQubits < 1 {
		return nil, ErrBadShape
	}
	dim := 1
	for q := 0; q < 2*nQubits; q++ {
		dim *= 2
	}
	res, err := NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		res.data[i*dim+i] = 1.0
	}

	return res, nil
}

// Named single-qubit unitaries (and CNOT) used by GateTransfer.
var (
	invSqrt2 = complex(1/math.Sqrt2, 0)

	unitaryI = [][]complex128{{1, 0}, {0, 1}}
	unitaryX = [][]complex128{{0, 1}, {1, 0}}
	unitaryY = [][]complex128{{0, -1i}, {1i, 0}}
	unitaryZ = [][]complex128{{1, 0}, {0, -1}}
	unitaryH = [][]complex128{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	unitaryS = [][]complex128{{1, 0}, {0, 1i}}
	unitaryT = [][]complex128{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}

	unitaryCNOT = [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
)

// rotationUnitary returns the unitary of RX/RY/RZ for angle theta.
func rotationUnitary(axis string, theta float64) [][]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := math.Sin(theta / 2)
	switch axis {
	case "RX":
		return [][]complex128{{c, complex(0, -s)}, {complex(0, -s), c}}
	case "RY":
		return [][]complex128{{c, complex(-s, 0)}, {complex(s, 0), c}}
	default: // RZ
		return [][]complex128{
			{cmplx.Exp(complex(0, -theta/2)), 0},
			{0, cmplx.Exp(complex(0, theta/2))},
		}
	}
}

// GateTransfer returns the PTM of a named gate. Supported names:
// "I", "X", "Y", "Z", "H", "S", "T" (no parameters), "RX", "RY", "RZ"
// (one angle parameter, radians) and "CNOT" (no parameters, two qubits,
// control first in the Pauli index ordering).
// Errors: ErrUnknownGate (unsupported name), ErrBadParameter (wrong
// parameter count). Complexity: dominated by FromUnitary.
func GateTransfer(name string, params ...float64) (*Dense, error) {
	switch name {
	case "I", "X", "Y", "Z", "H", "S", "T", "CNOT":
		// Fixed gates take no parameters
		if len(params) != 0 {
			return nil, ErrBadParameter
		}
	case "RX", "RY", "RZ":
		// Rotations take exactly one angle
		if len(params) != 1 {
			return nil, ErrBadParameter
		}
	default:
		return nil, ErrUnknownGate
	}

	switch name {
	case "I":
		return FromUnitary(unitaryI)
	case "X":
		return FromUnitary(unitaryX)
	case "Y":
		return FromUnitary(unitaryY)
	case "Z":
		return FromUnitary(unitaryZ)
	case "H":
		return FromUnitary(unitaryH)
	case "S":
		return FromUnitary(unitaryS)
	case "T":
		return FromUnitary(unitaryT)
	case "CNOT":
		return FromUnitary(unitaryCNOT)
	default:
		return FromUnitary(rotationUnitary(name, params[0]))
	}
}

// Depolarizing returns the PTM of the single-qubit local depolarizing
// channel ρ → (1−p)·ρ + (p/3)·(XρX + YρY + ZρZ): the diagonal matrix
// diag(1, 1−ε, 1−ε, 1−ε) with effective parameter ε = (4/3)·p.
// Errors: ErrBadParameter (p outside [0,1]).
func Depolarizing(p float64) (*Dense, error) {
	if !isFinite(p) || p < 0 || p > 1 {
		return nil, ErrBadParameter
	}

	res, err := NewDense(4, 4)
	if err != nil {
		return nil, err
	}
	shrink := 1 - (4.0/3.0)*p
	res.data[0] = 1.0
	res.data[1*4+1] = shrink
	res.data[2*4+2] = shrink
	res.data[3*4+3] = shrink

	return res, nil
}

// AmplitudeDamping returns the PTM of the single-qubit amplitude damping
// channel with decay probability g: non-unital, with the affine component
// showing up as R[3][0] = g.
// Errors: ErrBadParameter (g outside [0,1]).
func AmplitudeDamping(g float64) (*Dense, error) {
	if !isFinite(g) || g < 0 || g > 1 {
		return nil, ErrBadParameter
	}

	res, err := NewDense(4, 4)
	if err != nil {
		return nil, err
	}
	k := math.Sqrt(1 - g)
	res.data[0] = 1.0
	res.data[1*4+1] = k
	res.data[2*4+2] = k
	res.data[3*4+0] = g
	res.data[3*4+3] = 1 - g

	return res, nil
}

// PhaseDamping returns the PTM of the single-qubit phase damping channel
// with parameter lambda: diag(1, √(1−λ), √(1−λ), 1).
// Errors: ErrBadParameter (lambda outside [0,1]).
func PhaseDamping(lambda float64) (*Dense, error) {
	if !isFinite(lambda) || lambda < 0 || lambda > 1 {
		return nil, ErrBadParameter
	}

	res, err := NewDense(4, 4)
	if err != nil {
		return nil, err
	}
	k := math.Sqrt(1 - lambda)
	res.data[0] = 1.0
	res.data[1*4+1] = k
	res.data[2*4+2] = k
	res.data[3*4+3] = 1.0

	return res, nil
}

// Compose multiplies transfer matrices in application (circuit time) order:
// Compose(a, b, c) is the PTM of "apply a, then b, then c", i.e. the matrix
// product c·b·a. All operands must be square with identical dimensions.
// Errors: ErrBadParameter (no operands), ErrNilMatrix, ErrNonSquare,
// ErrDimensionMismatch. Complexity: O(k·n³) for k operands.
func Compose(ops ...*Dense) (*Dense, error) {
	if len(ops) == 0 {
		return nil, kernelErrorf(opCompose, ErrBadParameter)
	}

	// Validate all operands before multiplying
	for _, m := range ops {
		if err := ValidateNotNil(m); err != nil {
			return nil, kernelErrorf(opCompose, err)
		}
		if err := ValidateSquare(m); err != nil {
			return nil, kernelErrorf(opCompose, err)
		}
	}

	// Accumulate right-to-left: acc = ops[k]·...·ops[0]
	acc := ops[0].Clone()
	var err error
	for i := 1; i < len(ops); i++ {
		acc, err = Mul(ops[i], acc)
		if err != nil {
			return nil, kernelErrorf(opCompose, err)
		}
	}

	return acc, nil
}
