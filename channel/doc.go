// Package channel implements real-valued super-operator (Pauli-transfer)
// matrices and the small linear-algebra toolbox the representation solver
// needs: dense storage, element-wise and product kernels, Kronecker lifting,
// LU/QR factorizations, and least-squares solves.
//
// 🚀 What is a transfer matrix?
//
//	Any quantum operation E on n qubits acts linearly on the Pauli basis
//	{I,X,Y,Z}^⊗n. Collecting the coefficients gives a real 4ⁿ×4ⁿ matrix —
//	the Pauli transfer matrix (PTM). Composition of operations is matrix
//	multiplication, so exact-decomposition questions ("can the ideal gate
//	be written as a signed mixture of these noisy gates?") become linear
//	algebra over PTMs.
//
// ✨ Key features:
//   - Dense: row-major float64 matrix with strict shape & NaN/Inf policy
//   - kernels: Add, Sub, Mul, Scale, Transpose, MatVec, Kron
//   - factorizations: LU (Doolittle) and QR (Householder)
//   - solvers: SolveLU, LeastSquares (normal equations, residual reported)
//   - constructors: FromUnitary, GateTransfer, Depolarizing,
//     AmplitudeDamping, PhaseDamping, Compose
//
// ⚙️ Usage:
//
//	import "github.com/quasarlab/quasiq/channel"
//
//	h, _ := channel.GateTransfer("H")        // Hadamard PTM
//	d, _ := channel.Depolarizing(0.01)       // local depolarizing noise
//	noisy, _ := channel.Compose(h, d)        // H, then noise
//
// All operations are deterministic: fixed loop orders, no global state, and
// sentinel errors (errors.Is-friendly) instead of panics on user input.
package channel
