// SPDX-License-Identifier: MIT
// Package quasi: NoisyOperation — an implementable (noisy) operation.
//
// NoisyOperation is a tagged variant: every value carries an executable
// program fragment; a value MAY additionally carry the explicit transfer
// matrix of the operation's channel. Representation construction requires
// the matrix variant (the solver works on channel matrices); sampling and
// execution accept either (they only ever touch the program).

package quasi

import (
	"github.com/quasarlab/quasiq/channel"
	"github.com/quasarlab/quasiq/circuit"
)

// NoisyOperation is an implementable operation: a program fragment plus an
// optional transfer (super-operator) matrix. Immutable once constructed;
// values are safe to copy and share across goroutines.
type NoisyOperation struct {
	prog *circuit.Circuit
	mat  *channel.Dense // nil when the channel matrix is unknown
}

// NewNoisyOperation constructs the matrix-less variant from a program
// fragment. The program is cloned; the operation never aliases caller state.
// Errors: ErrInvalidParameter (nil program).
func NewNoisyOperation(prog *circuit.Circuit) (NoisyOperation, error) {
	if prog == nil {
		return NoisyOperation{}, opErrorf("NewNoisyOperation", ErrInvalidParameter)
	}

	return NoisyOperation{prog: prog.Clone()}, nil
}

// NewNoisyOperationWithMatrix constructs the full variant: program fragment
// plus explicit transfer matrix. Both inputs are cloned. The matrix must be
// square (transfer matrices always are).
// Errors: ErrInvalidParameter (nil program or nil matrix), channel.ErrNonSquare.
func NewNoisyOperationWithMatrix(prog *circuit.Circuit, m *channel.Dense) (NoisyOperation, error) {
	if prog == nil || m == nil {
		return NoisyOperation{}, opErrorf("NewNoisyOperationWithMatrix", ErrInvalidParameter)
	}
	if err := channel.ValidateSquare(m); err != nil {
		return NoisyOperation{}, opErrorf("NewNoisyOperationWithMatrix", err)
	}

	return NoisyOperation{prog: prog.Clone(), mat: m.Clone()}, nil
}

// Program returns a fresh copy of the executable program fragment.
func (n NoisyOperation) Program() *circuit.Circuit {
	return n.prog.Clone()
}

// programOps returns the fragment's operations without cloning the circuit
// wrapper. Internal fast path for the circuit sampler.
func (n NoisyOperation) programOps() []circuit.Operation {
	return n.prog.Operations()
}

// HasMatrix reports whether the explicit transfer matrix is present.
func (n NoisyOperation) HasMatrix() bool {
	return n.mat != nil
}

// Matrix returns a fresh copy of the transfer matrix.
// Errors: ErrMissingMatrix when this is the matrix-less variant.
func (n NoisyOperation) Matrix() (*channel.Dense, error) {
	if n.mat == nil {
		return nil, opErrorf("Matrix", ErrMissingMatrix)
	}

	return n.mat.Clone(), nil
}

// matrix returns the stored matrix pointer for read-only internal use.
func (n NoisyOperation) matrix() *channel.Dense {
	return n.mat
}

// Equal reports whether two noisy operations carry equal program fragments.
// The transfer matrix does not participate: two handles implementing the
// same program are the same implementable operation regardless of how much
// is known about their channels.
func (n NoisyOperation) Equal(other NoisyOperation) bool {
	return n.prog.Equal(other.prog)
}
