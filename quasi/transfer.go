// SPDX-License-Identifier: MIT
// Package quasi: circuit-level channel-matrix computation.

package quasi

import (
	"github.com/quasarlab/quasiq/channel"
	"github.com/quasarlab/quasiq/circuit"
)

// parameterized is the optional capability of an operation to expose gate
// parameters (rotation angles). Operations without it are parameterless.
type parameterized interface {
	Params() []float64
}

// ProgramTransfer computes the super-operator (Pauli-transfer) matrix of a
// whole circuit: each operation's matrix is looked up by label (plus
// parameters when the operation exposes them) and the matrices are composed
// in application order. Used when constructing representations from
// executable programs and when validating decompositions against exact
// channel algebra; never on the sampling/execution path.
//
// All operations must act on registers of the same dimension (mixing
// one-qubit and two-qubit matrices surfaces channel.ErrDimensionMismatch).
// Errors: ErrInvalidParameter (nil or empty circuit),
// channel.ErrUnknownGate, channel.ErrDimensionMismatch.
// Complexity: O(L·d³) for L operations on a d-dimensional transfer space.
func ProgramTransfer(c *circuit.Circuit) (*channel.Dense, error) {
	const tag = "ProgramTransfer"

	if c == nil || c.Len() == 0 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	mats := make([]*channel.Dense, 0, c.Len())
	for _, op := range c.Operations() {
		var params []float64
		if p, ok := op.(parameterized); ok {
			params = p.Params()
		}

		m, err := channel.GateTransfer(op.Label(), params...)
		if err != nil {
			return nil, opErrorf(tag, err)
		}
		mats = append(mats, m)
	}

	out, err := channel.Compose(mats...)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return out, nil
}
