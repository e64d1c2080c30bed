// SPDX-License-Identifier: MIT
// Package quasi: noisy-operation basis builders.
//
// A basis is an ordered slice of NoisyOperations spanning enough of channel
// space to decompose an ideal operation. The depolarizing builder covers
// the textbook case; arbitrary bases can be assembled by hand from
// NewNoisyOperationWithMatrix and fed to Represent.

package quasi

import (
	"github.com/quasarlab/quasiq/channel"
	"github.com/quasarlab/quasiq/circuit"
)

// pauliNames lists the single-qubit Pauli labels in canonical order. The
// depolarizing basis is built in exactly this order, and the closed-form
// coefficients in RepresentDepolarizing index against it.
var pauliNames = [4]string{"I", "X", "Y", "Z"}

// DepolarizingBasis builds the canonical four-element basis for a
// single-qubit ideal gate under local depolarizing noise with probability p:
// for each Pauli P in {I, X, Y, Z}, the implementable operation is
//
//	program: [ideal, P]           (Pauli appended after the ideal gate)
//	channel: D(p) ∘ P ∘ ideal     (one depolarizing layer after the pair)
//
// The noise convention matches a backend that applies one depolarizing layer
// per compiled operation pair; the exact channel matrices make the basis
// usable by both the closed-form and the numeric representer.
//
// Stage 1 (Validate): ideal must act on exactly one qubit; its label must
// have a registered transfer matrix; p must lie in [0,1].
// Stage 2 (Execute): assemble the four programs and compose their channels.
// Errors: ErrInvalidParameter (multi-qubit ideal), channel.ErrUnknownGate,
// channel.ErrBadParameter (p out of domain).
// Complexity: O(1) — four 4×4 compositions.
func DepolarizingBasis(ideal circuit.Gate, p float64) ([]NoisyOperation, error) {
	const tag = "DepolarizingBasis"

	// Single-qubit gates only: the closed-form machinery is single-qubit.
	qubits := ideal.Qubits()
	if len(qubits) != 1 {
		return nil, opErrorf(tag, ErrInvalidParameter)
	}

	// Transfer matrix of the ideal gate.
	idealPTM, err := channel.GateTransfer(ideal.Label(), ideal.Params()...)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// One shared depolarizing layer.
	noise, err := channel.Depolarizing(p)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	basis := make([]NoisyOperation, 0, len(pauliNames))
	for _, name := range pauliNames {
		// Program fragment: ideal gate followed by the Pauli on the same qubit.
		prog, err := circuit.New(ideal, circuit.NewGate(name, qubits))
		if err != nil {
			return nil, opErrorf(tag, err)
		}

		// Channel: ideal, then Pauli, then the depolarizing layer.
		pauliPTM, err := channel.GateTransfer(name)
		if err != nil {
			return nil, opErrorf(tag, err)
		}
		mat, err := channel.Compose(idealPTM, pauliPTM, noise)
		if err != nil {
			return nil, opErrorf(tag, err)
		}

		op, err := NewNoisyOperationWithMatrix(prog, mat)
		if err != nil {
			return nil, opErrorf(tag, err)
		}
		basis = append(basis, op)
	}

	return basis, nil
}
