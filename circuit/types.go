// Package circuit defines the ideal-circuit representation consumed by the
// sampling pipeline: a narrow Operation interface ("opaque operation handles,
// composable by concatenation") and an ordered, immutable-by-convention
// Circuit of such handles.
//
// The core algorithms never inspect an Operation beyond identity/equality;
// backend adapters (a Cirq-, Qiskit- or pyQuil-shaped gate type) only need
// to implement Operation to flow through sampling and execution.
//
// This file declares Operation, Gate, Circuit, sentinel errors, and the
// constructors.
//
// Errors:
//
//	ErrNilCircuit    - circuit pointer is nil.
//	ErrNilOperation  - an operation handle is nil.
//	ErrIndexOutOfRange - positional access outside [0, Len).
package circuit

import (
	"errors"
	"math"
)

// Sentinel errors for circuit operations.
var (
	// ErrNilCircuit indicates that a nil *Circuit was passed where a circuit
	// is required.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrNilOperation indicates that a nil Operation handle was supplied.
	ErrNilOperation = errors.New("circuit: operation is nil")

	// ErrIndexOutOfRange indicates positional access outside [0, Len).
	ErrIndexOutOfRange = errors.New("circuit: index out of range")
)

// paramEps is the absolute tolerance for comparing gate parameters.
const paramEps = 1e-9

// Operation is an opaque handle to one gate-like operation.
//
// Implementations must be immutable value-like types: the sampling pipeline
// copies handles freely across goroutines and never synchronizes access.
type Operation interface {
	// Label returns a short human-readable name ("H", "RZ", ...).
	Label() string

	// Qubits returns the qubit indices the operation acts on, in order.
	// Implementations must return a fresh slice (callers may not mutate
	// shared state through it).
	Qubits() []int

	// Equal reports semantic equality with another operation handle.
	Equal(other Operation) bool
}

// Gate is the canonical in-package Operation: a named gate acting on an
// ordered set of qubits with optional real parameters (rotation angles).
// Gate values are immutable once constructed.
type Gate struct {
	name   string
	qubits []int
	params []float64
}

// NewGate constructs a Gate acting on the given qubits with optional
// parameters. The input slices are copied; the Gate never aliases caller
// memory. An empty qubit list is valid for placeholder/barrier-like labels.
func NewGate(name string, qubits []int, params ...float64) Gate {
	q := make([]int, len(qubits))
	copy(q, qubits)
	p := make([]float64, len(params))
	copy(p, params)

	return Gate{name: name, qubits: q, params: p}
}

// Label returns the gate name.
func (g Gate) Label() string { return g.name }

// Qubits returns a fresh copy of the qubit indices.
func (g Gate) Qubits() []int {
	q := make([]int, len(g.qubits))
	copy(q, g.qubits)

	return q
}

// Params returns a fresh copy of the gate parameters.
func (g Gate) Params() []float64 {
	p := make([]float64, len(g.params))
	copy(p, g.params)

	return p
}

// Equal reports whether other is a Gate with the same name, qubits, and
// parameters (parameters compared within a small absolute tolerance).
func (g Gate) Equal(other Operation) bool {
	og, ok := other.(Gate)
	if !ok {
		return false
	}
	if g.name != og.name || len(g.qubits) != len(og.qubits) || len(g.params) != len(og.params) {
		return false
	}
	for i := range g.qubits {
		if g.qubits[i] != og.qubits[i] {
			return false
		}
	}
	for i := range g.params {
		if math.Abs(g.params[i]-og.params[i]) > paramEps {
			return false
		}
	}

	return true
}

// Circuit is an ordered sequence of Operation handles.
// The zero value is an empty circuit ready for Append.
type Circuit struct {
	ops []Operation
}

// New constructs a Circuit from the given operations, in order.
// Returns ErrNilOperation if any handle is nil.
func New(ops ...Operation) (*Circuit, error) {
	c := &Circuit{ops: make([]Operation, 0, len(ops))}
	if err := c.Append(ops...); err != nil {
		return nil, err
	}

	return c, nil
}
