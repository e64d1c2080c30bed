// Package circuit: Circuit methods (append, concatenation, access, equality).
//
// All mutating methods reject nil handles up front so a Circuit can never
// hold a nil Operation; all composition methods return fresh circuits and
// leave their inputs untouched (the sampler relies on this immutability).
package circuit

import "strings"

// Append adds operations to the end of the circuit, preserving order.
// Stage 1 (Validate): every handle must be non-nil (ErrNilOperation).
// Stage 2 (Execute): append in input order.
// Complexity: O(k) amortized for k new operations.
func (c *Circuit) Append(ops ...Operation) error {
	if c == nil {
		return ErrNilCircuit
	}
	// Validate before mutating: all-or-nothing append.
	for _, op := range ops {
		if op == nil {
			return ErrNilOperation
		}
	}
	c.ops = append(c.ops, ops...)

	return nil
}

// Concat returns a fresh circuit holding a's operations followed by b's.
// Inputs are never mutated; the result shares no slice storage with them.
// Errors: ErrNilCircuit if either input is nil.
// Complexity: O(len(a)+len(b)).
func Concat(a, b *Circuit) (*Circuit, error) {
	if a == nil || b == nil {
		return nil, ErrNilCircuit
	}

	out := &Circuit{ops: make([]Operation, 0, len(a.ops)+len(b.ops))}
	out.ops = append(out.ops, a.ops...)
	out.ops = append(out.ops, b.ops...)

	return out, nil
}

// Len returns the number of operations in the circuit.
// A nil circuit has length 0. Complexity: O(1).
func (c *Circuit) Len() int {
	if c == nil {
		return 0
	}

	return len(c.ops)
}

// At returns the operation at position i.
// Errors: ErrNilCircuit, ErrIndexOutOfRange. Complexity: O(1).
func (c *Circuit) At(i int) (Operation, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if i < 0 || i >= len(c.ops) {
		return nil, ErrIndexOutOfRange
	}

	return c.ops[i], nil
}

// Operations returns a fresh slice of the circuit's operation handles in
// order. The handles themselves are shared (they are immutable by contract).
// Complexity: O(n).
func (c *Circuit) Operations() []Operation {
	if c == nil {
		return nil
	}
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)

	return out
}

// Clone returns a fresh circuit with the same operation handles in order.
// Complexity: O(n).
func (c *Circuit) Clone() *Circuit {
	if c == nil {
		return nil
	}
	out := &Circuit{ops: make([]Operation, len(c.ops))}
	copy(out.ops, c.ops)

	return out
}

// Equal reports whether c and other hold pairwise-equal operations in the
// same order (via Operation.Equal). Two nil circuits are equal; nil and
// empty are also equal (both describe the empty program).
// Complexity: O(n) Operation.Equal calls.
func (c *Circuit) Equal(other *Circuit) bool {
	// Len is nil-safe; the loop bound must come from it, never from c.ops.
	n := c.Len()
	if n != other.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if !c.ops[i].Equal(other.ops[i]) {
			return false
		}
	}

	return true
}

// String renders the circuit as a space-separated list of labels, e.g.
// "H X RZ". Intended for debugging and test failure messages only.
// Complexity: O(n).
func (c *Circuit) String() string {
	if c == nil {
		return ""
	}
	labels := make([]string, len(c.ops))
	for i, op := range c.ops {
		labels[i] = op.Label()
	}

	return strings.Join(labels, " ")
}
