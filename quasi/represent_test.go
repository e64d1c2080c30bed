// Package quasi_test verifies representation construction: closed-form
// depolarizing coefficients, the numeric solver, their agreement, and the
// infeasibility conditions.
package quasi_test

import (
	"testing"

	"github.com/quasarlab/quasiq/channel"
	"github.com/quasarlab/quasiq/circuit"
	"github.com/quasarlab/quasiq/quasi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noiseLevels sweeps the depolarizing probability across its domain.
var noiseLevels = []float64{0, 0.001, 0.01, 0.05, 0.1, 0.3, 0.6}

// TestRepresentDepolarizing_CoeffsSumToOne verifies the exact-decomposition
// invariant across the noise sweep.
func TestRepresentDepolarizing_CoeffsSumToOne(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	for _, p := range noiseLevels {
		rep, err := quasi.RepresentDepolarizing(g, p)
		require.NoError(t, err, "p=%v must be representable", p)

		var sum float64
		for _, eta := range rep.Coeffs() {
			sum += eta
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "coefficients must sum to 1 at p=%v", p)
	}
}

// TestRepresentDepolarizing_ClosedForm pins the documented formula at one
// hand-computed noise level.
func TestRepresentDepolarizing_ClosedForm(t *testing.T) {
	// p = 0.03 ⇒ eps = 0.04; eta_1 = 1 + 0.75·0.04/0.96, off = −0.25·0.04/0.96.
	rep, err := quasi.RepresentDepolarizing(circuit.NewGate("X", []int{0}), 0.03)
	require.NoError(t, err)

	etas := rep.Coeffs()
	require.Len(t, etas, 4, "depolarizing basis has four terms")
	assert.InDelta(t, 1.03125, etas[0], 1e-12, "identity coefficient")
	for i := 1; i < 4; i++ {
		assert.InDelta(t, -0.0104166666666667, etas[i], 1e-12, "Pauli coefficient %d", i)
	}
}

// TestGamma_Properties verifies gamma >= 1 with equality exactly in the
// noiseless case, and monotone growth with noise.
func TestGamma_Properties(t *testing.T) {
	g := circuit.NewGate("H", []int{0})

	prev := 0.0
	for _, p := range noiseLevels {
		rep, err := quasi.RepresentDepolarizing(g, p)
		require.NoError(t, err)

		gamma := rep.Gamma()
		assert.GreaterOrEqual(t, gamma, 1.0, "gamma >= 1 at p=%v", p)
		if p == 0 {
			assert.InDelta(t, 1.0, gamma, 1e-12, "noiseless basis has gamma == 1")
		} else {
			assert.Greater(t, gamma, 1.0, "noisy basis has gamma > 1 at p=%v", p)
		}
		assert.GreaterOrEqual(t, gamma, prev, "gamma is monotone in p")
		prev = gamma
	}
}

// TestRepresentDepolarizing_Domain verifies the formula's domain guard:
// eps = (4/3)p must stay below 1.
func TestRepresentDepolarizing_Domain(t *testing.T) {
	g := circuit.NewGate("H", []int{0})

	_, err := quasi.RepresentDepolarizing(g, 0.75)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "p = 3/4 has no finite decomposition")

	_, err = quasi.RepresentDepolarizing(g, -0.1)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "negative p must error")

	// Multi-qubit ideal gates are outside the closed-form machinery.
	_, err = quasi.RepresentDepolarizing(circuit.NewGate("CNOT", []int{0, 1}), 0.01)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "two-qubit ideal must error")
}

// TestRepresent_MatchesClosedForm verifies that the numeric least-squares
// path reproduces the closed-form representation within tolerance —
// equality across construction paths.
func TestRepresent_MatchesClosedForm(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	for _, p := range []float64{0.01, 0.05, 0.2} {
		closed, err := quasi.RepresentDepolarizing(g, p)
		require.NoError(t, err)

		idealPTM, err := channel.GateTransfer("H")
		require.NoError(t, err)
		basis, err := quasi.DepolarizingBasis(g, p)
		require.NoError(t, err)

		numeric, err := quasi.Represent(g, idealPTM, basis)
		require.NoError(t, err, "spanning basis must be feasible at p=%v", p)

		assert.True(t, closed.Equal(numeric, 1e-6), "closed-form and numeric paths must agree at p=%v", p)
		assert.InDelta(t, closed.Gamma(), numeric.Gamma(), 1e-6, "gammas must agree at p=%v", p)
	}
}

// TestRepresent_InfeasibleBasis verifies the rank-deficiency condition:
// a basis of four copies of the same operation cannot span the channel.
func TestRepresent_InfeasibleBasis(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	basis, err := quasi.DepolarizingBasis(g, 0.01)
	require.NoError(t, err)

	degenerate := []quasi.NoisyOperation{basis[0], basis[0], basis[0], basis[0]}
	idealPTM, err := channel.GateTransfer("H")
	require.NoError(t, err)

	_, err = quasi.Represent(g, idealPTM, degenerate)
	assert.ErrorIs(t, err, quasi.ErrInfeasibleBasis, "duplicate basis terms must be infeasible")
}

// TestRepresent_OutOfSpan verifies the residual gate: a basis that spans
// only part of channel space cannot reconstruct a general ideal gate.
func TestRepresent_OutOfSpan(t *testing.T) {
	// A single-element basis holding the identity channel cannot express H.
	identPTM, err := channel.GateTransfer("I")
	require.NoError(t, err)
	prog, err := circuit.New(circuit.NewGate("I", []int{0}))
	require.NoError(t, err)
	op, err := quasi.NewNoisyOperationWithMatrix(prog, identPTM)
	require.NoError(t, err)

	idealPTM, err := channel.GateTransfer("H")
	require.NoError(t, err)

	_, err = quasi.Represent(nil, idealPTM, []quasi.NoisyOperation{op})
	assert.ErrorIs(t, err, quasi.ErrInfeasibleBasis, "out-of-span target must be infeasible")
}

// TestRepresent_MissingMatrix verifies the tagged-variant rule: solving
// requires the matrix-carrying variant.
func TestRepresent_MissingMatrix(t *testing.T) {
	prog, err := circuit.New(circuit.NewGate("H", []int{0}))
	require.NoError(t, err)
	op, err := quasi.NewNoisyOperation(prog)
	require.NoError(t, err)
	require.False(t, op.HasMatrix())

	idealPTM, err := channel.GateTransfer("H")
	require.NoError(t, err)

	_, err = quasi.Represent(nil, idealPTM, []quasi.NoisyOperation{op})
	assert.ErrorIs(t, err, quasi.ErrMissingMatrix, "matrix-less basis element must error")
}

// TestNewRepresentation_Validation covers aligned-slice and sum-to-one guards.
func TestNewRepresentation_Validation(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	basis, err := quasi.DepolarizingBasis(g, 0.01)
	require.NoError(t, err)

	_, err = quasi.NewRepresentation(g, basis, []float64{1, 0})
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "misaligned slices must error")

	_, err = quasi.NewRepresentation(g, basis, []float64{0.5, 0.1, 0.1, 0.1})
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "coefficients not summing to 1 must error")

	_, err = quasi.NewRepresentation(g, nil, nil)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "empty basis must error")
}

// TestRepresentation_Equal covers the tolerance-aware equality surface.
func TestRepresentation_Equal(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	a, err := quasi.RepresentDepolarizing(g, 0.02)
	require.NoError(t, err)
	b, err := quasi.RepresentDepolarizing(g, 0.02)
	require.NoError(t, err)
	c, err := quasi.RepresentDepolarizing(g, 0.03)
	require.NoError(t, err)

	assert.True(t, a.Equal(b, 1e-12), "same construction must be equal")
	assert.False(t, a.Equal(c, 1e-6), "different noise levels must differ")
	assert.False(t, a.Equal(nil, 1e-6), "non-nil never equals nil")
}
