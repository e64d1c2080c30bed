// Package quasi_test verifies the Monte Carlo samplers: reproducibility
// under explicit seeding, the law-of-large-numbers identity, and the
// circuit-level gamma invariant.
package quasi_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/quasarlab/quasiq/circuit"
	"github.com/quasarlab/quasiq/quasi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRep builds a depolarizing representation or fails the test.
func mustRep(t *testing.T, g circuit.Gate, p float64) *quasi.Representation {
	t.Helper()
	rep, err := quasi.RepresentDepolarizing(g, p)
	require.NoError(t, err, "fixture representation must build")

	return rep
}

// TestSample_Reproducible verifies that an explicit seed fully determines
// the draw sequence.
func TestSample_Reproducible(t *testing.T) {
	rep := mustRep(t, circuit.NewGate("H", []int{0}), 0.2)

	draw := func(seed int64) []float64 {
		rng := rand.New(rand.NewSource(seed))
		signs := make([]float64, 200)
		for i := range signs {
			s, err := rep.Sample(rng)
			require.NoError(t, err)
			signs[i] = s.Sign
		}

		return signs
	}

	assert.Equal(t, draw(7), draw(7), "same seed must reproduce the draw sequence")
}

// TestSample_Validation covers the nil-source guard.
func TestSample_Validation(t *testing.T) {
	rep := mustRep(t, circuit.NewGate("H", []int{0}), 0.1)

	_, err := rep.Sample(nil)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "nil random source must error")

	var nilRep *quasi.Representation
	_, err = nilRep.Sample(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "nil receiver must error")
}

// TestSample_LawOfLargeNumbers verifies the unbiasedness identity at the
// single-operation level: E[gamma·sign] == sum(etas) == 1.
func TestSample_LawOfLargeNumbers(t *testing.T) {
	rep := mustRep(t, circuit.NewGate("H", []int{0}), 0.1)
	gamma := rep.Gamma()

	const n = 100000
	rng := rand.New(rand.NewSource(42))
	var sum float64
	for i := 0; i < n; i++ {
		s, err := rep.Sample(rng)
		require.NoError(t, err)
		sum += gamma * s.Sign
	}

	assert.InDelta(t, 1.0, sum/n, 0.01, "mean(gamma·sign) must converge to 1")
}

// TestSample_Frequencies verifies that draws follow |eta_j|/gamma: the
// positive identity-like term must dominate at the expected rate.
func TestSample_Frequencies(t *testing.T) {
	rep := mustRep(t, circuit.NewGate("X", []int{0}), 0.1)
	etas := rep.Coeffs()
	wantPositive := etas[0] / rep.Gamma() // |eta_1|/gamma; eta_1 > 0

	const n = 100000
	rng := rand.New(rand.NewSource(11))
	positive := 0
	for i := 0; i < n; i++ {
		s, err := rep.Sample(rng)
		require.NoError(t, err)
		if s.Sign > 0 {
			positive++
		}
	}

	assert.InDelta(t, wantPositive, float64(positive)/n, 0.01, "empirical frequency of the positive term")
}

// TestSampleCircuit_GammaProduct verifies the circuit-level invariant for
// circuits of 1..5 gates: gamma equals the product of per-gate gammas and
// is identical across all samples.
func TestSampleCircuit_GammaProduct(t *testing.T) {
	levels := []float64{0.01, 0.05, 0.1, 0.2, 0.3}

	for size := 1; size <= 5; size++ {
		gates := make([]circuit.Operation, 0, size)
		reps := make([]*quasi.Representation, 0, size)
		wantGamma := 1.0
		for i := 0; i < size; i++ {
			g := circuit.NewGate("H", []int{0})
			rep := mustRep(t, g, levels[i])
			gates = append(gates, g)
			reps = append(reps, rep)
			wantGamma *= rep.Gamma()
		}
		ideal, err := circuit.New(gates...)
		require.NoError(t, err)

		samples, signs, gamma, err := quasi.SampleCircuit(ideal, reps, 50, rand.New(rand.NewSource(3)))
		require.NoError(t, err, "size=%d", size)

		assert.InDelta(t, wantGamma, gamma, 1e-12, "circuit gamma must be the product of per-gate gammas (size=%d)", size)
		require.Len(t, samples, 50)
		require.Len(t, signs, 50)
		for i, s := range samples {
			assert.Equal(t, gamma, s.Gamma, "gamma must be constant across samples (size=%d)", size)
			assert.Equal(t, signs[i], s.Sign, "signs slice must align with samples")
			assert.True(t, math.Abs(s.Sign) == 1, "sign is ±1")
			assert.Equal(t, 2*size, s.Circuit.Len(), "each position contributes a two-gate fragment")
		}
	}
}

// TestSampleCircuit_Validation covers the invalid-parameter conditions:
// non-positive sample count, length mismatch, nil inputs, and the
// position cross-check.
func TestSampleCircuit_Validation(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	rep := mustRep(t, g, 0.05)
	ideal, err := circuit.New(g)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, _, _, err = quasi.SampleCircuit(ideal, []*quasi.Representation{rep}, 0, rng)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "zero samples must error")

	_, _, _, err = quasi.SampleCircuit(ideal, nil, 10, rng)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "length mismatch must error")

	_, _, _, err = quasi.SampleCircuit(nil, []*quasi.Representation{rep}, 10, rng)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "nil circuit must error")

	_, _, _, err = quasi.SampleCircuit(ideal, []*quasi.Representation{rep}, 10, nil)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "nil random source must error")

	// Representation built for X cannot stand at an H position.
	other, err := circuit.New(circuit.NewGate("X", []int{0}))
	require.NoError(t, err)
	_, _, _, err = quasi.SampleCircuit(other, []*quasi.Representation{rep}, 10, rng)
	assert.ErrorIs(t, err, quasi.ErrInvalidParameter, "position cross-check must error")
}
