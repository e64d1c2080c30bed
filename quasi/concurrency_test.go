// Package quasi_test verifies that concurrent execution never changes the
// estimate: draws happen up front from an explicit source, and collection
// is index-aligned, so only wall-clock order may differ between runs.
package quasi_test

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/quasarlab/quasiq/circuit"
	"github.com/quasarlab/quasiq/quasi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingExecutor measures deterministically per circuit length and counts
// concurrent in-flight executions.
type countingExecutor struct {
	inFlight atomic.Int64
	peak     atomic.Int64
	calls    atomic.Int64
}

func (e *countingExecutor) exec(_ context.Context, c *circuit.Circuit) (float64, error) {
	cur := e.inFlight.Add(1)
	// Track the high-water mark of concurrent executions.
	for {
		p := e.peak.Load()
		if cur <= p || e.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	e.calls.Add(1)

	// Deterministic pseudo-measurement from the circuit structure alone.
	v := 1.0 / float64(1+c.Len())

	e.inFlight.Add(-1)

	return v, nil
}

// TestEstimate_SerialConcurrentAgree verifies bit-identical results between
// serial and fan-out execution of the same sample set.
func TestEstimate_SerialConcurrentAgree(t *testing.T) {
	g := circuit.NewGate("H", []int{0})
	rep := mustRep(t, g, 0.1)
	ideal, err := circuit.New(g, g, g)
	require.NoError(t, err)
	reps := []*quasi.Representation{rep, rep, rep}

	samples, _, _, err := quasi.SampleCircuit(ideal, reps, 400, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	serialExec := &countingExecutor{}
	serial, err := quasi.Estimate(context.Background(), samples, serialExec.exec)
	require.NoError(t, err)

	parallelExec := &countingExecutor{}
	parallel, err := quasi.Estimate(context.Background(), samples, parallelExec.exec,
		quasi.WithMaxConcurrency(8))
	require.NoError(t, err)

	// The reduction is index-ordered, so the results are identical bits.
	assert.Equal(t, serial.Value(), parallel.Value(), "estimates must agree exactly")
	assert.Equal(t, serial.StdErr(), parallel.StdErr(), "errors must agree exactly")
	assert.Equal(t, serial.Unbiased(), parallel.Unbiased(), "per-sample values must agree exactly")

	assert.EqualValues(t, 400, serialExec.calls.Load(), "every sample executed once")
	assert.EqualValues(t, 400, parallelExec.calls.Load(), "every sample executed once")
	assert.LessOrEqual(t, parallelExec.peak.Load(), int64(8), "fan-out must respect the bound")
	assert.LessOrEqual(t, serialExec.peak.Load(), int64(1), "default execution is serial")
}

// TestRun_SeedIndependentOfConcurrency verifies end to end that the seed
// alone fixes the outcome, regardless of executor fan-out.
func TestRun_SeedIndependentOfConcurrency(t *testing.T) {
	g := circuit.NewGate("X", []int{0})
	rep := mustRep(t, g, 0.08)
	ideal, err := circuit.New(g)
	require.NoError(t, err)

	exec := &countingExecutor{}
	runWith := func(conc int) *quasi.Result {
		res, rErr := quasi.Run(context.Background(), ideal, []*quasi.Representation{rep}, exec.exec,
			quasi.WithNumSamples(500),
			quasi.WithSeed(99),
			quasi.WithMaxConcurrency(conc))
		require.NoError(t, rErr)

		return res
	}

	assert.Equal(t, runWith(1).Value(), runWith(6).Value(), "seed fixes the estimate under any fan-out")
}
