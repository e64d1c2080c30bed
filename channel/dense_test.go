// Package channel_test verifies Dense construction, indexing, and the
// finite-value ingestion policy.
package channel_test

import (
	"math"
	"testing"

	"github.com/quasarlab/quasiq/channel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected.
func TestNewDense_BadShape(t *testing.T) {
	_, err := channel.NewDense(0, 3)
	assert.ErrorIs(t, err, channel.ErrBadShape, "zero rows must error")

	_, err = channel.NewDense(3, -1)
	assert.ErrorIs(t, err, channel.ErrBadShape, "negative cols must error")
}

// TestDense_AtSet verifies round-trip element access and bounds checking.
func TestDense_AtSet(t *testing.T) {
	m, err := channel.NewDense(2, 3)
	require.NoError(t, err, "2x3 allocation should succeed")

	require.NoError(t, m.Set(1, 2, 4.5), "in-bounds Set should succeed")
	v, err := m.At(1, 2)
	assert.NoError(t, err, "in-bounds At should succeed")
	assert.Equal(t, 4.5, v, "At must read back the Set value")

	// Out-of-range indices must surface the sentinel, not panic.
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, channel.ErrOutOfRange, "row past end must error")
	err = m.Set(0, 3, 1.0)
	assert.ErrorIs(t, err, channel.ErrOutOfRange, "col past end must error")
}

// TestDense_SetRejectsNonFinite verifies the strict finite-value policy on Set.
func TestDense_SetRejectsNonFinite(t *testing.T) {
	m, err := channel.NewDense(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), channel.ErrNaNInf, "NaN must be rejected")
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), channel.ErrNaNInf, "+Inf must be rejected")
}

// TestNewDenseFromRows covers rectangularity and NaN/Inf validation at ingestion.
func TestNewDenseFromRows(t *testing.T) {
	m, err := channel.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err, "rectangular input should succeed")
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "row-major layout expected")

	// Ragged rows are a dimension mismatch.
	_, err = channel.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, channel.ErrDimensionMismatch, "ragged rows must error")

	// NaN rejected under the default policy, accepted when disabled.
	_, err = channel.NewDenseFromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, channel.ErrNaNInf, "NaN must be rejected by default")
	_, err = channel.NewDenseFromRows([][]float64{{math.NaN()}}, channel.WithValidateNaNInf(false))
	assert.NoError(t, err, "validation off should accept NaN")
}

// TestDense_CloneIndependence verifies that Clone shares no backing storage.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := channel.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

// TestNewIdentity verifies diagonal structure.
func TestNewIdentity(t *testing.T) {
	ident, err := channel.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aErr := ident.At(i, j)
			require.NoError(t, aErr)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

// TestVec verifies column-major vectorization order.
func TestVec(t *testing.T) {
	m, err := channel.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	v, err := channel.Vec(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, v, "Vec must stack columns")
}
