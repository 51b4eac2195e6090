package sfh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpClampedAt_MidpointAndNodes(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 40}

	assert.InDelta(t, 10.0, interpClampedAt(1, x, y), 1e-12)
	assert.InDelta(t, 20.0, interpClampedAt(2, x, y), 1e-12)
	assert.InDelta(t, 15.0, interpClampedAt(1.5, x, y), 1e-12)
	assert.InDelta(t, 30.0, interpClampedAt(2.5, x, y), 1e-12)
}

func TestInterpClampedAt_ClampsOutsideRange(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 40}

	// Queries beyond either end clamp to the end values, never extrapolate.
	assert.InDelta(t, 10.0, interpClampedAt(0.5, x, y), 1e-12)
	assert.InDelta(t, 40.0, interpClampedAt(99, x, y), 1e-12)
}

func TestResampleLogTime_RoundTripIdentity(t *testing.T) {
	// GIVEN a curve tabulated on the dense default table
	tt := DefaultTimeTable()
	curve := make([]float64, len(tt.T))
	for i, x := range tt.LogT {
		curve[i] = 3*x*x - 2*x + 1
	}

	// WHEN the curve is resampled onto its own grid
	got := ResampleLogTime(tt.T, tt.T, curve)

	// THEN the original values come back to floating-point precision
	require.Len(t, got, len(curve))
	for i := range curve {
		assert.InDelta(t, curve[i], got[i], 1e-12)
	}
}

func TestResampleLogTime_LinearInLogTime(t *testing.T) {
	// A curve linear in log10 t must be reproduced exactly at any query.
	grid := []float64{1, 10, 100}
	curve := []float64{0, 1, 2} // log10(t)
	got := ResampleLogTime([]float64{3.1622776601683795}, grid, curve)
	assert.InDelta(t, 0.5, got[0], 1e-12)
}
