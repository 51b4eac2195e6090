package sfh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogQuenchingSuppression_ZeroBeforeOnset(t *testing.T) {
	// Well before 10^log_qtime the suppression is identically ~0.
	got := LogQuenchingSuppression([]float64{-3}, 0.9, 5)
	assert.InDelta(t, 0.0, got[0], 1e-6)
}

func TestLogQuenchingSuppression_MonotoneDecreasing(t *testing.T) {
	logt := []float64{0.0, 0.5, 0.9, 1.1, 1.5, 2.0}
	got := LogQuenchingSuppression(logt, 0.9, 5)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i], got[i-1])
	}
	// Midpoint of the drop sits at the onset time.
	assert.InDelta(t, -quenchDepth/2, got[2], 1e-9)
	// Fully quenched halos saturate at the suppression depth.
	deep := LogQuenchingSuppression([]float64{10}, 0.9, 5)
	assert.InDelta(t, -quenchDepth, deep[0], 1e-6)
}
