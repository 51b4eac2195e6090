package sfh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSFREfficiency_EarlyPlateau(t *testing.T) {
	p := DefaultSFHParams()

	// Well before the transition time the curve sits at LgE0.
	got := LogSFREfficiency([]float64{p.LgTC - 5}, p)
	require.Len(t, got, 1)
	assert.InDelta(t, p.LgE0, got[0], 1e-3)
}

func TestLogSFREfficiency_PeakValue(t *testing.T) {
	p := DefaultSFHParams()

	// At LgTC the early sigmoid sits at the midpoint and the late term vanishes.
	got := LogSFREfficiency([]float64{p.LgTC}, p)
	assert.InDelta(t, (p.LgE0+p.LgEC)/2, got[0], 1e-9)
}

func TestLogSFREfficiency_LateDecline(t *testing.T) {
	p := DefaultSFHParams()

	// GIVEN two times past the transition
	got := LogSFREfficiency([]float64{p.LgTC + 0.5, p.LgTC + 1.0}, p)

	// THEN the efficiency declines with the ALate power law
	assert.Less(t, got[1], got[0])
	// Deep into the decline the slope approaches ALate per dex.
	far := LogSFREfficiency([]float64{p.LgTC + 3, p.LgTC + 4}, p)
	assert.InDelta(t, p.ALate, far[1]-far[0], 1e-3)
}
