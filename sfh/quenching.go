package sfh

// quenchDepth is the suppression, in dex, of a fully quenched halo's SFR.
const quenchDepth = 3.0

// LogQuenchingSuppression evaluates the gradual quenching curve at every
// log10 time in logt: identically ~0 well before 10^logQTime Gyr, then a
// monotonically decreasing sigmoid drop of quenchDepth dex as quenching
// proceeds. Additive in log space, so multiplicative suppression of the
// SFR in linear space.
func LogQuenchingSuppression(logt []float64, logQTime, qSpeed float64) []float64 {
	out := make([]float64, len(logt))
	for i, x := range logt {
		out[i] = sigmoid(x, logQTime, qSpeed, 0, -quenchDepth)
	}
	return out
}
