package sfh

// LogSFREfficiency evaluates the main-sequence star-formation efficiency
// curve, log10 of the fraction of accreted baryons turned into stars, at
// every log10 time in logt.
//
// The curve rises from LgE0 to LgEC through a KEarly-speed sigmoid centered
// on LgTC, then bends into an ALate power-law decline past LgTC with
// transition speed KTrans.
func LogSFREfficiency(logt []float64, p SFHParams) []float64 {
	out := make([]float64, len(logt))
	for i, x := range logt {
		early := sigmoid(x, p.LgTC, p.KEarly, p.LgE0, p.LgEC)
		late := sigmoid(x, p.LgTC, p.KTrans, 0, 1) * p.ALate * (x - p.LgTC)
		out[i] = early + late
	}
	return out
}
