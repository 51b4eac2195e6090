package sfh

import "math"

// sigmoid rolls smoothly from ymin to ymax around x0 with speed k.
func sigmoid(x, x0, k, ymin, ymax float64) float64 {
	return ymin + (ymax-ymin)/(1+math.Exp(-k*(x-x0)))
}

// logistic is the unit sigmoid, kept separate for derivative terms.
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// HaloAssemblyHistory evaluates a halo's mass accretion history on the
// grid: log10 halo mass in Msun and log10 dMh/dt in Msun/yr.
//
// The mass history is a power law in cosmic time anchored at the peak,
//
//	log10 Mh(t) = logmp + a(log10 t) * (log10 t - log10 tmp)
//
// with a rolling index a(x) = sigmoid(x; X0, K, EarlyIndex, LateIndex).
// The accretion rate follows analytically from the same form, so the pair
// of curves is exactly self-consistent. Mh attains logmp at tmp and the
// curve is increasing for all sane parameter choices (EarlyIndex >
// LateIndex > 0).
//
// Precondition: some entry of the grid lies within TmpTolerance of tmp.
func HaloAssemblyHistory(tt *TimeTable, logmp, tmp float64, p MAHParams) (logMAH, logDMHDT []float64, err error) {
	if _, err := tt.IndexOfTmp(tmp); err != nil {
		return nil, nil, err
	}

	xp := math.Log10(tmp)
	n := len(tt.T)
	logMAH = make([]float64, n)
	logDMHDT = make([]float64, n)
	for i := 0; i < n; i++ {
		x := tt.LogT[i]
		s := logistic(p.K * (x - p.X0))
		a := p.EarlyIndex + (p.LateIndex-p.EarlyIndex)*s
		da := p.K * (p.LateIndex - p.EarlyIndex) * s * (1 - s)

		logMAH[i] = logmp + a*(x-xp)

		// d log10 Mh / d log10 t, then dMh/dt = Mh * dlogM/dlogt / t,
		// converted from Msun/Gyr to Msun/yr.
		dlogM := a + da*(x-xp)
		logDMHDT[i] = logMAH[i] + math.Log10(dlogM) - x - gyrToYrExponent
	}
	return logMAH, logDMHDT, nil
}
