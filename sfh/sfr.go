package sfh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// FB is the cosmic baryon fraction: the fraction of accreted halo
	// mass that arrives as baryons available for star formation.
	FB = 0.158

	// gyrToYrExponent converts a Gyr-integrated rate in Msun/yr to Msun.
	gyrToYrExponent = 9.0
)

// composeLogSFR chains the three model curves into log10 SFR in Msun/yr:
//
//	log SFR = log10(FB) + log dMh/dt + log efficiency + log quenching
//
// Pure pointwise composition, differentiable end to end.
func composeLogSFR(logt, logDMHDT []float64, p SFHParams) []float64 {
	logEff := LogSFREfficiency(logt, p)
	logQ := LogQuenchingSuppression(logt, p.LogQTime, p.QSpeed)

	lgFB := math.Log10(FB)
	out := make([]float64, len(logt))
	for i := range out {
		out[i] = lgFB + logDMHDT[i] + logEff[i] + logQ[i]
	}
	return out
}

// CumulativeStellarMass integrates log10 SFR (Msun/yr) over the grid into
// log10 cumulative stellar mass (Msun): a midpoint-rule cumulative sum of
// the linear-space SFR weighted by the local spacing in Gyr, shifted by
// gyrToYrExponent for the Gyr to yr unit conversion. Non-decreasing by
// construction; under/overflow in extreme parameter regimes is the
// caller's responsibility.
func CumulativeStellarMass(logSFR, dt []float64) []float64 {
	w := make([]float64, len(logSFR))
	for i := range w {
		w[i] = math.Pow(10, logSFR[i]) * dt[i]
	}
	sm := floats.CumSum(make([]float64, len(w)), w)

	logSM := make([]float64, len(sm))
	for i, m := range sm {
		logSM[i] = math.Log10(m) + gyrToYrExponent
	}
	return logSM
}

// ComputeFstar returns, for every grid time, the fraction of stellar mass
// formed within the trailing window (t - tau, t). Lag times falling before
// the grid clamp to the first grid time rather than extrapolating; the
// lagged stellar mass is interpolated in log-log space against the grid.
// Negative fractions from interpolation noise select to 0, so every value
// lies in [0, 1). logSM is assumed monotonic.
func ComputeFstar(tt *TimeTable, logSM []float64, tau float64) ([]float64, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("fstar timescale must be strictly positive, got %v", tau)
	}

	out := make([]float64, len(tt.T))
	for i, t := range tt.T {
		tLag := math.Max(t-tau, tt.T[0])
		logSMLag := interpClampedAt(math.Log10(tLag), tt.LogT, logSM)
		fs := 1 - math.Pow(10, logSMLag-logSM[i])
		out[i] = math.Max(fs, 0)
	}
	return out, nil
}
