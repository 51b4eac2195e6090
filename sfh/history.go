package sfh

import (
	"fmt"
	"math"
)

// DefaultLogSSFRClip is the default floor for log10 specific SFR,
// modelling the minimum detectable specific star-formation rate.
const DefaultLogSSFRClip = -11

// HistoryConfig groups the per-halo model inputs for PredictInSituHistory.
type HistoryConfig struct {
	MAH             MAHParams // mass accretion history shape
	SFH             SFHParams // SFR efficiency shape + quenching pair
	Tmp             float64   // cosmic time of peak halo mass, Gyr
	FstarTimescales []float64 // trailing window lengths tau, Gyr (may be empty)
	LogSSFRClip     float64   // floor applied to log10 sSFR
}

// DefaultHistoryConfig returns the documented defaults: median Milky-Way
// shape parameters, peak mass attained today, no Fstar windows, sSFR
// floored at DefaultLogSSFRClip.
func DefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		MAH:         DefaultMAHParams(),
		SFH:         DefaultSFHParams(),
		Tmp:         Today,
		LogSSFRClip: DefaultLogSSFRClip,
	}
}

// History holds one halo's predicted curves, co-indexed with the query
// times the prediction ran on. Fstar is always present and holds one curve
// per requested timescale, in request order; it is empty when no
// timescales were requested.
type History struct {
	T       []float64   // query cosmic times, Gyr
	LogMAH  []float64   // log10 halo mass, Msun
	LogSM   []float64   // log10 cumulative in-situ stellar mass, Msun
	LogSSFR []float64   // log10 specific SFR, floored at the configured clip
	Fstar   [][]float64 // fraction of stellar mass formed in (t-tau, t), per tau
}

// PredictInSituHistory predicts the stellar-mass growth history of a single
// halo with peak mass logmp (log10 Msun) on the query cosmic times.
//
// cosmicTime doubles as the integration grid, so it should be dense enough
// for accurate midpoint-rule integration; around 100 points or more over
// the range of interest is typically sufficient. Some entry must lie
// within TmpTolerance of cfg.Tmp.
//
// Preconditions are checked before any numeric work; no partial results
// are ever produced.
func PredictInSituHistory(cosmicTime []float64, logmp float64, cfg HistoryConfig) (*History, error) {
	for _, tau := range cfg.FstarTimescales {
		if tau <= 0 {
			return nil, fmt.Errorf("fstar timescale must be strictly positive, got %v", tau)
		}
	}

	tt, err := NewTimeTable(cosmicTime)
	if err != nil {
		return nil, err
	}

	logMAH, logDMHDT, err := HaloAssemblyHistory(tt, logmp, cfg.Tmp, cfg.MAH)
	if err != nil {
		return nil, err
	}

	logSFR := composeLogSFR(tt.LogT, logDMHDT, cfg.SFH)
	logSM := CumulativeStellarMass(logSFR, tt.Dt)

	logSSFR := make([]float64, len(logSFR))
	for i := range logSSFR {
		logSSFR[i] = math.Max(logSFR[i]-logSM[i], cfg.LogSSFRClip)
	}

	fstar := make([][]float64, 0, len(cfg.FstarTimescales))
	for _, tau := range cfg.FstarTimescales {
		fs, err := ComputeFstar(tt, logSM, tau)
		if err != nil {
			return nil, err
		}
		fstar = append(fstar, fs)
	}

	return &History{
		T:       cosmicTime,
		LogMAH:  logMAH,
		LogSM:   logSM,
		LogSSFR: logSSFR,
		Fstar:   fstar,
	}, nil
}
