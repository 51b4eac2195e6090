package sfh

import "fmt"

// MAHParams describes the shape of a halo's mass accretion history: a
// power-law index that rolls from EarlyIndex to LateIndex through a sigmoid
// in log10 cosmic time.
type MAHParams struct {
	X0         float64 // log10 Gyr at which the rolling index transitions
	K          float64 // transition speed of the rolling index
	EarlyIndex float64 // power-law index well before the transition
	LateIndex  float64 // power-law index well after the transition
}

// DefaultMAHParams returns the median growth-history shape for a
// Milky-Way-scale halo.
func DefaultMAHParams() MAHParams {
	return MAHParams{
		X0:         0.15,
		K:          3.5,
		EarlyIndex: 3.0,
		LateIndex:  1.0,
	}
}

// SFHParams bundles the main-sequence SFR efficiency shape with the
// quenching onset time and speed.
type SFHParams struct {
	LgE0     float64 // asymptotic log10 SFR efficiency at early times
	KEarly   float64 // transition speed of the early efficiency rise
	LgTC     float64 // log10 Gyr of peak star formation
	LgEC     float64 // log10 SFR efficiency at the time of peak SFR
	KTrans   float64 // transition speed into the late-time decline
	ALate    float64 // late-time power-law index of the efficiency
	LogQTime float64 // log10 Gyr of the quenching onset
	QSpeed   float64 // quenching transition speed
}

// DefaultSFHParams returns efficiency-curve values for an average
// Milky-Way-scale halo and the canonical quenching pair.
func DefaultSFHParams() SFHParams {
	return SFHParams{
		LgE0:     -1.45,
		KEarly:   2.4,
		LgTC:     0.45,
		LgEC:     -0.6,
		KTrans:   6.0,
		ALate:    -2.5,
		LogQTime: 0.9,
		QSpeed:   5.0,
	}
}

// Column schema for the collection path, version 1. Parameter matrices
// passed to PredictInSituHistoryCollection must use exactly this ordering.
const (
	// MAHRowWidth is the number of columns in a MAH parameter row:
	// tmp, logmp, x0, k, early_index, late_index.
	MAHRowWidth = 6

	// SFHRowWidth is the number of columns in an SFH parameter row:
	// lge0, k_early, lgtc, lgec, k_trans, a_late, log_qtime, qspeed.
	SFHRowWidth = 8
)

// UnpackMAHRow converts one schema-ordered MAH row into named values.
func UnpackMAHRow(row []float64) (tmp, logmp float64, p MAHParams, err error) {
	if len(row) != MAHRowWidth {
		return 0, 0, MAHParams{}, fmt.Errorf("MAH row has %d columns, schema requires %d", len(row), MAHRowWidth)
	}
	p = MAHParams{X0: row[2], K: row[3], EarlyIndex: row[4], LateIndex: row[5]}
	return row[0], row[1], p, nil
}

// UnpackSFHRow converts one schema-ordered SFH row into named values.
func UnpackSFHRow(row []float64) (SFHParams, error) {
	if len(row) != SFHRowWidth {
		return SFHParams{}, fmt.Errorf("SFH row has %d columns, schema requires %d", len(row), SFHRowWidth)
	}
	return SFHParams{
		LgE0:     row[0],
		KEarly:   row[1],
		LgTC:     row[2],
		LgEC:     row[3],
		KTrans:   row[4],
		ALate:    row[5],
		LogQTime: row[6],
		QSpeed:   row[7],
	}, nil
}
