package sfh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// TableTMin and TableTMax bound the default dense table in Gyr.
	TableTMin = 0.1
	TableTMax = 14.0

	// TableLen is the number of points in the default dense table.
	TableLen = 500

	// MinTableLen is the minimum accepted length for a dense internal
	// table. Midpoint-rule integration of the SFR needs roughly this many
	// points to stay accurate over [0.1, 14] Gyr.
	MinTableLen = 100

	// TmpTolerance is the maximum distance, in Gyr, between the time of
	// peak halo mass and the nearest entry of the kernel query grid.
	TmpTolerance = 0.05

	// Today is the approximate age of the universe in Gyr, the default
	// time at which a halo attains its peak mass.
	Today = 13.8
)

// TimeTable is a strictly increasing grid of cosmic times with the derived
// quantities the kernels consume: base-10 log times and the local grid
// spacing (centered differences inside, one-sided at the edges).
type TimeTable struct {
	T    []float64 // cosmic time in Gyr, strictly increasing
	LogT []float64 // log10 of T
	Dt   []float64 // local spacing in Gyr, same length as T
}

// NewTimeTable derives a TimeTable from a strictly increasing sequence of
// positive cosmic times. It rejects grids too degenerate for the kernels
// (fewer than two points, non-positive times, non-monotonic order); density
// requirements beyond that are the caller's responsibility.
func NewTimeTable(t []float64) (*TimeTable, error) {
	if len(t) < 2 {
		return nil, fmt.Errorf("time grid needs at least 2 points, got %d", len(t))
	}
	if t[0] <= 0 {
		return nil, fmt.Errorf("cosmic times must be positive, got t[0]=%v", t[0])
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return nil, fmt.Errorf("cosmic times must be strictly increasing, got t[%d]=%v after t[%d]=%v",
				i, t[i], i-1, t[i-1])
		}
	}

	tt := &TimeTable{
		T:    t,
		LogT: make([]float64, len(t)),
		Dt:   spacingArray(t),
	}
	for i, ti := range t {
		tt.LogT[i] = math.Log10(ti)
	}
	return tt, nil
}

// DefaultTimeTable returns the default dense internal table: TableLen
// linearly spaced points over [TableTMin, TableTMax] Gyr, fine enough for
// accurate midpoint-rule integration across the full plausible range of
// cosmic times.
func DefaultTimeTable() *TimeTable {
	t := floats.Span(make([]float64, TableLen), TableTMin, TableTMax)
	tt, err := NewTimeTable(t)
	if err != nil {
		// Span over fixed positive bounds cannot produce an invalid grid.
		panic(err)
	}
	return tt
}

// IndexOfTmp returns the index of the grid entry closest to tmp, the time
// of peak halo mass. It errors when the closest entry is farther than
// TmpTolerance, the accretion kernel's proximity contract.
func (tt *TimeTable) IndexOfTmp(tmp float64) (int, error) {
	best := 0
	bestDist := math.Abs(tt.T[0] - tmp)
	for i := 1; i < len(tt.T); i++ {
		if d := math.Abs(tt.T[i] - tmp); d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > TmpTolerance {
		return 0, fmt.Errorf("no time grid entry within %vGyr of tmp=%vGyr (closest is %vGyr)",
			TmpTolerance, tmp, tt.T[best])
	}
	return best, nil
}

// spacingArray computes the local grid spacing: centered differences for
// interior points, one-sided differences at the two edges.
func spacingArray(t []float64) []float64 {
	n := len(t)
	dt := make([]float64, n)
	dt[0] = t[1] - t[0]
	dt[n-1] = t[n-1] - t[n-2]
	for i := 1; i < n-1; i++ {
		dt[i] = (t[i+1] - t[i-1]) / 2
	}
	return dt
}
