package sfh

import (
	"math"
	"sort"
)

// interpClampedAt evaluates a piecewise-linear curve y(x) at q, clamping to
// the end values outside [x[0], x[len-1]]. x must be strictly increasing.
func interpClampedAt(q float64, x, y []float64) float64 {
	n := len(x)
	if q <= x[0] {
		return y[0]
	}
	if q >= x[n-1] {
		return y[n-1]
	}
	// First index with x[i] >= q; q is strictly inside the range here.
	i := sort.SearchFloat64s(x, q)
	if x[i] == q {
		return y[i]
	}
	frac := (q - x[i-1]) / (x[i] - x[i-1])
	return y[i-1] + frac*(y[i]-y[i-1])
}

// interpClamped evaluates the curve at every query point.
func interpClamped(xq, x, y []float64) []float64 {
	out := make([]float64, len(xq))
	for i, q := range xq {
		out[i] = interpClampedAt(q, x, y)
	}
	return out
}

// ResampleLogTime resamples a curve tabulated on the grid t onto the query
// times tq by linear interpolation in log10 time. Queries outside the grid
// clamp to the end values. Resampling a curve onto its own grid reproduces
// it exactly.
func ResampleLogTime(tq, t, y []float64) []float64 {
	logt := make([]float64, len(t))
	for i, ti := range t {
		logt[i] = math.Log10(ti)
	}
	out := make([]float64, len(tq))
	for i, q := range tq {
		out[i] = interpClampedAt(math.Log10(q), logt, y)
	}
	return out
}
