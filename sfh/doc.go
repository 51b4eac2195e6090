// Package sfh predicts in-situ star-formation histories for individual
// simulated dark-matter halos from a parametric model.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - assembly.go: halo mass accretion history kernel (log Mh and log dMh/dt)
//   - sfr.go: SFR composition, cumulative stellar-mass integration, Fstar
//   - history.go: the single-halo orchestrator tying the kernels together
//
// # Architecture
//
// The pipeline chains pure numeric kernels over a shared time grid:
//
//	accretion rate -> baryon accretion rate -> SFR efficiency
//	              -> quenching suppression -> SFR -> stellar mass
//
// All kernels operate in log space, so the chain is a pointwise sum of
// curves. Integration to stellar mass happens in linear space with a
// midpoint-rule cumulative sum over the grid spacing.
//
// PredictInSituHistory evaluates one halo on the caller's time grid.
// PredictInSituHistoryCollection evaluates many halos on a shared dense
// internal table (grid.go) and resamples each resulting curve onto the
// caller's output times by linear interpolation in log time (interp.go).
// The dense table decouples integration accuracy from reporting resolution.
//
// Every function is a pure, bounded-cost function of its inputs; there is
// no shared mutable state across calls. Kernels avoid branching on data
// values (clips use value-wise max) so the chain stays friendly to
// gradient-based calibration layered on top.
package sfh
