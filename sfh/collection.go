package sfh

import "fmt"

// CollectionConfig groups the shared inputs for
// PredictInSituHistoryCollection.
type CollectionConfig struct {
	// TimeTable overrides the dense internal integration grid. Nil selects
	// DefaultTimeTable. Overrides must be strictly increasing with at
	// least MinTableLen points; density beyond that minimum is not
	// validated against any accuracy criterion.
	TimeTable []float64

	FstarTimescales []float64 // trailing window lengths tau, Gyr (may be empty)
	LogSSFRClip     float64   // floor applied to log10 sSFR
}

// DefaultCollectionConfig returns the documented defaults: the default
// dense table, no Fstar windows, sSFR floored at DefaultLogSSFRClip.
func DefaultCollectionConfig() CollectionConfig {
	return CollectionConfig{LogSSFRClip: DefaultLogSSFRClip}
}

// CollectionHistory holds stacked predicted curves for a halo collection.
// The per-curve matrices are nhalos x len(T). Fstar holds one such matrix
// per requested timescale, in request order, and is always present.
type CollectionHistory struct {
	T       []float64     // caller's output cosmic times, Gyr
	LogMAH  [][]float64   // log10 halo mass, Msun
	LogSM   [][]float64   // log10 cumulative in-situ stellar mass, Msun
	LogSSFR [][]float64   // log10 specific SFR, floored at the configured clip
	Fstar   [][][]float64 // [timescale][halo][time]
}

// PredictInSituHistoryCollection predicts stellar-mass growth histories for
// a collection of halos and reports them on the caller's output times.
//
// mahRows and sfhRows are schema-ordered parameter matrices (one row per
// halo; see MAHRowWidth and SFHRowWidth for the column orders) and must
// have matching row counts. Each halo runs independently on a shared dense
// internal table, then every resulting curve is resampled onto cosmicTime
// by linear interpolation in log time. The two-grid design keeps the
// integration accurate regardless of how sparse or irregular the requested
// output times are.
//
// All preconditions are checked before any numeric work; no partial
// results are ever produced.
func PredictInSituHistoryCollection(mahRows, sfhRows [][]float64, cosmicTime []float64, cfg CollectionConfig) (*CollectionHistory, error) {
	if len(mahRows) != len(sfhRows) {
		return nil, fmt.Errorf("mismatched row counts: %d MAH rows vs %d SFH rows", len(mahRows), len(sfhRows))
	}
	for _, tau := range cfg.FstarTimescales {
		if tau <= 0 {
			return nil, fmt.Errorf("fstar timescale must be strictly positive, got %v", tau)
		}
	}
	for i, row := range mahRows {
		if len(row) != MAHRowWidth {
			return nil, fmt.Errorf("MAH row %d: has %d columns, schema requires %d", i, len(row), MAHRowWidth)
		}
	}
	for i, row := range sfhRows {
		if len(row) != SFHRowWidth {
			return nil, fmt.Errorf("SFH row %d: has %d columns, schema requires %d", i, len(row), SFHRowWidth)
		}
	}

	table := cfg.TimeTable
	if table == nil {
		table = DefaultTimeTable().T
	} else {
		if len(table) < MinTableLen {
			return nil, fmt.Errorf("internal time table needs at least %d points for accurate integration, got %d",
				MinTableLen, len(table))
		}
		if _, err := NewTimeTable(table); err != nil {
			return nil, fmt.Errorf("internal time table: %w", err)
		}
	}

	nhalos := len(mahRows)
	out := &CollectionHistory{
		T:       cosmicTime,
		LogMAH:  make([][]float64, nhalos),
		LogSM:   make([][]float64, nhalos),
		LogSSFR: make([][]float64, nhalos),
		Fstar:   make([][][]float64, len(cfg.FstarTimescales)),
	}
	for i := range out.Fstar {
		out.Fstar[i] = make([][]float64, nhalos)
	}

	for i := 0; i < nhalos; i++ {
		tmp, logmp, mah, err := UnpackMAHRow(mahRows[i])
		if err != nil {
			return nil, fmt.Errorf("halo %d: %w", i, err)
		}
		sfhp, err := UnpackSFHRow(sfhRows[i])
		if err != nil {
			return nil, fmt.Errorf("halo %d: %w", i, err)
		}

		hist, err := PredictInSituHistory(table, logmp, HistoryConfig{
			MAH:             mah,
			SFH:             sfhp,
			Tmp:             tmp,
			FstarTimescales: cfg.FstarTimescales,
			LogSSFRClip:     cfg.LogSSFRClip,
		})
		if err != nil {
			return nil, fmt.Errorf("halo %d: %w", i, err)
		}

		out.LogMAH[i] = ResampleLogTime(cosmicTime, table, hist.LogMAH)
		out.LogSM[i] = ResampleLogTime(cosmicTime, table, hist.LogSM)
		out.LogSSFR[i] = ResampleLogTime(cosmicTime, table, hist.LogSSFR)
		for j, fs := range hist.Fstar {
			out.Fstar[j][i] = ResampleLogTime(cosmicTime, table, fs)
		}
	}
	return out, nil
}
