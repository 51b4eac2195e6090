package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sfh "github.com/sfh-sim/sfh-sim/sfh"
)

// CollectionFile is the YAML schema for a halo-collection run.
type CollectionFile struct {
	OutputTimes     []float64      `yaml:"output_times"`
	FstarTimescales []float64      `yaml:"fstar_timescales"`
	LogSSFRClip     *float64       `yaml:"log_ssfr_clip"`
	TimeTable       *TimeTableSpec `yaml:"time_table"`
	Halos           []HaloEntry    `yaml:"halos"`
}

// TimeTableSpec describes an override of the dense internal table.
type TimeTableSpec struct {
	TMin float64 `yaml:"t_min"`
	TMax float64 `yaml:"t_max"`
	N    int     `yaml:"n"`
}

// HaloEntry is one halo's parameters. Shape parameters are optional;
// absent values fall back to the package defaults.
type HaloEntry struct {
	Tmp   float64 `yaml:"tmp"`
	Logmp float64 `yaml:"logmp"`

	X0         *float64 `yaml:"x0"`
	K          *float64 `yaml:"k"`
	EarlyIndex *float64 `yaml:"early_index"`
	LateIndex  *float64 `yaml:"late_index"`

	LgE0     *float64 `yaml:"lge0"`
	KEarly   *float64 `yaml:"k_early"`
	LgTC     *float64 `yaml:"lgtc"`
	LgEC     *float64 `yaml:"lgec"`
	KTrans   *float64 `yaml:"k_trans"`
	ALate    *float64 `yaml:"a_late"`
	LogQTime *float64 `yaml:"log_qtime"`
	QSpeed   *float64 `yaml:"qspeed"`
}

// LoadCollectionFile reads and parses a halo-collection YAML file.
func LoadCollectionFile(path string) (*CollectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading collection config: %w", err)
	}
	var cf CollectionFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing collection config: %w", err)
	}
	if len(cf.Halos) == 0 {
		return nil, fmt.Errorf("collection config %q lists no halos", path)
	}
	if len(cf.OutputTimes) == 0 {
		return nil, fmt.Errorf("collection config %q lists no output_times", path)
	}
	return &cf, nil
}

// orDefault dereferences an optional YAML value, falling back to def.
func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// ParameterRows converts the halo entries into the schema-ordered matrices
// the collection orchestrator consumes.
func (cf *CollectionFile) ParameterRows() (mahRows, sfhRows [][]float64) {
	mahDef := sfh.DefaultMAHParams()
	sfhDef := sfh.DefaultSFHParams()

	for _, h := range cf.Halos {
		mahRows = append(mahRows, []float64{
			h.Tmp,
			h.Logmp,
			orDefault(h.X0, mahDef.X0),
			orDefault(h.K, mahDef.K),
			orDefault(h.EarlyIndex, mahDef.EarlyIndex),
			orDefault(h.LateIndex, mahDef.LateIndex),
		})
		sfhRows = append(sfhRows, []float64{
			orDefault(h.LgE0, sfhDef.LgE0),
			orDefault(h.KEarly, sfhDef.KEarly),
			orDefault(h.LgTC, sfhDef.LgTC),
			orDefault(h.LgEC, sfhDef.LgEC),
			orDefault(h.KTrans, sfhDef.KTrans),
			orDefault(h.ALate, sfhDef.ALate),
			orDefault(h.LogQTime, sfhDef.LogQTime),
			orDefault(h.QSpeed, sfhDef.QSpeed),
		})
	}
	return mahRows, sfhRows
}

// CollectionConfig assembles the orchestrator config from the file,
// layering CLI-level defaults under the file's optional overrides.
func (cf *CollectionFile) CollectionConfig() (sfh.CollectionConfig, error) {
	cfg := sfh.DefaultCollectionConfig()
	cfg.FstarTimescales = cf.FstarTimescales
	if cf.LogSSFRClip != nil {
		cfg.LogSSFRClip = *cf.LogSSFRClip
	}
	if cf.TimeTable != nil {
		spec := cf.TimeTable
		if spec.N < 2 || spec.TMax <= spec.TMin {
			return cfg, fmt.Errorf("invalid time_table spec: n=%d, range [%v, %v]", spec.N, spec.TMin, spec.TMax)
		}
		table := make([]float64, spec.N)
		step := (spec.TMax - spec.TMin) / float64(spec.N-1)
		for i := range table {
			table[i] = spec.TMin + float64(i)*step
		}
		cfg.TimeTable = table
	}
	return cfg, nil
}
