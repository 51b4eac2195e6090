package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfh "github.com/sfh-sim/sfh-sim/sfh"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "halos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCollectionFile_FullConfig(t *testing.T) {
	path := writeConfig(t, `
output_times: [1, 5, 10, 13.8]
fstar_timescales: [0.5, 1.0]
log_ssfr_clip: -10.5
time_table:
  t_min: 0.1
  t_max: 14.0
  n: 200
halos:
  - tmp: 13.8
    logmp: 12.0
  - tmp: 13.0
    logmp: 11.5
    lgtc: 0.6
    log_qtime: 1.1
`)

	cf, err := LoadCollectionFile(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 5, 10, 13.8}, cf.OutputTimes)
	assert.Equal(t, []float64{0.5, 1.0}, cf.FstarTimescales)
	require.NotNil(t, cf.LogSSFRClip)
	assert.Equal(t, -10.5, *cf.LogSSFRClip)
	require.Len(t, cf.Halos, 2)

	cfg, err := cf.CollectionConfig()
	require.NoError(t, err)
	assert.Equal(t, -10.5, cfg.LogSSFRClip)
	require.Len(t, cfg.TimeTable, 200)
	assert.InDelta(t, 0.1, cfg.TimeTable[0], 1e-12)
	assert.InDelta(t, 14.0, cfg.TimeTable[199], 1e-12)
}

func TestParameterRows_DefaultsFillMissingShapeParams(t *testing.T) {
	path := writeConfig(t, `
output_times: [1, 5, 10]
halos:
  - tmp: 13.8
    logmp: 12.0
    lgtc: 0.6
`)

	cf, err := LoadCollectionFile(path)
	require.NoError(t, err)

	mahRows, sfhRows := cf.ParameterRows()
	require.Len(t, mahRows, 1)
	require.Len(t, sfhRows, 1)

	mahDef := sfh.DefaultMAHParams()
	sfhDef := sfh.DefaultSFHParams()

	// Schema order: tmp, logmp, then the MAH shape defaults.
	assert.Equal(t, []float64{13.8, 12.0, mahDef.X0, mahDef.K, mahDef.EarlyIndex, mahDef.LateIndex}, mahRows[0])
	// The overridden lgtc lands in its schema column, the rest default.
	assert.Equal(t, 0.6, sfhRows[0][2])
	assert.Equal(t, sfhDef.LgE0, sfhRows[0][0])
	assert.Equal(t, sfhDef.QSpeed, sfhRows[0][7])
}

func TestLoadCollectionFile_RejectsEmptySections(t *testing.T) {
	_, err := LoadCollectionFile(writeConfig(t, "output_times: [1, 5]\nhalos: []\n"))
	assert.Error(t, err)

	_, err = LoadCollectionFile(writeConfig(t, "halos:\n  - {tmp: 13.8, logmp: 12.0}\n"))
	assert.Error(t, err)
}

func TestCollectionConfig_RejectsBadTableSpec(t *testing.T) {
	cf, err := LoadCollectionFile(writeConfig(t, `
output_times: [1, 5]
time_table: {t_min: 5.0, t_max: 1.0, n: 200}
halos:
  - {tmp: 13.8, logmp: 12.0}
`))
	require.NoError(t, err)

	_, err = cf.CollectionConfig()
	assert.Error(t, err)
}

// End-to-end through the library: a parsed config must drive a successful
// collection run.
func TestCollectionFile_DrivesCollectionRun(t *testing.T) {
	cf, err := LoadCollectionFile(writeConfig(t, `
output_times: [1, 5, 10, 13.8]
fstar_timescales: [1.0]
halos:
  - {tmp: 13.8, logmp: 12.0}
  - {tmp: 13.8, logmp: 11.0}
`))
	require.NoError(t, err)

	cfg, err := cf.CollectionConfig()
	require.NoError(t, err)
	mahRows, sfhRows := cf.ParameterRows()

	coll, err := sfh.PredictInSituHistoryCollection(mahRows, sfhRows, cf.OutputTimes, cfg)
	require.NoError(t, err)
	require.Len(t, coll.LogSM, 2)
	require.Len(t, coll.Fstar, 1)
}
