package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sfh "github.com/sfh-sim/sfh-sim/sfh"
)

var (
	// CLI flags shared across subcommands
	logLevel        string    // Log verbosity level
	outputTimes     []float64 // Cosmic times (Gyr) at which to report curves
	fstarTimescales []float64 // Trailing window lengths (Gyr) for Fstar
	logSSFRClip     float64   // Floor for log10 sSFR

	// CLI flags for the single-halo predict command
	logmp float64 // log10 peak halo mass (Msun)
	tmp   float64 // Cosmic time of peak halo mass (Gyr)

	// MAH shape flags
	mahX0         float64
	mahK          float64
	mahEarlyIndex float64
	mahLateIndex  float64

	// SFR efficiency + quenching flags
	lgE0     float64
	kEarly   float64
	lgTC     float64
	lgEC     float64
	kTrans   float64
	aLate    float64
	logQTime float64
	qSpeed   float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sfh-sim",
	Short: "Star-formation-history predictor for simulated dark-matter halos",
}

// predictCmd evaluates a single halo's history using parameters from CLI flags
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict one halo's in-situ star-formation history",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sfh.HistoryConfig{
			MAH: sfh.MAHParams{
				X0:         mahX0,
				K:          mahK,
				EarlyIndex: mahEarlyIndex,
				LateIndex:  mahLateIndex,
			},
			SFH: sfh.SFHParams{
				LgE0:     lgE0,
				KEarly:   kEarly,
				LgTC:     lgTC,
				LgEC:     lgEC,
				KTrans:   kTrans,
				ALate:    aLate,
				LogQTime: logQTime,
				QSpeed:   qSpeed,
			},
			Tmp:             tmp,
			FstarTimescales: fstarTimescales,
			LogSSFRClip:     logSSFRClip,
		}

		// The query grid doubles as the integration grid for the
		// single-halo path, so run on the dense default table and
		// resample onto the requested output times afterwards.
		table := sfh.DefaultTimeTable()
		logrus.Infof("Predicting history for logmp=%v, tmp=%vGyr on a %d-point table", logmp, tmp, len(table.T))

		hist, err := sfh.PredictInSituHistory(table.T, logmp, cfg)
		if err != nil {
			logrus.Fatalf("prediction failed: %v", err)
		}

		times := outputTimes
		printHistory(times, table.T, hist)
	},
}

// printHistory reports the curves, resampled onto the requested times, as
// a plain table on stdout.
func printHistory(times, table []float64, hist *sfh.History) {
	logMAH := sfh.ResampleLogTime(times, table, hist.LogMAH)
	logSM := sfh.ResampleLogTime(times, table, hist.LogSM)
	logSSFR := sfh.ResampleLogTime(times, table, hist.LogSSFR)
	fstar := make([][]float64, len(hist.Fstar))
	for i, fs := range hist.Fstar {
		fstar[i] = sfh.ResampleLogTime(times, table, fs)
	}

	fmt.Printf("%10s %10s %10s %10s", "t[Gyr]", "logMh", "logSM", "logsSFR")
	for _, tau := range fstarTimescales {
		fmt.Printf(" %10s", fmt.Sprintf("F*(%.2g)", tau))
	}
	fmt.Println()
	for i, t := range times {
		fmt.Printf("%10.3f %10.4f %10.4f %10.4f", t, logMAH[i], logSM[i], logSSFR[i])
		for _, fs := range fstar {
			fmt.Printf(" %10.4f", fs[i])
		}
		fmt.Println()
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	mahDefaults := sfh.DefaultMAHParams()
	sfhDefaults := sfh.DefaultSFHParams()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	predictCmd.Flags().Float64SliceVar(&outputTimes, "times", []float64{1, 5, 10, 13.8}, "Comma-separated cosmic times (Gyr) to report")
	predictCmd.Flags().Float64SliceVar(&fstarTimescales, "fstar-timescales", nil, "Comma-separated Fstar window lengths (Gyr)")
	predictCmd.Flags().Float64Var(&logSSFRClip, "log-ssfr-clip", sfh.DefaultLogSSFRClip, "Floor for log10 sSFR")
	predictCmd.Flags().Float64Var(&logmp, "logmp", 12.0, "log10 peak halo mass (Msun)")
	predictCmd.Flags().Float64Var(&tmp, "tmp", sfh.Today, "Cosmic time of peak halo mass (Gyr)")

	predictCmd.Flags().Float64Var(&mahX0, "mah-x0", mahDefaults.X0, "MAH rolling-index transition time (log10 Gyr)")
	predictCmd.Flags().Float64Var(&mahK, "mah-k", mahDefaults.K, "MAH rolling-index transition speed")
	predictCmd.Flags().Float64Var(&mahEarlyIndex, "mah-early-index", mahDefaults.EarlyIndex, "MAH early-time power-law index")
	predictCmd.Flags().Float64Var(&mahLateIndex, "mah-late-index", mahDefaults.LateIndex, "MAH late-time power-law index")

	predictCmd.Flags().Float64Var(&lgE0, "lge0", sfhDefaults.LgE0, "Early-time log10 SFR efficiency")
	predictCmd.Flags().Float64Var(&kEarly, "k-early", sfhDefaults.KEarly, "Efficiency rise speed")
	predictCmd.Flags().Float64Var(&lgTC, "lgtc", sfhDefaults.LgTC, "log10 Gyr of peak star formation")
	predictCmd.Flags().Float64Var(&lgEC, "lgec", sfhDefaults.LgEC, "log10 SFR efficiency at peak SFR")
	predictCmd.Flags().Float64Var(&kTrans, "k-trans", sfhDefaults.KTrans, "Transition speed into the late decline")
	predictCmd.Flags().Float64Var(&aLate, "a-late", sfhDefaults.ALate, "Late-time efficiency power-law index")
	predictCmd.Flags().Float64Var(&logQTime, "log-qtime", sfhDefaults.LogQTime, "log10 Gyr of quenching onset")
	predictCmd.Flags().Float64Var(&qSpeed, "qspeed", sfhDefaults.QSpeed, "Quenching transition speed")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(collectionCmd)
}
