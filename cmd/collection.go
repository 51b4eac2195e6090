package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sfh "github.com/sfh-sim/sfh-sim/sfh"
)

var collectionConfigPath string // Path to the halo-collection YAML file

// collectionCmd evaluates histories for a collection of halos from a YAML file
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Predict in-situ histories for a collection of halos",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if collectionConfigPath == "" {
			logrus.Fatalf("No collection config provided; pass --config")
		}

		cf, err := LoadCollectionFile(collectionConfigPath)
		if err != nil {
			logrus.Fatalf("unable to read collection config: %v", err)
		}
		cfg, err := cf.CollectionConfig()
		if err != nil {
			logrus.Fatalf("invalid collection config: %v", err)
		}
		mahRows, sfhRows := cf.ParameterRows()

		logrus.Infof("Predicting histories for %d halos at %d output times", len(mahRows), len(cf.OutputTimes))
		start := time.Now()

		coll, err := sfh.PredictInSituHistoryCollection(mahRows, sfhRows, cf.OutputTimes, cfg)
		if err != nil {
			logrus.Fatalf("collection prediction failed: %v", err)
		}

		for i := range mahRows {
			fmt.Printf("halo %d (logmp=%.2f, tmp=%.2fGyr)\n", i, mahRows[i][1], mahRows[i][0])
			fmt.Printf("%10s %10s %10s %10s", "t[Gyr]", "logMh", "logSM", "logsSFR")
			for _, tau := range cfg.FstarTimescales {
				fmt.Printf(" %10s", fmt.Sprintf("F*(%.2g)", tau))
			}
			fmt.Println()
			for j, t := range coll.T {
				fmt.Printf("%10.3f %10.4f %10.4f %10.4f", t, coll.LogMAH[i][j], coll.LogSM[i][j], coll.LogSSFR[i][j])
				for _, fs := range coll.Fstar {
					fmt.Printf(" %10.4f", fs[i][j])
				}
				fmt.Println()
			}
		}

		logrus.Infof("Collection complete in %v.", time.Since(start))
	},
}

func init() {
	collectionCmd.Flags().StringVar(&collectionConfigPath, "config", "", "Path to halo-collection YAML file")
}
