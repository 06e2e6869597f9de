package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/harbor-sim/harbor-sim/sim"
	"github.com/harbor-sim/harbor-sim/sim/workload"
)

var (
	// CLI flags for the generate command
	genShips          int     // Number of arrival records
	genNormalInterval float64 // Mean minutes between arrivals outside the influx
	genInfluxInterval float64 // Mean minutes between arrivals inside the influx
	genInfluxStart    int     // Index of first influx ship
	genInfluxEnd      int     // Index past the last influx ship
	genCargoMean      float64 // Mean containers per ship
	genCargoStdDev    float64 // Stdev containers per ship
	genCargoMin       int     // Floor on sampled cargo sizes
	genSeed           int64   // Seed for schedule generation
	genOutputPath     string  // Output CSV file
)

// generateCmd synthesizes a ship arrival schedule CSV, optionally with a
// high-traffic influx window.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic ship arrival schedule",
	Run: func(cmd *cobra.Command, args []string) {
		arrivals, err := workload.GenerateSchedule(workload.ScheduleConfig{
			Ships:          genShips,
			NormalInterval: genNormalInterval,
			InfluxInterval: genInfluxInterval,
			InfluxStart:    genInfluxStart,
			InfluxEnd:      genInfluxEnd,
			CargoMean:      genCargoMean,
			CargoStdDev:    genCargoStdDev,
			CargoMin:       genCargoMin,
			Seed:           genSeed,
		})
		if err != nil {
			logrus.Fatalf("Unable to generate schedule: %v", err)
		}
		if err := sim.SaveArrivalsCSV(genOutputPath, arrivals); err != nil {
			logrus.Fatalf("Unable to save schedule: %v", err)
		}
		logrus.Infof("Generated %d arrival records into %s", len(arrivals), genOutputPath)
	},
}

func init() {
	generateCmd.Flags().IntVar(&genShips, "ships", 80, "Number of arrival records to generate")
	generateCmd.Flags().Float64Var(&genNormalInterval, "normal-interval", 120, "Mean minutes between arrivals outside the influx window")
	generateCmd.Flags().Float64Var(&genInfluxInterval, "influx-interval", 30, "Mean minutes between arrivals inside the influx window")
	generateCmd.Flags().IntVar(&genInfluxStart, "influx-start", 20, "Index of the first influx ship")
	generateCmd.Flags().IntVar(&genInfluxEnd, "influx-end", 60, "Index past the last influx ship")
	generateCmd.Flags().Float64Var(&genCargoMean, "cargo-mean", 150, "Mean containers per ship")
	generateCmd.Flags().Float64Var(&genCargoStdDev, "cargo-stdev", 50, "Standard deviation of containers per ship")
	generateCmd.Flags().IntVar(&genCargoMin, "cargo-min", 10, "Floor applied to sampled cargo sizes")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for schedule generation")
	generateCmd.Flags().StringVar(&genOutputPath, "output", "ship_arrivals.csv", "Output CSV file")

	rootCmd.AddCommand(generateCmd)
}
