package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/harbor-sim/harbor-sim/sim"
	"github.com/harbor-sim/harbor-sim/sim/trace"
)

var (
	// CLI flags for the run command
	logLevel      string  // Log verbosity level
	berths        int     // Number of docking berths
	cranes        int     // Number of unloading cranes
	unloadTime    float64 // Unloading time per container (minutes)
	inputPath     string  // Input CSV file with ship arrivals
	outputPath    string  // Output CSV file for timing records
	scenarioName  string  // Named preset from the scenarios file
	scenariosPath string  // Path to the scenarios file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "harbor-sim",
	Short: "Discrete-event simulator for port congestion",
}

// runCmd executes one simulation using parameters from CLI flags,
// optionally seeded from a named scenario preset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the port simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// A scenario preset fills in every flag the user did not set
		// explicitly; explicit flags always win.
		if scenarioName != "" {
			scenario, err := LoadScenario(scenariosPath, scenarioName)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
			if !cmd.Flags().Changed("berths") && scenario.Berths > 0 {
				berths = scenario.Berths
			}
			if !cmd.Flags().Changed("cranes") && scenario.Cranes > 0 {
				cranes = scenario.Cranes
			}
			if !cmd.Flags().Changed("unload-time") && scenario.UnloadMinutesPerContainer > 0 {
				unloadTime = scenario.UnloadMinutesPerContainer
			}
			if !cmd.Flags().Changed("input") && scenario.Input != "" {
				inputPath = scenario.Input
			}
			if !cmd.Flags().Changed("output") && scenario.Output != "" {
				outputPath = scenario.Output
			}
		}

		arrivals, err := sim.LoadArrivalsCSV(inputPath)
		if err != nil {
			logrus.Fatalf("Unable to read arrival schedule: %v", err)
		}

		s, err := sim.NewSimulation(sim.Config{
			BerthCapacity:             berths,
			CraneCapacity:             cranes,
			UnloadMinutesPerContainer: unloadTime,
		})
		if err != nil {
			logrus.Fatalf("Unable to set up simulation: %v", err)
		}

		records, err := s.Run(arrivals)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if rejected := s.Rejected(); len(rejected) > 0 {
			logrus.Warnf("%d arrival record(s) rejected by cargo validation", len(rejected))
		}

		summary := trace.Summarize(records)
		summary.Print()

		if outputPath != "" {
			if err := trace.SaveCSV(outputPath, records); err != nil {
				logrus.Fatalf("Unable to save results: %v", err)
			}
			logrus.Infof("Detailed results saved to %s", outputPath)
		}

		logrus.Infof("Run %s complete.", s.RunID)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "warning", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&berths, "berths", 2, "Number of docking berths")
	runCmd.Flags().IntVar(&cranes, "cranes", 2, "Number of unloading cranes")
	runCmd.Flags().Float64Var(&unloadTime, "unload-time", 2, "Unloading time per container (minutes)")
	runCmd.Flags().StringVar(&inputPath, "input", "ship_arrivals.csv", "Input CSV file with ship arrivals")
	runCmd.Flags().StringVar(&outputPath, "output", "results.csv", "Output CSV file for timing records (empty to skip)")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named preset from the scenarios file")
	runCmd.Flags().StringVar(&scenariosPath, "scenarios-filepath", DefaultScenariosFilepath, "Path to the scenarios file")

	rootCmd.AddCommand(runCmd)
}
