/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full benchmark suite once.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Colour only when stdout is a terminal, unless forced.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load fails or outputs cannot be created.
  - Workload failures are not errors; they show up as score 0.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run -> Summary.

USAGE:
  sysbench run -o ./results
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daryltucker/sysbench/internal/config"
	"github.com/daryltucker/sysbench/internal/engine"
	"github.com/daryltucker/sysbench/internal/output"
)

var (
	outputOverride  string
	tempDirOverride string
	colorOverride   string
	noCSV           bool
	noJSON          bool
	noSummary       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long: `Executes all six workloads in a fixed order:
CPU, Multithreading, GPU, RAM, Storage, IOPS.

Each workload reports a higher-is-better score. A workload that fails
(for example, the temp directory is not writable) is scored 0 and the
remaining workloads still run.

Results are saved to CSV and JSON Lines files, with automatic file
versioning (e.g., sysbench_results.csv.1) to prevent overwriting previous data.`,
	Example: `  # Run with defaults (uses sysbench.yaml if present)
  sysbench run

  # Write results to a directory and benchmark a specific disk
  sysbench run -o ./results --temp-dir /mnt/nvme/tmp

  # Only print the summary table
  sysbench run --no-csv --no-json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 2. Overrides
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if tempDirOverride != "" {
			cfg.TempDir = tempDirOverride
		}
		if colorOverride != "" {
			cfg.Color = colorOverride
		}
		if noCSV {
			cfg.CSVFile = ""
		}
		if noJSON {
			cfg.JSONFile = ""
		}
		if noSummary {
			cfg.Summary = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// 3. Execution
		report, err := engine.Run(cfg)
		if err != nil {
			return err
		}

		if !cfg.Summary {
			return nil
		}
		return output.WriteSummary(cmd.OutOrStdout(), report, useColor(cfg.Color))
	},
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().StringVar(&tempDirOverride, "temp-dir", "", "Directory for the storage workloads' temporary files")
	runCmd.Flags().StringVar(&colorOverride, "color", "", "Colour the summary table: auto, always or never")
	runCmd.Flags().BoolVar(&noCSV, "no-csv", false, "Do not write the CSV results file")
	runCmd.Flags().BoolVar(&noJSON, "no-json", false, "Do not write the JSON Lines results file")
	runCmd.Flags().BoolVar(&noSummary, "no-summary", false, "Do not print the summary table")
}
