/*
PURPOSE:
  Defines the root Cobra command for the SysBench CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logging flags are global so every subcommand logs the same way.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/sysbench/main.go
  - Calls: Child commands (run, workloads)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

RELATED FILES:
  - cmd/sysbench/main.go
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/sysbench/internal/config"
	"github.com/daryltucker/sysbench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	logLevelOverride  string
	logFormatOverride string

	rootCmd = &cobra.Command{
		Use:   "sysbench",
		Short: "Relative performance benchmark for CPU, memory and storage",
		Long: `Runs six fixed workloads (CPU, Multithreading, GPU, RAM, Storage, IOPS)
and reports one higher-is-better score per subsystem.
Use 'run --help' for benchmark options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sysbench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatOverride, "log-format", "", "log format: text or json")
}

// loadConfig loads the config file, applies the global flag overrides
// and installs the configured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if logLevelOverride != "" {
		cfg.LogLevel = logLevelOverride
	}
	if logFormatOverride != "" {
		cfg.LogFormat = logFormatOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := output.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	output.SetLogger(logger)
	return cfg, nil
}
