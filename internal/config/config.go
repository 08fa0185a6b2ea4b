/*
PURPOSE:
  Defines the configuration structure and loading logic for SysBench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Workload sizes are fixed; only the shell around the suite is configurable.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (SYSBENCH_...).
  - Storage workloads need a configurable temp directory.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default file is not an error; defaults are used.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Precedence: defaults < file < environment < flags (applied in cli).

USAGE:
  cfg, err := config.Load("sysbench.yaml")

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/sysbench/internal/output"
)

// Color modes for the summary table.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"sysbench.yaml", "sysbench.yml", ".sysbench.yaml"}

// Config represents the full configuration for SysBench.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	CSVFile   string `yaml:"csv_file"`  // Empty disables the CSV sink
	JSONFile  string `yaml:"json_file"` // Empty disables the JSON sink
	// TempDir is where storage workloads create their scratch files.
	// Empty means the platform temp directory.
	TempDir   string `yaml:"temp_dir"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     string `yaml:"color"`
	Summary   bool   `yaml:"summary"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		CSVFile:   "sysbench_results.csv",
		JSONFile:  "sysbench_results.jsonl",
		TempDir:   "",
		LogLevel:  "info",
		LogFormat: "text",
		Color:     ColorAuto,
		Summary:   true,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// Environment overrides are applied last, and the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SYSBENCH_* environment variables.
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"SYSBENCH_OUTPUT_DIR": &c.OutputDir,
		"SYSBENCH_TEMP_DIR":   &c.TempDir,
		"SYSBENCH_LOG_LEVEL":  &c.LogLevel,
		"SYSBENCH_LOG_FORMAT": &c.LogFormat,
		"SYSBENCH_COLOR":      &c.Color,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*field = strings.TrimSpace(v)
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if _, err := output.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
