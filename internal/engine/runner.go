/*
PURPOSE:
  High-level runner that orchestrates one benchmark run.
  Prepares the output sinks, runs the suite and assembles the report.

REQUIREMENTS:
  User-specified:
  - Run the suite once.
  - Log results to CSV/JSON.

  Implementation-discovered:
  - Rows are written as each workload finishes, so a crash keeps earlier rows.
  - Existing result files are never overwritten (output.NextPath).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine (Suite), internal/output, internal/config

ERROR HANDLING:
  - Sink setup failures are returned; the suite is not started.
  - Write failures during the run are logged, the run continues.

USAGE:
  report, err := engine.Run(cfg)

RELATED FILES:
  - internal/engine/suite.go
*/

package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/config"
	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/output"
)

// RecordWriter is a sink that accepts one record per subsystem.
type RecordWriter interface {
	Write(model.Record) error
	Close() error
}

// Run executes the full benchmark suite and returns its report.
// Extra options are applied to the suite after the configured ones.
func Run(cfg *config.Config, opts ...Option) (model.Report, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return model.Report{}, errors.Wrapf(err, "create output directory %s", cfg.OutputDir)
	}

	sinks, err := openSinks(cfg)
	if err != nil {
		return model.Report{}, err
	}
	defer func() {
		for _, s := range sinks {
			if err := s.Close(); err != nil {
				output.Logger.Error("Failed to close result file", "error", err)
			}
		}
	}()

	rep := newReport()
	output.Logger.Info("Starting benchmark run", "run_id", rep.RunID, "host", rep.Host, "cpus", rep.NumCPU)

	observe := func(e model.Entry) {
		rec := rep.Record(e)
		for _, s := range sinks {
			if err := s.Write(rec); err != nil {
				output.Logger.Error("Failed to write result", "subsystem", e.Subsystem, "error", err)
			}
		}
	}

	suiteOpts := append([]Option{WithTempDir(cfg.TempDir), WithObserver(observe)}, opts...)
	rep.Result = NewSuite(suiteOpts...).Run()
	rep.Duration = time.Since(rep.StartedAt)

	output.Logger.Info("Benchmark run complete",
		"run_id", rep.RunID,
		"duration", rep.Duration.Round(time.Millisecond),
		"failed", len(rep.Result.Failed()),
	)
	return rep, nil
}

func openSinks(cfg *config.Config) ([]RecordWriter, error) {
	var sinks []RecordWriter
	closeAll := func() {
		for _, s := range sinks {
			s.Close()
		}
	}

	if cfg.CSVFile != "" {
		path := output.NextPath(filepath.Join(cfg.OutputDir, cfg.CSVFile))
		w, err := output.NewCSVWriter(path)
		if err != nil {
			return nil, errors.Wrapf(err, "init CSV writer at %s", path)
		}
		output.Logger.Info("Writing CSV results", "path", path)
		sinks = append(sinks, w)
	}

	if cfg.JSONFile != "" {
		path := output.NextPath(filepath.Join(cfg.OutputDir, cfg.JSONFile))
		w, err := output.NewJSONWriter(path)
		if err != nil {
			closeAll()
			return nil, errors.Wrapf(err, "init JSON writer at %s", path)
		}
		output.Logger.Info("Writing JSON results", "path", path)
		sinks = append(sinks, w)
	}

	return sinks, nil
}

func newReport() model.Report {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return model.Report{
		RunID:     uuid.New(),
		Host:      host,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		StartedAt: time.Now(),
	}
}
