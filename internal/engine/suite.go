/*
PURPOSE:
  Runs the six workloads in a fixed order and collects their scores.

REQUIREMENTS:
  User-specified:
  - Strictly sequential: a workload never starts before the previous returns.
  - Always exactly six entries, in the order of model.Subsystems.
  - Never fails; a failed workload is recorded with score 0.

  Implementation-discovered:
  - Workloads and the Timer are injectable for deterministic tests.
  - A panic escaping a workload is recovered here and recorded as a failure.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: internal/workload, internal/timer, internal/model, internal/output

ERROR HANDLING:
  - Logs errors but continues (resilience).

USAGE:
  res := engine.NewSuite(engine.WithTempDir(dir)).Run()
*/

package engine

import (
	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/output"
	"github.com/daryltucker/sysbench/internal/timer"
	"github.com/daryltucker/sysbench/internal/workload"
)

// Suite executes one workload per subsystem.
type Suite struct {
	clock     timer.Timer
	tempDir   string
	overrides []workload.Workload
	workloads map[model.Subsystem]workload.Workload
	observe   func(model.Entry)
}

// Option configures a Suite.
type Option func(*Suite)

// WithTimer replaces the monotonic timer.
func WithTimer(t timer.Timer) Option {
	return func(s *Suite) { s.clock = t }
}

// WithTempDir sets where storage workloads create their files.
func WithTempDir(dir string) Option {
	return func(s *Suite) { s.tempDir = dir }
}

// WithWorkload replaces the default workload for w's subsystem.
func WithWorkload(w workload.Workload) Option {
	return func(s *Suite) { s.overrides = append(s.overrides, w) }
}

// WithObserver registers a callback invoked after each entry is recorded.
func WithObserver(fn func(model.Entry)) Option {
	return func(s *Suite) { s.observe = fn }
}

// NewSuite creates a suite with the default workloads.
func NewSuite(opts ...Option) *Suite {
	s := &Suite{clock: timer.Monotonic{}}
	for _, opt := range opts {
		opt(s)
	}

	s.workloads = make(map[model.Subsystem]workload.Workload, len(model.Subsystems))
	for _, w := range workload.Defaults(s.tempDir) {
		s.workloads[w.Subsystem()] = w
	}
	for _, w := range s.overrides {
		if w == nil {
			continue
		}
		s.workloads[w.Subsystem()] = w
	}
	return s
}

// Workloads returns the registered workloads in execution order.
func (s *Suite) Workloads() []workload.Workload {
	ws := make([]workload.Workload, 0, len(model.Subsystems))
	for _, sub := range model.Subsystems {
		ws = append(ws, s.workloads[sub])
	}
	return ws
}

// Run executes every subsystem's workload in order and returns the result.
func (s *Suite) Run() model.Result {
	res := make(model.Result, 0, len(model.Subsystems))
	for _, sub := range model.Subsystems {
		output.Logger.Info("Running workload", "subsystem", sub)

		entry := model.NewEntry(sub, s.runOne(sub))
		if entry.Failed() {
			output.Logger.Error("Workload failed", "subsystem", sub, "error", entry.Err)
		} else {
			output.Logger.Info("Workload complete",
				"subsystem", sub,
				"score", entry.Score,
				"elapsed", entry.Elapsed,
			)
		}

		res = append(res, entry)
		if s.observe != nil {
			s.observe(entry)
		}
	}
	return res
}

func (s *Suite) runOne(sub model.Subsystem) (out model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = model.Failed(errors.Errorf("%s: panic: %v", sub, r))
		}
	}()
	return s.workloads[sub].Run(s.clock)
}
