/*
PURPOSE:
  Defines the six benchmark workloads and what they have in common.
  Each workload is a self-contained unit of work plus its score formula.

REQUIREMENTS:
  User-specified:
  - Fixed work sizes (see the constants below).
  - A failure inside a workload is reported as score 0, never propagated.

  Implementation-discovered:
  - Sizes are struct fields so tests can shrink them; zero means default.
  - A panic inside the timed work is turned into an error at this boundary.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Suite)
  - Uses: internal/timer, internal/score, internal/model

ERROR HANDLING:
  - Every failure becomes model.Failed(err). Run never returns an error.

IMPLEMENTATION RULES:
  - No state shared between workloads.
  - Results of the work are stored in package sinks so the loops stay live.

RELATED FILES:
  - internal/engine/suite.go
*/

package workload

import (
	"time"

	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/timer"
)

// Fixed work sizes.
const (
	ArithmeticIterations    = 10_000_000
	ConcurrencyWorkers      = 8
	ConcurrencyIterations   = 1_000_000
	FloatingPointIterations = 10_000_000
	MemoryElements          = 10_000_000
	SequentialWrites        = 100
	SequentialBlockSize     = MiB
	RandomOps               = 1_000
	RandomSpan              = MiB
)

// MiB is one mebibyte.
const MiB = 1024 * 1024

// Formula names the score shape a workload uses.
type Formula string

const (
	InverseTime Formula = "inverse-time"
	Throughput  Formula = "throughput"
)

// Info describes a workload for listings.
type Info struct {
	Subsystem model.Subsystem
	Name      string
	Work      string
	Size      string
	Formula   Formula
}

// Workload is one timed benchmark routine.
type Workload interface {
	Subsystem() model.Subsystem
	Describe() Info
	Run(clock timer.Timer) model.Outcome
}

// Defaults returns the six workloads in execution order.
// Storage workloads create their temporary files in dir ("" for the OS default).
func Defaults(dir string) []Workload {
	return []Workload{
		Arithmetic{},
		Concurrency{},
		FloatingPoint{},
		MemoryBandwidth{},
		SequentialStorage{Dir: dir},
		RandomStorage{Dir: dir},
	}
}

// Package-level sinks keep the compiler from discarding the measured loops.
var (
	intSink   int64
	floatSink float64
)

// measure times fn and converts a panic inside it into an error.
func measure(clock timer.Timer, fn func() error) (time.Duration, error) {
	return clock.Time(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("panic: %v", r)
			}
		}()
		return fn()
	})
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
