/*
PURPOSE:
  Measures how long a unit of work takes.
  Workloads receive a Timer instead of reading the clock themselves.

REQUIREMENTS:
  User-specified:
  - Elapsed time must come from a monotonic clock source.

  Implementation-discovered:
  - Tests need deterministic durations to check score formulas.

ARCHITECTURE INTEGRATION:
  - Used by: internal/workload, internal/engine

ERROR HANDLING:
  - Never fails itself. The work's error is returned unchanged.

IMPLEMENTATION RULES:
  - Run the work synchronously, to completion.
  - time.Now carries a monotonic reading; time.Since uses it.

USAGE:
  elapsed, err := timer.Monotonic{}.Time(func() error { ... })

RELATED FILES:
  - internal/score/score.go
*/

package timer

import "time"

// Timer runs fn synchronously and reports how long it took.
type Timer interface {
	Time(fn func() error) (time.Duration, error)
}

// Monotonic measures wall-clock duration using the runtime's monotonic clock.
type Monotonic struct{}

// Time implements Timer.
func (Monotonic) Time(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

// Fixed runs the work but always reports the same duration.
type Fixed time.Duration

// Time implements Timer.
func (f Fixed) Time(fn func() error) (time.Duration, error) {
	err := fn()
	return time.Duration(f), err
}

// Func adapts an ordinary function to the Timer interface.
type Func func(fn func() error) (time.Duration, error)

// Time implements Timer.
func (f Func) Time(fn func() error) (time.Duration, error) {
	return f(fn)
}
