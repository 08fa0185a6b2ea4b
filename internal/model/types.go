/*
PURPOSE:
  Defines the core data structures used throughout SysBench.
  These types carry workload outcomes, the ordered result series,
  and the per-run report handed to output sinks.

REQUIREMENTS:
  User-specified:
  - One score per subsystem, in a fixed order.
  - A failed workload still produces an entry, scored 0.

  Implementation-discovered:
  - Tests must tell "measured 0" apart from "failed", so Outcome keeps the error.
  - Sinks need a flat row shape (Record) shared by CSV and JSON.

ARCHITECTURE INTEGRATION:
  - Used by: internal/workload, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Result is an ordered slice, never a map.
  - Use time.Time and time.Duration for high precision.

USAGE:
  out := model.Measured(score.InverseTime(elapsed), elapsed)
  res = append(res, model.NewEntry(model.CPU, out))

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update Record and both writers together when adding fields.
*/

package model

import (
	"time"

	"github.com/google/uuid"
)

// Subsystem names the machine component a workload targets.
type Subsystem string

const (
	CPU            Subsystem = "CPU"
	Multithreading Subsystem = "Multithreading"
	GPU            Subsystem = "GPU"
	RAM            Subsystem = "RAM"
	Storage        Subsystem = "Storage"
	IOPS           Subsystem = "IOPS"
)

// Subsystems lists every subsystem in execution order.
var Subsystems = []Subsystem{CPU, Multithreading, GPU, RAM, Storage, IOPS}

// Outcome is what a single workload invocation produced.
type Outcome struct {
	Score   float64
	Elapsed time.Duration
	Err     error
}

// Measured returns a successful outcome.
func Measured(score float64, elapsed time.Duration) Outcome {
	return Outcome{Score: score, Elapsed: elapsed}
}

// Failed returns an outcome that reports score 0.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// OK reports whether the workload completed its measurement.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Value is the user-visible score: 0 when the workload failed.
func (o Outcome) Value() float64 {
	if o.Err != nil {
		return 0
	}
	return o.Score
}

// Entry is one (subsystem, score) pair in a Result.
type Entry struct {
	Subsystem Subsystem
	Score     float64
	Elapsed   time.Duration
	Err       error
}

// NewEntry collapses an outcome into a result entry.
func NewEntry(s Subsystem, o Outcome) Entry {
	return Entry{
		Subsystem: s,
		Score:     o.Value(),
		Elapsed:   o.Elapsed,
		Err:       o.Err,
	}
}

// Failed reports whether the entry's workload failed.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Result is the ordered series produced by one suite run.
type Result []Entry

// Names returns the subsystem names in order.
func (r Result) Names() []Subsystem {
	names := make([]Subsystem, 0, len(r))
	for _, e := range r {
		names = append(names, e.Subsystem)
	}
	return names
}

// Lookup finds the entry for a subsystem.
func (r Result) Lookup(s Subsystem) (Entry, bool) {
	for _, e := range r {
		if e.Subsystem == s {
			return e, true
		}
	}
	return Entry{}, false
}

// Failed returns the entries whose workload failed.
func (r Result) Failed() []Entry {
	var failed []Entry
	for _, e := range r {
		if e.Failed() {
			failed = append(failed, e)
		}
	}
	return failed
}

// Report wraps a Result with metadata about the run that produced it.
type Report struct {
	RunID     uuid.UUID
	Host      string
	OS        string
	Arch      string
	NumCPU    int
	GoVersion string
	StartedAt time.Time
	Duration  time.Duration
	Result    Result
}

// Record is one flattened report entry, as written by the sinks.
type Record struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Host      string    `json:"host"`
	OS        string    `json:"os"`
	Arch      string    `json:"arch"`
	NumCPU    int       `json:"num_cpu"`
	Subsystem Subsystem `json:"subsystem"`
	Score     float64   `json:"score"`
	ElapsedMS float64   `json:"elapsed_ms"`
	Failed    bool      `json:"failed"`
	Error     string    `json:"error,omitempty"` // If the workload failed
}

// Record flattens one entry together with the report's run metadata.
func (r Report) Record(e Entry) Record {
	rec := Record{
		RunID:     r.RunID.String(),
		Timestamp: r.StartedAt,
		Host:      r.Host,
		OS:        r.OS,
		Arch:      r.Arch,
		NumCPU:    r.NumCPU,
		Subsystem: e.Subsystem,
		Score:     e.Score,
		ElapsedMS: float64(e.Elapsed.Nanoseconds()) / 1e6,
		Failed:    e.Failed(),
	}
	if e.Err != nil {
		rec.Error = e.Err.Error()
	}
	return rec
}

// Records flattens the report, one record per entry, in order.
func (r Report) Records() []Record {
	records := make([]Record, 0, len(r.Result))
	for _, e := range r.Result {
		records = append(records, r.Record(e))
	}
	return records
}
