/*
PURPOSE:
  Writes benchmark records to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV, one row per subsystem.

  Implementation-discovered:
  - Rows arrive as the suite progresses, so a crash keeps earlier rows.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Record

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.Write(record)
  w.Close()

MAINTENANCE:
  - Update Write() mapping when Record changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/model"
)

// CSVHeader is the first row of every CSV results file.
var CSVHeader = []string{
	"run_id", "timestamp", "host", "os", "arch", "num_cpu",
	"subsystem", "score", "elapsed_ms", "failed", "error",
}

// CSVWriter handles writing records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create csv file")
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write csv header")
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Record) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	row := []string{
		r.RunID,
		r.Timestamp.Format(time.RFC3339),
		r.Host,
		r.OS,
		r.Arch,
		strconv.Itoa(r.NumCPU),
		string(r.Subsystem),
		fmt.Sprintf("%.2f", r.Score),
		fmt.Sprintf("%.3f", r.ElapsedMS),
		strconv.FormatBool(r.Failed),
		r.Error,
	}

	if err := cw.writer.Write(row); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
