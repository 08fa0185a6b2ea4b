package workload

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/output"
	"github.com/daryltucker/sysbench/internal/score"
	"github.com/daryltucker/sysbench/internal/timer"
)

// SequentialStorage writes a fixed-size block to a temporary file repeatedly
// and scores megabytes written per second.
type SequentialStorage struct {
	Dir       string
	Writes    int
	BlockSize int
}

func (SequentialStorage) Subsystem() model.Subsystem { return model.Storage }

func (s SequentialStorage) Describe() Info {
	writes := orDefault(s.Writes, SequentialWrites)
	block := orDefault(s.BlockSize, SequentialBlockSize)
	return Info{
		Subsystem: model.Storage,
		Name:      "sequential-storage",
		Work:      "write a block to a temp file repeatedly",
		Size:      fmt.Sprintf("%d writes x %s", writes, formatBytes(block)),
		Formula:   Throughput,
	}
}

func (s SequentialStorage) Run(clock timer.Timer) model.Outcome {
	writes := orDefault(s.Writes, SequentialWrites)
	block := orDefault(s.BlockSize, SequentialBlockSize)

	f, err := os.CreateTemp(s.Dir, "sysbench-seq-*")
	if err != nil {
		return model.Failed(errors.Wrap(err, "sequential-storage: create temp file"))
	}
	defer discard(f)

	data := make([]byte, block)
	elapsed, err := measure(clock, func() error {
		for i := 0; i < writes; i++ {
			if _, err := f.Write(data); err != nil {
				return errors.Wrapf(err, "write block %d", i)
			}
		}
		return f.Close()
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "sequential-storage"))
	}

	megabytes := float64(writes) * float64(block) / MiB
	return model.Measured(score.Throughput(megabytes, elapsed), elapsed)
}

// RandomStorage performs single-byte writes at uniformly random offsets in a
// temporary file and scores operations per second.
type RandomStorage struct {
	Dir  string
	Ops  int
	Span int

	// Rand picks offsets; nil uses the global source.
	Rand *rand.Rand
}

func (RandomStorage) Subsystem() model.Subsystem { return model.IOPS }

func (r RandomStorage) Describe() Info {
	return Info{
		Subsystem: model.IOPS,
		Name:      "random-storage",
		Work:      "single-byte writes at random offsets",
		Size: fmt.Sprintf("%d ops across %s",
			orDefault(r.Ops, RandomOps), formatBytes(orDefault(r.Span, RandomSpan))),
		Formula: Throughput,
	}
}

func (r RandomStorage) Run(clock timer.Timer) model.Outcome {
	ops := orDefault(r.Ops, RandomOps)
	span := int64(orDefault(r.Span, RandomSpan))
	offset := rand.Int64N
	if r.Rand != nil {
		offset = r.Rand.Int64N
	}

	f, err := os.CreateTemp(r.Dir, "sysbench-iops-*")
	if err != nil {
		return model.Failed(errors.Wrap(err, "random-storage: create temp file"))
	}
	defer discard(f)

	one := []byte{1}
	elapsed, err := measure(clock, func() error {
		for i := 0; i < ops; i++ {
			if _, err := f.WriteAt(one, offset(span)); err != nil {
				return errors.Wrapf(err, "write op %d", i)
			}
		}
		return nil
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "random-storage"))
	}
	return model.Measured(score.Throughput(float64(ops), elapsed), elapsed)
}

// discard closes and deletes a temporary file. Safe after an earlier Close.
func discard(f *os.File) {
	_ = f.Close()
	if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
		output.Logger.Warn("Failed to remove temp file", "path", f.Name(), "error", err)
	}
}

func formatBytes(n int) string {
	if n%MiB == 0 {
		return fmt.Sprintf("%d MiB", n/MiB)
	}
	return fmt.Sprintf("%d B", n)
}
