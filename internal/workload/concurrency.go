package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/score"
	"github.com/daryltucker/sysbench/internal/timer"
)

// ConcurrencyDeadline bounds how long the worker pool may take.
const ConcurrencyDeadline = 5 * time.Second

// ErrDeadline is returned when the worker pool does not finish in time.
var ErrDeadline = errors.New("worker pool did not finish before deadline")

// Concurrency runs a fixed-size pool of independent summing workers and
// waits for all of them, bounded by a deadline. A timeout or any worker
// failure fails the whole workload; there is no partial score.
type Concurrency struct {
	Workers    int
	Iterations int
	Deadline   time.Duration

	// Task is the per-worker unit of work; nil sums 0..Iterations.
	Task func(iterations int) (int64, error)
}

func (Concurrency) Subsystem() model.Subsystem { return model.Multithreading }

func (c Concurrency) Describe() Info {
	return Info{
		Subsystem: model.Multithreading,
		Name:      "concurrency",
		Work:      fmt.Sprintf("worker pool, each sums a range, %s deadline", c.deadline()),
		Size: fmt.Sprintf("%d workers x %d iterations",
			orDefault(c.Workers, ConcurrencyWorkers), orDefault(c.Iterations, ConcurrencyIterations)),
		Formula: InverseTime,
	}
}

func (c Concurrency) deadline() time.Duration {
	if c.Deadline <= 0 {
		return ConcurrencyDeadline
	}
	return c.Deadline
}

func (c Concurrency) Run(clock timer.Timer) model.Outcome {
	workers := orDefault(c.Workers, ConcurrencyWorkers)
	iterations := orDefault(c.Iterations, ConcurrencyIterations)
	deadline := c.deadline()
	task := c.Task
	if task == nil {
		task = sumRange
	}

	sums := make([]int64, workers)
	elapsed, err := measure(clock, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), deadline)
		defer cancel()

		var g errgroup.Group
		g.SetLimit(workers)
		for w := 0; w < workers; w++ {
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.Errorf("worker %d panicked: %v", w, r)
					}
				}()
				sums[w], err = task(iterations)
				return errors.Wrapf(err, "worker %d", w)
			})
		}

		// Workers cannot be cancelled individually; on timeout they are
		// abandoned and finish in the background.
		done := make(chan error, 1)
		go func() { done <- g.Wait() }()

		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return errors.Wrapf(ErrDeadline, "%d workers after %s", workers, deadline)
		}
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "concurrency"))
	}

	var total int64
	for _, s := range sums {
		total += s
	}
	intSink = total
	return model.Measured(score.InverseTime(elapsed), elapsed)
}

func sumRange(iterations int) (int64, error) {
	var acc int64
	for j := 0; j < iterations; j++ {
		acc += int64(j)
	}
	return acc, nil
}
