package workload

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/score"
	"github.com/daryltucker/sysbench/internal/timer"
)

// Arithmetic accumulates i*i over a fixed range. Scores the CPU subsystem.
type Arithmetic struct {
	Iterations int
}

func (Arithmetic) Subsystem() model.Subsystem { return model.CPU }

func (a Arithmetic) Describe() Info {
	return Info{
		Subsystem: model.CPU,
		Name:      "arithmetic",
		Work:      "accumulate i*i",
		Size:      fmt.Sprintf("%d iterations", orDefault(a.Iterations, ArithmeticIterations)),
		Formula:   InverseTime,
	}
}

func (a Arithmetic) Run(clock timer.Timer) model.Outcome {
	n := int64(orDefault(a.Iterations, ArithmeticIterations))

	elapsed, err := measure(clock, func() error {
		var acc int64
		for i := int64(0); i < n; i++ {
			acc += i * i
		}
		intSink = acc
		return nil
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "arithmetic"))
	}
	return model.Measured(score.InverseTime(elapsed), elapsed)
}

// FloatingPoint accumulates sin(i)*cos(i) over a fixed range.
// It stands in for the GPU subsystem but runs on the CPU.
type FloatingPoint struct {
	Iterations int
}

func (FloatingPoint) Subsystem() model.Subsystem { return model.GPU }

func (f FloatingPoint) Describe() Info {
	return Info{
		Subsystem: model.GPU,
		Name:      "floating-point",
		Work:      "accumulate sin(i)*cos(i)",
		Size:      fmt.Sprintf("%d iterations", orDefault(f.Iterations, FloatingPointIterations)),
		Formula:   InverseTime,
	}
}

func (f FloatingPoint) Run(clock timer.Timer) model.Outcome {
	n := orDefault(f.Iterations, FloatingPointIterations)

	elapsed, err := measure(clock, func() error {
		var sum float64
		for i := 0; i < n; i++ {
			x := float64(i)
			sum += math.Sin(x) * math.Cos(x)
		}
		floatSink = sum
		return nil
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "floating-point"))
	}
	return model.Measured(score.InverseTime(elapsed), elapsed)
}

// MemoryBandwidth allocates a buffer, fills it with its indices and sums it back.
// The allocation is part of the measured span.
type MemoryBandwidth struct {
	Elements int
}

func (MemoryBandwidth) Subsystem() model.Subsystem { return model.RAM }

func (m MemoryBandwidth) Describe() Info {
	return Info{
		Subsystem: model.RAM,
		Name:      "memory-bandwidth",
		Work:      "allocate, write indices, read and sum",
		Size:      fmt.Sprintf("%d elements", orDefault(m.Elements, MemoryElements)),
		Formula:   InverseTime,
	}
}

func (m MemoryBandwidth) Run(clock timer.Timer) model.Outcome {
	n := orDefault(m.Elements, MemoryElements)

	elapsed, err := measure(clock, func() error {
		buf := make([]int32, n)
		for i := range buf {
			buf[i] = int32(i)
		}
		var sum int64
		for _, v := range buf {
			sum += int64(v)
		}
		intSink = sum
		return nil
	})
	if err != nil {
		return model.Failed(errors.Wrap(err, "memory-bandwidth"))
	}
	return model.Measured(score.InverseTime(elapsed), elapsed)
}
