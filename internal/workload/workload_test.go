package workload

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/sysbench/internal/model"
	"github.com/daryltucker/sysbench/internal/timer"
)

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files left behind")
}

func TestDefaultsOrder(t *testing.T) {
	ws := Defaults("")
	require.Len(t, ws, len(model.Subsystems))
	for i, w := range ws {
		assert.Equal(t, model.Subsystems[i], w.Subsystem())
		assert.Equal(t, w.Subsystem(), w.Describe().Subsystem)
	}
}

func TestDescribeDefaultSizes(t *testing.T) {
	assert.Equal(t, "10000000 iterations", Arithmetic{}.Describe().Size)
	assert.Equal(t, "8 workers x 1000000 iterations", Concurrency{}.Describe().Size)
	assert.Equal(t, "10000000 elements", MemoryBandwidth{}.Describe().Size)
	assert.Equal(t, "100 writes x 1 MiB", SequentialStorage{}.Describe().Size)
	assert.Equal(t, "1000 ops across 1 MiB", RandomStorage{}.Describe().Size)
	assert.Equal(t, Throughput, RandomStorage{}.Describe().Formula)
	assert.Equal(t, InverseTime, FloatingPoint{}.Describe().Formula)
}

func TestArithmeticWithFixedTimer(t *testing.T) {
	out := Arithmetic{}.Run(timer.Fixed(10_000_000 * time.Nanosecond))

	require.True(t, out.OK())
	assert.Equal(t, 1e8, out.Score)
	assert.Equal(t, 10*time.Millisecond, out.Elapsed)
}

func TestComputeWorkloadsMeasure(t *testing.T) {
	tests := []struct {
		name string
		w    Workload
	}{
		{"arithmetic", Arithmetic{Iterations: 1000}},
		{"floating-point", FloatingPoint{Iterations: 1000}},
		{"memory-bandwidth", MemoryBandwidth{Elements: 1000}},
		{"concurrency", Concurrency{Workers: 2, Iterations: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.w.Run(timer.Monotonic{})
			require.NoError(t, out.Err)
			assert.Positive(t, out.Score)
			assert.Positive(t, out.Value())
		})
	}
}

func TestConcurrencyDefaultPoolFinishes(t *testing.T) {
	out := Concurrency{}.Run(timer.Monotonic{})
	require.NoError(t, out.Err)
	assert.Positive(t, out.Score)
}

func TestConcurrencyDeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	c := Concurrency{
		Workers:  4,
		Deadline: 20 * time.Millisecond,
		Task: func(int) (int64, error) {
			<-release
			return 0, nil
		},
	}

	start := time.Now()
	out := c.Run(timer.Monotonic{})

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, out.OK())
	assert.ErrorIs(t, out.Err, ErrDeadline)
	assert.Equal(t, 0.0, out.Value())
}

func TestConcurrencyWorkerErrorFailsWorkload(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	c := Concurrency{
		Workers: 8,
		Task: func(n int) (int64, error) {
			if calls.Add(1) == 3 {
				return 0, boom
			}
			return sumRange(n)
		},
	}

	out := c.Run(timer.Fixed(time.Millisecond))
	assert.ErrorIs(t, out.Err, boom)
	assert.Equal(t, 0.0, out.Value())
}

func TestConcurrencyWorkerPanicFailsWorkload(t *testing.T) {
	c := Concurrency{
		Workers: 2,
		Task: func(int) (int64, error) {
			panic("pool exhausted")
		},
	}

	out := c.Run(timer.Monotonic{})
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "pool exhausted")
	assert.Equal(t, 0.0, out.Value())
}

func TestMeasureRecoversPanic(t *testing.T) {
	_, err := measure(timer.Monotonic{}, func() error {
		panic("out of range")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
}

func TestSequentialStorageWithFixedTimer(t *testing.T) {
	dir := t.TempDir()
	out := SequentialStorage{Dir: dir}.Run(timer.Fixed(2 * time.Second))

	require.NoError(t, out.Err)
	assert.Equal(t, 50.0, out.Score)
	assertEmptyDir(t, dir)
}

func TestSequentialStorageCreateFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	out := SequentialStorage{Dir: missing}.Run(timer.Monotonic{})

	assert.False(t, out.OK())
	assert.Equal(t, 0.0, out.Value())
	assert.Contains(t, out.Err.Error(), "create temp file")
}

func TestRandomStorage(t *testing.T) {
	dir := t.TempDir()
	r := RandomStorage{
		Dir:  dir,
		Ops:  200,
		Span: 4096,
		Rand: rand.New(rand.NewPCG(1, 2)),
	}

	out := r.Run(timer.Fixed(time.Second))
	require.NoError(t, out.Err)
	assert.Equal(t, 200.0, out.Score)
	assertEmptyDir(t, dir)
}

func TestRandomStorageCreateFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	out := RandomStorage{Dir: missing}.Run(timer.Monotonic{})

	assert.False(t, out.OK())
	assert.Equal(t, 0.0, out.Value())
}

func TestStorageWorkloadsMeasureRealTime(t *testing.T) {
	dir := t.TempDir()

	seq := SequentialStorage{Dir: dir, Writes: 4, BlockSize: 64 * 1024}.Run(timer.Monotonic{})
	require.NoError(t, seq.Err)
	assert.Positive(t, seq.Score)

	rnd := RandomStorage{Dir: dir, Ops: 50}.Run(timer.Monotonic{})
	require.NoError(t, rnd.Err)
	assert.Positive(t, rnd.Score)

	assertEmptyDir(t, dir)
}
