package parallel_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/plasmakit/specdeform/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkers verifies the heuristic never suggests zero workers.
func TestWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, parallel.Workers(), 1)
	assert.LessOrEqual(t, parallel.Workers(), runtime.NumCPU())
}

// TestSetThreads verifies validation and the exported hints.
func TestSetThreads(t *testing.T) {
	prevProcs := runtime.GOMAXPROCS(0)
	prevOMP, hadOMP := os.LookupEnv("OMP_NUM_THREADS")
	t.Cleanup(func() {
		runtime.GOMAXPROCS(prevProcs)
		if hadOMP {
			os.Setenv("OMP_NUM_THREADS", prevOMP)
		} else {
			os.Unsetenv("OMP_NUM_THREADS")
		}
	})

	assert.ErrorIs(t, parallel.SetThreads(0), parallel.ErrBadCount)
	assert.ErrorIs(t, parallel.SetThreads(-4), parallel.ErrBadCount)

	require.NoError(t, parallel.SetThreads(2))
	assert.Equal(t, "2", os.Getenv("OMP_NUM_THREADS"))
	assert.Equal(t, 2, runtime.GOMAXPROCS(0))
}

// TestForEach_CoversEveryIndexOnce fills a slice through disjoint
// writes; every index must be visited exactly once.
func TestForEach_CoversEveryIndexOnce(t *testing.T) {
	const n = 1000
	visits := make([]int, n)

	for _, workers := range []int{1, 3, 7, n, n + 50} {
		for i := range visits {
			visits[i] = 0
		}
		require.NoError(t, parallel.ForEach(n, workers, func(i int) {
			visits[i]++
		}))
		for i, v := range visits {
			require.Equal(t, 1, v, "index %d with %d workers", i, workers)
		}
	}
}

// TestForEach_EdgeCases covers empty ranges and bad worker counts.
func TestForEach_EdgeCases(t *testing.T) {
	called := false
	require.NoError(t, parallel.ForEach(0, 4, func(int) { called = true }))
	assert.False(t, called, "empty range must not call fn")

	assert.ErrorIs(t, parallel.ForEach(10, 0, func(int) {}), parallel.ErrBadCount)
}
