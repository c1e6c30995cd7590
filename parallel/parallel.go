package parallel

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"
)

// ErrBadCount indicates a non-positive worker or thread count.
var ErrBadCount = errors.New("parallel: count must be positive")

// blasEnvVars are the thread-count hints honored by the numeric
// backends the surrounding pipeline may spawn.
var blasEnvVars = []string{
	"OMP_NUM_THREADS",
	"OPENBLAS_NUM_THREADS",
	"MKL_NUM_THREADS",
}

// Workers suggests a worker count for a scan: all CPUs but one, so the
// coordinating process stays responsive. Never less than one.
func Workers() int {
	n := runtime.NumCPU()
	if n <= 1 {
		return 1
	}
	return n - 1
}

// SetThreads fixes the scheduler and numeric-backend thread counts.
func SetThreads(n int) error {
	if n <= 0 {
		return fmt.Errorf("SetThreads(%d): %w", n, ErrBadCount)
	}

	runtime.GOMAXPROCS(n)
	for _, key := range blasEnvVars {
		if err := os.Setenv(key, strconv.Itoa(n)); err != nil {
			return fmt.Errorf("SetThreads: %w", err)
		}
	}
	return nil
}

// ForEach runs fn(i) for every i in [0, n), split contiguously across
// workers goroutines, and waits for all of them. fn must be safe to
// call concurrently for distinct indices.
func ForEach(n, workers int, fn func(i int)) error {
	if workers <= 0 {
		return fmt.Errorf("ForEach: %d workers: %w", workers, ErrBadCount)
	}
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
	return nil
}
