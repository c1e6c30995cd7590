// Package parallel provides the worker-count heuristics and the index
// fan-out used by parameter scans.
//
// The core packages are pure and never assume exclusive ownership of
// their input buffers, so distributing a scan is just a matter of
// splitting the index range: ForEach hands contiguous chunks of
// [0, n) to a fixed number of goroutines and waits. Writes to disjoint
// indices of shared slices need no locking.
//
// SetThreads also exports the usual BLAS thread-count environment
// hints, since eigensolver backends spawned by the surrounding
// pipeline read them.
package parallel
