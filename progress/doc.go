// Package progress provides the timer and terminal progress bar used
// around long parameter scans.
//
//   - Timer measures elapsed and lap times over the monotonic clock and
//     reports them through a diag sink.
//   - Bar renders a fixed-width bar with an ETA extrapolated from the
//     last lap. Output goes to an injectable io.Writer, so tests drive
//     it against a buffer.
//
// Nothing here touches the math core; a scan that never constructs a
// Bar behaves identically.
package progress
