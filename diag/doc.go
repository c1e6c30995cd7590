// Package diag provides the component-named, leveled diagnostic sink
// used across specdeform.
//
// What:
//
//   - Logger wraps log/slog with a fixed component name, so every
//     record carries which part of the pipeline produced it.
//   - Five levels: Debug, Info, Warn, Error and Critical (Critical is
//     slog.LevelError+4 and renders as CRITICAL).
//   - ShowParams logs a delimited block of name/value pairs, the usual
//     way a run announces its configuration.
//
// Why:
//
//   - The core packages report validation failures through errors; the
//     sink exists for the human-readable diagnostic that accompanies
//     them, never for control flow.
//   - No package-level state: callers construct a Logger explicitly and
//     pass it down. There is no latch to configure on first use.
//
// Options:
//
//   - WithLevel: minimum level emitted (default Info).
//   - WithWriter: destination (default os.Stderr); tests pass a buffer.
package diag
