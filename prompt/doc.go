// Package prompt handles interactive parameter input for run scripts:
// command-line overrides of default values, ranged value entry, and
// yes/no gates before expensive stages.
//
// All reads and writes go through injectable io.Reader/io.Writer, so
// tests drive the prompts with buffers. Failures are errors, never
// process exits; the caller decides what a refused gate means.
//
// Errors:
//
//   - ErrQuit: the user chose to stop ('q' at a value prompt, 'no' at
//     a gate).
//   - ErrBadInput: an argument that does not parse.
//   - ErrTooManyArgs: more than one command-line override.
//   - io errors from the reader surface unchanged (wrapped).
package prompt
