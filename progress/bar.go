package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/plasmakit/specdeform/diag"
)

const (
	barWidth    = 10
	markEmpty   = " "
	markFilled  = "█"
	maxNameRune = 15
)

// ErrBadIteration indicates an Update index outside [0, total).
var ErrBadIteration = errors.New("progress: iteration index out of range")

// Bar is a terminal progress bar for a loop of known length. It keeps
// a lap timer so each refresh carries an ETA.
type Bar struct {
	name      string
	printName string
	total     int
	stride    int
	out       io.Writer
	log       *diag.Logger
	timer     *Timer
	started   bool
}

// BarOption configures NewBar.
type BarOption func(*Bar)

// WithOutput redirects the rendered bar. Default: os.Stdout.
func WithOutput(w io.Writer) BarOption {
	return func(b *Bar) { b.out = w }
}

// WithLogger sets the diagnostic sink. Default: a stderr sink named
// after the bar.
func WithLogger(log *diag.Logger) BarOption {
	return func(b *Bar) { b.log = log }
}

// WithStride refreshes the bar only every n iterations, for loops
// whose work is spread over n parallel workers. Default: 1.
func WithStride(n int) BarOption {
	return func(b *Bar) {
		if n > 0 {
			b.stride = n
		}
	}
}

// NewBar builds a Bar for a loop of total iterations. total must be
// positive.
func NewBar(name string, total int, opts ...BarOption) (*Bar, error) {
	if total <= 0 {
		return nil, fmt.Errorf("progress: total iterations %d: %w", total, ErrBadIteration)
	}

	b := &Bar{
		name:      name,
		printName: name,
		total:     total,
		stride:    1,
		out:       os.Stdout,
	}
	if runes := []rune(name); len(runes) > maxNameRune {
		b.printName = string(runes[:maxNameRune]) + "..."
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = diag.New(name)
	}
	b.timer = NewTimer(name, b.log)
	return b, nil
}

// Start arms the lap clock and renders the empty bar.
func (b *Bar) Start() {
	b.timer.Lap()
	b.started = true
	b.log.Info("Start")

	bar := strings.Repeat(markEmpty, barWidth)
	fmt.Fprintf(b.out, "%s [%s] 0/%d", b.printName, bar, b.total)
}

// Update renders progress after iteration i (zero-based). Refreshes
// every stride iterations and always on the final one; the final
// refresh prints the Finished line and logs End.
func (b *Bar) Update(i int) error {
	if i < 0 || i+1 > b.total {
		return fmt.Errorf("progress: Update(%d) of %d: %w", i, b.total, ErrBadIteration)
	}

	if (i+1)%b.stride != 0 && i+1 != b.total {
		return nil
	}

	if !b.started {
		b.log.Warn("Progress bar has not been started.")
		b.Start()
		return nil
	}

	lap, ok := b.timer.Lap()
	if !ok {
		// Lap clock lost between Start and Update; re-arm quietly.
		return nil
	}

	done := i + 1
	filled := done * barWidth / b.total
	bar := strings.Repeat(markFilled, filled) + strings.Repeat(markEmpty, barWidth-filled)

	if done < b.total {
		remaining := float64(b.total-done) * lap.Seconds() / 3600 / float64(b.stride)
		text := fmt.Sprintf("%d/%d: Finish %.1f hrs later (lap: %.1f sec)",
			done, b.total, remaining, lap.Seconds()/float64(b.stride))
		fmt.Fprintf(b.out, "\r%s [%s] %s", b.printName, bar, text)
		return nil
	}

	fmt.Fprintf(b.out, "\r%s [%s] %d/%d: Finished\n", b.printName, bar, done, b.total)
	b.log.Info("End")
	return nil
}
