package progress

import (
	"fmt"
	"time"

	"github.com/plasmakit/specdeform/diag"
)

// Timer measures wall-clock time for one named stage. Not safe for
// concurrent use; give each goroutine its own.
type Timer struct {
	log      *diag.Logger
	start    time.Time
	started  bool
	split    time.Time
	splitSet bool
}

// NewTimer builds a Timer reporting through log; a nil log gets a
// stderr sink named after the stage.
func NewTimer(name string, log *diag.Logger) *Timer {
	if log == nil {
		log = diag.New(name)
	}
	return &Timer{log: log}
}

// Start begins (or restarts) the measurement.
func (t *Timer) Start() {
	t.log.Info("Start")
	t.start = time.Now()
	t.started = true
	t.splitSet = false
}

// Show logs the elapsed time since Start. Warns if the timer was never
// started.
func (t *Timer) Show() {
	if !t.started {
		t.log.Warn("Timer has not been started.")
		return
	}
	t.log.Info(fmt.Sprintf("Elapsed time: %.1f sec.", time.Since(t.start).Seconds()))
}

// End logs the elapsed time and closes the stage.
func (t *Timer) End() {
	t.Show()
	t.log.Info("End")
}

// Lap returns the time since the previous Lap call. The first call
// only arms the lap clock and reports ok=false.
func (t *Timer) Lap() (lap time.Duration, ok bool) {
	now := time.Now()
	if !t.splitSet {
		t.split = now
		t.splitSet = true
		return 0, false
	}
	lap = now.Sub(t.split)
	t.split = now
	return lap, true
}
