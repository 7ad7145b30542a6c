// Package timer provides elapsed-time tracking for command activities,
// surfaced by the --timing flag.
package timer

import "time"

// Timer tracks total elapsed time and the elapsed time of the current
// stage.
type Timer interface {
	// Start begins tracking. Calling Start again resets the timer.
	Start()
	// NewStage marks the beginning of a new stage.
	NewStage()
	// GetTiming returns the total elapsed time and the current stage's
	// elapsed time.
	GetTiming() (time.Duration, time.Duration)
}

// New creates a Timer.
func New() Timer {
	return &realTimer{}
}

type realTimer struct {
	start time.Time
	stage time.Time
}

func (t *realTimer) Start() {
	now := time.Now()
	t.start = now
	t.stage = now
}

func (t *realTimer) NewStage() {
	t.stage = time.Now()
}

func (t *realTimer) GetTiming() (time.Duration, time.Duration) {
	return time.Since(t.start), time.Since(t.stage)
}
