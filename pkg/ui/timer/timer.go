// Package timer measures total and per-stage durations of a command run.
package timer

import (
	"sync"
	"time"
)

// Timer tracks elapsed time for a command and its current stage.
type Timer interface {
	// Start resets the timer and begins the first stage.
	Start()
	// NewStage begins a new stage without resetting the total.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the current stage.
	GetTiming() (time.Duration, time.Duration)
}

// Clock returns the current time.
type Clock func() time.Time

type stageTimer struct {
	mu         sync.Mutex
	now        Clock
	start      time.Time
	stageStart time.Time
}

// New returns a Timer using the wall clock.
func New() Timer {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Timer that reads time from clock.
func NewWithClock(clock Clock) Timer {
	return &stageTimer{now: clock}
}

func (t *stageTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.start = t.now()
	t.stageStart = t.start
}

func (t *stageTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		t.start = t.now()
	}

	t.stageStart = t.now()
}

func (t *stageTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	now := t.now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
