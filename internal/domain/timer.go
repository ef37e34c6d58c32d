package domain

import "time"

// PhaseTimer tracks remaining time for the current phase. Remaining time is
// derived from the wall clock, not from counted ticks, so sleep jitter never
// desynchronizes the display from real elapsed time. Pausing freezes the
// remaining time by shifting the start point forward on resume.
type PhaseTimer struct {
	duration  time.Duration
	startedAt time.Time
	pausedAt  time.Time
	paused    bool
	now       func() time.Time
}

// TimerOption configures a PhaseTimer.
type TimerOption func(*PhaseTimer)

// WithClock injects a clock, used by tests.
func WithClock(now func() time.Time) TimerOption {
	return func(t *PhaseTimer) {
		t.now = now
	}
}

// NewPhaseTimer creates a stopped timer.
func NewPhaseTimer(opts ...TimerOption) *PhaseTimer {
	t := &PhaseTimer{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins counting down from d. Seeding d below the phase's nominal
// duration implements resume-from-CLI-argument.
func (t *PhaseTimer) Start(d time.Duration) {
	t.duration = d
	t.startedAt = t.now()
	t.paused = false
}

// Pause freezes the remaining time. Pausing a paused timer is a no-op.
func (t *PhaseTimer) Pause() {
	if t.paused {
		return
	}
	t.pausedAt = t.now()
	t.paused = true
}

// Resume continues the countdown. Time spent paused does not count down.
func (t *PhaseTimer) Resume() {
	if !t.paused {
		return
	}
	t.startedAt = t.startedAt.Add(t.now().Sub(t.pausedAt))
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *PhaseTimer) Paused() bool {
	return t.paused
}

// Remaining returns the time left, never negative.
func (t *PhaseTimer) Remaining() time.Duration {
	ref := t.now()
	if t.paused {
		ref = t.pausedAt
	}
	remaining := t.duration - ref.Sub(t.startedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the countdown has reached zero.
func (t *PhaseTimer) Expired() bool {
	return !t.paused && t.Remaining() == 0
}
