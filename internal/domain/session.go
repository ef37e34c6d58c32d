package domain

import "time"

// Session sequences phases across cycles: Work(n) and ShortBreak(n) repeat
// until the final work phase, which is followed by a LongBreak and then the
// session is done. Cycle indexes are 1-based.
type Session struct {
	cfg   SessionConfig
	cycle int
	phase Phase
	done  bool
}

// NewSession creates a session positioned at Work(1).
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		cfg:   cfg,
		cycle: 1,
		phase: cfg.PhaseFor(PhaseWork),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Cycle returns the current 1-based cycle index.
func (s *Session) Cycle() int {
	return s.cycle
}

// Cycles returns the configured total cycle count.
func (s *Session) Cycles() int {
	return s.cfg.Cycles
}

// Done reports whether the session has finished its long break.
func (s *Session) Done() bool {
	return s.done
}

// Advance moves to the next phase and returns it. The second return value
// is false once the session is done; the returned phase is then the zero
// value and must not be started.
func (s *Session) Advance() (Phase, bool) {
	if s.done {
		return Phase{}, false
	}

	switch s.phase.Kind {
	case PhaseWork:
		if s.cycle < s.cfg.Cycles {
			s.phase = s.cfg.PhaseFor(PhaseShortBreak)
		} else {
			s.phase = s.cfg.PhaseFor(PhaseLongBreak)
		}
	case PhaseShortBreak:
		s.cycle++
		s.phase = s.cfg.PhaseFor(PhaseWork)
	case PhaseLongBreak:
		s.done = true
		return Phase{}, false
	}
	return s.phase, true
}

// InitialRemaining returns how much time the first work phase should start
// with: the resume offset when one was supplied, the full duration otherwise.
func (s *Session) InitialRemaining() time.Duration {
	if s.cfg.Resume > 0 {
		return s.cfg.Resume
	}
	return s.cfg.WorkDuration
}

// Snapshot is a read-only view of the running session, consumed by the
// renderer once per tick.
type Snapshot struct {
	Phase      Phase
	Cycle      int
	Cycles     int
	Remaining  time.Duration
	Paused     bool
	NowPlaying string
	Done       bool
}

// Progress returns phase completion from 0.0 to 1.0.
func (s Snapshot) Progress() float64 {
	if s.Phase.Duration <= 0 {
		return 0
	}
	p := 1.0 - float64(s.Remaining)/float64(s.Phase.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
