package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration  = errors.New("durations must be positive")
	ErrInvalidCycles    = errors.New("cycles must be at least 1")
	ErrInvalidVolume    = errors.New("volume must be between 0.0 and 1.0")
	ErrInvalidResume    = errors.New("resume offset must be between 0 and the work duration")
	ErrNoEligibleTracks = errors.New("no eligible tracks")
)

// SessionConfig is the validated, immutable input for one session run.
type SessionConfig struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	Cycles             int

	// Resume, when non-zero, seeds the first work phase with less than
	// its nominal duration remaining.
	Resume time.Duration

	Volume      float64
	MusicFolder string
	WorkMusic   bool
	BreakSound  string // resolved file path; empty means silent breaks
}

// DefaultSessionConfig returns the classic 25/5/15 pomodoro setup.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		Cycles:             4,
		Volume:             1.0,
		WorkMusic:          true,
	}
}

// Validate checks the configuration and returns the first problem found.
// It must be called before any timer or audio state is created.
func (c SessionConfig) Validate() error {
	if c.WorkDuration <= 0 || c.ShortBreakDuration <= 0 || c.LongBreakDuration <= 0 {
		return ErrInvalidDuration
	}
	if c.Cycles < 1 {
		return ErrInvalidCycles
	}
	if c.Volume < 0.0 || c.Volume > 1.0 {
		return ErrInvalidVolume
	}
	if c.Resume < 0 || c.Resume > c.WorkDuration {
		return ErrInvalidResume
	}
	return nil
}

// PhaseFor builds the phase of the given kind with its configured duration.
func (c SessionConfig) PhaseFor(kind PhaseKind) Phase {
	switch kind {
	case PhaseShortBreak:
		return Phase{Kind: kind, Duration: c.ShortBreakDuration}
	case PhaseLongBreak:
		return Phase{Kind: kind, Duration: c.LongBreakDuration}
	default:
		return Phase{Kind: PhaseWork, Duration: c.WorkDuration}
	}
}
