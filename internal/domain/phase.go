// Package domain contains the core session model: phases, the cycle
// state machine, the wall-clock phase timer, and session events.
package domain

import "time"

// PhaseKind identifies the type of a timed session segment.
type PhaseKind string

const (
	PhaseWork       PhaseKind = "work"
	PhaseShortBreak PhaseKind = "short_break"
	PhaseLongBreak  PhaseKind = "long_break"
)

// Phase is one timed segment of the session. Immutable once constructed.
type Phase struct {
	Kind     PhaseKind
	Duration time.Duration
}

// Label returns a human-readable name for the phase.
func (p Phase) Label() string {
	switch p.Kind {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsWork returns true for work phases.
func (p Phase) IsWork() bool {
	return p.Kind == PhaseWork
}

// IsBreak returns true for short and long break phases.
func (p Phase) IsBreak() bool {
	return p.Kind == PhaseShortBreak || p.Kind == PhaseLongBreak
}
