package domain

// Event is a single-key command captured by the input listener and consumed
// by the session once per tick. Events are transient and never persisted.
type Event int

const (
	// EventSkip stops the current track and moves to the next one.
	EventSkip Event = iota

	// EventPauseToggle pauses or resumes the timer and playback together.
	EventPauseToggle

	// EventIgnore adds the current track to the persisted ignore list and
	// skips it immediately.
	EventIgnore
)

// String returns the event name for logging.
func (e Event) String() string {
	switch e {
	case EventSkip:
		return "skip"
	case EventPauseToggle:
		return "pause_toggle"
	case EventIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}
