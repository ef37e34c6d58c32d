package ports

import "github.com/lofibeats/lofi-cli/internal/domain"

// SessionDriver is the surface the render loop drives: one Tick per frame,
// events as the user presses keys. Implemented by the session service.
type SessionDriver interface {
	// Tick advances the session by one main-loop iteration and returns
	// the snapshot to render.
	Tick() domain.Snapshot

	// Handle applies one listener event.
	Handle(ev domain.Event)

	// State returns the current snapshot without advancing anything.
	State() domain.Snapshot
}
