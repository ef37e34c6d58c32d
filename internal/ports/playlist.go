package ports

// TrackSource produces the next track to play. Implementations guarantee
// that no track repeats until every eligible track has been returned once
// per round.
type TrackSource interface {
	// NextTrack returns the next track path. The second return value is
	// false when no eligible tracks remain, in which case the caller
	// falls back to silence.
	NextTrack() (string, bool)

	// Ignore removes the track from the eligible set for this run and
	// persists the decision best-effort.
	Ignore(path string)
}

// IgnoreStore persists the set of ignored track paths. Entries are only
// added during a run; Reset is the sole way to shrink the set.
type IgnoreStore interface {
	// Contains reports whether the path is ignored.
	Contains(path string) bool

	// Add records the path. The in-memory set is updated even when the
	// write fails.
	Add(path string) error

	// Paths returns all ignored paths.
	Paths() []string

	// Reset clears the set and truncates the backing file.
	Reset() error
}
