// Package ports defines the interfaces between the service layer and its
// adapters.
package ports

// Player controls a single audio output channel. At most one stream is
// active at a time; starting a new one replaces the old.
type Player interface {
	// Play starts the file once. Returns an error if it cannot be
	// decoded or opened; the caller treats that as non-fatal.
	Play(path string) error

	// Loop plays the file continuously until Stop, used for ambient
	// break sounds.
	Loop(path string) error

	// Stop halts playback and releases the current stream.
	Stop()

	// Pause suspends playback without releasing the stream.
	Pause()

	// Resume continues paused playback.
	Resume()

	// SetVolume sets the gain, 0.0 (silent) to 1.0 (full).
	SetVolume(v float64)

	// Playing reports whether a stream is currently active. A paused
	// stream still counts as active.
	Playing() bool

	// Close stops playback and releases the audio device.
	Close() error
}
