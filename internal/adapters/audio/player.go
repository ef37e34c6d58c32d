// Package audio implements playback on top of the beep speaker. One stream
// is active at a time; break ambience uses an infinite loop of the same
// pipeline.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/lofibeats/lofi-cli/internal/ports"
)

// sampleRate is the fixed speaker rate; decoded streams are resampled to it.
const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce    sync.Once
	speakerInitErr error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerInitErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerInitErr
}

// stream bundles the resources of one playing track.
type stream struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	done     chan struct{}
}

func (s *stream) close() {
	if s.streamer != nil {
		s.streamer.Close()
	}
	if s.file != nil {
		s.file.Close()
	}
}

// Player implements ports.Player using the beep library.
type Player struct {
	mu      sync.Mutex
	current *stream
	level   float64
}

// NewPlayer acquires the audio device. The speaker is initialized once per
// process.
func NewPlayer() (*Player, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("failed to initialize audio device: %w", err)
	}
	return &Player{level: 1.0}, nil
}

// Play starts the file once, replacing any active stream.
func (p *Player) Play(path string) error {
	return p.start(path, false)
}

// Loop plays the file continuously until Stop.
func (p *Player) Loop(path string) error {
	return p.start(path, true)
}

func (p *Player) start(path string, loop bool) error {
	p.Stop()

	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	var source beep.Streamer = streamer
	if loop {
		source = beep.Loop(-1, streamer)
	}
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, source)
	}

	s := &stream{
		file:     f,
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: source},
		done:     make(chan struct{}),
	}
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   volumeGain(p.level),
		Silent:   p.level == 0,
	}

	p.mu.Lock()
	p.current = s
	p.mu.Unlock()

	done := s.done
	speaker.Play(beep.Seq(s.volume, beep.Callback(func() {
		close(done)
	})))
	return nil
}

// Stop halts playback and releases the current stream's resources.
func (p *Player) Stop() {
	p.mu.Lock()
	s := p.current
	p.current = nil
	p.mu.Unlock()

	if s == nil {
		return
	}
	speaker.Clear()
	s.close()
}

// Pause suspends playback without releasing the stream.
func (p *Player) Pause() {
	p.setPaused(true)
}

// Resume continues paused playback.
func (p *Player) Resume() {
	p.setPaused(false)
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	s := p.current
	p.mu.Unlock()

	if s == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume sets the gain from 0.0 (silent) to 1.0 (full). Values are
// mapped onto the exponential scale the ear expects.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.level = v
	s := p.current
	p.mu.Unlock()

	if s == nil {
		return
	}
	speaker.Lock()
	s.volume.Silent = v == 0
	s.volume.Volume = volumeGain(v)
	speaker.Unlock()
}

// Playing reports whether a stream is active. Paused streams count as
// active; streams that drained naturally do not.
func (p *Player) Playing() bool {
	p.mu.Lock()
	s := p.current
	p.mu.Unlock()

	if s == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Close stops playback and releases the audio device.
func (p *Player) Close() error {
	p.Stop()
	speaker.Close()
	return nil
}

// volumeGain converts a linear 0..1 level to the beep Volume exponent
// (base 2): 1.0 maps to 0, 0.5 to -1. Zero is handled via Silent.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}

// decode opens and decodes an audio file based on its extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("failed to open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}

// Ensure Player implements ports.Player.
var _ ports.Player = (*Player)(nil)
