package services

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lofibeats/lofi-cli/internal/domain"
	"github.com/lofibeats/lofi-cli/internal/ports"
)

// maxPlayAttempts bounds how many broken tracks are skipped in a row before
// the work phase falls back to silence.
const maxPlayAttempts = 10

// TransitionHook is called on every phase change. done is true when the
// session has finished; next is then the zero phase.
type TransitionHook func(prev, next domain.Phase, done bool)

// SessionService drives one session: it owns the state machine and the
// phase timer, consumes events, and switches audio on transitions. All
// methods are called from a single goroutine, once per render tick.
type SessionService struct {
	cfg     domain.SessionConfig
	session *domain.Session
	timer   *domain.PhaseTimer
	player  ports.Player
	tracks  ports.TrackSource
	logger  *log.Logger

	paused  bool
	started bool
	current string // work track being played, empty during breaks/silence

	onTransition TransitionHook
}

// SessionOption configures a SessionService.
type SessionOption func(*SessionService)

// WithTimerClock injects the timer clock, used by tests.
func WithTimerClock(now func() time.Time) SessionOption {
	return func(s *SessionService) {
		s.timer = domain.NewPhaseTimer(domain.WithClock(now))
	}
}

// NewSessionService wires the session engine. tracks may be nil when work
// music is disabled or no eligible tracks exist; work phases are then
// silent. cfg must already be validated.
func NewSessionService(cfg domain.SessionConfig, player ports.Player, tracks ports.TrackSource, logger *log.Logger, opts ...SessionOption) *SessionService {
	s := &SessionService{
		cfg:     cfg,
		session: domain.NewSession(cfg),
		timer:   domain.NewPhaseTimer(),
		player:  player,
		tracks:  tracks,
		logger:  logger.With("session", uuid.New().String()[:8]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOnTransition registers the phase-change hook.
func (s *SessionService) SetOnTransition(hook TransitionHook) {
	s.onTransition = hook
}

// Start enters Work(1), seeding the timer from the resume offset when one
// was configured, and begins work music.
func (s *SessionService) Start() {
	s.player.SetVolume(s.cfg.Volume)
	s.timer.Start(s.session.InitialRemaining())
	s.started = true
	s.logger.Info("session started",
		"work", s.cfg.WorkDuration,
		"cycles", s.cfg.Cycles,
		"remaining", s.session.InitialRemaining())
	s.startWorkMusic()
}

// Tick advances the session by one iteration of the main loop: it checks
// the timer for expiry, keeps work music flowing when a track has ended,
// and returns a snapshot for rendering.
func (s *SessionService) Tick() domain.Snapshot {
	if !s.started || s.session.Done() {
		return s.State()
	}

	if s.timer.Expired() {
		s.advancePhase()
	}

	// A finished track leaves the channel idle; queue the next one.
	if !s.session.Done() && s.session.Phase().IsWork() && !s.paused &&
		s.tracks != nil && !s.player.Playing() {
		s.nextTrack()
	}

	return s.State()
}

// Handle applies one listener event.
func (s *SessionService) Handle(ev domain.Event) {
	switch ev {
	case domain.EventSkip:
		if s.paused || s.current == "" {
			return
		}
		s.player.Stop()
		s.nextTrack()
	case domain.EventPauseToggle:
		s.togglePause()
	case domain.EventIgnore:
		if s.current == "" {
			s.logger.Debug("ignore event with no current track")
			return
		}
		ignored := s.current
		s.player.Stop()
		s.tracks.Ignore(ignored)
		s.current = ""
		if !s.paused {
			s.nextTrack()
		}
	}
}

// State returns a read-only view of the session for rendering.
func (s *SessionService) State() domain.Snapshot {
	snap := domain.Snapshot{
		Phase:  s.session.Phase(),
		Cycle:  s.session.Cycle(),
		Cycles: s.session.Cycles(),
		Paused: s.paused,
		Done:   s.session.Done(),
	}
	if !snap.Done {
		snap.Remaining = s.timer.Remaining()
	}
	if s.current != "" {
		snap.NowPlaying = filepath.Base(s.current)
	}
	return snap
}

// Stop halts playback. Called on quit and on interrupt, before the process
// releases the audio device.
func (s *SessionService) Stop() {
	s.player.Stop()
	s.current = ""
}

func (s *SessionService) advancePhase() {
	prev := s.session.Phase()
	s.player.Stop()
	s.current = ""

	next, ok := s.session.Advance()
	if !ok {
		s.logger.Info("session complete")
		if s.onTransition != nil {
			s.onTransition(prev, domain.Phase{}, true)
		}
		return
	}

	s.timer.Start(next.Duration)
	s.logger.Info("phase change", "from", prev.Label(), "to", next.Label(), "cycle", s.session.Cycle())
	if s.onTransition != nil {
		s.onTransition(prev, next, false)
	}

	if next.IsWork() {
		s.startWorkMusic()
		return
	}
	if s.cfg.BreakSound != "" {
		if err := s.player.Loop(s.cfg.BreakSound); err != nil {
			s.logger.Warn("could not play break sound", "sound", filepath.Base(s.cfg.BreakSound), "err", err)
		}
	}
}

func (s *SessionService) startWorkMusic() {
	if s.tracks == nil {
		return
	}
	s.nextTrack()
}

// nextTrack pulls tracks from the source until one plays, skipping broken
// files with a warning.
func (s *SessionService) nextTrack() {
	for i := 0; i < maxPlayAttempts; i++ {
		path, ok := s.tracks.NextTrack()
		if !ok {
			s.current = ""
			return
		}
		if err := s.player.Play(path); err != nil {
			s.logger.Warn("could not play track, skipping", "track", filepath.Base(path), "err", err)
			continue
		}
		s.current = path
		s.logger.Info("now playing", "track", filepath.Base(path))
		return
	}
	s.current = ""
}

func (s *SessionService) togglePause() {
	if s.paused {
		s.timer.Resume()
		s.player.Resume()
		s.paused = false
		s.logger.Info("resumed")
		return
	}
	s.timer.Pause()
	s.player.Pause()
	s.paused = true
	s.logger.Info("paused")
}
