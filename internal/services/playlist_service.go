// Package services contains the use-case layer: playlist rotation and the
// session engine that sequences phases and drives audio.
package services

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lofibeats/lofi-cli/internal/domain"
	"github.com/lofibeats/lofi-cli/internal/ports"
)

// PlaylistService produces a shuffled, non-repeating sequence of track
// paths. When a round is exhausted the full eligible set is reshuffled and
// the queue refilled, so no track repeats until every eligible track has
// played once per round.
type PlaylistService struct {
	store    ports.IgnoreStore
	logger   *log.Logger
	rng      *rand.Rand
	eligible []string
	queue    []string
	last     string
}

// NewPlaylistService scans folder for supported audio files, filters the
// ignored set, and returns a provider over the remainder. An unreadable
// folder is an error; an empty one is not.
func NewPlaylistService(folder string, store ports.IgnoreStore, logger *log.Logger) (*PlaylistService, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read music folder %s: %w", folder, err)
	}

	var eligible []string
	ignored := 0
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsAudioFile(entry.Name()) {
			continue
		}
		path := filepath.Join(folder, entry.Name())
		if store.Contains(path) {
			ignored++
			continue
		}
		eligible = append(eligible, path)
	}
	sort.Strings(eligible)

	logger.Info("scanned music folder", "folder", folder, "tracks", len(eligible), "ignored", ignored)

	return &PlaylistService{
		store:    store,
		logger:   logger,
		rng:      rand.New(rand.NewSource(rand.Int63())),
		eligible: eligible,
	}, nil
}

// Len returns the number of eligible tracks.
func (p *PlaylistService) Len() int {
	return len(p.eligible)
}

// Tracks returns the eligible track paths, sorted.
func (p *PlaylistService) Tracks() []string {
	out := make([]string, len(p.eligible))
	copy(out, p.eligible)
	return out
}

// NextTrack returns the next track of the current round, reshuffling when
// the round is exhausted. Returns false when no tracks are eligible.
func (p *PlaylistService) NextTrack() (string, bool) {
	if len(p.eligible) == 0 {
		return "", false
	}

	if len(p.queue) == 0 {
		p.refill()
	}

	track := p.queue[0]
	p.queue = p.queue[1:]
	p.last = track
	return track, true
}

// refill starts a new round. With two or more eligible tracks the new round
// never opens with the track that just finished.
func (p *PlaylistService) refill() {
	p.queue = make([]string, len(p.eligible))
	copy(p.queue, p.eligible)
	p.rng.Shuffle(len(p.queue), func(i, j int) {
		p.queue[i], p.queue[j] = p.queue[j], p.queue[i]
	})

	if len(p.queue) >= 2 && p.queue[0] == p.last {
		j := 1 + p.rng.Intn(len(p.queue)-1)
		p.queue[0], p.queue[j] = p.queue[j], p.queue[0]
	}
}

// Ignore removes the track from the eligible set and persists it. A failed
// write is logged and the in-memory ignore still applies for this run.
func (p *PlaylistService) Ignore(path string) {
	if err := p.store.Add(path); err != nil {
		p.logger.Warn("could not persist ignored track", "track", filepath.Base(path), "err", err)
	}

	p.eligible = remove(p.eligible, path)
	p.queue = remove(p.queue, path)
	p.logger.Info("track ignored", "track", filepath.Base(path))
}

func remove(paths []string, path string) []string {
	out := paths[:0]
	for _, p := range paths {
		if p != path {
			out = append(out, p)
		}
	}
	return out
}

// Ensure PlaylistService implements ports.TrackSource.
var _ ports.TrackSource = (*PlaylistService)(nil)
