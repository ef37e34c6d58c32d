package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/domain"
)

// changedSet reports the named flags as explicitly set.
func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return func(name string) bool { return set[name] }
}

func resetFlags(t *testing.T) {
	t.Helper()
	prevWork, prevShort, prevLong := flagWork, flagShort, flagLong
	prevCycles, prevResume := flagCycles, flagResume
	prevVolume, prevFolder := flagVolume, flagMusicFolder
	prevNoMusic := flagNoWorkMusic
	t.Cleanup(func() {
		flagWork, flagShort, flagLong = prevWork, prevShort, prevLong
		flagCycles, flagResume = prevCycles, prevResume
		flagVolume, flagMusicFolder = prevVolume, prevFolder
		flagNoWorkMusic = prevNoMusic
	})
}

func TestBuildSessionConfig_Defaults(t *testing.T) {
	resetFlags(t)
	cfg, err := buildSessionConfig(config.DefaultConfig(), changedSet())
	if err != nil {
		t.Fatalf("buildSessionConfig() error = %v", err)
	}

	if cfg.WorkDuration != 25*time.Minute {
		t.Errorf("WorkDuration = %v, want 25m", cfg.WorkDuration)
	}
	if cfg.Cycles != 4 {
		t.Errorf("Cycles = %d, want 4", cfg.Cycles)
	}
	if cfg.Volume != 1.0 {
		t.Errorf("Volume = %v, want 1.0", cfg.Volume)
	}
	if !cfg.WorkMusic {
		t.Error("WorkMusic = false, want true")
	}
}

func TestBuildSessionConfig_FlagsOverrideConfig(t *testing.T) {
	resetFlags(t)
	appCfg := config.DefaultConfig()
	appCfg.Audio.MusicFolder = "/from/config"

	flagWork = 50
	flagCycles = 2
	flagVolume = 0.5
	flagMusicFolder = "/from/flag"

	cfg, err := buildSessionConfig(appCfg, changedSet("work", "cycles", "volume", "music-folder"))
	if err != nil {
		t.Fatalf("buildSessionConfig() error = %v", err)
	}

	if cfg.WorkDuration != 50*time.Minute {
		t.Errorf("WorkDuration = %v, want 50m", cfg.WorkDuration)
	}
	if cfg.Cycles != 2 {
		t.Errorf("Cycles = %d, want 2", cfg.Cycles)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Volume = %v, want 0.5", cfg.Volume)
	}
	if cfg.MusicFolder != "/from/flag" {
		t.Errorf("MusicFolder = %q, want /from/flag", cfg.MusicFolder)
	}
}

func TestBuildSessionConfig_UnchangedFlagsKeepConfigValues(t *testing.T) {
	resetFlags(t)
	appCfg := config.DefaultConfig()
	appCfg.Timer.Work = config.Duration(45 * time.Minute)
	appCfg.Audio.MusicFolder = "/from/config"

	flagWork = 25 // cobra default, not explicitly set

	cfg, err := buildSessionConfig(appCfg, changedSet())
	if err != nil {
		t.Fatalf("buildSessionConfig() error = %v", err)
	}
	if cfg.WorkDuration != 45*time.Minute {
		t.Errorf("WorkDuration = %v, want config value 45m", cfg.WorkDuration)
	}
	if cfg.MusicFolder != "/from/config" {
		t.Errorf("MusicFolder = %q, want /from/config", cfg.MusicFolder)
	}
}

func TestBuildSessionConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		prepare func()
		changed []string
		wantErr error
	}{
		{
			name:    "volume above range",
			prepare: func() { flagVolume = 1.5 },
			changed: []string{"volume"},
			wantErr: domain.ErrInvalidVolume,
		},
		{
			name:    "zero cycles",
			prepare: func() { flagCycles = 0 },
			changed: []string{"cycles"},
			wantErr: domain.ErrInvalidCycles,
		},
		{
			name:    "negative work duration",
			prepare: func() { flagWork = -5 },
			changed: []string{"work"},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "resume longer than work",
			prepare: func() { flagWork = 25; flagResume = 30 },
			changed: []string{"work", "resume"},
			wantErr: domain.ErrInvalidResume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			tt.prepare()
			_, err := buildSessionConfig(config.DefaultConfig(), changedSet(tt.changed...))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("buildSessionConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFuzzyFilter(t *testing.T) {
	paths := []string{
		"/music/chillhop-raccoon.mp3",
		"/music/rainy-night.mp3",
		"/music/study-beats.ogg",
	}

	got := fuzzyFilter(paths, "rain")
	if len(got) != 1 || got[0] != "/music/rainy-night.mp3" {
		t.Errorf("fuzzyFilter(rain) = %v, want the rainy-night track", got)
	}

	if got := fuzzyFilter(paths, "zzz"); len(got) != 0 {
		t.Errorf("fuzzyFilter(zzz) = %v, want empty", got)
	}
}
