package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_Timer(t *testing.T) {
	cfg := DefaultConfig()
	if time.Duration(cfg.Timer.Work) != 25*time.Minute {
		t.Errorf("expected default work duration 25m, got %v", cfg.Timer.Work)
	}
	if time.Duration(cfg.Timer.ShortBreak) != 5*time.Minute {
		t.Errorf("expected default short break 5m, got %v", cfg.Timer.ShortBreak)
	}
	if time.Duration(cfg.Timer.LongBreak) != 15*time.Minute {
		t.Errorf("expected default long break 15m, got %v", cfg.Timer.LongBreak)
	}
	if cfg.Timer.Cycles != 4 {
		t.Errorf("expected default cycles 4, got %d", cfg.Timer.Cycles)
	}
}

func TestDefaultConfig_Audio(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Audio.Volume != 1.0 {
		t.Errorf("expected default volume 1.0, got %f", cfg.Audio.Volume)
	}
	if cfg.Audio.BreakSound != "random" {
		t.Errorf("expected default break sound 'random', got %q", cfg.Audio.BreakSound)
	}
}

func TestDuration_TextRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("25m0s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 25*time.Minute {
		t.Errorf("UnmarshalText() = %v, want 25m", d)
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "25m0s" {
		t.Errorf("MarshalText() = %s, want 25m0s", text)
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText() error = nil for invalid input")
	}
}

func TestGetSoundsDir_ConfiguredWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.SoundsDir = "/srv/sounds"
	dir, err := GetSoundsDir(cfg)
	if err != nil {
		t.Fatalf("GetSoundsDir() error = %v", err)
	}
	if dir != "/srv/sounds" {
		t.Errorf("GetSoundsDir() = %s, want /srv/sounds", dir)
	}
}
