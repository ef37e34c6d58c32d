package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreFile_AddAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignored_tracks")

	store, err := NewIgnoreFile(path)
	if err != nil {
		t.Fatalf("NewIgnoreFile() error = %v", err)
	}

	if err := store.Add("/music/a.mp3"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add("/music/b.ogg"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !store.Contains("/music/a.mp3") {
		t.Error("Contains() = false for added path")
	}
	if store.Contains("/music/c.wav") {
		t.Error("Contains() = true for unknown path")
	}

	// A fresh load sees the persisted entries.
	reloaded, err := NewIgnoreFile(path)
	if err != nil {
		t.Fatalf("NewIgnoreFile() reload error = %v", err)
	}
	if !reloaded.Contains("/music/a.mp3") || !reloaded.Contains("/music/b.ogg") {
		t.Errorf("reloaded Paths() = %v, want both entries", reloaded.Paths())
	}
}

func TestIgnoreFile_MissingFileIsEmpty(t *testing.T) {
	store, err := NewIgnoreFile(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("NewIgnoreFile() error = %v", err)
	}
	if len(store.Paths()) != 0 {
		t.Errorf("Paths() = %v, want empty", store.Paths())
	}
}

func TestIgnoreFile_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignored_tracks")

	store, err := NewIgnoreFile(path)
	if err != nil {
		t.Fatalf("NewIgnoreFile() error = %v", err)
	}
	if err := store.Add("/music/a.mp3"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if store.Contains("/music/a.mp3") {
		t.Error("Contains() = true after reset")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("backing file should be gone after reset")
	}

	// Resetting an already-empty store is fine.
	if err := store.Reset(); err != nil {
		t.Errorf("Reset() on empty store error = %v", err)
	}
}

func TestIgnoreFile_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignored_tracks")
	if err := os.WriteFile(path, []byte("/music/a.mp3\n\n/music/b.mp3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewIgnoreFile(path)
	if err != nil {
		t.Fatalf("NewIgnoreFile() error = %v", err)
	}
	if got := len(store.Paths()); got != 2 {
		t.Errorf("len(Paths()) = %d, want 2", got)
	}
}
