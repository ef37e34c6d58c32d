// Package storage persists the ignored-track set as a flat text file, one
// path per line, appended on each ignore.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// IgnoreFile is a tiny append-only key set backed by a text file. It is
// loaded once at startup and only ever written from the main loop, so no
// locking is needed.
type IgnoreFile struct {
	path  string
	paths map[string]struct{}
}

// NewIgnoreFile loads the ignore set from path. A missing file is an empty
// set, not an error.
func NewIgnoreFile(path string) (*IgnoreFile, error) {
	s := &IgnoreFile{
		path:  path,
		paths: make(map[string]struct{}),
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s.paths[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return s, nil
}

// Contains reports whether the path is ignored.
func (s *IgnoreFile) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Add records the path in memory and appends it to the file. The in-memory
// set keeps the entry even when the write fails, so the ignore still holds
// for the current run.
func (s *IgnoreFile) Add(path string) error {
	s.paths[path] = struct{}{}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create ignore file directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ignore file for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, path); err != nil {
		return fmt.Errorf("failed to append to ignore file: %w", err)
	}
	return nil
}

// Paths returns all ignored paths, sorted for stable output.
func (s *IgnoreFile) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Reset clears the set and removes the backing file.
func (s *IgnoreFile) Reset() error {
	s.paths = make(map[string]struct{})
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove ignore file: %w", err)
	}
	return nil
}
