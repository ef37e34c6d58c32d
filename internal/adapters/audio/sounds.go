package audio

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/lofibeats/lofi-cli/internal/domain"
)

// breakSoundFiles maps the named break-sound options to file names under
// the sounds directory.
var breakSoundFiles = map[string]string{
	"rain":      "rain.mp3",
	"fireplace": "fireplace.mp3",
	"wind":      "wind.mp3",
	"soft-wind": "soft-wind.mp3",
}

// BreakSoundOptions returns the named options, plus "random".
func BreakSoundOptions() []string {
	return []string{"rain", "fireplace", "wind", "soft-wind", "random"}
}

// ResolveBreakSound maps a break-sound selection to a playable file path.
// The selection is either one of the named options, "random" (a random
// named option that exists on disk), or a path to a custom audio file.
// Custom relative paths are looked up under soundsDir.
func ResolveBreakSound(selection, soundsDir string) (string, error) {
	if selection == "" {
		selection = "random"
	}

	// A custom file rather than a named option.
	if domain.IsAudioFile(selection) {
		path := selection
		if !filepath.IsAbs(path) {
			path = filepath.Join(soundsDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("break sound not found: %s", path)
		}
		return path, nil
	}

	if selection == "random" {
		var available []string
		for _, file := range breakSoundFiles {
			path := filepath.Join(soundsDir, file)
			if _, err := os.Stat(path); err == nil {
				available = append(available, path)
			}
		}
		if len(available) == 0 {
			return "", fmt.Errorf("no break sounds found in %s", soundsDir)
		}
		return available[rand.Intn(len(available))], nil
	}

	file, ok := breakSoundFiles[selection]
	if !ok {
		return "", fmt.Errorf("unknown break sound %q (options: rain, fireplace, wind, soft-wind, random, or a file path)", selection)
	}
	path := filepath.Join(soundsDir, file)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("break sound not found: %s", path)
	}
	return path, nil
}
