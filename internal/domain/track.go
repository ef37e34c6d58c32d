package domain

import (
	"path/filepath"
	"strings"
)

// supportedExtensions lists the audio formats the player can decode.
var supportedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
}

// IsAudioFile reports whether the path has a supported audio extension.
func IsAudioFile(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}
