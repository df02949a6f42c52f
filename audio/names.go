// Package audio probes and cuts audio files with ffprobe and ffmpeg.
package audio

import (
	"fmt"
	"regexp"
	"strings"
)

var invalidFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeFilename replaces characters that are not allowed in file names
// with underscores.
func SanitizeFilename(name string) string {
	return invalidFilenameChars.ReplaceAllString(name, "_")
}

// TrackFileName builds the file name for a numbered track, e.g.
// "03 - The Serpent's Kiss.mp3". Tracks without a label are just "03.mp3".
func TrackFileName(index int, label, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	label = strings.TrimSpace(SanitizeFilename(label))
	if label == "" {
		return fmt.Sprintf("%02d.%s", index, ext)
	}
	return fmt.Sprintf("%02d - %s.%s", index, label, ext)
}
