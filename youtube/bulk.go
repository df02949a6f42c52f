package youtube

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ReadVideoIDs reads one video ID or URL per line from filename. Blank lines
// and lines starting with # are skipped, as are lines that are neither a
// video ID nor an http(s) URL.
func ReadVideoIDs(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var videoIDs []string
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !IsYouTubeID(line) && !strings.HasPrefix(line, "https://") && !strings.HasPrefix(line, "http://") {
			slog.Warn("skipping invalid video ID", "file", filename, "line", lineNum, "value", line)
			continue
		}

		videoIDs = append(videoIDs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	return videoIDs, nil
}
