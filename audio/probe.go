package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Prober reads stream information with ffprobe.
type Prober struct {
	// Bin is the ffprobe executable; empty means "ffprobe" on PATH.
	Bin string
}

func (p Prober) bin() string {
	if p.Bin == "" {
		return "ffprobe"
	}
	return p.Bin
}

// Duration returns the container duration of path, rounded to milliseconds.
func (p Prober) Duration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, p.bin(), "-v", "quiet", "-print_format", "json", "-show_format", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(output, &result); err != nil {
		return 0, fmt.Errorf("ffprobe %s: decode output: %w", path, err)
	}

	seconds, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: parse duration %q: %w", path, result.Format.Duration, err)
	}
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond), nil
}

// Bitrate returns the bit rate of the first audio stream in kbit/s.
func (p Prober) Bitrate(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, p.bin(),
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=bit_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	bps, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: parse bit rate: %w", path, err)
	}
	return bps / 1000, nil
}
