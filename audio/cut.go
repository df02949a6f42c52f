package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tracksplit/segments"
)

// DefaultBitrate is the MP3 bit rate used when none is configured.
const DefaultBitrate = "320k"

// Cutter writes each segment of a source file to its own MP3 in OutputDir.
type Cutter struct {
	// Bin is the ffmpeg executable; empty means "ffmpeg" on PATH.
	Bin       string
	Bitrate   string
	OutputDir string
}

// Cut encodes [seg.Start, seg.End) of src to OutputDir/TrackFileName(...)
// and returns the path of the new file.
func (c *Cutter) Cut(ctx context.Context, src string, seg segments.Segment) (string, error) {
	if seg.End <= seg.Start {
		return "", &segments.InvalidSegmentError{Index: seg.Index, Start: seg.Start, End: seg.End, Label: seg.Label}
	}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	bin := c.Bin
	if bin == "" {
		bin = "ffmpeg"
	}
	bitrate := c.Bitrate
	if bitrate == "" {
		bitrate = DefaultBitrate
	}
	out := filepath.Join(c.OutputDir, TrackFileName(seg.Index, seg.Label, "mp3"))

	cmd := exec.CommandContext(ctx, bin,
		"-y", "-v", "error",
		"-ss", seconds(seg.Start),
		"-i", src,
		"-t", seconds(seg.Duration()),
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		out)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg track %d: %w\nOutput: %s", seg.Index, err, strings.TrimSpace(string(output)))
	}
	return out, nil
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
