// Package youtube fetches video metadata and audio with yt-dlp.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"tracksplit/audio"
)

// IsYouTubeID reports whether input looks like a bare 11 character video ID.
func IsYouTubeID(input string) bool {
	return len(input) == 11 && !strings.ContainsAny(input, "./:?=")
}

// WatchURL turns a bare video ID into a watch URL and returns anything else
// unchanged.
func WatchURL(idOrURL string) string {
	if IsYouTubeID(idOrURL) {
		return "https://www.youtube.com/watch?v=" + idOrURL
	}
	return idOrURL
}

// VideoInfo is the subset of `yt-dlp --dump-json` the splitter needs.
type VideoInfo struct {
	ID          string
	Title       string
	Description string
	Duration    time.Duration
}

// Download is a finished audio download.
type Download struct {
	Path   string
	Info   *VideoInfo
	Format *AudioFormat
}

// Client runs yt-dlp.
type Client struct {
	// Bin is the yt-dlp executable; empty means "yt-dlp" on PATH.
	Bin string
	// Progress receives yt-dlp's own output while downloading. Nil discards it.
	Progress io.Writer
	Logger   *slog.Logger
}

func (c *Client) bin() string {
	if c.Bin == "" {
		return "yt-dlp"
	}
	return c.Bin
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// output runs yt-dlp and returns its stdout.
func (c *Client) output(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.bin(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp %s: %w (stderr: %s)", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Info reads title, description and duration of a single video.
func (c *Client) Info(ctx context.Context, url string) (*VideoInfo, error) {
	out, err := c.output(ctx, "--dump-json", "--no-playlist", WatchURL(url))
	if err != nil {
		return nil, err
	}

	var raw struct {
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("decode video info: %w", err)
	}
	if raw.Title == "" {
		raw.Title = "Unknown Title"
	}
	return &VideoInfo{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Duration:    time.Duration(raw.Duration * float64(time.Second)).Round(time.Millisecond),
	}, nil
}

// DownloadAudio downloads the best audio stream of url into dir as
// "<title>.mp3" encoded at bitrate (e.g. "320k").
func (c *Client) DownloadAudio(ctx context.Context, url, dir, bitrate string) (*Download, error) {
	url = WatchURL(url)
	info, err := c.Info(ctx, url)
	if err != nil {
		return nil, err
	}

	format, err := c.BestAudioFormat(ctx, url)
	if err != nil {
		// yt-dlp picks a format on its own without -f.
		c.logger().Warn("could not list audio formats", "url", url, "err", err)
		format = nil
	}

	path := filepath.Join(dir, audio.SanitizeFilename(info.Title)+".mp3")
	args := []string{}
	if format != nil {
		args = append(args, "-f", format.ID)
		c.logger().Info("using audio format", "format", format.String())
	}
	args = append(args,
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", bitrate,
		"--output", path,
		"--no-playlist",
		url)

	c.logger().Info("downloading audio", "url", url, "bitrate", bitrate, "file", path)
	cmd := exec.CommandContext(ctx, c.bin(), args...)
	progress := c.Progress
	if progress == nil {
		progress = io.Discard
	}
	cmd.Stdout = progress
	cmd.Stderr = progress
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("error downloading audio from %s: %w", url, err)
	}

	return &Download{Path: path, Info: info, Format: format}, nil
}
