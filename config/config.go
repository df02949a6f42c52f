// Package config loads tracksplit settings from YAML, the environment and
// command-line flags, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"tracksplit/audio"
	"tracksplit/timestamps"
)

// Config holds every setting the commands read.
type Config struct {
	YtDlp   string `yaml:"ytdlp"`
	FFmpeg  string `yaml:"ffmpeg"`
	FFprobe string `yaml:"ffprobe"`

	Bitrate   string `yaml:"bitrate"`
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`

	// Layout is both, forward or reverse.
	Layout          string `yaml:"layout"`
	BrowserFallback bool   `yaml:"browser_fallback"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		YtDlp:    "yt-dlp",
		FFmpeg:   "ffmpeg",
		FFprobe:  "ffprobe",
		Bitrate:  audio.DefaultBitrate,
		Workers:  4,
		Layout:   "both",
		LogLevel: "info",
	}
}

// DefaultPath is $HOME/.tracksplit.yaml, or "" if the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tracksplit.yaml")
}

// Load reads the YAML file at path on top of Default and applies environment
// overrides. A missing file is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := decode(f, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %q: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFromReader decodes YAML from r on top of Default. The environment is
// not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from YTDLP_BIN, FFMPEG_BIN, FFPROBE_BIN and
// TRACKSPLIT_OUTPUT_DIR.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.YtDlp, "YTDLP_BIN")
	set(&c.FFmpeg, "FFMPEG_BIN")
	set(&c.FFprobe, "FFPROBE_BIN")
	set(&c.OutputDir, "TRACKSPLIT_OUTPUT_DIR")
}

var bitratePattern = regexp.MustCompile(`^[1-9][0-9]*k$`)

// Validate checks field values. It returns a joined error listing every
// problem found.
func Validate(cfg *Config) error {
	var errs []error
	if !bitratePattern.MatchString(cfg.Bitrate) {
		errs = append(errs, fmt.Errorf("bitrate %q is invalid; want e.g. 320k", cfg.Bitrate))
	}
	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers))
	}
	if _, err := timestamps.ParseLayout(cfg.Layout); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CheckBinaries verifies that the named executables resolve, either as a
// path or on PATH.
func CheckBinaries(bins ...string) error {
	var errs []error
	for _, bin := range bins {
		if _, err := exec.LookPath(bin); err != nil {
			errs = append(errs, fmt.Errorf("%s not found: %w", bin, err))
		}
	}
	return errors.Join(errs...)
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", name)
	}
}
