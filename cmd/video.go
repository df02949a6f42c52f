package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"tracksplit/audio"
	"tracksplit/browser"
	"tracksplit/config"
	"tracksplit/pipeline"
	"tracksplit/timestamps"
	"tracksplit/youtube"
)

// requireTools fails early when yt-dlp, ffprobe or (when splitting) ffmpeg
// cannot be found.
func requireTools(download, split bool) error {
	bins := []string{cfg.FFprobe}
	if download {
		bins = append(bins, cfg.YtDlp)
	}
	if split {
		bins = append(bins, cfg.FFmpeg)
	}
	return config.CheckBinaries(bins...)
}

func outputDir(args []string, index int) (string, error) {
	dir := cfg.OutputDir
	if len(args) > index {
		dir = args[index]
	}
	if dir == "" {
		return os.Getwd()
	}
	return dir, nil
}

// processVideo downloads one video into dir and, unless noSplit is set,
// splits it into dir/<title>/.
func processVideo(ctx context.Context, url, dir string, noSplit bool, progress io.Writer) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	src := &youtube.Source{
		Client:  &youtube.Client{Bin: cfg.YtDlp, Progress: progress},
		URL:     url,
		Dir:     dir,
		Bitrate: cfg.Bitrate,
		Prober:  &audio.Prober{Bin: cfg.FFprobe},
	}
	if cfg.BrowserFallback {
		src.Fallback = &browser.DescriptionFetcher{}
	}

	media, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Output file: %s\n", media.AudioPath)

	if kbps, err := src.Prober.Bitrate(ctx, media.AudioPath); err != nil {
		slog.Warn("could not determine actual bitrate", "file", media.AudioPath, "err", err)
	} else {
		fmt.Printf("Actual bitrate of MP3 file: %dk\n", kbps)
	}

	if noSplit {
		return nil
	}
	tracksDir := filepath.Join(dir, audio.SanitizeFilename(media.Title))
	_, err = splitMedia(ctx, media, tracksDir)
	return err
}

// splitMedia cuts media into tracksDir using the configured layouts,
// bitrate and worker count, and prints what it did.
func splitMedia(ctx context.Context, media *pipeline.Media, tracksDir string) (*pipeline.Result, error) {
	layouts, err := timestamps.ParseLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	cutter := &audio.Cutter{Bin: cfg.FFmpeg, Bitrate: cfg.Bitrate, OutputDir: tracksDir}

	fmt.Printf("Splitting tracks with bitrate: %s\n", cfg.Bitrate)
	res, err := pipeline.SplitMedia(ctx, media, cutter, pipeline.Options{Layouts: layouts, Workers: cfg.Workers})
	if err != nil {
		return nil, err
	}
	if len(res.Tracks) == 0 {
		fmt.Printf("No timestamps found in the description of %q\n", media.Title)
		return res, nil
	}

	fmt.Printf("Found %d timestamps in the description.\n", len(res.Tracks))
	for _, f := range res.Files {
		fmt.Printf("Created: %s\n", f)
	}
	fmt.Printf("Successfully split audio into %d tracks in: %s\n", len(res.Files), tracksDir)
	return res, nil
}
