// Package pipeline wires a media source, the timestamp extractor, the
// segmenter and an audio cutter into one split run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tracksplit/segments"
	"tracksplit/timestamps"
)

// Media is what a Source hands to the pipeline.
type Media struct {
	Title       string
	Description string
	Duration    time.Duration
	AudioPath   string
}

// Source supplies the description, total duration and audio file of one
// recording.
type Source interface {
	Fetch(ctx context.Context) (*Media, error)
}

// Cutter writes the [Start, End) interval of audioPath to a new file named
// after the segment and returns its path.
type Cutter interface {
	Cut(ctx context.Context, audioPath string, seg segments.Segment) (string, error)
}

// Options tune a run. The zero value extracts both layouts with one worker
// and logs to slog.Default().
type Options struct {
	Layouts timestamps.Layout
	Workers int
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Result describes a finished run. Files[i] belongs to Segments[i].
type Result struct {
	Media    *Media
	Tracks   timestamps.TrackList
	Segments []segments.Segment
	Files    []string
}

// Run fetches media from src and splits it. See SplitMedia.
func Run(ctx context.Context, src Source, cutter Cutter, opts Options) (*Result, error) {
	media, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	return SplitMedia(ctx, media, cutter, opts)
}

// SplitMedia extracts markers from media.Description and cuts one file per
// track. A missing description or one without markers is not an error: the
// result then has no segments. Segment invariant violations are returned as
// *segments.InvalidSegmentError before anything is cut.
func SplitMedia(ctx context.Context, media *Media, cutter Cutter, opts Options) (*Result, error) {
	log := opts.logger().With("title", media.Title)
	res := &Result{Media: media}

	if strings.TrimSpace(media.Description) == "" {
		log.Info("no description, nothing to split")
		return res, nil
	}

	layouts := opts.Layouts
	if layouts == 0 {
		layouts = timestamps.Both
	}
	res.Tracks = timestamps.ExtractLayouts(media.Description, layouts)
	if len(res.Tracks) == 0 {
		log.Info("no timestamps found in description", "layouts", layouts)
		return res, nil
	}
	log.Info("found timestamps", "count", len(res.Tracks), "duration", media.Duration)

	segs, err := segments.Split(res.Tracks, media.Duration)
	if err != nil {
		return res, fmt.Errorf("split %q: %w", media.Title, err)
	}
	res.Segments = segs

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	files := make([]string, len(segs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seg := range segs {
		g.Go(func() error {
			path, err := cutter.Cut(gctx, media.AudioPath, seg)
			if err != nil {
				return fmt.Errorf("cut track %d %q: %w", seg.Index, seg.Label, err)
			}
			files[i] = path
			log.Debug("created track", "track", seg.Index, "start", seg.Start, "end", seg.End, "file", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.Files = files
	return res, nil
}
