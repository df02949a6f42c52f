package youtube

import (
	"context"
	"strings"

	"tracksplit/audio"
	"tracksplit/pipeline"
)

// DescriptionFetcher retrieves a video description some other way when
// yt-dlp returns none.
type DescriptionFetcher interface {
	FetchDescription(ctx context.Context, url string) (string, error)
}

// Source downloads a video's audio and exposes it to the pipeline.
type Source struct {
	Client  *Client
	URL     string
	Dir     string
	Bitrate string

	// Prober, when set, measures the downloaded file instead of trusting the
	// duration reported by yt-dlp.
	Prober *audio.Prober
	// Fallback is asked for the description when yt-dlp's is empty.
	Fallback DescriptionFetcher

	// Download is filled in by Fetch.
	Download *Download
}

func (s *Source) Fetch(ctx context.Context) (*pipeline.Media, error) {
	bitrate := s.Bitrate
	if bitrate == "" {
		bitrate = audio.DefaultBitrate
	}
	dl, err := s.Client.DownloadAudio(ctx, s.URL, s.Dir, bitrate)
	if err != nil {
		return nil, err
	}
	s.Download = dl
	log := s.Client.logger()

	description := dl.Info.Description
	if strings.TrimSpace(description) == "" && s.Fallback != nil {
		log.Info("yt-dlp returned no description, trying fallback", "url", s.URL)
		d, err := s.Fallback.FetchDescription(ctx, WatchURL(s.URL))
		if err != nil {
			log.Warn("description fallback failed", "url", s.URL, "err", err)
		} else {
			description = d
		}
	}

	duration := dl.Info.Duration
	if s.Prober != nil {
		d, err := s.Prober.Duration(ctx, dl.Path)
		if err != nil {
			log.Warn("could not probe downloaded audio, using reported duration", "file", dl.Path, "err", err)
		} else {
			duration = d
		}
	}

	return &pipeline.Media{
		Title:       dl.Info.Title,
		Description: description,
		Duration:    duration,
		AudioPath:   dl.Path,
	}, nil
}
