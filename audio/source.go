package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tracksplit/pipeline"
)

// LocalSource is a recording already on disk with a description supplied by
// the caller. The duration is probed from the file.
type LocalSource struct {
	AudioPath   string
	Description string
	Prober      Prober
}

func (s LocalSource) Fetch(ctx context.Context) (*pipeline.Media, error) {
	if _, err := os.Stat(s.AudioPath); err != nil {
		return nil, fmt.Errorf("audio file: %w", err)
	}
	duration, err := s.Prober.Duration(ctx, s.AudioPath)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(s.AudioPath)
	return &pipeline.Media{
		Title:       strings.TrimSuffix(base, filepath.Ext(base)),
		Description: s.Description,
		Duration:    duration,
		AudioPath:   s.AudioPath,
	}, nil
}
