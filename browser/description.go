package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

const (
	expandSelector      = "#description-inline-expander #expand"
	descriptionSelector = "#description-inline-expander yt-attributed-string"
)

// DescriptionFetcher scrapes the description of a YouTube watch page.
type DescriptionFetcher struct {
	// Timeout bounds every page operation; zero means 30 seconds.
	Timeout time.Duration
	Logger  *slog.Logger
}

// FetchDescription opens url, expands the description box and returns its
// text.
func (f *DescriptionFetcher) FetchDescription(ctx context.Context, url string) (string, error) {
	timeout := f.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	log := f.Logger
	if log == nil {
		log = slog.Default()
	}

	s, err := NewSession(ctx, timeout)
	if err != nil {
		return "", err
	}
	defer s.Close()

	if err := s.NavigateAndWait(url); err != nil {
		return "", err
	}

	// The box is collapsed until "...more" is clicked; a short description
	// has no button at all.
	if btn, err := s.Page.Timeout(5 * time.Second).Element(expandSelector); err == nil {
		if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
			log.Debug("could not expand description", "url", url, "err", err)
		}
	}

	el, err := s.Page.Element(descriptionSelector)
	if err != nil {
		return "", fmt.Errorf("description not found on %s: %w", url, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read description on %s: %w", url, err)
	}
	return cleanDescription(text), nil
}

// cleanDescription normalises text copied out of the rendered page.
func cleanDescription(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		switch strings.TrimSpace(line) {
		case "Show less", "...more", "…more":
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
