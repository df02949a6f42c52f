// Package browser reads video descriptions from the rendered watch page with
// a headless Chrome driven by rod.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Session is a launched browser with one open page.
type Session struct {
	Launcher *launcher.Launcher
	Browser  *rod.Browser
	Page     *rod.Page
}

// NewSession launches a headless browser bound to ctx and opens a blank page
// whose operations time out after timeout.
func NewSession(ctx context.Context, timeout time.Duration) (*Session, error) {
	l := launcher.New().Headless(true).Context(ctx)
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("error launching browser: %w", err)
	}

	browser := rod.New().ControlURL(url).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("error connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("error creating page: %w", err)
	}

	return &Session{
		Launcher: l,
		Browser:  browser,
		Page:     page.Timeout(timeout),
	}, nil
}

// Close cleans up the browser session
func (s *Session) Close() {
	if s.Page != nil {
		s.Page.Close()
	}
	if s.Browser != nil {
		s.Browser.Close()
	}
	if s.Launcher != nil {
		s.Launcher.Cleanup()
	}
}

// NavigateAndWait navigates to a URL and waits for it to load
func (s *Session) NavigateAndWait(url string) error {
	if err := s.Page.Navigate(url); err != nil {
		return fmt.Errorf("error navigating to %s: %w", url, err)
	}
	if err := s.Page.WaitLoad(); err != nil {
		return fmt.Errorf("error waiting for page load: %w", err)
	}
	return nil
}
