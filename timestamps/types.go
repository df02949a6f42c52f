package timestamps

import (
	"fmt"
	"strings"
	"time"
)

// Marker is a single (offset, label) pair found in a description.
type Marker struct {
	Offset time.Duration
	Label  string
}

// TrackList is an ordered list of markers with strictly increasing offsets.
// Only Extract and ExtractLayouts produce one.
type TrackList []Marker

// String renders one numbered line per marker, such as " 2. Verse - 1:37",
// the way the timestamps command prints them.
func (tl TrackList) String() string {
	var sb strings.Builder
	for i, m := range tl {
		fmt.Fprintf(&sb, "%2d. %s - %s\n", i+1, m.Label, Format(m.Offset))
	}
	return sb.String()
}

// Layout selects which textual arrangements the extractor recognises.
type Layout uint8

const (
	// Forward matches "0:00 Intro", "(0:00) Intro", "0:00 - Intro".
	Forward Layout = 1 << iota
	// Reverse matches "Intro - 0:00" and "Intro: 0:00".
	Reverse

	Both = Forward | Reverse
)

func (l Layout) String() string {
	switch l {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout maps a layout name (both, forward, reverse) to a Layout.
// The empty string selects Both.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "both":
		return Both, nil
	case "forward":
		return Forward, nil
	case "reverse":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (want both, forward or reverse)", name)
	}
}
