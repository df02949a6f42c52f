// Package timestamps finds track markers such as "0:00 Intro" or
// "Intro - 0:00" in free-text media descriptions.
package timestamps

import (
	"cmp"
	"slices"
	"strings"
)

// Extract scans description for markers in both the forward and the reverse
// layout and returns them ordered by offset with duplicates removed.
// An empty or marker-free description yields an empty list.
func Extract(description string) TrackList {
	return ExtractLayouts(description, Both)
}

// ExtractLayouts is Extract restricted to the given layouts. Candidates whose
// token does not parse are skipped. When several candidates share an offset
// the first one wins, with forward-layout candidates ordered before
// reverse-layout ones.
func ExtractLayouts(description string, layouts Layout) TrackList {
	var forward, reverse []Marker
	for line := range strings.Lines(description) {
		line = strings.TrimRight(line, "\r\n \t")
		if layouts&Forward != 0 {
			if c, ok := scanForward(line); ok {
				forward = appendParsed(forward, c)
			}
		}
		if layouts&Reverse != 0 {
			if c, ok := scanReverse(line); ok {
				reverse = appendParsed(reverse, c)
			}
		}
	}

	merged := append(forward, reverse...)
	slices.SortStableFunc(merged, func(a, b Marker) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	out := make(TrackList, 0, len(merged))
	for _, m := range merged {
		if len(out) > 0 && out[len(out)-1].Offset == m.Offset {
			continue
		}
		out = append(out, m)
	}
	return out
}

func appendParsed(dst []Marker, c candidate) []Marker {
	offset, err := Parse(c.token)
	if err != nil {
		return dst
	}
	return append(dst, Marker{Offset: offset, Label: c.label})
}
