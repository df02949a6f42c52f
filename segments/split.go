// Package segments turns an ordered track list into contiguous labelled
// intervals covering the rest of a recording.
package segments

import (
	"time"

	"tracksplit/timestamps"
)

// EndLabel labels the synthetic marker placed at the end of the recording.
const EndLabel = "End"

// Split computes one segment per track. Segment i runs from track i to track
// i+1, and the last one runs to total. An empty track list yields no segments
// and no error. If any segment would be empty or negative Split returns an
// *InvalidSegmentError and no segments.
func Split(tracks timestamps.TrackList, total time.Duration) ([]Segment, error) {
	if len(tracks) == 0 {
		return []Segment{}, nil
	}

	bounds := make([]timestamps.Marker, 0, len(tracks)+1)
	bounds = append(bounds, tracks...)
	bounds = append(bounds, timestamps.Marker{Offset: total, Label: EndLabel})

	out := make([]Segment, 0, len(tracks))
	for i := 0; i < len(bounds)-1; i++ {
		seg := Segment{
			Index: i + 1,
			Start: bounds[i].Offset,
			End:   bounds[i+1].Offset,
			Label: bounds[i].Label,
		}
		if seg.End <= seg.Start {
			return nil, &InvalidSegmentError{Index: seg.Index, Start: seg.Start, End: seg.End, Label: seg.Label}
		}
		out = append(out, seg)
	}
	return out, nil
}
