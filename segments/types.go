package segments

import (
	"errors"
	"fmt"
	"time"
)

// Segment is one half-open interval [Start, End) of the source recording.
type Segment struct {
	Index int // 1-based
	Start time.Duration
	End   time.Duration
	Label string
}

// Duration returns End - Start.
func (s Segment) Duration() time.Duration {
	return s.End - s.Start
}

// ErrInvalidSegment matches every *InvalidSegmentError via errors.Is.
var ErrInvalidSegment = errors.New("invalid segment")

// InvalidSegmentError reports a computed segment whose end does not lie after
// its start. It means the track offsets and the total duration disagree.
type InvalidSegmentError struct {
	Index int
	Start time.Duration
	End   time.Duration
	Label string
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): end %v is not after start %v", e.Index, e.Label, e.End, e.Start)
}

func (e *InvalidSegmentError) Is(target error) bool {
	return target == ErrInvalidSegment
}
