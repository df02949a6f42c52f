package timestamps

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned by Parse for tokens that are not
// M:SS, MM:SS, H:MM:SS or HH:MM:SS.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Parse converts a timestamp token to an offset from the start of the
// recording. Two components are read as minutes and seconds, three as hours,
// minutes and seconds. Components are not range checked: "1:75" is 2m15s.
func Parse(token string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q has %d components", ErrMalformedTimestamp, token, len(parts))
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		n, ok := atoi2(p)
		if !ok {
			return 0, fmt.Errorf("%w: invalid component %q in %q", ErrMalformedTimestamp, p, token)
		}
		values[i] = n
	}

	if len(values) == 2 {
		return time.Duration(values[0])*time.Minute + time.Duration(values[1])*time.Second, nil
	}
	return time.Duration(values[0])*time.Hour +
		time.Duration(values[1])*time.Minute +
		time.Duration(values[2])*time.Second, nil
}

// atoi2 parses a one or two digit component.
func atoi2(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Format renders an offset as M:SS, or H:MM:SS from one hour up.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
