package youtube

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AudioFormat is one "audio only" row of `yt-dlp -F`.
type AudioFormat struct {
	ID      string
	Ext     string
	Codec   string
	Bitrate int // kbit/s, 0 when unknown
}

func (f AudioFormat) String() string {
	return fmt.Sprintf("%s - %s - %s - %dk", f.ID, f.Ext, f.Codec, f.Bitrate)
}

// BestAudioFormat lists the formats of url and returns the audio-only one
// with the highest bit rate, or nil if there is none.
func (c *Client) BestAudioFormat(ctx context.Context, url string) (*AudioFormat, error) {
	out, err := c.output(ctx, "-F", "--no-playlist", WatchURL(url))
	if err != nil {
		return nil, err
	}
	formats := parseAudioFormats(string(out))
	if len(formats) == 0 {
		return nil, nil
	}
	best := slices.MaxFunc(formats, func(a, b AudioFormat) int { return a.Bitrate - b.Bitrate })
	return &best, nil
}

// parseAudioFormats reads the table printed by `yt-dlp -F`, e.g.
//
//	251 webm audio only 2 |  3.29MiB  129k https | audio only opus 129k 48k medium, webm_dash
func parseAudioFormats(table string) []AudioFormat {
	var formats []AudioFormat
	scanner := bufio.NewScanner(strings.NewReader(table))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "audio only") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		f := AudioFormat{ID: parts[0], Ext: "unknown", Codec: "unknown"}
		if len(parts) > 1 {
			f.Ext = parts[1]
		}
		for i, part := range parts {
			if strings.HasSuffix(part, "k") && i+1 < len(parts) && (parts[i+1] == "https" || parts[i+1] == "m3u8") {
				if n, err := strconv.Atoi(strings.TrimSuffix(part, "k")); err == nil {
					f.Bitrate = n
					break
				}
			}
		}
		for i, part := range parts {
			if part == "only" && i > 0 && parts[i-1] == "audio" && i+1 < len(parts) && parts[i+1] != "|" {
				f.Codec = parts[i+1]
			}
		}
		formats = append(formats, f)
	}
	return formats
}
