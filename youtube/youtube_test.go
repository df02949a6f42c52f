package youtube

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"
)

const formatTable = `[info] Available formats for dQw4w9WgXcQ:
ID  EXT   RESOLUTION FPS CH |   FILESIZE   TBR PROTO | VCODEC        VBR ACODEC      ABR ASR MORE INFO
--------------------------------------------------------------------------------------------------------
139 m4a   audio only      2 |    1.23MiB   49k https | audio only        mp4a.40.5   49k 22k low, m4a_dash
249 webm  audio only      2 |    1.18MiB   47k https | audio only        opus        47k 48k low, webm_dash
251 webm  audio only      2 |    3.29MiB  129k https | audio only        opus       129k 48k medium, webm_dash
18  mp4   640x360     25  2 |   11.23MiB  448k https | avc1.42001E       mp4a.40.2       44k 360p
`

func TestParseAudioFormats(t *testing.T) {
	got := parseAudioFormats(formatTable)
	want := []AudioFormat{
		{ID: "139", Ext: "m4a", Codec: "mp4a.40.5", Bitrate: 49},
		{ID: "249", Ext: "webm", Codec: "opus", Bitrate: 47},
		{ID: "251", Ext: "webm", Codec: "opus", Bitrate: 129},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseAudioFormats\n got: %+v\nwant: %+v", got, want)
	}
	if s := want[2].String(); s != "251 - webm - opus - 129k" {
		t.Errorf("String() = %q", s)
	}
}

func TestIsYouTubeID(t *testing.T) {
	tests := map[string]bool{
		"dQw4w9WgXcQ":                 true,
		"-abc_DEF123":                 true,
		"short":                       false,
		"song.mp3.xx":                 false,
		"https://youtu.be/dQw4w9WgXc": false,
	}
	for in, want := range tests {
		if got := IsYouTubeID(in); got != want {
			t.Errorf("IsYouTubeID(%q) = %v, want %v", in, got, want)
		}
	}

	if got := WatchURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL(id) = %q", got)
	}
	if got := WatchURL("https://youtu.be/x"); got != "https://youtu.be/x" {
		t.Errorf("WatchURL(url) = %q", got)
	}
}

func TestReadVideoIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	content := "# favourites\ndQw4w9WgXcQ\n\nnot-an-id\nhttps://www.youtube.com/watch?v=abc\n  9bZkp7q19f0  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadVideoIDs(path)
	if err != nil {
		t.Fatalf("ReadVideoIDs failed: %v", err)
	}
	want := []string{"dQw4w9WgXcQ", "https://www.youtube.com/watch?v=abc", "9bZkp7q19f0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ReadVideoIDs(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

// fakeYtDlp answers --dump-json and -F and "downloads" by touching --output.
func fakeYtDlp(t *testing.T, infoJSON string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries need a POSIX shell")
	}
	dir := t.TempDir()
	table := filepath.Join(dir, "formats.txt")
	if err := os.WriteFile(table, []byte(formatTable), 0644); err != nil {
		t.Fatal(err)
	}
	script := `#!/bin/sh
case "$1" in
  --dump-json) echo '` + infoJSON + `' ; exit 0 ;;
  -F) cat '` + table + `' ; exit 0 ;;
esac
echo "$@" > '` + filepath.Join(dir, "download-args") + `'
while [ $# -gt 0 ]; do
  if [ "$1" = "--output" ]; then touch "$2"; fi
  shift
done
`
	bin := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return bin
}

func TestClientDownloadAudio(t *testing.T) {
	bin := fakeYtDlp(t, `{"id": "dQw4w9WgXcQ", "title": "Live: Part 1/2", "description": "0:00 Intro", "duration": 212.5}`)
	out := t.TempDir()
	c := &Client{Bin: bin}

	dl, err := c.DownloadAudio(context.Background(), "dQw4w9WgXcQ", out, "320k")
	if err != nil {
		t.Fatalf("DownloadAudio failed: %v", err)
	}
	if want := filepath.Join(out, "Live_ Part 1_2.mp3"); dl.Path != want {
		t.Errorf("Path = %q, want %q", dl.Path, want)
	}
	if _, err := os.Stat(dl.Path); err != nil {
		t.Errorf("download not written: %v", err)
	}
	if dl.Format == nil || dl.Format.ID != "251" {
		t.Errorf("Format = %+v, want 251", dl.Format)
	}
	if dl.Info.Duration != 212500*time.Millisecond || dl.Info.Description != "0:00 Intro" {
		t.Errorf("Info = %+v", dl.Info)
	}
}

func TestClientInfoDefaultTitle(t *testing.T) {
	c := &Client{Bin: fakeYtDlp(t, `{"id": "x"}`)}
	info, err := c.Info(context.Background(), "x")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Title != "Unknown Title" {
		t.Errorf("Title = %q", info.Title)
	}
}

type stubFetcher struct {
	desc string
	err  error
	urls []string
}

func (s *stubFetcher) FetchDescription(_ context.Context, url string) (string, error) {
	s.urls = append(s.urls, url)
	return s.desc, s.err
}

func TestSourceFallback(t *testing.T) {
	bin := fakeYtDlp(t, `{"id": "dQw4w9WgXcQ", "title": "Album", "description": "", "duration": 60}`)
	fallback := &stubFetcher{desc: "Intro - 0:00"}
	src := &Source{Client: &Client{Bin: bin}, URL: "dQw4w9WgXcQ", Dir: t.TempDir(), Fallback: fallback}

	media, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if media.Description != "Intro - 0:00" || media.Duration != time.Minute || media.Title != "Album" {
		t.Errorf("media = %+v", media)
	}
	if len(fallback.urls) != 1 || fallback.urls[0] != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("fallback called with %v", fallback.urls)
	}
	if src.Download == nil {
		t.Error("Download not recorded")
	}

	failing := &stubFetcher{err: errors.New("no browser")}
	src = &Source{Client: &Client{Bin: bin}, URL: "dQw4w9WgXcQ", Dir: t.TempDir(), Fallback: failing}
	media, err = src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch with failing fallback: %v", err)
	}
	if media.Description != "" {
		t.Errorf("Description = %q, want empty", media.Description)
	}
}
