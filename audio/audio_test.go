package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"tracksplit/segments"
)

// fakeBinary writes an executable shell script to dir and returns its path.
func fakeBinary(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries need a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("write fake %s: %v", name, err)
	}
	return path
}

func TestSanitizeFilename(t *testing.T) {
	got := SanitizeFilename(`AC/DC: "Live" <at> Wembley? *|\`)
	want := `AC_DC_ _Live_ _at_ Wembley_ ___`
	if got != want {
		t.Errorf("SanitizeFilename = %q, want %q", got, want)
	}
}

func TestTrackFileName(t *testing.T) {
	tests := []struct {
		index int
		label string
		ext   string
		want  string
	}{
		{1, "Intro", "mp3", "01 - Intro.mp3"},
		{12, "Part 1/2", ".mp3", "12 - Part 1_2.mp3"},
		{3, "  ", "mp3", "03.mp3"},
	}
	for _, tt := range tests {
		if got := TrackFileName(tt.index, tt.label, tt.ext); got != tt.want {
			t.Errorf("TrackFileName(%d, %q) = %q, want %q", tt.index, tt.label, got, tt.want)
		}
	}
}

func TestProber(t *testing.T) {
	dir := t.TempDir()
	bin := fakeBinary(t, dir, "ffprobe", `
case "$*" in
  *show_format*) echo '{"format": {"duration": "200.0004"}}' ;;
  *bit_rate*) echo '320000' ;;
esac
`)
	p := Prober{Bin: bin}

	d, err := p.Duration(context.Background(), "song.mp3")
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if d != 200*time.Second {
		t.Errorf("Duration = %v, want 200s", d)
	}

	kbps, err := p.Bitrate(context.Background(), "song.mp3")
	if err != nil {
		t.Fatalf("Bitrate failed: %v", err)
	}
	if kbps != 320 {
		t.Errorf("Bitrate = %d, want 320", kbps)
	}
}

func TestProberFailure(t *testing.T) {
	bin := fakeBinary(t, t.TempDir(), "ffprobe", "echo 'not json'\n")
	if _, err := (Prober{Bin: bin}).Duration(context.Background(), "x.mp3"); err == nil {
		t.Error("expected decode error")
	}
}

func TestCutter(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	bin := fakeBinary(t, dir, "ffmpeg", `echo "$@" > `+argsFile+`
for last; do :; done
touch "$last"
`)
	out := filepath.Join(dir, "tracks")
	c := &Cutter{Bin: bin, Bitrate: "192k", OutputDir: out}

	seg := segments.Segment{Index: 2, Start: 97 * time.Second, End: 180 * time.Second, Label: "Verse: One"}
	path, err := c.Cut(context.Background(), "album.mp3", seg)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	if want := filepath.Join(out, "02 - Verse_ One.mp3"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not created: %v", err)
	}

	args, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"-ss 97.000", "-i album.mp3", "-t 83.000", "-b:a 192k"} {
		if !strings.Contains(string(args), want) {
			t.Errorf("ffmpeg args %q missing %q", args, want)
		}
	}
}

func TestCutterRejectsEmptySegment(t *testing.T) {
	c := &Cutter{OutputDir: t.TempDir()}
	_, err := c.Cut(context.Background(), "a.mp3", segments.Segment{Index: 1, Start: time.Minute, End: time.Minute})
	if !errors.Is(err, segments.ErrInvalidSegment) {
		t.Errorf("error = %v, want ErrInvalidSegment", err)
	}
}

func TestLocalSource(t *testing.T) {
	dir := t.TempDir()
	bin := fakeBinary(t, dir, "ffprobe", `echo '{"format": {"duration": "61.5"}}'`+"\n")
	audioPath := filepath.Join(dir, "Live Set.mp3")
	if err := os.WriteFile(audioPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	media, err := LocalSource{AudioPath: audioPath, Description: "0:00 A", Prober: Prober{Bin: bin}}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if media.Title != "Live Set" || media.Duration != 61500*time.Millisecond || media.Description != "0:00 A" {
		t.Errorf("media = %+v", media)
	}

	_, err = LocalSource{AudioPath: filepath.Join(dir, "missing.mp3")}.Fetch(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}
