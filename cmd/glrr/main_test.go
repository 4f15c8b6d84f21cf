package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/trace"
)

func TestCanvasPath(t *testing.T) {
	tests := []struct {
		out  string
		i    int
		want string
	}{
		{"replay.png", 0, "replay.png"},
		{"replay.png", 2, "replay-2.png"},
		{"out/frame", 1, "out/frame-1"},
	}
	for _, tt := range tests {
		if got := canvasPath(tt.out, tt.i); got != tt.want {
			t.Errorf("canvasPath(%q, %d) = %q, want %q", tt.out, tt.i, got, tt.want)
		}
	}
}

func TestDemoInspectReplay(t *testing.T) {
	t.Cleanup(func() { glrr.SetLogger(nil) })
	dir := t.TempDir()
	bundle := filepath.Join(dir, "demo.glrr")

	if err := runDemo([]string{"-o", bundle, "-frames", "3"}); err != nil {
		t.Fatalf("demo error = %v", err)
	}
	b, err := readTrace(bundle)
	if err != nil {
		t.Fatalf("readTrace(bundle) error = %v", err)
	}
	if b.Meta.Frames != 3 || b.Meta.Source != "glrr demo" {
		t.Errorf("bundle meta = %+v, want 3 frames from the demo", b.Meta)
	}

	rec, err := trace.Decode(b.Pages)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	var out bytes.Buffer
	if err := summarize(&out, b, rec, true, false); err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	for _, want := range []string{"frames    3", "canvas    HTMLCanvasElement$", "snapshot  ", "drawArrays"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}

	img := filepath.Join(dir, "out.png")
	if err := runReplay([]string{"-o", img, bundle}); err != nil {
		t.Fatalf("replay error = %v", err)
	}
	f, err := os.Open(img)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("replayed image = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
}

func TestReadRawTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.json")
	raw := `{"canvases": [], "snapshots": {}, "frames": [[], []]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := readTrace(path)
	if err != nil {
		t.Fatalf("readTrace() error = %v", err)
	}
	if b.Meta.Frames != 2 || len(b.Pages) != 1 {
		t.Errorf("readTrace() = %+v, want 2 frames in one page", b.Meta)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	t.Cleanup(func() { glrr.SetLogger(nil) })
	dir := t.TempDir()
	bundle := filepath.Join(dir, "demo.glrr")
	db := filepath.Join(dir, "archive", "traces.db")
	if err := runDemo([]string{"-o", bundle, "-frames", "1"}); err != nil {
		t.Fatalf("demo error = %v", err)
	}
	b, err := readTrace(bundle)
	if err != nil {
		t.Fatal(err)
	}

	if err := runArchive([]string{"-db", db, "save", bundle}); err != nil {
		t.Fatalf("archive save error = %v", err)
	}
	copyPath := filepath.Join(dir, "copy.glrr")
	if err := runArchive([]string{"-db", db, "load", b.Meta.ID, copyPath}); err != nil {
		t.Fatalf("archive load error = %v", err)
	}
	got, err := readTrace(copyPath)
	if err != nil {
		t.Fatal(err)
	}
	if trace.Join(got.Pages) != trace.Join(b.Pages) {
		t.Error("archived trace differs from the original")
	}
	if err := runArchive([]string{"-db", db, "rm", b.Meta.ID}); err != nil {
		t.Fatalf("archive rm error = %v", err)
	}
	if err := runArchive([]string{"-db", db, "frobnicate"}); err == nil {
		t.Error("archive with a bad action error = nil")
	}
}
