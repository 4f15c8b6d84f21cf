package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/trace"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Frames != recording.DefaultFrames {
		t.Errorf("Frames = %d, want %d", c.Frames, recording.DefaultFrames)
	}
	if !*c.EnumNames {
		t.Error("EnumNames = false, want true")
	}
	if c.Trace.PageSize != trace.DefaultPageSize || c.Trace.MaxChars != trace.MaxChars {
		t.Errorf("Trace = %+v, want package defaults", c.Trace)
	}
	if c.Replay.Host != "softgl" || c.Replay.Relaxed {
		t.Errorf("Replay = %+v, want softgl strict", c.Replay)
	}
	if c.ReplayOptions() != nil {
		t.Error("ReplayOptions() != nil for a strict replay")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "glrr.toml", `
frames = 3
enum_names = false
archive = "traces.db"
log_level = "debug"

[canvas]
width = 320

[trace]
page_size = 1024

[replay]
relaxed = true
`},
		{"yaml", "glrr.yaml", `
frames: 3
enum_names: false
archive: traces.db
log_level: debug
canvas:
  width: 320
trace:
  page_size: 1024
replay:
  relaxed: true
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if c.Frames != 3 {
				t.Errorf("Frames = %d, want 3", c.Frames)
			}
			if *c.EnumNames {
				t.Error("EnumNames = true, want false")
			}
			if c.Canvas.Width != 320 || c.Canvas.Height != 48 {
				t.Errorf("Canvas = %+v, want 320x48", c.Canvas)
			}
			if c.Trace.PageSize != 1024 || c.Trace.MaxChars != trace.MaxChars {
				t.Errorf("Trace = %+v", c.Trace)
			}
			if !c.Replay.Relaxed || c.Replay.Host != "softgl" {
				t.Errorf("Replay = %+v", c.Replay)
			}
			if c.Archive != "traces.db" {
				t.Errorf("Archive = %q, want traces.db", c.Archive)
			}
			if l, err := c.Level(); err != nil || l != slog.LevelDebug {
				t.Errorf("Level() = %v, %v, want DEBUG", l, err)
			}
			if got := len(c.TraceOptions()); got != 2 {
				t.Errorf("len(TraceOptions()) = %d, want 2", got)
			}
			if got := len(c.ReplayOptions()); got != 1 {
				t.Errorf("len(ReplayOptions()) = %d, want 1", got)
			}
			if got := len(c.SessionOptions()); got != 1 {
				t.Errorf("len(SessionOptions()) = %d, want 1", got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"extension", "glrr.ini", "frames = 1", "unsupported file type"},
		{"toml syntax", "glrr.toml", "frames = = 1", "parse error"},
		{"yaml syntax", "glrr.yml", "frames: [1", "parse error"},
		{"frames", "glrr.toml", "frames = -2", "frames must be"},
		{"log level", "glrr.yaml", "log_level: loud", "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestUnbounded(t *testing.T) {
	c, err := Load(writeFile(t, "glrr.toml", "frames = -1"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Frames != recording.Unbounded {
		t.Errorf("Frames = %d, want Unbounded", c.Frames)
	}
}
