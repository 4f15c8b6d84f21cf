package glrr_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/replay"
	"github.com/gogpu/glrr/softgl"
	"github.com/gogpu/glrr/trace"
)

// recordAndReplay records one clear and replays it with logging at level.
func recordAndReplay(t *testing.T, level slog.Level) string {
	t.Helper()
	orig := glrr.Logger()
	t.Cleanup(func() { glrr.SetLogger(orig) })

	var buf bytes.Buffer
	glrr.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))

	sched := recording.NewManualScheduler()
	sess := recording.NewSession(1, recording.WithScheduler(sched))
	gl := softgl.NewCanvas(2, 2, softgl.WithObserver(sess)).GetContext(softgl.KindWebGL, nil)
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)
	sched.Present()

	pages, err := trace.Export(sess.Recording())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	r, err := replay.Load(pages)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s, err := r.NewSession(softgl.NewHost())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if _, err := s.NextFrame(); err != nil {
		t.Fatalf("NextFrame() error = %v", err)
	}
	return buf.String()
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level   slog.Level
		want    []string
		notWant []string
	}{
		{
			level:   slog.LevelInfo,
			want:    []string{"recording: finished", "trace: exported", "trace: loaded", "replay: frame finished"},
			notWant: []string{"recording: call", "replay: call"},
		},
		{
			level: slog.LevelDebug,
			want:  []string{"recording: call", "recording: frame boundary", "replay: call"},
		},
		{
			level:   slog.LevelWarn,
			notWant: []string{"recording: finished", "trace: exported"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out := recordAndReplay(t, tt.level)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("log output contains %q at level %v", w, tt.level)
				}
			}
		})
	}
}
