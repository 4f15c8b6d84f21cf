package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/remap"
	"github.com/gogpu/glrr/trace"
)

var (
	// ErrReturnMismatch is returned when a bulk lookup returns a different
	// number of results than were recorded.
	ErrReturnMismatch = errors.New("replay: return value does not match recording")

	// ErrPosition is returned by SetPos for a cursor outside the recording.
	ErrPosition = errors.New("replay: position out of range")
)

// Replay is a loaded recording ready to be replayed any number of times.
type Replay struct {
	rec *recording.Recording
}

// Load decodes trace pages into a Replay.
func Load(pages []string) (*Replay, error) {
	start := time.Now()
	rec, err := trace.Decode(pages)
	if err != nil {
		return nil, fmt.Errorf("replay: load: %w", err)
	}
	glrr.Logger().Info("replay: loaded",
		"frames", rec.FrameCount(), "pages", len(pages), "elapsed", time.Since(start))
	return New(rec), nil
}

// New wraps an already decoded recording.
func New(rec *recording.Recording) *Replay {
	return &Replay{rec: rec}
}

// FrameCount returns the number of recorded frames.
func (r *Replay) FrameCount() int {
	return r.rec.FrameCount()
}

// Canvases returns the canvases every session starts with.
func (r *Replay) Canvases() []recording.CanvasDescriptor {
	return r.rec.Canvases
}

// Recording returns the underlying recording.
func (r *Replay) Recording() *recording.Recording {
	return r.rec
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	relaxed bool
}

// WithRelaxedRemap tolerates references to identities that were never
// bound. Such arguments are passed as zero values and calls on such
// targets are skipped, each with a warning. Without it the first missing
// binding fails the call with remap.ErrMissingHandle.
func WithRelaxedRemap() Option {
	return func(o *sessionOptions) { o.relaxed = true }
}

// NewSession creates live images for the recorded snapshots and live
// canvases for the recorded canvases through host, binds them at their
// recorded identities, and positions the cursor at the first call.
func (r *Replay) NewSession(host Host, opts ...Option) (*Session, error) {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	var tableOpts []remap.TableOption
	if o.relaxed {
		tableOpts = append(tableOpts, remap.Relaxed())
	}

	s := &Session{
		frames: r.rec.Frames,
		table:  remap.NewTable(tableOpts...),
	}

	for _, id := range r.rec.SnapshotIDs() {
		snap := r.rec.Snapshots[id]
		img, err := host.NewImage(snap.Data)
		if err != nil {
			return nil, fmt.Errorf("replay: snapshot %d: %w", id, err)
		}
		s.table.Bind(remap.ID{Kind: snap.ID.Kind, N: id}, img)
	}

	for _, c := range r.rec.Canvases {
		canvas, err := host.NewCanvas(c.Width, c.Height)
		if err != nil {
			return nil, fmt.Errorf("replay: canvas %s: %w", c.ID, err)
		}
		s.table.Bind(c.ID, canvas)
		s.canvases = append(s.canvases, canvas)
	}
	return s, nil
}
