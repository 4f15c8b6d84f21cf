package recording

import (
	"errors"
	"fmt"
	"image"
	"maps"
	"reflect"

	"github.com/google/uuid"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/remap"
	"github.com/gogpu/glrr/snapshot"
	"github.com/gogpu/glrr/transfer"
)

const (
	// Unbounded records until Stop is called.
	Unbounded = -1

	// DefaultFrames is the frame budget used by the command-line tools.
	DefaultFrames = 2
)

// stateTag is the registry tag holding a context's transfer.State.
const stateTag = "transfer"

// Canvas is a tracked object that must be recreated before replay.
type Canvas interface {
	remap.Handle
	Size() (width, height int)
}

// CaptureFunc encodes the still image of a visual source.
type CaptureFunc func(img image.Image) (string, error)

// Session records intercepted calls into frames.
//
// Session is not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	remaining int

	open    Frame
	frames  []Frame
	pending bool
	calls   int

	reg     *remap.Registry
	pickler *pickle.Pickler
	sched   FrameScheduler
	capture CaptureFunc

	canvases   []Canvas
	canvasSeen map[uint64]bool
	snapshots  map[uint64]Snapshot
	enumNames  bool
	done       chan struct{}
	doneClosed bool
	err        error
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler sets the source of frame boundaries. The default is a
// ManualScheduler, available from Session.Scheduler.
func WithScheduler(fs FrameScheduler) Option {
	return func(s *Session) { s.sched = fs }
}

// WithCapture sets the snapshot encoder for visual sources.
// The default is snapshot.Capture.
func WithCapture(fn CaptureFunc) Option {
	return func(s *Session) { s.capture = fn }
}

// WithEnumNames enables or disables symbolic names for integer arguments
// that match a GL constant. Enabled by default.
func WithEnumNames(enabled bool) Option {
	return func(s *Session) { s.enumNames = enabled }
}

// NewSession starts recording for the given number of frames.
// Pass Unbounded to record until Stop.
func NewSession(frames int, opts ...Option) *Session {
	s := &Session{
		id:         uuid.New(),
		remaining:  frames,
		reg:        remap.NewRegistry(),
		capture:    snapshot.Capture,
		canvasSeen: make(map[uint64]bool),
		snapshots:  make(map[uint64]Snapshot),
		enumNames:  true,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sched == nil {
		s.sched = NewManualScheduler()
	}
	s.pickler = pickle.New(s.reg,
		pickle.WithEnumNames(s.enumNames),
		pickle.WithSnapshots(s.snapshot),
	)
	if s.remaining == 0 {
		s.finish()
	}
	return s
}

// ID returns the unique id of this session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Scheduler returns the frame scheduler in use.
func (s *Session) Scheduler() FrameScheduler {
	return s.sched
}

// Registry returns the handle registry ids are assigned from.
func (s *Session) Registry() *remap.Registry {
	return s.reg
}

// Err returns the error that ended the capture early, or nil. Once a call
// fails to record, the trace no longer matches the live objects, so the
// session stops instead of skipping the call.
func (s *Session) Err() error {
	return s.err
}

// IsRecording reports whether calls are still being captured.
func (s *Session) IsRecording() bool {
	return s.remaining != 0
}

// Done returns a channel closed once the frame budget is used up, Stop is
// called or a call fails to record.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Stop ends the capture. Calls in the open frame are discarded and a
// pending frame boundary becomes a no-op.
func (s *Session) Stop() {
	if s.remaining == 0 {
		return
	}
	s.remaining = 0
	s.open = nil
	s.finish()
}

// OnCall records one call. It runs after the traced method returned, with
// the method's receiver, arguments and result. ret is nil for methods that
// return nothing.
//
// The first error stops the session: the open frame is discarded and the
// error is kept for Err and Recording.
func (s *Session) OnCall(target any, method string, args []any, ret any) error {
	if s.remaining == 0 {
		return nil
	}
	if err := s.record(target, method, args, ret); err != nil {
		s.fail(err)
		return err
	}
	return nil
}

func (s *Session) record(target any, method string, args []any, ret any) error {
	class := Classify(method)
	if class == MethodContext && len(args) > 0 && args[0] == "2d" {
		return nil
	}

	id, err := s.reg.Identify(target)
	if err != nil {
		return fmt.Errorf("recording: %s target: %w", method, err)
	}
	s.trackCanvas(id, target)

	if class == MethodSubImage3D && len(args) == 11 {
		args, err = s.trimUpload(target, args)
		if err != nil {
			return fmt.Errorf("recording: %s: %w", method, err)
		}
	}

	pargs, err := s.pickler.PickleAll(args)
	if err != nil {
		return fmt.Errorf("recording: %s: %w", method, err)
	}
	var pret pickle.Value
	if ret != nil {
		if pret, err = s.pickler.Pickle(ret); err != nil {
			return fmt.Errorf("recording: %s return: %w", method, err)
		}
	}
	for _, a := range args {
		if c, ok := a.(Canvas); ok {
			if cid, found := s.reg.Lookup(c); found {
				s.trackCanvas(cid, c)
			}
		}
	}

	call := Call{Object: id, Method: method, Args: pargs, Ret: pret}
	s.open = append(s.open, call)
	s.calls++
	glrr.Logger().Debug("recording: call", "frame", len(s.frames), "call", call)

	if !s.pending {
		s.pending = true
		s.sched.RequestFrame(s.endFrame)
	}

	switch class {
	case MethodContext:
		if ret != nil {
			if _, ok := s.reg.Tag(ret, stateTag); !ok {
				// Contexts that cannot carry tags are simply never trimmed.
				_ = s.reg.SetTag(ret, stateTag, transfer.NewState())
			}
		}
	case MethodPixelStore:
		if len(args) == 2 {
			pname, ok1 := toInt(args[0])
			value, ok2 := toInt(args[1])
			if ok1 && ok2 {
				s.state(target).Apply(uint32(pname), value)
			}
		}
	}
	return nil
}

// Recording returns the frames closed so far together with the canvases
// and snapshots they reference. Canvas sizes are read at call time.
func (s *Session) Recording() *Recording {
	rec := &Recording{
		Err:       s.err,
		Canvases:  make([]CanvasDescriptor, 0, len(s.canvases)),
		Snapshots: maps.Clone(s.snapshots),
		Frames:    append([]Frame(nil), s.frames...),
	}
	for _, c := range s.canvases {
		id, ok := s.reg.Lookup(c)
		if !ok {
			continue
		}
		w, h := c.Size()
		rec.Canvases = append(rec.Canvases, CanvasDescriptor{ID: id, Width: w, Height: h})
	}
	return rec
}

func (s *Session) endFrame() {
	s.pending = false
	if s.remaining == 0 {
		return
	}

	glrr.Logger().Debug("recording: frame boundary", "frame", len(s.frames), "calls", len(s.open))
	s.frames = append(s.frames, s.open)
	s.open = nil

	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		glrr.Logger().Info("recording: finished",
			"session", s.id, "frames", len(s.frames), "calls", s.calls)
		s.finish()
	}
}

func (s *Session) fail(err error) {
	s.err = err
	s.remaining = 0
	s.open = nil
	glrr.Logger().Error("recording: capture failed",
		"session", s.id, "frames", len(s.frames), "err", err)
	s.finish()
}

func (s *Session) finish() {
	if !s.doneClosed {
		s.doneClosed = true
		close(s.done)
	}
}

func (s *Session) snapshot(id remap.ID, src pickle.VisualSource) error {
	img := src.Image()
	if img == nil {
		return errors.New("no image to capture")
	}
	data, err := s.capture(img)
	if err != nil {
		return err
	}
	s.snapshots[id.N] = Snapshot{ID: id, Data: data}
	return nil
}

func (s *Session) trackCanvas(id remap.ID, obj any) {
	c, ok := obj.(Canvas)
	if !ok || s.canvasSeen[id.N] {
		return
	}
	s.canvasSeen[id.N] = true
	s.canvases = append(s.canvases, c)
}

// state returns the transfer state of a context, attaching a fresh one if
// the context was never seen through getContext.
func (s *Session) state(ctx any) *transfer.State {
	if v, ok := s.reg.Tag(ctx, stateTag); ok {
		if st, ok := v.(*transfer.State); ok {
			return st
		}
	}
	st := transfer.NewState()
	_ = s.reg.SetTag(ctx, stateTag, st)
	return st
}

// trimUpload cuts the source buffer of
// texSubImage3D(target, level, x, y, z, width, height, depth, format, type, pixels)
// to the bytes the upload reads. A pixels argument that is not a typed
// buffer (a pixel-buffer offset) is left alone.
func (s *Session) trimUpload(ctx any, args []any) ([]any, error) {
	var dims [5]int
	for i := range dims {
		v, ok := toInt(args[5+i])
		if !ok {
			return args, nil
		}
		dims[i] = v
	}

	need, err := transfer.BytesNeeded(s.state(ctx), dims[0], dims[1], dims[2], uint32(dims[3]), uint32(dims[4]))
	if err != nil {
		return nil, err
	}
	cut, err := transfer.Extract(args[10], need)
	if errors.Is(err, transfer.ErrNotBuffer) {
		return args, nil
	}
	if err != nil {
		return nil, err
	}

	out := append([]any(nil), args...)
	out[10] = cut
	return out, nil
}

// toInt converts an integer-like argument.
func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == float64(int(f)) {
			return int(f), true
		}
	}
	return 0, false
}
