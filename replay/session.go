package replay

import (
	"fmt"
	"maps"
	"reflect"
	"time"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/intercept"
	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/remap"
)

// Session is one pass over a recording. The cursor starts at frame 0,
// call 0.
type Session struct {
	frames   []recording.Frame
	table    *remap.Table
	canvases []any

	frame int
	call  int
}

// Canvases returns the live canvases created for the recording, in
// recorded order.
func (s *Session) Canvases() []any {
	return s.canvases
}

// Resolve returns the live object bound to id.
func (s *Session) Resolve(id remap.ID) (any, error) {
	return s.table.Resolve(id)
}

// Pos returns the cursor: the frame and the call within it that the next
// NextCall will issue.
func (s *Session) Pos() (frame, call int) {
	return s.frame, s.call
}

// SetPos moves the cursor. Moving it does not undo or redo any calls, so
// the live objects keep the state of the calls already issued.
func (s *Session) SetPos(frame, call int) error {
	if frame < 0 || call < 0 || frame > len(s.frames) ||
		(frame < len(s.frames) && call > len(s.frames[frame])) {
		return fmt.Errorf("%w: frame %d call %d", ErrPosition, frame, call)
	}
	s.frame, s.call = frame, call
	return nil
}

// Done reports whether every call has been issued.
func (s *Session) Done() bool {
	s.skipEmpty()
	return s.frame >= len(s.frames)
}

// NextCall issues the call at the cursor and advances it. It returns false
// without doing anything once the recording is exhausted.
func (s *Session) NextCall() (bool, error) {
	s.skipEmpty()
	if s.frame >= len(s.frames) {
		return false, nil
	}

	call := s.frames[s.frame][s.call]
	if err := s.run(call); err != nil {
		return false, fmt.Errorf("replay: frame %d call %d (%s): %w", s.frame, s.call, call.Method, err)
	}

	s.call++
	if s.call >= len(s.frames[s.frame]) {
		s.frame++
		s.call = 0
	}
	return true, nil
}

// NextFrame issues calls until the cursor leaves the current frame. It
// returns false once the recording is exhausted.
func (s *Session) NextFrame() (bool, error) {
	if s.frame >= len(s.frames) {
		return false, nil
	}

	start := time.Now()
	frame := s.frame
	n := 0
	if s.call >= len(s.frames[frame]) {
		s.frame++
		s.call = 0
	}
	for s.frame == frame {
		if _, err := s.NextCall(); err != nil {
			return false, err
		}
		n++
	}

	glrr.Logger().Info("replay: frame finished",
		"frame", frame, "calls", n, "elapsed", time.Since(start))
	return true, nil
}

// skipEmpty moves the cursor past the end of finished or empty frames.
func (s *Session) skipEmpty() {
	for s.frame < len(s.frames) && s.call >= len(s.frames[s.frame]) {
		s.frame++
		s.call = 0
	}
}

func (s *Session) run(call recording.Call) error {
	log := glrr.Logger()
	log.Debug("replay: call", "call", call.String())

	target, err := s.table.Resolve(call.Object)
	if err != nil {
		return err
	}
	if u, ok := target.(remap.Unresolved); ok {
		log.Warn("replay: skipping call on unresolved target",
			"target", u.ID.String(), "method", call.Method)
		return nil
	}

	args, err := pickle.UnpickleAll(call.Args, s.resolveArg(call.Method))
	if err != nil {
		return err
	}

	class := recording.Classify(call.Method)
	if class == recording.MethodContext {
		args = preserveDrawingBuffer(args)
	}

	ret, err := intercept.Invoke(target, call.Method, args)
	if err != nil {
		return err
	}

	switch {
	case class.BindsReturn():
		if ref, ok := call.Ret.(pickle.Ref); ok {
			s.table.Bind(ref.ID, ret)
		}
	case class == recording.MethodBulkLookup:
		return s.bindEach(call.Ret, ret)
	}
	return nil
}

// resolveArg resolves handle arguments. Unresolved handles, which only
// appear in relaxed mode, are passed on as the remap.Unresolved sentinel;
// intercept.Convert turns it into a nil handle for typed parameters.
func (s *Session) resolveArg(method string) pickle.ResolveFunc {
	return func(id remap.ID) (any, error) {
		obj, err := s.table.Resolve(id)
		if err != nil {
			return nil, err
		}
		if _, ok := obj.(remap.Unresolved); ok {
			glrr.Logger().Warn("replay: unresolved argument", "id", id.String(), "method", method)
		}
		return obj, nil
	}
}

// bindEach binds each handle of a recorded list return to the element of
// the live list at the same index.
func (s *Session) bindEach(recorded pickle.Value, live any) error {
	seq, ok := recorded.(pickle.Seq)
	if !ok {
		return nil
	}
	rv := reflect.ValueOf(live)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("%w: recorded %d results, got %T", ErrReturnMismatch, len(seq), live)
	}
	if rv.Len() != len(seq) {
		return fmt.Errorf("%w: recorded %d results, got %d", ErrReturnMismatch, len(seq), rv.Len())
	}
	for i, v := range seq {
		if ref, ok := v.(pickle.Ref); ok {
			s.table.Bind(ref.ID, rv.Index(i).Interface())
		}
	}
	return nil
}

// preserveDrawingBuffer forces the context attribute that keeps rendered
// output visible between frames, adding the attribute record if the call
// had none.
func preserveDrawingBuffer(args []any) []any {
	out := make([]any, len(args), max(len(args), 2))
	copy(out, args)
	for len(out) < 2 {
		out = append(out, nil)
	}
	attrs := map[string]any{}
	if m, ok := out[1].(map[string]any); ok {
		attrs = maps.Clone(m)
	}
	attrs["preserveDrawingBuffer"] = true
	out[1] = attrs
	return out
}
