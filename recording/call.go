package recording

import (
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/remap"
)

// Call is one intercepted method invocation. Args and Ret were pickled
// after the underlying call returned. A nil Ret means the method returned
// nothing.
type Call struct {
	Object remap.ID
	Method string
	Args   []pickle.Value
	Ret    pickle.Value
}

// String returns the call in the form Kind$N.method(args)->(ret).
func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Object.String())
	b.WriteByte('.')
	b.WriteString(c.Method)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	if c.Ret != nil {
		b.WriteString("->(")
		b.WriteString(c.Ret.String())
		b.WriteByte(')')
	}
	return b.String()
}

// Frame is the ordered list of calls issued between two frame boundaries.
type Frame []Call

// CanvasDescriptor describes a canvas that must exist before replay starts.
type CanvasDescriptor struct {
	ID     remap.ID
	Width  int
	Height int
}

// Snapshot is the still image captured for a visual source on its first
// sighting. Data is opaque to this package; the default capture produces a
// PNG data URL.
type Snapshot struct {
	ID   remap.ID
	Data string
}

// Recording is the result of a capture session.
// A Recording is read-only once handed out.
//
// Err is set when the capture stopped on a call it could not record. The
// frames before that call are complete, but the trace is truncated.
type Recording struct {
	Err       error
	Canvases  []CanvasDescriptor
	Snapshots map[uint64]Snapshot
	Frames    []Frame
}

// FrameCount returns the number of recorded frames.
func (r *Recording) FrameCount() int {
	return len(r.Frames)
}

// CallCount returns the total number of calls across all frames.
func (r *Recording) CallCount() int {
	n := 0
	for _, f := range r.Frames {
		n += len(f)
	}
	return n
}

// SnapshotIDs returns the snapshot keys in increasing order.
func (r *Recording) SnapshotIDs() []uint64 {
	return slices.Sorted(maps.Keys(r.Snapshots))
}
