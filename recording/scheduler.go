package recording

// FrameScheduler delivers the host's frame-presented signal.
//
// RequestFrame registers fn to run once, at the next frame boundary.
// A Session never has more than one request pending.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to the FrameScheduler interface, for
// hosts that already expose a requestAnimationFrame-like hook.
type SchedulerFunc func(fn func())

// RequestFrame calls f(fn).
func (f SchedulerFunc) RequestFrame(fn func()) {
	f(fn)
}

// ManualScheduler is a FrameScheduler driven explicitly by the host loop:
// every call to Present is one frame boundary.
//
// ManualScheduler is not safe for concurrent use.
type ManualScheduler struct {
	pending []func()
	frames  int
}

// NewManualScheduler creates a scheduler with nothing pending.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues fn for the next Present.
func (m *ManualScheduler) RequestFrame(fn func()) {
	m.pending = append(m.pending, fn)
}

// Present marks a frame boundary and runs the callbacks queued before it.
// Callbacks queued while running are kept for the next boundary.
func (m *ManualScheduler) Present() {
	m.frames++
	fns := m.pending
	m.pending = nil
	for _, fn := range fns {
		fn()
	}
}

// Pending returns the number of callbacks waiting for the next Present.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Frames returns the number of Present calls so far.
func (m *ManualScheduler) Frames() int {
	return m.frames
}
