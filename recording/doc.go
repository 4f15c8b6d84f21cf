// Package recording captures calls made against a GL-like rendering
// context into an in-memory Recording.
//
// # Architecture
//
// The package has three main components:
//
//   - Session: receives every intercepted call, pickles its arguments and
//     return value, and batches calls into frames
//   - FrameScheduler: tells the Session when the host presented a frame
//   - Recording: the captured canvases, snapshots and frames
//
// A Session does not patch anything itself. The device (or an
// intercept.Proxy in front of it) calls [Session.OnCall] after every
// traced method has run.
//
// # Basic Usage
//
//	frames := recording.NewManualScheduler()
//	sess := recording.NewSession(2, recording.WithScheduler(frames))
//
//	canvas := softgl.NewCanvas(640, 480, softgl.WithObserver(sess))
//	gl := canvas.GetContext("webgl", nil)
//	gl.ClearColor(0, 0, 1, 1)
//	gl.Clear(softgl.COLOR_BUFFER_BIT)
//	frames.Present()
//
//	gl.Clear(softgl.COLOR_BUFFER_BIT)
//	frames.Present()
//
//	<-sess.Done()
//	rec := sess.Recording()
//
// # Frames
//
// The first call after a frame boundary registers for exactly one boundary
// notification; every call made until it fires lands in the same Frame.
// A frame budget of [Unbounded] records until [Session.Stop].
//
// # Sub-region uploads
//
// texSubImage3D calls carrying a source buffer are trimmed to the bytes the
// upload reads, computed from the context's pixel-unpack state (see package
// transfer). The state is kept per context and follows pixelStorei calls.
//
// # Thread Safety
//
// A Session is not safe for concurrent use. Calls and frame boundary
// callbacks must arrive on the same goroutine.
package recording
