// Package glrr records and replays calls made against a GL-like rendering
// context.
//
// # Overview
//
// glrr captures the calls an application issues against a stateful
// rendering context and its resource handles (buffers, textures, programs,
// uniform locations, ...), writes them to a durable, byte-exact text trace,
// and later re-issues the same call sequence against a freshly created
// context, re-binding every handle as the replay recreates it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glrr/glenum"
//	    "github.com/gogpu/glrr/recording"
//	    "github.com/gogpu/glrr/replay"
//	    "github.com/gogpu/glrr/softgl"
//	    "github.com/gogpu/glrr/trace"
//	)
//
//	// Record two frames.
//	frames := recording.NewManualScheduler()
//	sess := recording.NewSession(2, recording.WithScheduler(frames))
//	canvas := softgl.NewCanvas(640, 480, softgl.WithObserver(sess))
//	gl := canvas.GetContext("webgl", nil)
//	gl.ClearColor(0, 0, 1, 1)
//	gl.Clear(glenum.COLOR_BUFFER_BIT)
//	frames.Present()
//
//	// Export to pages and load them back.
//	pages, _ := trace.Encode(sess.Recording())
//	r, _ := replay.Load(pages)
//	s, _ := r.NewSession(softgl.NewHost())
//	for more := true; more; {
//	    more, _ = s.NextFrame()
//	}
//
// # Architecture
//
// The module is organized into:
//   - glenum: GL constant values and their names
//   - intercept: method proxies, observers and by-name invocation
//   - remap: synthetic stable identities for live objects (capture) and the
//     reverse id-to-object table (replay)
//   - pickle: the trace-safe value variants and the live-value converter
//   - transfer: exact byte spans consumed by sub-region pixel uploads
//   - snapshot: image capture to data URLs and back
//   - recording: the call recorder, frames and the in-memory Recording
//   - trace: the paginated text codec and its streaming parser
//   - replay: the step-wise replay engine and the replay host registry
//   - softgl: a software reference device usable as both capture target and
//     replay host
//   - store, config: sqlite trace archive and file configuration
//
// The glrr command (cmd/glrr) records a demo scene, inspects and replays
// traces, and manages the archive.
//
// # Logging
//
// glrr is silent by default. See [SetLogger].
package glrr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
