// Package replay re-issues recorded calls against freshly created live
// objects.
//
// A [Replay] holds a decoded recording. Each [Session] created from it asks
// a [Host] for fresh canvases and snapshot images, binds them at their
// recorded identities, and then steps through the recorded calls one at a
// time ([Session.NextCall]) or one frame at a time ([Session.NextFrame]).
//
// Every handle argument is resolved through the session's identity table.
// Calls that produce handles (create*, getExtension, getContext,
// getUniformLocation, getUniformIndices) bind their live results at the
// recorded identities, so later calls find them.
//
// # Hosts
//
// Hosts are registered by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/glrr/softgl" // registers "softgl"
//
//	host, err := replay.NewHost("softgl")
//
// Replay sessions are not safe for concurrent use. Separate sessions of the
// same Replay are independent.
package replay
