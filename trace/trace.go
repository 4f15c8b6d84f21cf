// Package trace writes a Recording as paginated JSON text and reads it
// back.
//
// A trace is one JSON object with three sections in fixed order:
//
//	{
//	  "canvases": [{"remapId": ..., "width": 300, "height": 150}, ...],
//	  "snapshots": {"HTMLImageElement$4": "data:image/png;base64,...", ...},
//	  "frames": [[call, ...], ...]
//	}
//
// Each call is the array ["Kind$N", "method", [args...], ret]; ret is
// omitted when the method returned nothing. Values that plain JSON cannot
// carry unambiguously are tagged objects under the "__as" key:
//
//	{"__as": ["RemapId", "WebGLTexture", 7]}     handle reference
//	{"__as": ["Float32Array", "0000803f"]}       binary buffer, hex bytes
//	{"__as": ["Float", "NaN"]}                   non-finite number
//	{"__as": ["String", "__GL_literal"]}         string that looks like an enum
//
// Integers matching a GL constant are written as "__GL_NAME" strings.
//
// # Pages
//
// Encoded traces are sequences of text pages. Page boundaries carry no
// meaning: the parser reads across them without ever joining the whole
// trace, so a trace split anywhere (mid-string, mid-number) decodes the
// same.
package trace

import (
	"errors"

	"github.com/gogpu/glrr/pickle"
)

var (
	// ErrSyntax is returned for malformed trace text.
	ErrSyntax = errors.New("trace: syntax error")

	// ErrUnexpectedEOF is returned when the pages end inside a value.
	ErrUnexpectedEOF = errors.New("trace: unexpected end of input")

	// ErrEmptyPage is returned for a page sequence containing an empty page.
	ErrEmptyPage = errors.New("trace: empty page")

	// ErrTooLarge is returned by Dump for traces over the character budget.
	ErrTooLarge = errors.New("trace: trace exceeds maximum size")

	// ErrShape is returned when well-formed JSON does not have the layout
	// of a trace.
	ErrShape = errors.New("trace: unexpected trace layout")

	// ErrIncomplete is returned when encoding a recording whose capture
	// stopped on a call it could not record.
	ErrIncomplete = errors.New("trace: recording is incomplete")
)

const (
	// MaxChars is the default character budget of an exported trace.
	MaxChars = 1<<28 - 1

	// DefaultPageSize is the size at which Encode starts a new page.
	DefaultPageSize = 1 << 16

	// tagKey marks a tagged value.
	tagKey = pickle.ReservedKey

	tagRemapID = "RemapId"
	tagFloat   = "Float"
	tagString  = "String"
)
