// Package remap assigns synthetic stable identities to live objects.
//
// During capture, a [Registry] attaches an [ID] to every tracked object the
// first time it is seen and returns the same ID on every later sighting.
// The association lives in a side table keyed by weak pointers, so the
// registry never mutates the objects it tracks and never keeps them alive.
//
// During replay, a [Table] runs the other direction: recorded IDs are bound
// to the live objects the replay creates, and later calls resolve their
// handle arguments through it.
package remap

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ID is the synthetic identity of a live object within one recording
// session. The Kind component is informational; uniqueness is on N.
type ID struct {
	// Kind is the name of the live object's kind, e.g. "WebGLTexture".
	Kind string
	// N is the session-wide sequence number.
	N uint64
}

// String returns the shorthand form Kind$N used for call targets in traces.
func (id ID) String() string {
	return id.Kind + "$" + strconv.FormatUint(id.N, 10)
}

// ParseID parses the Kind$N shorthand.
func ParseID(s string) (ID, error) {
	kind, num, ok := strings.Cut(s, "$")
	if !ok || kind == "" || strings.Contains(num, "$") {
		return ID{}, fmt.Errorf("remap: malformed id %q", s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("remap: malformed id %q: %w", s, err)
	}
	return ID{Kind: kind, N: n}, nil
}

// Handle is implemented by live objects that report their own kind name.
// Objects that do not implement it are named after their Go type.
type Handle interface {
	Kind() string
}

// KindOf returns the kind name recorded for obj.
func KindOf(obj any) string {
	if h, ok := obj.(Handle); ok {
		return h.Kind()
	}
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "nil"
	}
	return t.Name()
}

var (
	// ErrNotTrackable is returned for values that cannot carry an identity:
	// nil, non-pointers and pointers to zero-size values.
	ErrNotTrackable = errors.New("remap: value is not eligible for identity tracking")

	// ErrMissingHandle is returned by Table.Resolve when no live object has
	// been bound to an ID, which means the trace is out of order or lost the
	// call that created the object.
	ErrMissingHandle = errors.New("remap: no live object bound")
)
