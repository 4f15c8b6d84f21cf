// Package glenum maps GL enum values to their symbolic names and back.
//
// Traces rewrite integer arguments that exactly match a known constant to
// its name so that two traces can be compared with a text diff. The lookup
// is only applied to values at or above [Threshold]; small integers are far
// more likely to be counts, indices or booleans than enums.
package glenum

import (
	"fmt"
	"strings"
)

// Threshold is the smallest value considered for symbolic naming.
const Threshold = 0x0800

// Prefix marks a symbolic enum name inside a trace string.
const Prefix = "__GL_"

type entry struct {
	name  string
	value uint32
}

var (
	byName  map[string]uint32
	byValue map[uint32]string
)

func init() {
	byName = make(map[string]uint32, len(table))
	byValue = make(map[uint32]string, len(table))
	for _, e := range table {
		byName[e.name] = e.value
		if _, dup := byValue[e.value]; !dup {
			byValue[e.value] = e.name
		}
	}
}

// Name returns the symbolic name for v, if any.
func Name(v uint32) (string, bool) {
	name, ok := byValue[v]
	return name, ok
}

// Value returns the value of the named constant.
func Value(name string) (uint32, bool) {
	v, ok := byName[name]
	return v, ok
}

// Symbol returns the prefixed trace form of v when v is eligible for
// symbolic naming (at or above Threshold and a known constant).
func Symbol(v int64) (string, bool) {
	if v < Threshold || v > 0xFFFFFFFF {
		return "", false
	}
	name, ok := byValue[uint32(v)]
	if !ok {
		return "", false
	}
	return Prefix + name, true
}

// Format returns the name of v, or its hexadecimal value when v is not a
// known constant.
func Format(v uint32) string {
	if name, ok := byValue[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", v)
}

// IsSymbol reports whether s carries the enum prefix.
func IsSymbol(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Count returns the number of named constants.
func Count() int {
	return len(table)
}
