// Package pickle converts live call arguments and return values into
// trace-safe values and back.
//
// Every trace-safe value is one of a closed set of variants, identified by
// [Kind]. Variants that are not plain JSON (handle references, binary
// buffers, symbolic enums) carry an explicit tag once encoded by the trace
// codec, so decoding is never ambiguous.
//
// # Variants
//
//   - Null, Bool, Int, Float, String: scalars
//   - Enum: an integer that matched a named GL constant
//   - Seq: an ordered sequence of values
//   - Ref: the remap.ID of a tracked handle or visual source
//   - Blob: a byte-exact copy of a binary buffer plus its view kind
//   - Record: a flat field/value bag
package pickle

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/glrr/remap"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindNull   Kind = iota // absent or null
	KindBool               // boolean scalar
	KindInt                // integer scalar
	KindFloat              // floating-point scalar
	KindString             // string scalar
	KindEnum               // symbolic GL constant
	KindSeq                // ordered sequence
	KindRef                // handle reference
	KindBlob               // binary buffer
	KindRecord             // flat descriptor record
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindNull:   "Null",
	KindBool:   "Bool",
	KindInt:    "Int",
	KindFloat:  "Float",
	KindString: "String",
	KindEnum:   "Enum",
	KindSeq:    "Seq",
	KindRef:    "Ref",
	KindBlob:   "Blob",
	KindRecord: "Record",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Value is the interface implemented by all trace-safe variants.
// The set of implementations is closed; see the package documentation.
type Value interface {
	// Kind returns the variant of this value.
	Kind() Kind
	// String returns a short human-readable form used in call listings.
	String() string

	sealed()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean scalar.
type Bool bool

// Int is an integer scalar.
type Int int64

// Float is a floating-point scalar.
type Float float64

// String is a string scalar.
type String string

// Enum is an integer argument written under its symbolic GL name.
type Enum struct {
	Name  string
	Value uint32
}

// Seq is an ordered sequence of values.
type Seq []Value

// Ref refers to a tracked live object by its remap ID.
type Ref struct {
	ID remap.ID
}

// Record is a flat descriptor record.
type Record map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (Enum) Kind() Kind   { return KindEnum }
func (Seq) Kind() Kind    { return KindSeq }
func (Ref) Kind() Kind    { return KindRef }
func (Blob) Kind() Kind   { return KindBlob }
func (Record) Kind() Kind { return KindRecord }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Int) sealed()    {}
func (Float) sealed()  {}
func (String) sealed() {}
func (Enum) sealed()   {}
func (Seq) sealed()    {}
func (Ref) sealed()    {}
func (Blob) sealed()   {}
func (Record) sealed() {}

func (Null) String() string     { return "null" }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (s String) String() string { return strconv.Quote(string(s)) }
func (e Enum) String() string   { return e.Name }
func (r Ref) String() string    { return r.ID.String() }

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (s Seq) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r Record) String() string {
	keys := r.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + r[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Keys returns the record's field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether a and b are the same value. Enums compare by
// value, so a decoded enum equals the one that was encoded even when a
// constant has several names.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Enum:
		return av.Value == b.(Enum).Value
	case Float:
		bv := b.(Float)
		if math.IsNaN(float64(av)) {
			return math.IsNaN(float64(bv))
		}
		return av == bv
	case Seq:
		bv := b.(Seq)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Record:
		bv := b.(Record)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case Blob:
		bv := b.(Blob)
		return av.View == bv.View && string(av.Data) == string(bv.Data)
	default:
		return a == b
	}
}
