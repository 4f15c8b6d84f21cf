package pickle

import (
	"errors"
	"fmt"
	"image"
	"reflect"
	"unicode/utf8"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/remap"
)

// ErrUnhandledShape is returned for live values the pickler does not know
// how to represent. Falling back silently would corrupt the trace.
var ErrUnhandledShape = errors.New("pickle: unhandled value shape")

// ReservedKey is the record key the trace codec uses for tagged values.
// Records must not use it as a field name.
const ReservedKey = "__as"

// VisualSource is an image-like object (image, video frame, canvas) that
// can be uploaded as texture data. The first time one is pickled, a still
// snapshot of it is captured so the replay can recreate it.
type VisualSource interface {
	remap.Handle
	Image() image.Image
}

// Fielder is implemented by flat descriptor records such as active
// uniform info.
type Fielder interface {
	Fields() map[string]any
}

// SnapshotFunc receives every visual source on its first sighting.
type SnapshotFunc func(id remap.ID, src VisualSource) error

// Pickler converts live values to trace-safe values.
// A Pickler is not safe for concurrent use.
type Pickler struct {
	reg       *remap.Registry
	onVisual  SnapshotFunc
	enumNames bool
	snapshots map[uint64]bool
}

// Option configures a Pickler.
type Option func(*Pickler)

// WithEnumNames enables or disables symbolic naming of integers that match
// a GL constant. Enabled by default.
func WithEnumNames(enabled bool) Option {
	return func(p *Pickler) { p.enumNames = enabled }
}

// WithSnapshots registers the callback invoked on the first sighting of
// every visual source.
func WithSnapshots(fn SnapshotFunc) Option {
	return func(p *Pickler) { p.onVisual = fn }
}

// New creates a Pickler that identifies handles through reg.
func New(reg *remap.Registry, opts ...Option) *Pickler {
	p := &Pickler{
		reg:       reg,
		enumNames: true,
		snapshots: make(map[uint64]bool),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Registry returns the registry used to identify handles.
func (p *Pickler) Registry() *remap.Registry {
	return p.reg
}

// Pickle converts a live value into its trace-safe form.
func (p *Pickler) Pickle(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return pickleString(x)
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case remap.ID:
		return Ref{ID: x}, nil
	case remap.Unresolved:
		return Ref{ID: x.ID}, nil
	}

	// A typed nil handle (a lookup that found nothing) pickles as null.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null{}, nil
	}

	switch x := v.(type) {
	case []any:
		return p.pickleSeq(reflect.ValueOf(x))
	case map[string]any:
		return p.pickleRecord(x)
	case VisualSource:
		return p.pickleVisual(x)
	case remap.Handle:
		id, err := p.reg.Identify(x)
		if err != nil {
			return nil, fmt.Errorf("pickle: %s: %w", remap.KindOf(x), err)
		}
		return Ref{ID: id}, nil
	case Fielder:
		return p.pickleRecord(x.Fields())
	}

	if b, ok := blobOf(v); ok {
		return b, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.pickleInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return nil, fmt.Errorf("%w: %T value %d overflows int64", ErrUnhandledShape, v, u)
		}
		return p.pickleInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return pickleString(rv.String())
	case reflect.Slice, reflect.Array:
		return p.pickleSeq(rv)
	}

	return nil, fmt.Errorf("%w: %T", ErrUnhandledShape, v)
}

// PickleAll pickles each element of args, preserving order and length.
func (p *Pickler) PickleAll(args []any) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := p.Pickle(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// pickleString rejects invalid UTF-8, which the trace text cannot carry
// byte for byte.
func pickleString(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: string %q is not valid UTF-8", ErrUnhandledShape, s)
	}
	return String(s), nil
}

func (p *Pickler) pickleInt(i int64) Value {
	if p.enumNames {
		if sym, ok := glenum.Symbol(i); ok {
			return Enum{Name: sym[len(glenum.Prefix):], Value: uint32(i)}
		}
	}
	return Int(i)
}

func (p *Pickler) pickleSeq(rv reflect.Value) (Value, error) {
	out := make(Seq, rv.Len())
	for i := range out {
		v, err := p.Pickle(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (p *Pickler) pickleRecord(fields map[string]any) (Value, error) {
	out := make(Record, len(fields))
	for k, f := range fields {
		if k == ReservedKey {
			return nil, fmt.Errorf("%w: record uses reserved key %q", ErrUnhandledShape, k)
		}
		v, err := p.Pickle(f)
		if err != nil {
			return nil, fmt.Errorf(".%s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func (p *Pickler) pickleVisual(src VisualSource) (Value, error) {
	id, err := p.reg.Identify(src)
	if err != nil {
		return nil, fmt.Errorf("pickle: %s: %w", src.Kind(), err)
	}
	if !p.snapshots[id.N] {
		p.snapshots[id.N] = true
		if p.onVisual != nil {
			if err := p.onVisual(id, src); err != nil {
				return nil, fmt.Errorf("pickle: snapshot of %s: %w", id, err)
			}
		}
	}
	return Ref{ID: id}, nil
}
