package pickle

import (
	"fmt"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/remap"
)

// ResolveFunc maps a recorded handle reference to a live object.
type ResolveFunc func(id remap.ID) (any, error)

// Unpickle converts a trace-safe value back to a live value.
//
// Scalars become bool, int64, float64 and string; enums become uint32;
// sequences become []any; records become map[string]any; blobs are rebuilt
// as their original view type. References are passed to resolve, or kept
// as remap.ID when resolve is nil.
func Unpickle(v Value, resolve ResolveFunc) (any, error) {
	switch x := v.(type) {
	case nil, Null:
		return nil, nil
	case Bool:
		return bool(x), nil
	case Int:
		return int64(x), nil
	case Float:
		return float64(x), nil
	case String:
		return string(x), nil
	case Enum:
		return x.Value, nil
	case Ref:
		if resolve == nil {
			return x.ID, nil
		}
		return resolve(x.ID)
	case Blob:
		return x.Live()
	case Seq:
		out := make([]any, len(x))
		for i, e := range x {
			live, err := Unpickle(e, resolve)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = live
		}
		return out, nil
	case Record:
		out := make(map[string]any, len(x))
		for k, e := range x {
			live, err := Unpickle(e, resolve)
			if err != nil {
				return nil, fmt.Errorf(".%s: %w", k, err)
			}
			out[k] = live
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnhandledShape, v)
}

// UnpickleAll unpickles each element of args.
func UnpickleAll(args []Value, resolve ResolveFunc) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		live, err := Unpickle(a, resolve)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = live
	}
	return out, nil
}

// EnumByName looks up a symbolic constant by its unprefixed name.
// Unknown names are an error: a trace naming a constant this build does
// not know cannot be replayed faithfully.
func EnumByName(name string) (Enum, error) {
	v, ok := glenum.Value(name)
	if !ok {
		return Enum{}, fmt.Errorf("pickle: unknown enum name %q", name)
	}
	return Enum{Name: name, Value: v}, nil
}
