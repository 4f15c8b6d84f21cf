package trace

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/remap"
)

// Decode parses trace pages back into a Recording.
func Decode(pages []string) (*recording.Recording, error) {
	start := time.Now()
	root, err := Parse(pages, Revive)
	if err != nil {
		return nil, err
	}
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, want object", ErrShape, root)
	}

	rec := &recording.Recording{Snapshots: make(map[uint64]recording.Snapshot)}
	if rec.Canvases, err = decodeCanvases(doc["canvases"]); err != nil {
		return nil, err
	}
	if err := decodeSnapshots(doc["snapshots"], rec.Snapshots); err != nil {
		return nil, err
	}
	if rec.Frames, err = decodeFrames(doc["frames"]); err != nil {
		return nil, err
	}

	glrr.Logger().Info("trace: loaded",
		"frames", rec.FrameCount(), "calls", rec.CallCount(), "elapsed", time.Since(start))
	return rec, nil
}

// Revive turns tagged objects into their pickle values. Every other value
// is returned unchanged.
func Revive(_, v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	raw, ok := obj[tagKey]
	if !ok {
		return v, nil
	}
	tag, ok := raw.([]any)
	if !ok || len(tag) < 2 || len(obj) != 1 {
		return nil, fmt.Errorf("%w: malformed %q tag", ErrShape, tagKey)
	}
	name, ok := tag[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: tag name is %T", ErrShape, tag[0])
	}

	switch name {
	case tagRemapID:
		kind, ok1 := tag[1].(string)
		n, ok2 := asUint(tag, 2)
		if len(tag) != 3 || !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: malformed %s tag", ErrShape, name)
		}
		return pickle.Ref{ID: remap.ID{Kind: kind, N: n}}, nil
	case tagFloat:
		s, _ := tag[1].(string)
		switch s {
		case "NaN":
			return pickle.Float(math.NaN()), nil
		case "Infinity":
			return pickle.Float(math.Inf(1)), nil
		case "-Infinity":
			return pickle.Float(math.Inf(-1)), nil
		}
		return nil, fmt.Errorf("%w: bad %s tag %v", ErrShape, name, tag[1])
	case tagString:
		s, ok := tag[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: bad %s tag", ErrShape, name)
		}
		return pickle.String(s), nil
	}

	view := pickle.ViewKind(name)
	if !view.IsKnown() {
		return nil, fmt.Errorf("%w: non-revivable tag %q", ErrShape, name)
	}
	hex, ok := tag[1].(string)
	if !ok || len(tag) != 2 {
		return nil, fmt.Errorf("%w: malformed %s tag", ErrShape, name)
	}
	return pickle.BlobFromHex(view, hex)
}

func asUint(tag []any, i int) (uint64, bool) {
	if i >= len(tag) {
		return 0, false
	}
	n, ok := tag[i].(int64)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// ToValue converts a parsed (and revived) JSON value into a pickle value.
// Strings carrying the enum prefix become enums; an unknown name fails.
func ToValue(v any) (pickle.Value, error) {
	switch x := v.(type) {
	case nil:
		return pickle.Null{}, nil
	case pickle.Value:
		return x, nil
	case bool:
		return pickle.Bool(x), nil
	case int64:
		return pickle.Int(x), nil
	case float64:
		return pickle.Float(x), nil
	case string:
		if glenum.IsSymbol(x) {
			return pickle.EnumByName(x[len(glenum.Prefix):])
		}
		return pickle.String(x), nil
	case []any:
		out := make(pickle.Seq, len(x))
		for i, e := range x {
			ev, err := ToValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case map[string]any:
		out := make(pickle.Record, len(x))
		for k, e := range x {
			ev, err := ToValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", pickle.ErrUnhandledShape, v)
}

func decodeCanvases(v any) ([]recording.CanvasDescriptor, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: canvases is %T, want array", ErrShape, v)
	}
	out := make([]recording.CanvasDescriptor, 0, len(list))
	for i, e := range list {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: canvases[%d] is %T", ErrShape, i, e)
		}
		ref, ok1 := obj["remapId"].(pickle.Ref)
		w, ok2 := obj["width"].(int64)
		h, ok3 := obj["height"].(int64)
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("%w: canvases[%d] needs remapId, width and height", ErrShape, i)
		}
		out = append(out, recording.CanvasDescriptor{ID: ref.ID, Width: int(w), Height: int(h)})
	}
	return out, nil
}

func decodeSnapshots(v any, dst map[uint64]recording.Snapshot) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: snapshots is %T, want object", ErrShape, v)
	}
	for k, e := range obj {
		data, ok := e.(string)
		if !ok {
			return fmt.Errorf("%w: snapshot %q is %T", ErrShape, k, e)
		}
		id, err := snapshotKey(k)
		if err != nil {
			return err
		}
		dst[id.N] = recording.Snapshot{ID: id, Data: data}
	}
	return nil
}

// snapshotKey accepts Kind$N and a bare N.
func snapshotKey(k string) (remap.ID, error) {
	if n, err := strconv.ParseUint(k, 10, 64); err == nil {
		return remap.ID{N: n}, nil
	}
	id, err := remap.ParseID(k)
	if err != nil {
		return remap.ID{}, fmt.Errorf("%w: snapshot key: %w", ErrShape, err)
	}
	return id, nil
}

func decodeFrames(v any) ([]recording.Frame, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: frames is %T, want array", ErrShape, v)
	}
	frames := make([]recording.Frame, len(list))
	for i, fv := range list {
		calls, ok := fv.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: frames[%d] is %T", ErrShape, i, fv)
		}
		frame := make(recording.Frame, len(calls))
		for j, cv := range calls {
			call, err := decodeCall(cv)
			if err != nil {
				return nil, fmt.Errorf("frame %d call %d: %w", i, j, err)
			}
			frame[j] = call
		}
		frames[i] = frame
	}
	return frames, nil
}

func decodeCall(v any) (recording.Call, error) {
	tuple, ok := v.([]any)
	if !ok || len(tuple) < 3 || len(tuple) > 4 {
		return recording.Call{}, fmt.Errorf("%w: call must be [id, method, args, ret?]", ErrShape)
	}
	idStr, ok1 := tuple[0].(string)
	method, ok2 := tuple[1].(string)
	rawArgs, ok3 := tuple[2].([]any)
	if !ok1 || !ok2 || !ok3 {
		return recording.Call{}, fmt.Errorf("%w: call must be [id, method, args, ret?]", ErrShape)
	}
	id, err := remap.ParseID(idStr)
	if err != nil {
		return recording.Call{}, err
	}

	call := recording.Call{Object: id, Method: method, Args: make([]pickle.Value, len(rawArgs))}
	for i, a := range rawArgs {
		if call.Args[i], err = ToValue(a); err != nil {
			return recording.Call{}, fmt.Errorf("%s argument %d: %w", method, i, err)
		}
	}
	if len(tuple) == 4 {
		if call.Ret, err = ToValue(tuple[3]); err != nil {
			return recording.Call{}, fmt.Errorf("%s return: %w", method, err)
		}
	}
	return call, nil
}
