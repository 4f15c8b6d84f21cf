package pickle

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

// ArrayBuffer is an untyped binary buffer. Use it where the traced API
// takes raw bytes rather than a typed view.
type ArrayBuffer []byte

// ViewKind names the typed view a binary buffer was passed as. The names
// match the JavaScript typed array constructors so traces stay readable
// next to their browser counterparts.
type ViewKind string

const (
	ViewArrayBuffer  ViewKind = "ArrayBuffer"
	ViewUint8Array   ViewKind = "Uint8Array"
	ViewInt8Array    ViewKind = "Int8Array"
	ViewInt16Array   ViewKind = "Int16Array"
	ViewUint16Array  ViewKind = "Uint16Array"
	ViewInt32Array   ViewKind = "Int32Array"
	ViewUint32Array  ViewKind = "Uint32Array"
	ViewFloat32Array ViewKind = "Float32Array"
	ViewFloat64Array ViewKind = "Float64Array"
)

var viewElemSize = map[ViewKind]int{
	ViewArrayBuffer:  1,
	ViewUint8Array:   1,
	ViewInt8Array:    1,
	ViewInt16Array:   2,
	ViewUint16Array:  2,
	ViewInt32Array:   4,
	ViewUint32Array:  4,
	ViewFloat32Array: 4,
	ViewFloat64Array: 8,
}

// ElemSize returns the element size in bytes, or 0 for an unknown view.
func (v ViewKind) ElemSize() int {
	return viewElemSize[v]
}

// IsKnown reports whether v is one of the supported views.
func (v ViewKind) IsKnown() bool {
	_, ok := viewElemSize[v]
	return ok
}

// Blob is a byte-exact copy of a binary buffer. Data is little-endian,
// matching the layout the buffer had in memory on the capturing side.
type Blob struct {
	View ViewKind
	Data []byte
}

// String returns a short summary; the payload can be large.
func (b Blob) String() string {
	return string(b.View) + "(" + strconv.Itoa(len(b.Data)) + " bytes)"
}

// Hex returns the payload as two lower-case hex digits per byte.
func (b Blob) Hex() string {
	return hex.EncodeToString(b.Data)
}

// BlobFromHex rebuilds a Blob from its encoded form.
func BlobFromHex(view ViewKind, s string) (Blob, error) {
	if !view.IsKnown() {
		return Blob{}, fmt.Errorf("%w: unknown buffer view %q", ErrUnhandledShape, view)
	}
	if len(s)%2 != 0 {
		return Blob{}, fmt.Errorf("pickle: %s payload has odd hex length %d", view, len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return Blob{}, fmt.Errorf("pickle: %s payload: %w", view, err)
	}
	if len(data)%view.ElemSize() != 0 {
		return Blob{}, fmt.Errorf("pickle: %s payload of %d bytes is not a whole number of elements", view, len(data))
	}
	return Blob{View: view, Data: data}, nil
}

// blobOf copies a supported buffer into a Blob.
func blobOf(v any) (Blob, bool) {
	le := binary.LittleEndian
	switch b := v.(type) {
	case ArrayBuffer:
		return Blob{View: ViewArrayBuffer, Data: append([]byte(nil), b...)}, true
	case []byte:
		return Blob{View: ViewUint8Array, Data: append([]byte(nil), b...)}, true
	case []int8:
		data := make([]byte, len(b))
		for i, x := range b {
			data[i] = byte(x)
		}
		return Blob{View: ViewInt8Array, Data: data}, true
	case []int16:
		data := make([]byte, 2*len(b))
		for i, x := range b {
			le.PutUint16(data[2*i:], uint16(x))
		}
		return Blob{View: ViewInt16Array, Data: data}, true
	case []uint16:
		data := make([]byte, 2*len(b))
		for i, x := range b {
			le.PutUint16(data[2*i:], x)
		}
		return Blob{View: ViewUint16Array, Data: data}, true
	case []int32:
		data := make([]byte, 4*len(b))
		for i, x := range b {
			le.PutUint32(data[4*i:], uint32(x))
		}
		return Blob{View: ViewInt32Array, Data: data}, true
	case []uint32:
		data := make([]byte, 4*len(b))
		for i, x := range b {
			le.PutUint32(data[4*i:], x)
		}
		return Blob{View: ViewUint32Array, Data: data}, true
	case []float32:
		data := make([]byte, 4*len(b))
		for i, x := range b {
			le.PutUint32(data[4*i:], math.Float32bits(x))
		}
		return Blob{View: ViewFloat32Array, Data: data}, true
	case []float64:
		data := make([]byte, 8*len(b))
		for i, x := range b {
			le.PutUint64(data[8*i:], math.Float64bits(x))
		}
		return Blob{View: ViewFloat64Array, Data: data}, true
	}
	return Blob{}, false
}

// Live rebuilds a buffer of the original view type.
func (b Blob) Live() (any, error) {
	size := b.View.ElemSize()
	if size == 0 {
		return nil, fmt.Errorf("%w: unknown buffer view %q", ErrUnhandledShape, b.View)
	}
	if len(b.Data)%size != 0 {
		return nil, fmt.Errorf("pickle: %s payload of %d bytes is not a whole number of elements", b.View, len(b.Data))
	}
	n := len(b.Data) / size
	le := binary.LittleEndian
	switch b.View {
	case ViewArrayBuffer:
		return ArrayBuffer(append([]byte(nil), b.Data...)), nil
	case ViewUint8Array:
		return append([]byte(nil), b.Data...), nil
	case ViewInt8Array:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(b.Data[i])
		}
		return out, nil
	case ViewInt16Array:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(le.Uint16(b.Data[2*i:]))
		}
		return out, nil
	case ViewUint16Array:
		out := make([]uint16, n)
		for i := range out {
			out[i] = le.Uint16(b.Data[2*i:])
		}
		return out, nil
	case ViewInt32Array:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(le.Uint32(b.Data[4*i:]))
		}
		return out, nil
	case ViewUint32Array:
		out := make([]uint32, n)
		for i := range out {
			out[i] = le.Uint32(b.Data[4*i:])
		}
		return out, nil
	case ViewFloat32Array:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(le.Uint32(b.Data[4*i:]))
		}
		return out, nil
	default: // ViewFloat64Array
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(le.Uint64(b.Data[8*i:]))
		}
		return out, nil
	}
}
