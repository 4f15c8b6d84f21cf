// Package transfer computes the byte span a sub-region pixel upload
// actually consumes from its source buffer.
//
// A context keeps a [State] that mirrors its pixel-unpack parameters.
// [BytesNeeded] turns that state plus the upload's extent into a byte
// count, and [Extract] trims a typed buffer to it, so a capture holds what
// the call reads instead of whatever the caller happened to allocate.
package transfer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"

	"github.com/gogpu/glrr/glenum"
)

// ErrUnknownType is returned for a pixel type with no known size.
var ErrUnknownType = errors.New("transfer: unrecognized pixel type")

// ErrNotBuffer is returned by Extract for values that are not typed buffers.
var ErrNotBuffer = errors.New("transfer: not a typed buffer")

// DefaultAlignment is the initial UNPACK_ALIGNMENT of a context.
const DefaultAlignment = 4

// State mirrors a context's pixel-unpack parameters. Zero RowLength and
// ImageHeight mean "use the upload's width/height".
type State struct {
	RowLength   int
	SkipRows    int
	SkipPixels  int
	Alignment   int
	ImageHeight int
	SkipImages  int
}

// NewState returns the state of a freshly created context.
func NewState() *State {
	return &State{Alignment: DefaultAlignment}
}

// Apply records a pixelStorei(pname, value) call. It reports whether pname
// is one of the unpack parameters tracked here; other parameters are
// ignored.
func (s *State) Apply(pname uint32, value int) bool {
	switch pname {
	case glenum.UNPACK_ROW_LENGTH:
		s.RowLength = value
	case glenum.UNPACK_SKIP_ROWS:
		s.SkipRows = value
	case glenum.UNPACK_SKIP_PIXELS:
		s.SkipPixels = value
	case glenum.UNPACK_ALIGNMENT:
		s.Alignment = value
	case glenum.UNPACK_IMAGE_HEIGHT:
		s.ImageHeight = value
	case glenum.UNPACK_SKIP_IMAGES:
		s.SkipImages = value
	default:
		return false
	}
	return true
}

// BytesPerGroup returns the size in bytes of one pixel (element group) of
// the given format and type.
func BytesPerGroup(format, typ uint32) (int, error) {
	var perChannel int
	switch typ {
	case glenum.UNSIGNED_SHORT_4_4_4_4,
		glenum.UNSIGNED_SHORT_5_5_5_1,
		glenum.UNSIGNED_SHORT_5_6_5:
		return 2, nil
	case glenum.UNSIGNED_INT_10F_11F_11F_REV,
		glenum.UNSIGNED_INT_2_10_10_10_REV,
		glenum.UNSIGNED_INT_24_8,
		glenum.UNSIGNED_INT_5_9_9_9_REV:
		return 4, nil
	case glenum.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8, nil

	case glenum.BYTE, glenum.UNSIGNED_BYTE:
		perChannel = 1
	case glenum.SHORT, glenum.UNSIGNED_SHORT, glenum.HALF_FLOAT, glenum.HALF_FLOAT_OES:
		perChannel = 2
	case glenum.INT, glenum.UNSIGNED_INT, glenum.FLOAT:
		perChannel = 4
	default:
		return 0, fmt.Errorf("%w: 0x%04X", ErrUnknownType, typ)
	}

	return perChannel * channels(format), nil
}

func channels(format uint32) int {
	switch format {
	case glenum.RG, glenum.RG_INTEGER, glenum.LUMINANCE_ALPHA:
		return 2
	case glenum.RGB, glenum.RGB_INTEGER:
		return 3
	case glenum.RGBA, glenum.RGBA_INTEGER:
		return 4
	default:
		return 1
	}
}

// Layout is the placement of an upload's pixels in its source buffer.
type Layout struct {
	BytesPerGroup int // size of one pixel
	RowStride     int // distance between row starts
	ImageStride   int // distance between image starts
	Skip          int // offset of the first pixel read
}

// LayoutOf returns the source layout of a width×height upload under
// state s.
func LayoutOf(s *State, width, height int, format, typ uint32) (Layout, error) {
	bpg, err := BytesPerGroup(format, typ)
	if err != nil {
		return Layout{}, err
	}

	rowLength := width
	if s.RowLength != 0 {
		rowLength = s.RowLength
	}
	imageHeight := height
	if s.ImageHeight != 0 {
		imageHeight = s.ImageHeight
	}

	rowStride := bpg * rowLength
	if a := s.Alignment; a > 1 {
		rowStride = (rowStride + a - 1) / a * a
	}
	imageStride := rowStride * imageHeight

	return Layout{
		BytesPerGroup: bpg,
		RowStride:     rowStride,
		ImageStride:   imageStride,
		Skip:          bpg*s.SkipPixels + rowStride*s.SkipRows + imageStride*s.SkipImages,
	}, nil
}

// Offset returns the offset of the first pixel of row y in image z.
func (l Layout) Offset(y, z int) int {
	return l.Skip + z*l.ImageStride + y*l.RowStride
}

// BytesNeeded returns the byte extent an upload of width×height×depth
// pixels reads from its source buffer under state s. The count is an
// upper bound: it spans one whole image and row past the last pixel.
func BytesNeeded(s *State, width, height, depth int, format, typ uint32) (int, error) {
	l, err := LayoutOf(s, width, height, format, typ)
	if err != nil {
		return 0, err
	}
	return l.Skip + l.ImageStride*depth + l.RowStride*height + l.BytesPerGroup*width, nil
}

// Bytes returns the little-endian bytes of a typed buffer.
func Bytes(buf any) ([]byte, error) {
	if b, ok := buf.([]byte); ok {
		return b, nil
	}
	rv := reflect.ValueOf(buf)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %T", ErrNotBuffer, buf)
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32, reflect.Float32, reflect.Float64:
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotBuffer, buf)
	}
	out, err := binary.Append(nil, binary.LittleEndian, buf)
	if err != nil {
		return nil, fmt.Errorf("transfer: %T: %w", buf, err)
	}
	return out, nil
}

// Extract returns buf sliced to the whole number of elements covering
// nbytes, clamped to the buffer's length. The result shares memory with
// buf and keeps its type.
func Extract(buf any, nbytes int) (any, error) {
	rv := reflect.ValueOf(buf)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %T", ErrNotBuffer, buf)
	}
	size := int(rv.Type().Elem().Size())
	switch rv.Type().Elem().Kind() {
	case reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16,
		reflect.Int32, reflect.Uint32, reflect.Float32, reflect.Float64:
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotBuffer, buf)
	}

	n := max((nbytes+size-1)/size, 0)
	n = min(n, rv.Len())
	return rv.Slice(0, n).Interface(), nil
}
