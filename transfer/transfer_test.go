package transfer

import (
	"errors"
	"testing"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/pickle"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Alignment != 4 {
		t.Errorf("Alignment = %d, want 4", s.Alignment)
	}
	if *s != (State{Alignment: 4}) {
		t.Errorf("NewState() = %+v", *s)
	}
}

func TestApply(t *testing.T) {
	s := NewState()
	steps := []struct {
		pname uint32
		value int
	}{
		{glenum.UNPACK_ROW_LENGTH, 256},
		{glenum.UNPACK_SKIP_ROWS, 2},
		{glenum.UNPACK_SKIP_PIXELS, 3},
		{glenum.UNPACK_ALIGNMENT, 1},
		{glenum.UNPACK_IMAGE_HEIGHT, 16},
		{glenum.UNPACK_SKIP_IMAGES, 5},
	}
	for _, st := range steps {
		if !s.Apply(st.pname, st.value) {
			t.Errorf("Apply(0x%04X) = false", st.pname)
		}
	}
	want := State{RowLength: 256, SkipRows: 2, SkipPixels: 3, Alignment: 1, ImageHeight: 16, SkipImages: 5}
	if *s != want {
		t.Errorf("state = %+v, want %+v", *s, want)
	}
	if s.Apply(glenum.UNPACK_FLIP_Y_WEBGL, 1) {
		t.Error("Apply(UNPACK_FLIP_Y_WEBGL) = true")
	}
}

func TestBytesPerGroup(t *testing.T) {
	tests := []struct {
		format, typ uint32
		want        int
	}{
		{glenum.RGBA, glenum.UNSIGNED_BYTE, 4},
		{glenum.RGB, glenum.UNSIGNED_BYTE, 3},
		{glenum.LUMINANCE_ALPHA, glenum.UNSIGNED_BYTE, 2},
		{glenum.ALPHA, glenum.UNSIGNED_BYTE, 1},
		{glenum.RG, glenum.HALF_FLOAT, 4},
		{glenum.RGBA, glenum.FLOAT, 16},
		{glenum.RGB_INTEGER, glenum.INT, 12},
		{glenum.RGBA_INTEGER, glenum.UNSIGNED_SHORT, 8},
		{glenum.RGBA, glenum.UNSIGNED_SHORT_4_4_4_4, 2},
		{glenum.RGB, glenum.UNSIGNED_SHORT_5_6_5, 2},
		{glenum.RGB, glenum.UNSIGNED_INT_10F_11F_11F_REV, 4},
		{glenum.DEPTH_STENCIL, glenum.UNSIGNED_INT_24_8, 4},
		{glenum.DEPTH_STENCIL, glenum.FLOAT_32_UNSIGNED_INT_24_8_REV, 8},
	}

	for _, tt := range tests {
		got, err := BytesPerGroup(tt.format, tt.typ)
		if err != nil {
			t.Errorf("BytesPerGroup(0x%04X, 0x%04X) error = %v", tt.format, tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BytesPerGroup(0x%04X, 0x%04X) = %d, want %d", tt.format, tt.typ, got, tt.want)
		}
	}

	if _, err := BytesPerGroup(glenum.RGBA, 0x1234); !errors.Is(err, ErrUnknownType) {
		t.Errorf("BytesPerGroup(unknown type) error = %v, want ErrUnknownType", err)
	}
}

func TestBytesNeeded(t *testing.T) {
	rgba, rgb := uint32(glenum.RGBA), uint32(glenum.RGB)
	ub := uint32(glenum.UNSIGNED_BYTE)

	tests := []struct {
		name        string
		state       State
		w, h, d     int
		format, typ uint32
		want        int
	}{
		// rowStride 16, imageStride 32: 32 + 32 + 16
		{"tight", State{Alignment: 4}, 4, 2, 1, rgba, ub, 80},
		{"row length override", State{RowLength: 256, Alignment: 4}, 64, 32, 1, rgba, ub, 1024*32 + 1024*32 + 256},
		// rowStride 9 -> 12, imageStride 24: 24 + 24 + 9
		{"alignment padding", State{Alignment: 4}, 3, 2, 1, rgb, ub, 57},
		{"unpacked alignment", State{Alignment: 1}, 3, 2, 1, rgb, ub, 18 + 18 + 9},
		// rowStride 8, imageStride 32, skip 4+16+32: 52 + 64 + 16 + 8
		{"skips", State{Alignment: 4, SkipPixels: 1, SkipRows: 2, SkipImages: 1, ImageHeight: 4}, 2, 2, 2, rgba, ub, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BytesNeeded(&tt.state, tt.w, tt.h, tt.d, tt.format, tt.typ)
			if err != nil {
				t.Fatalf("BytesNeeded() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BytesNeeded() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		buf     any
		nbytes  int
		wantLen int
	}{
		{"bytes exact", make([]byte, 100), 40, 40},
		{"bytes clamped", make([]byte, 10), 40, 10},
		{"float32 rounds up", make([]float32, 10), 10, 3},
		{"uint16", make([]uint16, 8), 8, 4},
		{"float64", make([]float64, 4), 1, 1},
		{"zero", make([]int32, 4), 0, 0},
		{"array buffer", make(pickle.ArrayBuffer, 16), 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.buf, tt.nbytes)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if n := lenOf(got); n != tt.wantLen {
				t.Errorf("Extract() len = %d, want %d", n, tt.wantLen)
			}
		})
	}
}

func TestExtractKeepsType(t *testing.T) {
	got, err := Extract(make(pickle.ArrayBuffer, 8), 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(pickle.ArrayBuffer); !ok {
		t.Errorf("Extract() = %T, want pickle.ArrayBuffer", got)
	}
}

func TestExtractRejects(t *testing.T) {
	for _, buf := range []any{"pixels", 42, []string{"a"}, nil} {
		if _, err := Extract(buf, 1); !errors.Is(err, ErrNotBuffer) {
			t.Errorf("Extract(%T) error = %v, want ErrNotBuffer", buf, err)
		}
	}
}

// A 64x32 RGBA upload with rowLength 256 from a 32 KiB source: the span
// covers the whole buffer, and pickling copies exactly what was kept.
func TestSubRegionUploadCapture(t *testing.T) {
	s := NewState()
	s.Apply(glenum.UNPACK_ROW_LENGTH, 256)

	need, err := BytesNeeded(s, 64, 32, 1, glenum.RGBA, glenum.UNSIGNED_BYTE)
	if err != nil {
		t.Fatal(err)
	}
	if need != 65792 {
		t.Errorf("BytesNeeded() = %d, want 65792", need)
	}

	src := make([]byte, 32768)
	cut, err := Extract(src, need)
	if err != nil {
		t.Fatal(err)
	}
	v, err := pickle.New(nil).Pickle(cut)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(v.(pickle.Blob).Data); n != 32768 {
		t.Errorf("pickled length = %d, want 32768", n)
	}

	big := make([]uint32, 65792) // 4x the needed bytes
	cut, _ = Extract(big, need)
	if n := len(cut.([]uint32)); n != 65792/4 {
		t.Errorf("uint32 view len = %d, want %d", n, 65792/4)
	}
}

func lenOf(v any) int {
	switch b := v.(type) {
	case []byte:
		return len(b)
	case pickle.ArrayBuffer:
		return len(b)
	case []float32:
		return len(b)
	case []uint16:
		return len(b)
	case []float64:
		return len(b)
	case []int32:
		return len(b)
	}
	return -1
}

func TestLayoutOf(t *testing.T) {
	s := NewState()
	s.RowLength = 10
	s.SkipRows = 2
	s.SkipPixels = 1
	s.SkipImages = 1
	s.ImageHeight = 5

	l, err := LayoutOf(s, 3, 4, glenum.RGB, glenum.UNSIGNED_BYTE)
	if err != nil {
		t.Fatal(err)
	}
	want := Layout{BytesPerGroup: 3, RowStride: 32, ImageStride: 160, Skip: 3 + 64 + 160}
	if l != want {
		t.Errorf("LayoutOf() = %+v, want %+v", l, want)
	}
	if got := l.Offset(1, 2); got != want.Skip+32+320 {
		t.Errorf("Offset(1, 2) = %d, want %d", got, want.Skip+32+320)
	}

	// The last pixel read always lies inside BytesNeeded.
	need, _ := BytesNeeded(s, 3, 4, 2, glenum.RGB, glenum.UNSIGNED_BYTE)
	if end := l.Offset(3, 1) + 3*3; end > need {
		t.Errorf("last row ends at %d, beyond BytesNeeded %d", end, need)
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{"bytes", []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"array buffer", pickle.ArrayBuffer{9, 8}, []byte{9, 8}},
		{"uint16", []uint16{0x0102, 0x0304}, []byte{2, 1, 4, 3}},
		{"float32", []float32{1}, []byte{0, 0, 0x80, 0x3f}},
		{"int8", []int8{-1}, []byte{0xff}},
		{"empty", []int32{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bytes(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(tt.want) {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}

	for _, bad := range []any{nil, "str", 3, []string{"a"}} {
		if _, err := Bytes(bad); !errors.Is(err, ErrNotBuffer) {
			t.Errorf("Bytes(%#v) error = %v, want ErrNotBuffer", bad, err)
		}
	}
}
