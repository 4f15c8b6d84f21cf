package softgl

import (
	"bytes"
	"slices"
	"testing"

	"github.com/gogpu/glrr/glenum"
)

func newTestContext(t *testing.T, w, h int, kind string) (*Canvas, *Context) {
	t.Helper()
	canvas := NewCanvas(w, h)
	gl := canvas.GetContext(kind, nil)
	if gl == nil {
		t.Fatalf("GetContext(%q) = nil", kind)
	}
	return canvas, gl
}

// pixelAt reads one pixel in GL window coordinates.
func pixelAt(gl *Context, x, y int32) [4]byte {
	buf := make([]byte, 4)
	gl.ReadPixels(x, y, 1, 1, glenum.RGBA, glenum.UNSIGNED_BYTE, buf)
	return [4]byte(buf)
}

type loggedCall struct {
	target any
	method string
	args   []any
	ret    any
}

type callLog struct {
	calls []loggedCall
}

func (l *callLog) OnCall(target any, method string, args []any, ret any) error {
	l.calls = append(l.calls, loggedCall{target, method, args, ret})
	return nil
}

func (l *callLog) methods() []string {
	out := make([]string, len(l.calls))
	for i, c := range l.calls {
		out[i] = c.method
	}
	return out
}

func TestGetContext(t *testing.T) {
	canvas := NewCanvas(4, 4)
	if got := canvas.GetContext("2d", nil); got != nil {
		t.Errorf("GetContext(2d) = %v, want nil", got)
	}
	gl := canvas.GetContext(KindWebGL, nil)
	if gl == nil {
		t.Fatal("GetContext(webgl) = nil")
	}
	if got := canvas.GetContext(KindExperimentalWebGL, nil); got != gl {
		t.Errorf("GetContext(experimental-webgl) = %p, want %p", got, gl)
	}
	if got := canvas.GetContext(KindWebGL2, nil); got != nil {
		t.Errorf("GetContext(webgl2) on a webgl canvas = %v, want nil", got)
	}
	if got := gl.Kind(); got != "WebGLRenderingContext" {
		t.Errorf("Kind() = %q, want WebGLRenderingContext", got)
	}
	if canvas.Context() != gl || gl.Canvas() != canvas {
		t.Error("canvas and context do not reference each other")
	}
}

func TestContextAttributes(t *testing.T) {
	canvas := NewCanvas(2, 2)
	gl := canvas.GetContext(KindWebGL2, map[string]any{
		"preserveDrawingBuffer": true,
		"alpha":                 "yes",
		"unknown":               true,
	})
	attrs := gl.GetContextAttributes()
	tests := []struct {
		name string
		want any
	}{
		{"preserveDrawingBuffer", true},
		{"alpha", true},
		{"stencil", false},
	}
	for _, tt := range tests {
		if got := attrs[tt.name]; got != tt.want {
			t.Errorf("attrs[%q] = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, ok := attrs["unknown"]; ok {
		t.Error("unknown attribute was kept")
	}
}

func TestClearAndReadPixels(t *testing.T) {
	_, gl := newTestContext(t, 4, 3, KindWebGL)
	gl.ClearColor(1, 0, 0.5, 2)
	gl.Clear(glenum.COLOR_BUFFER_BIT | glenum.DEPTH_BUFFER_BIT)

	buf := make([]byte, 4*3*4)
	gl.ReadPixels(0, 0, 4, 3, glenum.RGBA, glenum.UNSIGNED_BYTE, buf)
	want := []byte{255, 0, 128, 255}
	for i := 0; i < len(buf); i += 4 {
		if !bytes.Equal(buf[i:i+4], want) {
			t.Fatalf("pixel %d = %v, want %v", i/4, buf[i:i+4], want)
		}
	}
	if err := gl.GetError(); err != noError {
		t.Errorf("GetError() = %s, want no error", glenum.Format(err))
	}

	cc := gl.GetParameter(glenum.COLOR_CLEAR_VALUE).([]float32)
	if cc[3] != 1 {
		t.Errorf("clear alpha = %v, want 1 after clamping", cc[3])
	}
}

func TestScissorClear(t *testing.T) {
	canvas, gl := newTestContext(t, 4, 4, KindWebGL)
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)
	gl.Enable(glenum.SCISSOR_TEST)
	gl.Scissor(0, 0, 2, 2)
	gl.ClearColor(0, 1, 0, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)

	tests := []struct {
		x, y int32
		want [4]byte
	}{
		{0, 0, [4]byte{0, 255, 0, 255}},
		{1, 1, [4]byte{0, 255, 0, 255}},
		{2, 2, [4]byte{255, 0, 0, 255}},
		{3, 0, [4]byte{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := pixelAt(gl, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	// GL's bottom-left corner is the image's last row.
	img := canvas.Image()
	r, g, _, _ := img.At(0, 3).RGBA()
	if r != 0 || g != 0xFFFF {
		t.Errorf("image (0,3) = (%d,%d), want green", r, g)
	}
}

func TestReadPixelsPackAlignment(t *testing.T) {
	_, gl := newTestContext(t, 3, 2, KindWebGL)
	gl.ClearColor(0, 0, 1, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)
	gl.PixelStorei(glenum.PACK_ALIGNMENT, 8)

	// 3 pixels = 12 bytes, padded to 16.
	buf := make([]byte, 16+12)
	gl.ReadPixels(0, 0, 3, 2, glenum.RGBA, glenum.UNSIGNED_BYTE, buf)
	if err := gl.GetError(); err != noError {
		t.Fatalf("GetError() = %s", glenum.Format(err))
	}
	if !bytes.Equal(buf[12:16], make([]byte, 4)) {
		t.Errorf("padding = %v, want zeros", buf[12:16])
	}
	if !bytes.Equal(buf[16:20], []byte{0, 0, 255, 255}) {
		t.Errorf("second row = %v, want blue", buf[16:20])
	}

	gl.ReadPixels(0, 0, 3, 2, glenum.RGBA, glenum.UNSIGNED_BYTE, make([]byte, 24))
	if err := gl.GetError(); err != glenum.INVALID_OPERATION {
		t.Errorf("short buffer GetError() = %s, want INVALID_OPERATION", glenum.Format(err))
	}
}

func TestErrorFlag(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)

	gl.Enable(0x1234)
	gl.Viewport(0, 0, -1, 1)
	if got := gl.GetError(); got != glenum.INVALID_ENUM {
		t.Errorf("GetError() = %s, want INVALID_ENUM", glenum.Format(got))
	}
	if got := gl.GetError(); got != noError {
		t.Errorf("second GetError() = %s, want no error", glenum.Format(got))
	}

	tests := []struct {
		name string
		call func()
		want uint32
	}{
		{"clear bad bits", func() { gl.Clear(0x1) }, glenum.INVALID_VALUE},
		{"unknown parameter", func() { gl.GetParameter(0xFFFF) }, glenum.INVALID_ENUM},
		{"bad alignment", func() { gl.PixelStorei(glenum.UNPACK_ALIGNMENT, 3) }, glenum.INVALID_VALUE},
		{"unknown pixel store", func() { gl.PixelStorei(0xFFFF, 1) }, glenum.INVALID_ENUM},
		{"bad blend factor", func() { gl.BlendFunc(0x9999, glenum.ONE_MINUS_SRC_ALPHA) }, glenum.INVALID_ENUM},
		{"read float", func() { gl.ReadPixels(0, 0, 1, 1, glenum.RGBA, glenum.FLOAT, make([]byte, 16)) }, glenum.INVALID_OPERATION},
		{"scissor negative", func() { gl.Scissor(0, 0, 1, -1) }, glenum.INVALID_VALUE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			if got := gl.GetError(); got != tt.want {
				t.Errorf("GetError() = %s, want %s", glenum.Format(got), glenum.Format(tt.want))
			}
		})
	}
}

func TestGetParameter(t *testing.T) {
	_, gl := newTestContext(t, 8, 6, KindWebGL2)
	gl.PixelStorei(glenum.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(glenum.UNPACK_FLIP_Y_WEBGL, 1)
	gl.BlendFunc(glenum.SRC_ALPHA, glenum.ONE_MINUS_SRC_ALPHA)

	tests := []struct {
		pname uint32
		want  any
	}{
		{glenum.RENDERER, "softgl"},
		{glenum.VENDOR, "gogpu"},
		{glenum.MAX_TEXTURE_SIZE, int32(MaxTextureSize)},
		{glenum.MAX_VERTEX_ATTRIBS, int32(MaxVertexAttribs)},
		{glenum.UNPACK_ALIGNMENT, int32(1)},
		{glenum.PACK_ALIGNMENT, int32(4)},
		{glenum.UNPACK_FLIP_Y_WEBGL, true},
		{glenum.UNPACK_PREMULTIPLY_ALPHA_WEBGL, false},
		{glenum.BLEND_SRC_RGB, uint32(glenum.SRC_ALPHA)},
		{glenum.BLEND_DST_ALPHA, uint32(glenum.ONE_MINUS_SRC_ALPHA)},
		{glenum.DITHER, true},
		{glenum.BLEND, false},
		{glenum.ACTIVE_TEXTURE, uint32(glenum.TEXTURE0)},
	}
	for _, tt := range tests {
		if got := gl.GetParameter(tt.pname); got != tt.want {
			t.Errorf("GetParameter(%s) = %v (%T), want %v (%T)", glenum.Format(tt.pname), got, got, tt.want, tt.want)
		}
	}

	vp := gl.GetParameter(glenum.VIEWPORT).([]int32)
	if !slices.Equal(vp, []int32{0, 0, 8, 6}) {
		t.Errorf("GetParameter(VIEWPORT) = %v, want [0 0 8 6]", vp)
	}
	if err := gl.GetError(); err != noError {
		t.Errorf("GetError() = %s, want no error", glenum.Format(err))
	}
}

func TestCapabilities(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)
	if gl.IsEnabled(glenum.BLEND) {
		t.Error("BLEND enabled by default")
	}
	gl.Enable(glenum.BLEND)
	if !gl.IsEnabled(glenum.BLEND) {
		t.Error("IsEnabled(BLEND) = false after Enable")
	}
	gl.Disable(glenum.DITHER)
	if gl.IsEnabled(glenum.DITHER) {
		t.Error("IsEnabled(DITHER) = true after Disable")
	}
}

func TestExtensions(t *testing.T) {
	tests := []struct {
		kind string
		name string
		ok   bool
	}{
		{KindWebGL, "OES_element_index_uint", true},
		{KindWebGL, "EXT_color_buffer_float", false},
		{KindWebGL2, "EXT_color_buffer_float", true},
		{KindWebGL2, "WEBGL_debug_renderer_info", true},
		{KindWebGL2, "MOZ_nothing", false},
	}
	for _, tt := range tests {
		_, gl := newTestContext(t, 1, 1, tt.kind)
		ext := gl.GetExtension(tt.name)
		if (ext != nil) != tt.ok {
			t.Errorf("%s GetExtension(%q) = %v, want supported %v", tt.kind, tt.name, ext, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if again := gl.GetExtension(tt.name); again != ext {
			t.Errorf("%s GetExtension(%q) returned a new object", tt.kind, tt.name)
		}
		if ext.Kind() != tt.name || ext.Name() != tt.name {
			t.Errorf("extension Kind() = %q, Name() = %q, want %q", ext.Kind(), ext.Name(), tt.name)
		}
		if !slices.Contains(gl.GetSupportedExtensions(), tt.name) {
			t.Errorf("GetSupportedExtensions() does not list %q", tt.name)
		}
	}
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name     string
		attrs    map[string]any
		wantKept bool
	}{
		{"default", nil, false},
		{"preserved", map[string]any{"preserveDrawingBuffer": true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := NewCanvas(2, 2)
			gl := canvas.GetContext(KindWebGL, tt.attrs)
			gl.ClearColor(1, 1, 1, 1)
			gl.Clear(glenum.COLOR_BUFFER_BIT)
			canvas.Present()
			kept := pixelAt(gl, 0, 0)[3] == 255
			if kept != tt.wantKept {
				t.Errorf("buffer kept after Present = %v, want %v", kept, tt.wantKept)
			}
		})
	}
}

func TestSetSize(t *testing.T) {
	canvas, gl := newTestContext(t, 2, 2, KindWebGL)
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)
	canvas.SetSize(5, 3)
	if w, h := canvas.Size(); w != 5 || h != 3 {
		t.Errorf("Size() = %d, %d, want 5, 3", w, h)
	}
	if b := canvas.Image().Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("Image().Bounds() = %v, want 5x3", b)
	}
	if got := pixelAt(gl, 0, 0); got != [4]byte{} {
		t.Errorf("pixel after resize = %v, want transparent", got)
	}
}

func TestObserverReportsCalls(t *testing.T) {
	log := &callLog{}
	canvas := NewCanvas(2, 2, WithObserver(log))
	gl := canvas.GetContext(KindWebGL2, nil)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)
	gl.GetError()

	want := []string{"getContext", "clearColor", "clear", "getError"}
	if got := log.methods(); !slices.Equal(got, want) {
		t.Fatalf("methods = %v, want %v", got, want)
	}

	first := log.calls[0]
	if first.target != canvas || first.ret != gl {
		t.Errorf("getContext target = %v, ret = %v, want the canvas and its context", first.target, first.ret)
	}
	if len(first.args) != 2 || first.args[0] != KindWebGL2 || first.args[1] != nil {
		t.Errorf("getContext args = %v, want [webgl2 <nil>]", first.args)
	}
	if log.calls[1].target != gl {
		t.Errorf("clearColor target = %v, want the context", log.calls[1].target)
	}
	if got := log.calls[3].ret; got != uint32(noError) {
		t.Errorf("getError ret = %v, want 0", got)
	}
}
