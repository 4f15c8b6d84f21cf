package softgl

import (
	"image"
	"maps"
	"reflect"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/intercept"
	"github.com/gogpu/glrr/transfer"
)

// Device limits reported through GetParameter.
const (
	MaxTextureSize   = 4096
	MaxVertexAttribs = 16
	MaxTextureUnits  = 16
)

// noError is the value of GetError when no error is latched.
const noError = 0

// Context is a rendering context bound to one canvas.
//
// Context is not safe for concurrent use.
type Context struct {
	canvas  *Canvas
	version int
	attrs   map[string]any
	obs     intercept.Observer
	err     uint32

	clearColor gputypes.Color
	viewport   [4]int32
	scissor    [4]int32
	enabled    map[uint32]bool
	blendSrc   uint32
	blendDst   uint32

	unpack        *transfer.State
	flipY         bool
	premultiply   bool
	packAlignment int32

	arrayBuffer   *Buffer
	elementBuffer *Buffer
	activeUnit    uint32
	textures      map[textureBinding]*Texture
	program       *Program
	attribs       [MaxVertexAttribs]vertexAttrib
	extensions    map[string]*Extension
}

type textureBinding struct {
	unit   uint32
	target uint32
}

func newContext(c *Canvas, version int, attrs map[string]any) *Context {
	w, h := int32(c.width), int32(c.height)
	return &Context{
		canvas:        c,
		version:       version,
		attrs:         attrs,
		obs:           c.obs,
		viewport:      [4]int32{0, 0, w, h},
		scissor:       [4]int32{0, 0, w, h},
		enabled:       map[uint32]bool{glenum.DITHER: true},
		blendSrc:      1, // ONE
		blendDst:      0, // ZERO
		unpack:        transfer.NewState(),
		packAlignment: transfer.DefaultAlignment,
		textures:      make(map[textureBinding]*Texture),
		extensions:    make(map[string]*Extension),
	}
}

// Kind returns the traced kind name.
func (c *Context) Kind() string {
	if c.version == 2 {
		return "WebGL2RenderingContext"
	}
	return "WebGLRenderingContext"
}

// Canvas returns the canvas the context draws to.
func (c *Context) Canvas() *Canvas {
	return c.canvas
}

// report hands a finished call to the observer. GL methods return no
// error, so an observer failure is only logged here; a recording.Session
// stops and keeps the error for its Err method.
func (c *Context) report(method string, ret any, args ...any) {
	if c.obs == nil {
		return
	}
	if err := c.obs.OnCall(c, method, args, ret); err != nil {
		glrr.Logger().Error("softgl: observer failed", "method", method, "err", err)
	}
}

// setError latches code unless an earlier error is still pending.
func (c *Context) setError(code uint32, method string) {
	glrr.Logger().Debug("softgl: call failed", "method", method, "error", glenum.Format(code))
	if c.err == noError {
		c.err = code
	}
}

// GetError returns and clears the latched error.
func (c *Context) GetError() uint32 {
	code := c.err
	c.err = noError
	c.report("getError", code)
	return code
}

// GetContextAttributes returns the attributes the context was created with.
func (c *Context) GetContextAttributes() map[string]any {
	attrs := maps.Clone(c.attrs)
	c.report("getContextAttributes", attrs)
	return attrs
}

// IsContextLost always reports false; a software context is never lost.
func (c *Context) IsContextLost() bool {
	c.report("isContextLost", false)
	return false
}

// Flush is a no-op; all work completes synchronously.
func (c *Context) Flush() {
	c.report("flush", nil)
}

// Finish is a no-op; all work completes synchronously.
func (c *Context) Finish() {
	c.report("finish", nil)
}

// GetParameter returns the value of a context parameter.
func (c *Context) GetParameter(pname uint32) any {
	v, ok := c.parameter(pname)
	if !ok {
		c.setError(glenum.INVALID_ENUM, "getParameter")
	}
	c.report("getParameter", v, pname)
	return v
}

func (c *Context) parameter(pname uint32) (any, bool) {
	switch pname {
	case glenum.VENDOR:
		return "gogpu", true
	case glenum.RENDERER:
		return "softgl", true
	case glenum.VERSION:
		if c.version == 2 {
			return "WebGL 2.0 (softgl " + glrr.Version + ")", true
		}
		return "WebGL 1.0 (softgl " + glrr.Version + ")", true
	case glenum.SHADING_LANGUAGE_VERSION:
		return "WGSL (naga)", true
	case glenum.VIEWPORT:
		return slices.Clone(c.viewport[:]), true
	case glenum.SCISSOR_BOX:
		return slices.Clone(c.scissor[:]), true
	case glenum.COLOR_CLEAR_VALUE:
		cc := c.clearColor
		return []float32{float32(cc.R), float32(cc.G), float32(cc.B), float32(cc.A)}, true
	case glenum.MAX_TEXTURE_SIZE:
		return int32(MaxTextureSize), true
	case glenum.MAX_VIEWPORT_DIMS:
		return []int32{MaxTextureSize, MaxTextureSize}, true
	case glenum.MAX_VERTEX_ATTRIBS:
		return int32(MaxVertexAttribs), true
	case glenum.MAX_TEXTURE_IMAGE_UNITS:
		return int32(MaxTextureUnits), true
	case glenum.CURRENT_PROGRAM:
		return c.program, true
	case glenum.ARRAY_BUFFER_BINDING:
		return c.arrayBuffer, true
	case glenum.ELEMENT_ARRAY_BUFFER_BINDING:
		return c.elementBuffer, true
	case glenum.ACTIVE_TEXTURE:
		return glenum.TEXTURE0 + c.activeUnit, true
	case glenum.TEXTURE_BINDING_2D:
		return c.textures[textureBinding{c.activeUnit, glenum.TEXTURE_2D}], true
	case glenum.TEXTURE_BINDING_3D:
		return c.textures[textureBinding{c.activeUnit, glenum.TEXTURE_3D}], true
	case glenum.BLEND_SRC_RGB, glenum.BLEND_SRC_ALPHA:
		return c.blendSrc, true
	case glenum.BLEND_DST_RGB, glenum.BLEND_DST_ALPHA:
		return c.blendDst, true
	case glenum.UNPACK_ALIGNMENT:
		return int32(c.unpack.Alignment), true
	case glenum.PACK_ALIGNMENT:
		return c.packAlignment, true
	case glenum.UNPACK_FLIP_Y_WEBGL:
		return c.flipY, true
	case glenum.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		return c.premultiply, true
	}
	if isCapability(pname) {
		return c.enabled[pname], true
	}
	return nil, false
}

// GetSupportedExtensions lists the extensions GetExtension can enable.
func (c *Context) GetSupportedExtensions() []string {
	names := slices.Clone(c.supportedExtensions())
	c.report("getSupportedExtensions", names)
	return names
}

func (c *Context) supportedExtensions() []string {
	if c.version == 2 {
		return []string{"EXT_color_buffer_float", "OES_texture_float_linear", "WEBGL_debug_renderer_info"}
	}
	return []string{"OES_element_index_uint", "OES_texture_float", "WEBGL_debug_renderer_info"}
}

// GetExtension enables an extension. It returns the same object for every
// call with the same name, and nil for unsupported names.
func (c *Context) GetExtension(name string) *Extension {
	var ext *Extension
	if slices.Contains(c.supportedExtensions(), name) {
		ext = c.extensions[name]
		if ext == nil {
			ext = &Extension{name: name}
			c.extensions[name] = ext
		}
	}
	c.report("getExtension", ext, name)
	return ext
}

// Extension is an enabled extension object.
type Extension struct {
	name string
}

// Kind returns the extension name, which is also its traced kind.
func (e *Extension) Kind() string { return e.name }

// Name returns the extension name.
func (e *Extension) Name() string { return e.name }

// ClearColor sets the color Clear fills with. Components are clamped to
// [0, 1].
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = gputypes.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
	c.report("clearColor", nil, r, g, b, a)
}

// Clear fills the color buffer, limited to the scissor box when the
// scissor test is enabled. Depth and stencil bits are accepted and
// ignored; there are no depth or stencil buffers.
func (c *Context) Clear(mask uint32) {
	const all = glenum.COLOR_BUFFER_BIT | glenum.DEPTH_BUFFER_BIT | glenum.STENCIL_BUFFER_BIT
	switch {
	case mask&^all != 0:
		c.setError(glenum.INVALID_VALUE, "clear")
	case mask&glenum.COLOR_BUFFER_BIT != 0:
		c.fill(c.clipRect(), toNRGBA(c.clearColor))
	}
	c.report("clear", nil, mask)
}

// Viewport sets the mapping from clip space to the drawing buffer.
func (c *Context) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.setError(glenum.INVALID_VALUE, "viewport")
	} else {
		c.viewport = [4]int32{x, y, min(width, MaxTextureSize), min(height, MaxTextureSize)}
	}
	c.report("viewport", nil, x, y, width, height)
}

// Scissor sets the scissor box.
func (c *Context) Scissor(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.setError(glenum.INVALID_VALUE, "scissor")
	} else {
		c.scissor = [4]int32{x, y, width, height}
	}
	c.report("scissor", nil, x, y, width, height)
}

func isCapability(cap uint32) bool {
	switch cap {
	case glenum.BLEND, glenum.CULL_FACE, glenum.DEPTH_TEST, glenum.DITHER,
		glenum.POLYGON_OFFSET_FILL, glenum.SAMPLE_ALPHA_TO_COVERAGE,
		glenum.SAMPLE_COVERAGE, glenum.SCISSOR_TEST, glenum.STENCIL_TEST:
		return true
	}
	return false
}

// Enable turns a capability on.
func (c *Context) Enable(cap uint32) {
	c.setCapability("enable", cap, true)
	c.report("enable", nil, cap)
}

// Disable turns a capability off.
func (c *Context) Disable(cap uint32) {
	c.setCapability("disable", cap, false)
	c.report("disable", nil, cap)
}

func (c *Context) setCapability(method string, cap uint32, on bool) {
	if !isCapability(cap) {
		c.setError(glenum.INVALID_ENUM, method)
		return
	}
	c.enabled[cap] = on
}

// IsEnabled reports whether a capability is on.
func (c *Context) IsEnabled(cap uint32) bool {
	if !isCapability(cap) {
		c.setError(glenum.INVALID_ENUM, "isEnabled")
	}
	on := c.enabled[cap]
	c.report("isEnabled", on, cap)
	return on
}

// BlendFunc sets the source and destination blend factors.
func (c *Context) BlendFunc(sfactor, dfactor uint32) {
	_, ok1 := blendFactor(sfactor)
	_, ok2 := blendFactor(dfactor)
	if ok1 && ok2 {
		c.blendSrc, c.blendDst = sfactor, dfactor
	} else {
		c.setError(glenum.INVALID_ENUM, "blendFunc")
	}
	c.report("blendFunc", nil, sfactor, dfactor)
}

// PixelStorei sets a pixel storage parameter.
func (c *Context) PixelStorei(pname uint32, param int32) {
	c.pixelStore(pname, param)
	c.report("pixelStorei", nil, pname, param)
}

func (c *Context) pixelStore(pname uint32, param int32) {
	switch pname {
	case glenum.UNPACK_ALIGNMENT, glenum.PACK_ALIGNMENT:
		switch param {
		case 1, 2, 4, 8:
		default:
			c.setError(glenum.INVALID_VALUE, "pixelStorei")
			return
		}
	}
	switch pname {
	case glenum.PACK_ALIGNMENT:
		c.packAlignment = param
		return
	case glenum.UNPACK_FLIP_Y_WEBGL:
		c.flipY = param != 0
		return
	case glenum.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		c.premultiply = param != 0
		return
	case glenum.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		return
	}
	if param < 0 {
		c.setError(glenum.INVALID_VALUE, "pixelStorei")
		return
	}
	if !c.unpack.Apply(pname, int(param)) {
		c.setError(glenum.INVALID_ENUM, "pixelStorei")
	}
}

// ReadPixels copies a rectangle of the drawing buffer into pixels, bottom
// row first. Only RGBA / UNSIGNED_BYTE into a []byte is supported. Pixels
// outside the drawing buffer read as zero.
func (c *Context) ReadPixels(x, y, width, height int32, format, typ uint32, pixels any) {
	c.readPixels(x, y, width, height, format, typ, pixels)
	c.report("readPixels", nil, x, y, width, height, format, typ, pixels)
}

func (c *Context) readPixels(x, y, width, height int32, format, typ uint32, pixels any) {
	if width < 0 || height < 0 {
		c.setError(glenum.INVALID_VALUE, "readPixels")
		return
	}
	if format != glenum.RGBA || typ != glenum.UNSIGNED_BYTE {
		c.setError(glenum.INVALID_OPERATION, "readPixels")
		return
	}
	dst, ok := pixels.([]byte)
	if !ok {
		c.setError(glenum.INVALID_OPERATION, "readPixels")
		return
	}

	stride := align(int(width)*4, int(c.packAlignment))
	if height > 0 && len(dst) < stride*int(height-1)+int(width)*4 {
		c.setError(glenum.INVALID_OPERATION, "readPixels")
		return
	}

	buf := c.canvas.buf
	for row := range int(height) {
		line := dst[row*stride : row*stride+int(width)*4]
		clear(line)
		py := int(y) + row
		if py < 0 || py >= c.canvas.height {
			continue
		}
		iy := c.canvas.height - 1 - py
		for col := range int(width) {
			px := int(x) + col
			if px < 0 || px >= c.canvas.width {
				continue
			}
			copy(line[col*4:col*4+4], buf.Pix[buf.PixOffset(px, iy):])
		}
	}
}

// clipRect returns the writable area in image coordinates.
func (c *Context) clipRect() image.Rectangle {
	r := c.canvas.buf.Rect
	if c.enabled[glenum.SCISSOR_TEST] {
		r = r.Intersect(c.glRect(c.scissor))
	}
	return r
}

// glRect converts a bottom-left origin box to image coordinates.
func (c *Context) glRect(box [4]int32) image.Rectangle {
	x, y, w, h := int(box[0]), int(box[1]), int(box[2]), int(box[3])
	top := c.canvas.height - (y + h)
	return image.Rect(x, top, x+w, top+h)
}

func (c *Context) fill(r image.Rectangle, px [4]uint8) {
	buf := c.canvas.buf
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			copy(buf.Pix[buf.PixOffset(x, y):], px[:])
		}
	}
}

func clamp01(v float32) float64 {
	return float64(min(max(v, 0), 1))
}

func toNRGBA(col gputypes.Color) [4]uint8 {
	q := func(v float64) uint8 { return uint8(min(max(v, 0), 1)*255 + 0.5) }
	return [4]uint8{q(col.R), q(col.G), q(col.B), q(col.A)}
}

func align(n, a int) int {
	if a <= 1 {
		return n
	}
	return (n + a - 1) / a * a
}

// intArg converts an integer-like argument of a variadic call.
func intArg(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == float64(int(f)) {
			return int(f), true
		}
	}
	return 0, false
}
