package softgl

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glrr/glenum"
)

// vertexAttrib is the array state of one vertex attribute location.
type vertexAttrib struct {
	enabled bool
	buffer  *Buffer
	format  gputypes.VertexFormat
	stride  int
	offset  int
}

// vertexFormat maps a vertexAttribPointer layout to a vertex format.
func vertexFormat(size int32, typ uint32, normalized bool) (gputypes.VertexFormat, bool) {
	switch typ {
	case glenum.FLOAT:
		switch size {
		case 1:
			return gputypes.VertexFormatFloat32, true
		case 2:
			return gputypes.VertexFormatFloat32x2, true
		case 3:
			return gputypes.VertexFormatFloat32x3, true
		case 4:
			return gputypes.VertexFormatFloat32x4, true
		}
	case glenum.UNSIGNED_BYTE:
		switch {
		case size == 2 && normalized:
			return gputypes.VertexFormatUnorm8x2, true
		case size == 4 && normalized:
			return gputypes.VertexFormatUnorm8x4, true
		case size == 2:
			return gputypes.VertexFormatUint8x2, true
		case size == 4:
			return gputypes.VertexFormatUint8x4, true
		}
	case glenum.UNSIGNED_SHORT:
		switch {
		case size == 2 && normalized:
			return gputypes.VertexFormatUnorm16x2, true
		case size == 4 && normalized:
			return gputypes.VertexFormatUnorm16x4, true
		case size == 2:
			return gputypes.VertexFormatUint16x2, true
		case size == 4:
			return gputypes.VertexFormatUint16x4, true
		}
	}
	return gputypes.VertexFormatUndefined, false
}

// EnableVertexAttribArray makes draws read attribute index from its array.
func (c *Context) EnableVertexAttribArray(index uint32) {
	if index >= MaxVertexAttribs {
		c.setError(glenum.INVALID_VALUE, "enableVertexAttribArray")
	} else {
		c.attribs[index].enabled = true
	}
	c.report("enableVertexAttribArray", nil, index)
}

// DisableVertexAttribArray stops draws from reading attribute index.
func (c *Context) DisableVertexAttribArray(index uint32) {
	if index >= MaxVertexAttribs {
		c.setError(glenum.INVALID_VALUE, "disableVertexAttribArray")
	} else {
		c.attribs[index].enabled = false
	}
	c.report("disableVertexAttribArray", nil, index)
}

// VertexAttribPointer sources attribute index from the bound ARRAY_BUFFER.
// Supported layouts are FLOAT with 1 to 4 components and UNSIGNED_BYTE or
// UNSIGNED_SHORT with 2 or 4. A zero stride means tightly packed.
func (c *Context) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride, offset int32) {
	c.vertexAttribPointer(index, size, typ, normalized, stride, offset)
	c.report("vertexAttribPointer", nil, index, size, typ, normalized, stride, offset)
}

func (c *Context) vertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride, offset int32) {
	const method = "vertexAttribPointer"
	if index >= MaxVertexAttribs || size < 1 || size > 4 || stride < 0 || stride > 255 || offset < 0 {
		c.setError(glenum.INVALID_VALUE, method)
		return
	}
	format, ok := vertexFormat(size, typ, normalized)
	if !ok {
		c.setError(glenum.INVALID_ENUM, method)
		return
	}
	if c.arrayBuffer == nil {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	if stride == 0 {
		stride = int32(format.Size())
	}
	a := &c.attribs[index]
	a.buffer = c.arrayBuffer
	a.format = format
	a.stride = int(stride)
	a.offset = int(offset)
}

// fetch reads vertex i of an attribute array. Missing components default
// to (0, 0, 0, 1).
func (a *vertexAttrib) fetch(i int) ([4]float64, bool) {
	out := [4]float64{0, 0, 0, 1}
	if a.buffer == nil {
		return out, false
	}
	base := a.offset + i*a.stride
	end := base + int(a.format.Size())
	if i < 0 || end > len(a.buffer.data) {
		return out, false
	}
	src := a.buffer.data[base:end]
	le := binary.LittleEndian

	switch a.format {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2,
		gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4:
		for k := 0; k*4 < len(src); k++ {
			out[k] = float64(math.Float32frombits(le.Uint32(src[k*4:])))
		}
	case gputypes.VertexFormatUnorm8x2, gputypes.VertexFormatUnorm8x4:
		for k, b := range src {
			out[k] = float64(b) / 0xFF
		}
	case gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint8x4:
		for k, b := range src {
			out[k] = float64(b)
		}
	case gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatUnorm16x4:
		for k := 0; k*2 < len(src); k++ {
			out[k] = float64(le.Uint16(src[k*2:])) / 0xFFFF
		}
	case gputypes.VertexFormatUint16x2, gputypes.VertexFormatUint16x4:
		for k := 0; k*2 < len(src); k++ {
			out[k] = float64(le.Uint16(src[k*2:]))
		}
	default:
		return out, false
	}
	return out, true
}

func drawMode(mode uint32) bool {
	switch mode {
	case glenum.POINTS, glenum.LINES, glenum.LINE_LOOP, glenum.LINE_STRIP,
		glenum.TRIANGLES, glenum.TRIANGLE_STRIP, glenum.TRIANGLE_FAN:
		return true
	}
	return false
}

// DrawArrays draws count vertices starting at first. Only triangle modes
// produce pixels; point and line modes are validated and skipped.
func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.drawArrays(mode, first, count)
	c.report("drawArrays", nil, mode, first, count)
}

func (c *Context) drawArrays(mode uint32, first, count int32) {
	const method = "drawArrays"
	switch {
	case !drawMode(mode):
		c.setError(glenum.INVALID_ENUM, method)
		return
	case first < 0 || count < 0:
		c.setError(glenum.INVALID_VALUE, method)
		return
	case c.program == nil:
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = int(first) + i
	}
	c.draw(method, mode, indices)
}

// DrawElements draws count vertices whose indices are read from the bound
// ELEMENT_ARRAY_BUFFER at byte offset.
func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int32) {
	c.drawElements(mode, count, typ, offset)
	c.report("drawElements", nil, mode, count, typ, offset)
}

func (c *Context) drawElements(mode uint32, count int32, typ uint32, offset int32) {
	const method = "drawElements"
	var size int
	switch typ {
	case glenum.UNSIGNED_BYTE:
		size = 1
	case glenum.UNSIGNED_SHORT:
		size = 2
	case glenum.UNSIGNED_INT:
		size = 4
	}
	switch {
	case !drawMode(mode) || size == 0:
		c.setError(glenum.INVALID_ENUM, method)
		return
	case count < 0 || offset < 0:
		c.setError(glenum.INVALID_VALUE, method)
		return
	case c.program == nil || c.elementBuffer == nil || int(offset)%size != 0:
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}

	data := c.elementBuffer.data
	if int(offset)+int(count)*size > len(data) {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	indices := make([]int, count)
	for i := range indices {
		at := data[int(offset)+i*size:]
		switch size {
		case 1:
			indices[i] = int(at[0])
		case 2:
			indices[i] = int(binary.LittleEndian.Uint16(at))
		case 4:
			indices[i] = int(binary.LittleEndian.Uint32(at))
		}
	}
	c.draw(method, mode, indices)
}

type rasterVertex struct {
	x, y float64 // image coordinates
	col  [4]float64
}

// draw fetches every referenced vertex, then rasterizes the triangles the
// mode assembles from them. A fetch outside an attribute's buffer fails
// the whole draw.
func (c *Context) draw(method string, mode uint32, indices []int) {
	p := c.program
	posLoc := p.attributeLocation("position", 0)
	if posLoc < 0 || posLoc >= MaxVertexAttribs || !c.attribs[posLoc].enabled {
		return
	}
	colorLoc := p.attributeLocation("color", -1)
	useColorAttr := colorLoc >= 0 && colorLoc < MaxVertexAttribs && c.attribs[colorLoc].enabled
	flat := [4]float64{1, 1, 1, 1}
	if vals, ok := p.values["color"]; ok && len(vals) >= 3 {
		for k, v := range vals {
			flat[k] = float64(v)
		}
	}

	verts := make([]rasterVertex, len(indices))
	for i, idx := range indices {
		pos, ok := c.attribs[posLoc].fetch(idx)
		if !ok {
			c.setError(glenum.INVALID_OPERATION, method)
			return
		}
		v := c.toWindow(pos)
		v.col = flat
		if useColorAttr {
			col, ok := c.attribs[colorLoc].fetch(idx)
			if !ok {
				c.setError(glenum.INVALID_OPERATION, method)
				return
			}
			v.col = col
		}
		verts[i] = v
	}

	clip := c.clipRect()
	switch mode {
	case glenum.TRIANGLES:
		for i := 0; i+2 < len(verts); i += 3 {
			c.triangle(verts[i], verts[i+1], verts[i+2], clip)
		}
	case glenum.TRIANGLE_STRIP:
		for i := 0; i+2 < len(verts); i++ {
			c.triangle(verts[i], verts[i+1], verts[i+2], clip)
		}
	case glenum.TRIANGLE_FAN:
		for i := 1; i+1 < len(verts); i++ {
			c.triangle(verts[0], verts[i], verts[i+1], clip)
		}
	}
}

// attributeLocation returns the location of the named attribute, or of
// the attribute at fallback, or -1.
func (p *Program) attributeLocation(name string, fallback int32) int32 {
	for _, a := range p.attribs {
		if a.name == name {
			return a.location
		}
	}
	for _, a := range p.attribs {
		if a.location == fallback {
			return a.location
		}
	}
	return -1
}

// toWindow maps a clip-space position through the viewport to image
// coordinates.
func (c *Context) toWindow(pos [4]float64) rasterVertex {
	w := pos[3]
	if w == 0 {
		w = 1
	}
	nx, ny := pos[0]/w, pos[1]/w
	vx, vy := float64(c.viewport[0]), float64(c.viewport[1])
	vw, vh := float64(c.viewport[2]), float64(c.viewport[3])
	wx := vx + (nx+1)*vw/2
	wy := vy + (ny+1)*vh/2
	return rasterVertex{x: wx, y: float64(c.canvas.height) - wy}
}

func edge(a, b rasterVertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// triangle fills the pixels whose centers lie inside v0 v1 v2, with
// barycentric color interpolation.
func (c *Context) triangle(v0, v1, v2 rasterVertex, r image.Rectangle) {
	area := edge(v0, v1, v2.x, v2.y)
	if area == 0 || r.Empty() {
		return
	}
	minX := max(int(math.Floor(min(v0.x, v1.x, v2.x))), r.Min.X)
	maxX := min(int(math.Ceil(max(v0.x, v1.x, v2.x))), r.Max.X-1)
	minY := max(int(math.Floor(min(v0.y, v1.y, v2.y))), r.Min.Y)
	maxY := min(int(math.Ceil(max(v0.y, v1.y, v2.y))), r.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1, v2, px, py) / area
			w1 := edge(v2, v0, px, py) / area
			w2 := edge(v0, v1, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			var col [4]float64
			for k := range col {
				col[k] = w0*v0.col[k] + w1*v1.col[k] + w2*v2.col[k]
			}
			c.plot(x, y, col)
		}
	}
}

// plot writes one fragment, blending with the drawing buffer when BLEND
// is enabled.
func (c *Context) plot(x, y int, src [4]float64) {
	buf := c.canvas.buf
	off := buf.PixOffset(x, y)
	if c.enabled[glenum.BLEND] {
		var dst [4]float64
		for k := range dst {
			dst[k] = float64(buf.Pix[off+k]) / 0xFF
		}
		sf, _ := blendFactor(c.blendSrc)
		df, _ := blendFactor(c.blendDst)
		sw, dw := weight(sf, src, dst), weight(df, src, dst)
		for k := range src {
			src[k] = src[k]*sw[k] + dst[k]*dw[k]
		}
	}
	px := toNRGBA(gputypes.Color{R: src[0], G: src[1], B: src[2], A: src[3]})
	copy(buf.Pix[off:off+4], px[:])
}

// blendFactor maps a GL blend factor to its gputypes counterpart.
func blendFactor(f uint32) (gputypes.BlendFactor, bool) {
	switch f {
	case 0:
		return gputypes.BlendFactorZero, true
	case 1:
		return gputypes.BlendFactorOne, true
	case glenum.SRC_COLOR:
		return gputypes.BlendFactorSrc, true
	case glenum.ONE_MINUS_SRC_COLOR:
		return gputypes.BlendFactorOneMinusSrc, true
	case glenum.SRC_ALPHA:
		return gputypes.BlendFactorSrcAlpha, true
	case glenum.ONE_MINUS_SRC_ALPHA:
		return gputypes.BlendFactorOneMinusSrcAlpha, true
	case glenum.DST_COLOR:
		return gputypes.BlendFactorDst, true
	case glenum.ONE_MINUS_DST_COLOR:
		return gputypes.BlendFactorOneMinusDst, true
	case glenum.DST_ALPHA:
		return gputypes.BlendFactorDstAlpha, true
	case glenum.ONE_MINUS_DST_ALPHA:
		return gputypes.BlendFactorOneMinusDstAlpha, true
	}
	return gputypes.BlendFactorUndefined, false
}

// weight returns the per-channel multiplier of a blend factor.
func weight(f gputypes.BlendFactor, src, dst [4]float64) [4]float64 {
	splat := func(v float64) [4]float64 { return [4]float64{v, v, v, v} }
	switch f {
	case gputypes.BlendFactorOne:
		return splat(1)
	case gputypes.BlendFactorSrc:
		return src
	case gputypes.BlendFactorOneMinusSrc:
		return [4]float64{1 - src[0], 1 - src[1], 1 - src[2], 1 - src[3]}
	case gputypes.BlendFactorSrcAlpha:
		return splat(src[3])
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return splat(1 - src[3])
	case gputypes.BlendFactorDst:
		return dst
	case gputypes.BlendFactorOneMinusDst:
		return [4]float64{1 - dst[0], 1 - dst[1], 1 - dst[2], 1 - dst[3]}
	case gputypes.BlendFactorDstAlpha:
		return splat(dst[3])
	case gputypes.BlendFactorOneMinusDstAlpha:
		return splat(1 - dst[3])
	}
	return splat(0)
}
