package softgl

import (
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/transfer"
)

// texFormat describes how an internal format is stored and which source
// format and type uploads to it must use.
type texFormat struct {
	format    gputypes.TextureFormat
	srcFormat uint32
	srcType   uint32
	texel     int // stored bytes per texel
}

var internalFormats = map[uint32]texFormat{
	glenum.RGBA:              {gputypes.TextureFormatRGBA8Unorm, glenum.RGBA, glenum.UNSIGNED_BYTE, 4},
	glenum.RGBA8:             {gputypes.TextureFormatRGBA8Unorm, glenum.RGBA, glenum.UNSIGNED_BYTE, 4},
	glenum.RGB:               {gputypes.TextureFormatRGBA8Unorm, glenum.RGB, glenum.UNSIGNED_BYTE, 4},
	glenum.RGB8:              {gputypes.TextureFormatRGBA8Unorm, glenum.RGB, glenum.UNSIGNED_BYTE, 4},
	glenum.SRGB8_ALPHA8:      {gputypes.TextureFormatRGBA8UnormSrgb, glenum.RGBA, glenum.UNSIGNED_BYTE, 4},
	glenum.LUMINANCE:         {gputypes.TextureFormatR8Unorm, glenum.LUMINANCE, glenum.UNSIGNED_BYTE, 1},
	glenum.R8:                {gputypes.TextureFormatR8Unorm, glenum.RED, glenum.UNSIGNED_BYTE, 1},
	glenum.RG8:               {gputypes.TextureFormatRG8Unorm, glenum.RG, glenum.UNSIGNED_BYTE, 2},
	glenum.R32F:              {gputypes.TextureFormatR32Float, glenum.RED, glenum.FLOAT, 4},
	glenum.RG32F:             {gputypes.TextureFormatRG32Float, glenum.RG, glenum.FLOAT, 8},
	glenum.RGBA32F:           {gputypes.TextureFormatRGBA32Float, glenum.RGBA, glenum.FLOAT, 16},
	glenum.RGBA16F:           {gputypes.TextureFormatRGBA16Float, glenum.RGBA, glenum.HALF_FLOAT, 8},
	glenum.DEPTH_COMPONENT16: {gputypes.TextureFormatDepth16Unorm, glenum.DEPTH_COMPONENT, glenum.UNSIGNED_SHORT, 2},
	glenum.DEPTH24_STENCIL8:  {gputypes.TextureFormatDepth24PlusStencil8, glenum.DEPTH_STENCIL, glenum.UNSIGNED_INT_24_8, 4},
}

// unsized reports whether internal is one of the WebGL 1 base formats,
// which take their storage from the upload type.
func unsized(internal uint32) bool {
	switch internal {
	case glenum.RGBA, glenum.RGB, glenum.LUMINANCE:
		return true
	}
	return false
}

// resolveFormat validates an upload's format and type against its
// internal format. It returns the GL error to raise on mismatch.
func resolveFormat(internal, format, typ uint32) (texFormat, uint32) {
	tf, ok := internalFormats[internal]
	if !ok {
		return texFormat{}, glenum.INVALID_ENUM
	}
	if internal == glenum.RGBA && format == glenum.RGBA && typ == glenum.FLOAT {
		return texFormat{gputypes.TextureFormatRGBA32Float, glenum.RGBA, glenum.FLOAT, 16}, noError
	}
	if format != tf.srcFormat || typ != tf.srcType {
		return texFormat{}, glenum.INVALID_OPERATION
	}
	return tf, noError
}

type mipLevel struct {
	size gputypes.Extent3D
	data []byte
}

// Texture is a texture object.
type Texture struct {
	target    uint32
	internal  uint32
	format    texFormat
	levels    []mipLevel
	params    map[uint32]int32
	immutable bool
	deleted   bool
}

// Kind returns the traced kind name.
func (t *Texture) Kind() string { return "WebGLTexture" }

// Format returns the storage format, or TextureFormatUndefined before the
// first upload.
func (t *Texture) Format() gputypes.TextureFormat { return t.format.format }

// Levels returns the number of allocated mip levels.
func (t *Texture) Levels() int { return len(t.levels) }

// Size returns the extent of a mip level.
func (t *Texture) Size(level int) gputypes.Extent3D {
	if level < 0 || level >= len(t.levels) {
		return gputypes.Extent3D{}
	}
	return t.levels[level].size
}

// Pixels returns the tightly packed texels of a mip level.
func (t *Texture) Pixels(level int) []byte {
	if level < 0 || level >= len(t.levels) {
		return nil
	}
	return t.levels[level].data
}

// Descriptor describes the texture in gputypes terms.
func (t *Texture) Descriptor() gputypes.TextureDescriptor {
	dim := gputypes.TextureDimension2D
	if t.target == glenum.TEXTURE_3D {
		dim = gputypes.TextureDimension3D
	}
	return gputypes.TextureDescriptor{
		Label:         t.Kind(),
		Size:          t.Size(0),
		MipLevelCount: uint32(len(t.levels)),
		SampleCount:   1,
		Dimension:     dim,
		Format:        t.format.format,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
}

// Image returns the first layer of a mip level as an image. Only 8-bit
// RGBA formats have an image form; others return nil.
func (t *Texture) Image(level int) *image.NRGBA {
	if level < 0 || level >= len(t.levels) {
		return nil
	}
	switch t.format.format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
	default:
		return nil
	}
	l := t.levels[level]
	w, h := int(l.size.Width), int(l.size.Height)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, l.data[:w*h*4])
	return img
}

func (t *Texture) setLevel(level int, size gputypes.Extent3D, data []byte) {
	for len(t.levels) <= level {
		t.levels = append(t.levels, mipLevel{})
	}
	t.levels[level] = mipLevel{size: size, data: data}
}

func textureTarget(target uint32) bool {
	switch target {
	case glenum.TEXTURE_2D, glenum.TEXTURE_3D, glenum.TEXTURE_2D_ARRAY:
		return true
	}
	return false
}

// CreateTexture creates a texture object.
func (c *Context) CreateTexture() *Texture {
	t := &Texture{params: make(map[uint32]int32)}
	c.report("createTexture", t)
	return t
}

// DeleteTexture deletes a texture and unbinds it from every unit.
func (c *Context) DeleteTexture(t *Texture) {
	if t != nil && !t.deleted {
		t.deleted = true
		t.levels = nil
		for k, bound := range c.textures {
			if bound == t {
				delete(c.textures, k)
			}
		}
	}
	c.report("deleteTexture", nil, t)
}

// IsTexture reports whether t is a live texture that has been bound.
func (c *Context) IsTexture(t *Texture) bool {
	ok := t != nil && !t.deleted && t.target != 0
	c.report("isTexture", ok, t)
	return ok
}

// ActiveTexture selects the texture unit BindTexture operates on.
func (c *Context) ActiveTexture(texture uint32) {
	if texture < glenum.TEXTURE0 || texture >= glenum.TEXTURE0+MaxTextureUnits {
		c.setError(glenum.INVALID_ENUM, "activeTexture")
	} else {
		c.activeUnit = texture - glenum.TEXTURE0
	}
	c.report("activeTexture", nil, texture)
}

// BindTexture binds t to target on the active unit. A texture keeps the
// target it was first bound to.
func (c *Context) BindTexture(target uint32, t *Texture) {
	c.bindTexture(target, t)
	c.report("bindTexture", nil, target, t)
}

func (c *Context) bindTexture(target uint32, t *Texture) {
	if !textureTarget(target) {
		c.setError(glenum.INVALID_ENUM, "bindTexture")
		return
	}
	key := textureBinding{c.activeUnit, target}
	if t == nil {
		delete(c.textures, key)
		return
	}
	if t.deleted || (t.target != 0 && t.target != target) {
		c.setError(glenum.INVALID_OPERATION, "bindTexture")
		return
	}
	t.target = target
	c.textures[key] = t
}

// boundTexture returns the texture bound to target on the active unit,
// raising the matching error when there is none.
func (c *Context) boundTexture(method string, target uint32, targets ...uint32) *Texture {
	valid := false
	for _, t := range targets {
		valid = valid || t == target
	}
	if !valid {
		c.setError(glenum.INVALID_ENUM, method)
		return nil
	}
	t := c.textures[textureBinding{c.activeUnit, target}]
	if t == nil {
		c.setError(glenum.INVALID_OPERATION, method)
	}
	return t
}

func textureParameter(pname uint32) bool {
	switch pname {
	case glenum.TEXTURE_MIN_FILTER, glenum.TEXTURE_MAG_FILTER,
		glenum.TEXTURE_WRAP_S, glenum.TEXTURE_WRAP_T, glenum.TEXTURE_WRAP_R:
		return true
	}
	return false
}

var textureDefaults = map[uint32]int32{
	glenum.TEXTURE_MIN_FILTER: glenum.NEAREST_MIPMAP_LINEAR,
	glenum.TEXTURE_MAG_FILTER: glenum.LINEAR,
	glenum.TEXTURE_WRAP_S:     glenum.REPEAT,
	glenum.TEXTURE_WRAP_T:     glenum.REPEAT,
	glenum.TEXTURE_WRAP_R:     glenum.REPEAT,
}

// TexParameteri sets a sampling parameter of the bound texture.
func (c *Context) TexParameteri(target, pname uint32, param int32) {
	if t := c.boundTexture("texParameteri", target, glenum.TEXTURE_2D, glenum.TEXTURE_3D, glenum.TEXTURE_2D_ARRAY); t != nil {
		if textureParameter(pname) {
			t.params[pname] = param
		} else {
			c.setError(glenum.INVALID_ENUM, "texParameteri")
		}
	}
	c.report("texParameteri", nil, target, pname, param)
}

// GetTexParameter returns a sampling parameter of the bound texture.
func (c *Context) GetTexParameter(target, pname uint32) any {
	var v any
	if t := c.boundTexture("getTexParameter", target, glenum.TEXTURE_2D, glenum.TEXTURE_3D, glenum.TEXTURE_2D_ARRAY); t != nil {
		if textureParameter(pname) {
			p, ok := t.params[pname]
			if !ok {
				p = textureDefaults[pname]
			}
			v = p
		} else {
			c.setError(glenum.INVALID_ENUM, "getTexParameter")
		}
	}
	c.report("getTexParameter", v, target, pname)
	return v
}

// TexImage2D specifies a 2D texture image. It takes either
//
//	width, height, border, format, type, pixels
//
// where pixels is a typed buffer or nil, or
//
//	format, type, source
//
// where source is an Image or Canvas.
func (c *Context) TexImage2D(target uint32, level, internalformat int32, args ...any) {
	c.texImage2D(target, level, internalformat, args)
	c.report("texImage2D", nil, append([]any{target, level, internalformat}, args...)...)
}

func (c *Context) texImage2D(target uint32, level, internalformat int32, args []any) {
	const method = "texImage2D"
	t := c.boundTexture(method, target, glenum.TEXTURE_2D)
	if t == nil {
		return
	}
	if t.immutable || level < 0 {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}

	var (
		w, h      int
		format    uint32
		typ       uint32
		data      []byte
		errorCode uint32
		tf        texFormat
	)
	switch len(args) {
	case 6:
		ints, ok := intArgs(args[:5])
		if !ok || ints[2] != 0 || ints[0] < 0 || ints[1] < 0 || ints[0] > MaxTextureSize || ints[1] > MaxTextureSize {
			c.setError(glenum.INVALID_VALUE, method)
			return
		}
		w, h, format, typ = ints[0], ints[1], uint32(ints[3]), uint32(ints[4])
		if tf, errorCode = resolveFormat(uint32(internalformat), format, typ); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
		if data, errorCode = c.unpackPixels(args[5], w, h, 1, format, typ, tf, true); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
	case 3:
		ints, ok := intArgs(args[:2])
		if !ok {
			c.setError(glenum.INVALID_VALUE, method)
			return
		}
		format, typ = uint32(ints[0]), uint32(ints[1])
		if tf, errorCode = resolveFormat(uint32(internalformat), format, typ); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
		if data, w, h, errorCode = c.sourcePixels(args[2], tf); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
	default:
		c.setError(glenum.INVALID_VALUE, method)
		return
	}

	t.internal = uint32(internalformat)
	t.format = tf
	t.setLevel(int(level), gputypes.NewExtent2D(uint32(w), uint32(h)), data)
}

// TexSubImage2D replaces a region of a 2D texture image. It takes either
//
//	width, height, format, type, pixels
//
// or
//
//	format, type, source
func (c *Context) TexSubImage2D(target uint32, level, xoffset, yoffset int32, args ...any) {
	c.texSubImage2D(target, level, xoffset, yoffset, args)
	c.report("texSubImage2D", nil, append([]any{target, level, xoffset, yoffset}, args...)...)
}

func (c *Context) texSubImage2D(target uint32, level, xoffset, yoffset int32, args []any) {
	const method = "texSubImage2D"
	t := c.boundTexture(method, target, glenum.TEXTURE_2D)
	if t == nil {
		return
	}
	if level < 0 || int(level) >= len(t.levels) {
		c.setError(glenum.INVALID_VALUE, method)
		return
	}

	var (
		w, h      int
		data      []byte
		errorCode uint32
	)
	switch len(args) {
	case 5:
		ints, ok := intArgs(args[:4])
		if !ok || ints[0] < 0 || ints[1] < 0 {
			c.setError(glenum.INVALID_VALUE, method)
			return
		}
		w, h = ints[0], ints[1]
		if !t.accepts(uint32(ints[2]), uint32(ints[3])) {
			c.setError(glenum.INVALID_OPERATION, method)
			return
		}
		if data, errorCode = c.unpackPixels(args[4], w, h, 1, uint32(ints[2]), uint32(ints[3]), t.format, false); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
	case 3:
		ints, ok := intArgs(args[:2])
		if !ok {
			c.setError(glenum.INVALID_VALUE, method)
			return
		}
		if !t.accepts(uint32(ints[0]), uint32(ints[1])) {
			c.setError(glenum.INVALID_OPERATION, method)
			return
		}
		if data, w, h, errorCode = c.sourcePixels(args[2], t.format); errorCode != noError {
			c.setError(errorCode, method)
			return
		}
	default:
		c.setError(glenum.INVALID_VALUE, method)
		return
	}

	if !t.writeRegion(int(level), int(xoffset), int(yoffset), 0, w, h, 1, data) {
		c.setError(glenum.INVALID_VALUE, method)
	}
}

// TexImage3D specifies a 3D or 2D-array texture image.
func (c *Context) TexImage3D(target uint32, level, internalformat, width, height, depth, border int32, format, typ uint32, pixels any) {
	c.texImage3D(target, level, internalformat, width, height, depth, border, format, typ, pixels)
	c.report("texImage3D", nil, target, level, internalformat, width, height, depth, border, format, typ, pixels)
}

func (c *Context) texImage3D(target uint32, level, internalformat, width, height, depth, border int32, format, typ uint32, pixels any) {
	const method = "texImage3D"
	t := c.boundTexture(method, target, glenum.TEXTURE_3D, glenum.TEXTURE_2D_ARRAY)
	if t == nil {
		return
	}
	if t.immutable {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	if level < 0 || border != 0 || width < 0 || height < 0 || depth < 0 ||
		width > MaxTextureSize || height > MaxTextureSize || depth > MaxTextureSize {
		c.setError(glenum.INVALID_VALUE, method)
		return
	}
	tf, errorCode := resolveFormat(uint32(internalformat), format, typ)
	if errorCode != noError {
		c.setError(errorCode, method)
		return
	}
	data, errorCode := c.unpackPixels(pixels, int(width), int(height), int(depth), format, typ, tf, true)
	if errorCode != noError {
		c.setError(errorCode, method)
		return
	}
	t.internal = uint32(internalformat)
	t.format = tf
	t.setLevel(int(level), gputypes.NewExtent3D(uint32(width), uint32(height), uint32(depth)), data)
}

// TexSubImage3D replaces a box of a 3D or 2D-array texture image.
func (c *Context) TexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, pixels any) {
	c.texSubImage3D(target, level, xoffset, yoffset, zoffset, width, height, depth, format, typ, pixels)
	c.report("texSubImage3D", nil, target, level, xoffset, yoffset, zoffset, width, height, depth, format, typ, pixels)
}

func (c *Context) texSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, pixels any) {
	const method = "texSubImage3D"
	t := c.boundTexture(method, target, glenum.TEXTURE_3D, glenum.TEXTURE_2D_ARRAY)
	if t == nil {
		return
	}
	if level < 0 || int(level) >= len(t.levels) || width < 0 || height < 0 || depth < 0 {
		c.setError(glenum.INVALID_VALUE, method)
		return
	}
	if !t.accepts(format, typ) {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	data, errorCode := c.unpackPixels(pixels, int(width), int(height), int(depth), format, typ, t.format, false)
	if errorCode != noError {
		c.setError(errorCode, method)
		return
	}
	if !t.writeRegion(int(level), int(xoffset), int(yoffset), int(zoffset), int(width), int(height), int(depth), data) {
		c.setError(glenum.INVALID_VALUE, method)
	}
}

// TexStorage2D allocates an immutable mip chain for the bound 2D texture.
func (c *Context) TexStorage2D(target uint32, levels int32, internalformat uint32, width, height int32) {
	c.texStorage2D(target, levels, internalformat, width, height)
	c.report("texStorage2D", nil, target, levels, internalformat, width, height)
}

func (c *Context) texStorage2D(target uint32, levels int32, internalformat uint32, width, height int32) {
	const method = "texStorage2D"
	t := c.boundTexture(method, target, glenum.TEXTURE_2D)
	if t == nil {
		return
	}
	if t.immutable {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	tf, ok := internalFormats[internalformat]
	if !ok || unsized(internalformat) {
		c.setError(glenum.INVALID_ENUM, method)
		return
	}
	if levels < 1 || width < 1 || height < 1 || width > MaxTextureSize || height > MaxTextureSize {
		c.setError(glenum.INVALID_VALUE, method)
		return
	}

	t.internal = internalformat
	t.format = tf
	t.immutable = true
	t.levels = nil
	w, h := int(width), int(height)
	for i := range int(levels) {
		t.setLevel(i, gputypes.NewExtent2D(uint32(w), uint32(h)), make([]byte, w*h*tf.texel))
		w, h = max(w/2, 1), max(h/2, 1)
	}
}

// GenerateMipmap fills the mip chain of the bound 2D texture from level 0
// with bilinear downsampling. Only 8-bit RGBA textures are supported.
func (c *Context) GenerateMipmap(target uint32) {
	c.generateMipmap(target)
	c.report("generateMipmap", nil, target)
}

func (c *Context) generateMipmap(target uint32) {
	const method = "generateMipmap"
	t := c.boundTexture(method, target, glenum.TEXTURE_2D)
	if t == nil {
		return
	}
	prev := t.Image(0)
	if prev == nil {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}

	w, h := prev.Rect.Dx(), prev.Rect.Dy()
	for level := 1; w > 1 || h > 1; level++ {
		if t.immutable && level >= len(t.levels) {
			break
		}
		w, h = max(w/2, 1), max(h/2, 1)
		next := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(next, next.Rect, prev, prev.Rect, xdraw.Src, nil)
		t.setLevel(level, gputypes.NewExtent2D(uint32(w), uint32(h)), next.Pix)
		prev = next
	}
}

// accepts reports whether a sub-image upload's format and type match the
// texture's storage.
func (t *Texture) accepts(format, typ uint32) bool {
	return len(t.levels) > 0 && format == t.format.srcFormat && typ == t.format.srcType
}

// writeRegion copies packed texels into a box of a mip level. It reports
// false if the box does not fit.
func (t *Texture) writeRegion(level, x, y, z, w, h, d int, data []byte) bool {
	l := t.levels[level]
	lw, lh, ld := int(l.size.Width), int(l.size.Height), int(l.size.DepthOrArrayLayers)
	if x < 0 || y < 0 || z < 0 || x+w > lw || y+h > lh || z+d > ld {
		return false
	}
	texel := t.format.texel
	for k := range d {
		for j := range h {
			src := data[((k*h)+j)*w*texel:][:w*texel]
			off := (((z+k)*lh)+y+j)*lw*texel + x*texel
			copy(l.data[off:], src)
		}
	}
	return true
}

// unpackPixels reads a width×height×depth upload from a typed buffer
// under the context's unpack state and returns packed texels. A nil
// buffer yields zeroed texels when allowNil is set. It returns the GL
// error to raise on failure.
func (c *Context) unpackPixels(pixels any, w, h, d int, format, typ uint32, tf texFormat, allowNil bool) ([]byte, uint32) {
	out := make([]byte, w*h*d*tf.texel)
	if pixels == nil {
		if allowNil {
			return out, noError
		}
		return nil, glenum.INVALID_VALUE
	}
	if _, ok := intArg(pixels); ok {
		// Pixel unpack buffers are not supported.
		return nil, glenum.INVALID_OPERATION
	}
	src, err := transfer.Bytes(pixels)
	if err != nil {
		return nil, glenum.INVALID_VALUE
	}

	st := *c.unpack
	if d == 1 {
		st.ImageHeight, st.SkipImages = 0, 0
	}
	layout, err := transfer.LayoutOf(&st, w, h, format, typ)
	if err != nil {
		return nil, glenum.INVALID_ENUM
	}

	bpg := layout.BytesPerGroup
	for z := range d {
		for y := range h {
			off := layout.Offset(y, z)
			if off+w*bpg > len(src) {
				return nil, glenum.INVALID_OPERATION
			}
			dy := y
			if c.flipY {
				dy = h - 1 - y
			}
			row := out[((z*h)+dy)*w*tf.texel:]
			for x := range w {
				storeTexel(row[x*tf.texel:(x+1)*tf.texel], src[off+x*bpg:off+(x+1)*bpg])
			}
		}
	}
	return out, noError
}

// storeTexel copies one source group into storage, filling channels the
// source lacks (alpha of RGB uploads) with 0xFF.
func storeTexel(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0xFF
	}
}

// sourcePixels draws an image source into 8-bit RGBA texels. Straight
// alpha is kept unless UNPACK_PREMULTIPLY_ALPHA_WEBGL is set.
func (c *Context) sourcePixels(source any, tf texFormat) (data []byte, w, h int, code uint32) {
	src, ok := source.(imageSource)
	if !ok || src == nil {
		return nil, 0, 0, glenum.INVALID_VALUE
	}
	if tf.texel != 4 || tf.srcType != glenum.UNSIGNED_BYTE {
		return nil, 0, 0, glenum.INVALID_OPERATION
	}
	img := src.Image()
	if img == nil {
		return nil, 0, 0, glenum.INVALID_VALUE
	}

	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if w > MaxTextureSize || h > MaxTextureSize {
		return nil, 0, 0, glenum.INVALID_VALUE
	}
	var pix []byte
	if c.premultiply {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
		pix = dst.Pix
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
		pix = dst.Pix
	}

	// Row 0 of the image lands in texture row 0 unless flipped.
	data = make([]byte, len(pix))
	stride := w * 4
	for y := range h {
		dy := y
		if c.flipY {
			dy = h - 1 - y
		}
		copy(data[dy*stride:(dy+1)*stride], pix[y*stride:(y+1)*stride])
	}
	if tf.srcFormat == glenum.RGB {
		for i := 3; i < len(data); i += 4 {
			data[i] = 0xFF
		}
	}
	return data, w, h, noError
}

func intArgs(args []any) ([]int, bool) {
	out := make([]int, len(args))
	for i, a := range args {
		v, ok := intArg(a)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
