package softgl

import (
	"image"
	"maps"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/intercept"
)

// Context kinds accepted by GetContext.
const (
	KindWebGL             = "webgl"
	KindExperimentalWebGL = "experimental-webgl"
	KindWebGL2            = "webgl2"
)

// Canvas is a drawing surface with a single rendering context.
type Canvas struct {
	width, height int
	buf           *image.NRGBA
	ctx           *Context
	obs           intercept.Observer
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithObserver reports every call made on the canvas and its context to obs.
func WithObserver(obs intercept.Observer) Option {
	return func(c *Canvas) { c.obs = obs }
}

// NewCanvas creates a canvas with a transparent drawing buffer.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.buf = image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	return c
}

// Kind returns the traced kind name.
func (c *Canvas) Kind() string { return "HTMLCanvasElement" }

// Size returns the drawing buffer size.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetSize resizes the canvas. The drawing buffer is reallocated and
// cleared, as assigning width or height does in a browser.
func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.buf = image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
}

// Image returns a copy of the drawing buffer, top row first.
func (c *Canvas) Image() image.Image {
	if c == nil {
		return nil
	}
	out := image.NewNRGBA(c.buf.Rect)
	copy(out.Pix, c.buf.Pix)
	return out
}

// Present composites the drawing buffer. Unless the context was created
// with preserveDrawingBuffer, the buffer is cleared afterwards.
func (c *Canvas) Present() {
	if c.ctx != nil && c.ctx.attrs["preserveDrawingBuffer"] == true {
		return
	}
	clear(c.buf.Pix)
}

// Context returns the context created by GetContext, or nil.
func (c *Canvas) Context() *Context {
	return c.ctx
}

// GetContext returns the canvas's rendering context, creating it on the
// first call. It returns nil for unsupported kinds and for a kind that
// differs from the one the context was created with.
func (c *Canvas) GetContext(kind string, attrs map[string]any) *Context {
	ctx := c.getContext(kind, attrs)
	if c.obs != nil {
		var a any
		if attrs != nil {
			a = attrs
		}
		if err := c.obs.OnCall(c, "getContext", []any{kind, a}, ctx); err != nil {
			glrr.Logger().Error("softgl: observer failed", "method", "getContext", "err", err)
		}
	}
	return ctx
}

func (c *Canvas) getContext(kind string, attrs map[string]any) *Context {
	var version int
	switch kind {
	case KindWebGL, KindExperimentalWebGL:
		version = 1
	case KindWebGL2:
		version = 2
	default:
		return nil
	}
	if c.ctx != nil {
		if c.ctx.version != version {
			return nil
		}
		return c.ctx
	}

	c.ctx = newContext(c, version, contextAttributes(attrs))
	glrr.Logger().Debug("softgl: context created", "kind", kind, "width", c.width, "height", c.height)
	return c.ctx
}

var defaultAttributes = map[string]any{
	"alpha":                 true,
	"antialias":             true,
	"depth":                 true,
	"premultipliedAlpha":    true,
	"preserveDrawingBuffer": false,
	"stencil":               false,
}

// contextAttributes merges the recognized creation attributes over the
// defaults.
func contextAttributes(attrs map[string]any) map[string]any {
	out := maps.Clone(defaultAttributes)
	for k, v := range attrs {
		if _, known := out[k]; !known {
			continue
		}
		if b, ok := v.(bool); ok {
			out[k] = b
		}
	}
	return out
}
