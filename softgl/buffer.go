package softgl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/transfer"
)

// Buffer is a buffer object.
type Buffer struct {
	data    []byte
	usage   uint32
	target  uint32
	deleted bool
}

// Kind returns the traced kind name.
func (b *Buffer) Kind() string { return "WebGLBuffer" }

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Usage returns the buffer's role as a gputypes usage mask, derived from
// the target it was first bound to.
func (b *Buffer) Usage() gputypes.BufferUsage {
	switch b.target {
	case glenum.ARRAY_BUFFER:
		return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	case glenum.ELEMENT_ARRAY_BUFFER:
		return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	}
	return gputypes.BufferUsageNone
}

// CreateBuffer creates a buffer object.
func (c *Context) CreateBuffer() *Buffer {
	b := &Buffer{}
	c.report("createBuffer", b)
	return b
}

// DeleteBuffer deletes a buffer and unbinds it. Deleting nil or an
// already deleted buffer does nothing.
func (c *Context) DeleteBuffer(b *Buffer) {
	if b != nil && !b.deleted {
		b.deleted = true
		b.data = nil
		if c.arrayBuffer == b {
			c.arrayBuffer = nil
		}
		if c.elementBuffer == b {
			c.elementBuffer = nil
		}
		for i := range c.attribs {
			if c.attribs[i].buffer == b {
				c.attribs[i].buffer = nil
			}
		}
	}
	c.report("deleteBuffer", nil, b)
}

// IsBuffer reports whether b is a live buffer that has been bound.
func (c *Context) IsBuffer(b *Buffer) bool {
	ok := b != nil && !b.deleted && b.target != 0
	c.report("isBuffer", ok, b)
	return ok
}

// BindBuffer binds b to target. A buffer keeps the target it was first
// bound to.
func (c *Context) BindBuffer(target uint32, b *Buffer) {
	c.bindBuffer(target, b)
	c.report("bindBuffer", nil, target, b)
}

func (c *Context) bindBuffer(target uint32, b *Buffer) {
	slot := c.bufferSlot(target)
	if slot == nil {
		c.setError(glenum.INVALID_ENUM, "bindBuffer")
		return
	}
	if b != nil {
		if b.deleted || (b.target != 0 && b.target != target) {
			c.setError(glenum.INVALID_OPERATION, "bindBuffer")
			return
		}
		b.target = target
	}
	*slot = b
}

func (c *Context) bufferSlot(target uint32) **Buffer {
	switch target {
	case glenum.ARRAY_BUFFER:
		return &c.arrayBuffer
	case glenum.ELEMENT_ARRAY_BUFFER:
		return &c.elementBuffer
	}
	return nil
}

func (c *Context) boundBuffer(method string, target uint32) *Buffer {
	slot := c.bufferSlot(target)
	if slot == nil {
		c.setError(glenum.INVALID_ENUM, method)
		return nil
	}
	if *slot == nil {
		c.setError(glenum.INVALID_OPERATION, method)
		return nil
	}
	return *slot
}

func validUsage(usage uint32) bool {
	switch usage {
	case glenum.STREAM_DRAW, glenum.STATIC_DRAW, glenum.DYNAMIC_DRAW,
		glenum.STREAM_READ, glenum.STATIC_READ, glenum.DYNAMIC_READ,
		glenum.STREAM_COPY, glenum.STATIC_COPY, glenum.DYNAMIC_COPY:
		return true
	}
	return false
}

// BufferData replaces the contents of the buffer bound to target. data is
// either a size, which allocates zeroed storage, or a typed buffer, which
// is copied.
func (c *Context) BufferData(target uint32, data any, usage uint32) {
	c.bufferData(target, data, usage)
	c.report("bufferData", nil, target, data, usage)
}

func (c *Context) bufferData(target uint32, data any, usage uint32) {
	b := c.boundBuffer("bufferData", target)
	if b == nil {
		return
	}
	if !validUsage(usage) {
		c.setError(glenum.INVALID_ENUM, "bufferData")
		return
	}

	if n, ok := intArg(data); ok {
		if n < 0 {
			c.setError(glenum.INVALID_VALUE, "bufferData")
			return
		}
		b.data = make([]byte, n)
		b.usage = usage
		return
	}
	src, err := transfer.Bytes(data)
	if err != nil {
		c.setError(glenum.INVALID_VALUE, "bufferData")
		return
	}
	b.data = append([]byte(nil), src...)
	b.usage = usage
}

// BufferSubData writes data into the buffer bound to target at offset.
func (c *Context) BufferSubData(target uint32, offset int, data any) {
	c.bufferSubData(target, offset, data)
	c.report("bufferSubData", nil, target, offset, data)
}

func (c *Context) bufferSubData(target uint32, offset int, data any) {
	b := c.boundBuffer("bufferSubData", target)
	if b == nil {
		return
	}
	src, err := transfer.Bytes(data)
	if err != nil {
		c.setError(glenum.INVALID_VALUE, "bufferSubData")
		return
	}
	if offset < 0 || offset+len(src) > len(b.data) {
		c.setError(glenum.INVALID_VALUE, "bufferSubData")
		return
	}
	copy(b.data[offset:], src)
}

// GetBufferParameter returns BUFFER_SIZE or BUFFER_USAGE of the buffer
// bound to target.
func (c *Context) GetBufferParameter(target, pname uint32) any {
	var v any
	if b := c.boundBuffer("getBufferParameter", target); b != nil {
		switch pname {
		case glenum.BUFFER_SIZE:
			v = int32(len(b.data))
		case glenum.BUFFER_USAGE:
			v = b.usage
		default:
			c.setError(glenum.INVALID_ENUM, "getBufferParameter")
		}
	}
	c.report("getBufferParameter", v, target, pname)
	return v
}
