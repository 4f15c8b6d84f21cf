package softgl

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/glrr/glenum"
)

// Program is a program object linking a vertex and a fragment shader.
type Program struct {
	vertex    *Shader
	fragment  *Shader
	linked    bool
	log       string
	uniforms  []variable
	attribs   []variable
	bindings  map[string]int32
	locations map[string]*UniformLocation
	values    map[string][]float32
	deleted   bool
}

// Kind returns the traced kind name.
func (p *Program) Kind() string { return "WebGLProgram" }

// UniformLocation names one active uniform of a linked program.
type UniformLocation struct {
	program *Program
	info    variable
}

// Kind returns the traced kind name.
func (l *UniformLocation) Kind() string { return "WebGLUniformLocation" }

// Name returns the uniform's name.
func (l *UniformLocation) Name() string { return l.info.name }

// ActiveInfo describes an active uniform or attribute.
type ActiveInfo struct {
	name string
	size int32
	typ  uint32
}

// Name returns the variable name.
func (a *ActiveInfo) Name() string { return a.name }

// Size returns the array size, 1 for non-arrays.
func (a *ActiveInfo) Size() int32 { return a.size }

// Type returns the GL type constant.
func (a *ActiveInfo) Type() uint32 { return a.typ }

// Fields returns the record form traces store.
func (a *ActiveInfo) Fields() map[string]any {
	return map[string]any{"name": a.name, "size": a.size, "type": a.typ}
}

// CreateProgram creates a program object.
func (c *Context) CreateProgram() *Program {
	p := &Program{bindings: make(map[string]int32)}
	c.report("createProgram", p)
	return p
}

// DeleteProgram marks a program deleted. The current program stays usable
// until another is made current.
func (c *Context) DeleteProgram(p *Program) {
	if p != nil {
		p.deleted = true
	}
	c.report("deleteProgram", nil, p)
}

func (c *Context) liveProgram(method string, p *Program) bool {
	if p == nil || p.deleted {
		c.setError(glenum.INVALID_VALUE, method)
		return false
	}
	return true
}

// AttachShader attaches s to p. A program holds one shader per type.
func (c *Context) AttachShader(p *Program, s *Shader) {
	if c.liveProgram("attachShader", p) && c.liveShader("attachShader", s) {
		slot := &p.vertex
		if s.typ == glenum.FRAGMENT_SHADER {
			slot = &p.fragment
		}
		if *slot != nil {
			c.setError(glenum.INVALID_OPERATION, "attachShader")
		} else {
			*slot = s
		}
	}
	c.report("attachShader", nil, p, s)
}

// DetachShader detaches s from p.
func (c *Context) DetachShader(p *Program, s *Shader) {
	if c.liveProgram("detachShader", p) && s != nil {
		switch s {
		case p.vertex:
			p.vertex = nil
		case p.fragment:
			p.fragment = nil
		default:
			c.setError(glenum.INVALID_OPERATION, "detachShader")
		}
	}
	c.report("detachShader", nil, p, s)
}

// BindAttribLocation assigns an attribute location, effective at the
// next link.
func (c *Context) BindAttribLocation(p *Program, index uint32, name string) {
	if c.liveProgram("bindAttribLocation", p) {
		if index >= MaxVertexAttribs {
			c.setError(glenum.INVALID_VALUE, "bindAttribLocation")
		} else {
			p.bindings[name] = int32(index)
		}
	}
	c.report("bindAttribLocation", nil, p, index, name)
}

// LinkProgram links the attached shaders. Uniform locations from an
// earlier link become invalid.
func (c *Context) LinkProgram(p *Program) {
	if c.liveProgram("linkProgram", p) {
		if err := p.link(); err != nil {
			p.linked = false
			p.log = err.Error()
		} else {
			p.linked = true
			p.log = ""
		}
	}
	c.report("linkProgram", nil, p)
}

func (p *Program) link() error {
	p.uniforms, p.attribs = nil, nil
	p.locations = make(map[string]*UniformLocation)
	p.values = make(map[string][]float32)

	switch {
	case p.vertex == nil || p.fragment == nil:
		return errors.New("missing shader")
	case !p.vertex.compiled:
		return errors.New("vertex shader not compiled")
	case !p.fragment.compiled:
		return errors.New("fragment shader not compiled")
	}

	seen := make(map[string]uint32)
	for _, u := range slices.Concat(p.vertex.uniforms, p.fragment.uniforms) {
		if typ, dup := seen[u.name]; dup {
			if typ != u.typ {
				return fmt.Errorf("uniform %q declared with different types", u.name)
			}
			continue
		}
		seen[u.name] = u.typ
		p.uniforms = append(p.uniforms, u)
		p.values[u.name] = make([]float32, components(u.typ))
	}

	for _, a := range p.vertex.attribs {
		if loc, ok := p.bindings[a.name]; ok {
			a.location = loc
		}
		p.attribs = append(p.attribs, a)
	}
	return nil
}

// UseProgram makes p current. nil clears the current program.
func (c *Context) UseProgram(p *Program) {
	switch {
	case p == nil:
		c.program = nil
	case p.deleted:
		c.setError(glenum.INVALID_VALUE, "useProgram")
	case !p.linked:
		c.setError(glenum.INVALID_OPERATION, "useProgram")
	default:
		c.program = p
	}
	c.report("useProgram", nil, p)
}

// GetProgramParameter returns LINK_STATUS, VALIDATE_STATUS, DELETE_STATUS,
// ATTACHED_SHADERS, ACTIVE_UNIFORMS or ACTIVE_ATTRIBUTES.
func (c *Context) GetProgramParameter(p *Program, pname uint32) any {
	var v any
	if c.liveProgram("getProgramParameter", p) {
		switch pname {
		case glenum.LINK_STATUS, glenum.VALIDATE_STATUS:
			v = p.linked
		case glenum.DELETE_STATUS:
			v = p.deleted
		case glenum.ATTACHED_SHADERS:
			n := int32(0)
			if p.vertex != nil {
				n++
			}
			if p.fragment != nil {
				n++
			}
			v = n
		case glenum.ACTIVE_UNIFORMS:
			v = int32(len(p.uniforms))
		case glenum.ACTIVE_ATTRIBUTES:
			v = int32(len(p.attribs))
		default:
			c.setError(glenum.INVALID_ENUM, "getProgramParameter")
		}
	}
	c.report("getProgramParameter", v, p, pname)
	return v
}

// GetProgramInfoLog returns the diagnostics of the last link.
func (c *Context) GetProgramInfoLog(p *Program) string {
	var log string
	if c.liveProgram("getProgramInfoLog", p) {
		log = p.log
	}
	c.report("getProgramInfoLog", log, p)
	return log
}

// GetAttribLocation returns the location of a named attribute, or -1.
func (c *Context) GetAttribLocation(p *Program, name string) int32 {
	loc := int32(-1)
	if c.liveProgram("getAttribLocation", p) {
		if !p.linked {
			c.setError(glenum.INVALID_OPERATION, "getAttribLocation")
		} else if i := slices.IndexFunc(p.attribs, func(a variable) bool { return a.name == name }); i >= 0 {
			loc = p.attribs[i].location
		}
	}
	c.report("getAttribLocation", loc, p, name)
	return loc
}

// GetUniformLocation returns the location of a named uniform, or nil. A
// linked program returns the same location for every lookup of a name.
func (c *Context) GetUniformLocation(p *Program, name string) *UniformLocation {
	var loc *UniformLocation
	if c.liveProgram("getUniformLocation", p) {
		if !p.linked {
			c.setError(glenum.INVALID_OPERATION, "getUniformLocation")
		} else {
			loc = p.location(name)
		}
	}
	c.report("getUniformLocation", loc, p, name)
	return loc
}

func (p *Program) location(name string) *UniformLocation {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	i := slices.IndexFunc(p.uniforms, func(u variable) bool { return u.name == name })
	if i < 0 {
		return nil
	}
	loc := &UniformLocation{program: p, info: p.uniforms[i]}
	p.locations[name] = loc
	return loc
}

// GetUniformIndices returns the index of each named uniform, or
// InvalidIndex for names that are not active.
func (c *Context) GetUniformIndices(p *Program, names []string) []int64 {
	var out []int64
	if c.liveProgram("getUniformIndices", p) {
		out = make([]int64, len(names))
		for i, name := range names {
			idx := slices.IndexFunc(p.uniforms, func(u variable) bool { return u.name == name })
			if idx < 0 {
				out[i] = InvalidIndex
			} else {
				out[i] = int64(idx)
			}
		}
	}
	c.report("getUniformIndices", out, p, names)
	return out
}

// GetActiveUniform describes the uniform at index, or returns nil.
func (c *Context) GetActiveUniform(p *Program, index uint32) *ActiveInfo {
	info := c.activeInfo("getActiveUniform", p, index, func() []variable { return p.uniforms })
	c.report("getActiveUniform", info, p, index)
	return info
}

// GetActiveAttrib describes the attribute at index, or returns nil.
func (c *Context) GetActiveAttrib(p *Program, index uint32) *ActiveInfo {
	info := c.activeInfo("getActiveAttrib", p, index, func() []variable { return p.attribs })
	c.report("getActiveAttrib", info, p, index)
	return info
}

func (c *Context) activeInfo(method string, p *Program, index uint32, list func() []variable) *ActiveInfo {
	if !c.liveProgram(method, p) {
		return nil
	}
	vars := list()
	if int(index) >= len(vars) {
		c.setError(glenum.INVALID_VALUE, method)
		return nil
	}
	v := vars[index]
	return &ActiveInfo{name: v.name, size: 1, typ: v.typ}
}

// GetUniform returns the current value of a uniform: float32, int32 or
// bool for scalars and []float32 or []int32 for vectors and matrices.
func (c *Context) GetUniform(p *Program, loc *UniformLocation) any {
	var v any
	switch {
	case !c.liveProgram("getUniform", p):
	case loc == nil || loc.program != p || !p.linked:
		c.setError(glenum.INVALID_OPERATION, "getUniform")
	default:
		v = uniformValue(loc.info.typ, p.values[loc.info.name])
	}
	c.report("getUniform", v, p, loc)
	return v
}

func uniformValue(typ uint32, vals []float32) any {
	switch typ {
	case glenum.FLOAT:
		return vals[0]
	case glenum.BOOL:
		return vals[0] != 0
	case glenum.INT, glenum.UNSIGNED_INT:
		return int32(vals[0])
	case glenum.INT_VEC2, glenum.INT_VEC3, glenum.INT_VEC4:
		out := make([]int32, len(vals))
		for i, f := range vals {
			out[i] = int32(f)
		}
		return out
	}
	if isSampler(typ) {
		return int32(vals[0])
	}
	return slices.Clone(vals)
}

// Uniform1f sets a float uniform of the current program.
func (c *Context) Uniform1f(loc *UniformLocation, x float32) {
	c.setUniform("uniform1f", loc, []float32{x}, glenum.FLOAT)
	c.report("uniform1f", nil, loc, x)
}

// Uniform2f sets a vec2 uniform of the current program.
func (c *Context) Uniform2f(loc *UniformLocation, x, y float32) {
	c.setUniform("uniform2f", loc, []float32{x, y}, glenum.FLOAT_VEC2)
	c.report("uniform2f", nil, loc, x, y)
}

// Uniform3f sets a vec3 uniform of the current program.
func (c *Context) Uniform3f(loc *UniformLocation, x, y, z float32) {
	c.setUniform("uniform3f", loc, []float32{x, y, z}, glenum.FLOAT_VEC3)
	c.report("uniform3f", nil, loc, x, y, z)
}

// Uniform4f sets a vec4 uniform of the current program.
func (c *Context) Uniform4f(loc *UniformLocation, x, y, z, w float32) {
	c.setUniform("uniform4f", loc, []float32{x, y, z, w}, glenum.FLOAT_VEC4)
	c.report("uniform4f", nil, loc, x, y, z, w)
}

// Uniform4fv sets a vec4 uniform from a four-element slice.
func (c *Context) Uniform4fv(loc *UniformLocation, v []float32) {
	if len(v) != 4 {
		c.setError(glenum.INVALID_VALUE, "uniform4fv")
	} else {
		c.setUniform("uniform4fv", loc, v, glenum.FLOAT_VEC4)
	}
	c.report("uniform4fv", nil, loc, v)
}

// Uniform1i sets an int, bool or sampler uniform of the current program.
func (c *Context) Uniform1i(loc *UniformLocation, x int32) {
	c.setUniform("uniform1i", loc, []float32{float32(x)},
		glenum.INT, glenum.BOOL, glenum.SAMPLER_2D, glenum.SAMPLER_3D, glenum.SAMPLER_2D_ARRAY, glenum.SAMPLER_CUBE)
	c.report("uniform1i", nil, loc, x)
}

// UniformMatrix4fv sets a mat4 uniform from sixteen column-major values.
// transpose must be false.
func (c *Context) UniformMatrix4fv(loc *UniformLocation, transpose bool, v []float32) {
	if transpose || len(v) != 16 {
		c.setError(glenum.INVALID_VALUE, "uniformMatrix4fv")
	} else {
		c.setUniform("uniformMatrix4fv", loc, v, glenum.FLOAT_MAT4)
	}
	c.report("uniformMatrix4fv", nil, loc, transpose, v)
}

// setUniform stores vals for loc if the uniform has one of the accepted
// types. A nil location is silently ignored.
func (c *Context) setUniform(method string, loc *UniformLocation, vals []float32, types ...uint32) {
	if loc == nil {
		return
	}
	if c.program == nil || loc.program != c.program {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	if !slices.Contains(types, loc.info.typ) {
		c.setError(glenum.INVALID_OPERATION, method)
		return
	}
	copy(c.program.values[loc.info.name], vals)
}
