package softgl

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/glenum"
)

// InvalidIndex is returned by GetUniformIndices for unknown names.
const InvalidIndex = 0xFFFFFFFF

// variable is a reflected uniform or vertex attribute.
type variable struct {
	name     string
	typ      uint32
	location int32
}

// Shader is a shader object holding WGSL source.
type Shader struct {
	typ      uint32
	source   string
	compiled bool
	log      string
	uniforms []variable
	attribs  []variable
	code     []byte
	deleted  bool
}

// Kind returns the traced kind name.
func (s *Shader) Kind() string { return "WebGLShader" }

// SPIRV returns the compiled module, or nil before a successful compile.
func (s *Shader) SPIRV() []byte { return s.code }

// CreateShader creates a shader of type VERTEX_SHADER or FRAGMENT_SHADER.
// It returns nil for any other type.
func (c *Context) CreateShader(typ uint32) *Shader {
	var s *Shader
	if typ == glenum.VERTEX_SHADER || typ == glenum.FRAGMENT_SHADER {
		s = &Shader{typ: typ}
	} else {
		c.setError(glenum.INVALID_ENUM, "createShader")
	}
	c.report("createShader", s, typ)
	return s
}

// DeleteShader marks a shader deleted.
func (c *Context) DeleteShader(s *Shader) {
	if s != nil {
		s.deleted = true
	}
	c.report("deleteShader", nil, s)
}

// ShaderSource replaces the source of a shader.
func (c *Context) ShaderSource(s *Shader, source string) {
	if c.liveShader("shaderSource", s) {
		s.source = source
	}
	c.report("shaderSource", nil, s, source)
}

// GetShaderSource returns the source of a shader.
func (c *Context) GetShaderSource(s *Shader) string {
	var src string
	if c.liveShader("getShaderSource", s) {
		src = s.source
	}
	c.report("getShaderSource", src, s)
	return src
}

// CompileShader compiles the WGSL source of a shader to SPIR-V and
// reflects its uniforms and attributes. Failures are reported through
// COMPILE_STATUS and the info log, not the error flag.
func (c *Context) CompileShader(s *Shader) {
	if c.liveShader("compileShader", s) {
		if err := s.compile(); err != nil {
			s.compiled = false
			s.log = err.Error()
			glrr.Logger().Debug("softgl: compile failed", "err", err)
		} else {
			s.compiled = true
			s.log = ""
		}
	}
	c.report("compileShader", nil, s)
}

// GetShaderParameter returns COMPILE_STATUS, DELETE_STATUS or SHADER_TYPE.
func (c *Context) GetShaderParameter(s *Shader, pname uint32) any {
	var v any
	if c.liveShader("getShaderParameter", s) {
		switch pname {
		case glenum.COMPILE_STATUS:
			v = s.compiled
		case glenum.DELETE_STATUS:
			v = s.deleted
		case glenum.SHADER_TYPE:
			v = s.typ
		default:
			c.setError(glenum.INVALID_ENUM, "getShaderParameter")
		}
	}
	c.report("getShaderParameter", v, s, pname)
	return v
}

// GetShaderInfoLog returns the diagnostics of the last compile.
func (c *Context) GetShaderInfoLog(s *Shader) string {
	var log string
	if c.liveShader("getShaderInfoLog", s) {
		log = s.log
	}
	c.report("getShaderInfoLog", log, s)
	return log
}

func (c *Context) liveShader(method string, s *Shader) bool {
	if s == nil || s.deleted {
		c.setError(glenum.INVALID_VALUE, method)
		return false
	}
	return true
}

func (s *Shader) compile() error {
	ast, err := naga.Parse(s.source)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	mod, err := naga.LowerWithSource(ast, s.source)
	if err != nil {
		return fmt.Errorf("lower: %w", err)
	}

	stage, name := ir.StageVertex, "vertex"
	if s.typ == glenum.FRAGMENT_SHADER {
		stage, name = ir.StageFragment, "fragment"
	}
	entry := entryPoint(mod, stage)
	if entry == nil {
		return fmt.Errorf("no %s entry point", name)
	}
	s.uniforms = reflectUniforms(mod)
	s.attribs = nil
	if stage == ir.StageVertex {
		s.attribs = reflectAttributes(mod, entry)
	}

	code, err := naga.GenerateSPIRV(mod, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return fmt.Errorf("failed to compile shader: %w", err)
	}
	s.code = code
	return nil
}

func entryPoint(mod *ir.Module, stage ir.ShaderStage) *ir.EntryPoint {
	for i := range mod.EntryPoints {
		if mod.EntryPoints[i].Stage == stage {
			return &mod.EntryPoints[i]
		}
	}
	return nil
}

// reflectUniforms lists uniform-space globals, flattening structs into
// their members, followed by texture bindings as samplers.
func reflectUniforms(mod *ir.Module) []variable {
	var out []variable
	for _, g := range mod.GlobalVariables {
		if int(g.Type) >= len(mod.Types) {
			continue
		}
		inner := mod.Types[g.Type].Inner
		switch g.Space {
		case ir.SpaceUniform:
			if st, ok := inner.(ir.StructType); ok {
				for _, m := range st.Members {
					if typ, ok := glType(mod, m.Type); ok {
						out = append(out, variable{name: m.Name, typ: typ, location: -1})
					}
				}
				continue
			}
			if typ, ok := glType(mod, g.Type); ok {
				out = append(out, variable{name: g.Name, typ: typ, location: -1})
			}
		case ir.SpaceHandle:
			if _, ok := inner.(ir.ImageType); ok {
				typ, _ := glType(mod, g.Type)
				out = append(out, variable{name: g.Name, typ: typ, location: -1})
			}
		}
	}
	return out
}

// reflectAttributes lists the @location inputs of a vertex entry point,
// including those of struct arguments.
func reflectAttributes(mod *ir.Module, entry *ir.EntryPoint) []variable {
	var out []variable
	add := func(name string, th ir.TypeHandle, b *ir.Binding) {
		if b == nil {
			return
		}
		lb, ok := (*b).(ir.LocationBinding)
		if !ok {
			return
		}
		if typ, ok := glType(mod, th); ok {
			out = append(out, variable{name: name, typ: typ, location: int32(lb.Location)})
		}
	}
	for _, arg := range entry.Function.Arguments {
		if int(arg.Type) < len(mod.Types) {
			if st, ok := mod.Types[arg.Type].Inner.(ir.StructType); ok {
				for _, m := range st.Members {
					add(m.Name, m.Type, m.Binding)
				}
				continue
			}
		}
		add(arg.Name, arg.Type, arg.Binding)
	}
	return out
}

// glType maps a reflected type to its GL uniform type constant.
func glType(mod *ir.Module, h ir.TypeHandle) (uint32, bool) {
	if int(h) >= len(mod.Types) {
		return 0, false
	}
	switch t := mod.Types[h].Inner.(type) {
	case ir.ScalarType:
		switch t.Kind {
		case ir.ScalarFloat:
			return glenum.FLOAT, true
		case ir.ScalarSint:
			return glenum.INT, true
		case ir.ScalarUint:
			return glenum.UNSIGNED_INT, true
		case ir.ScalarBool:
			return glenum.BOOL, true
		}
	case ir.VectorType:
		switch t.Scalar.Kind {
		case ir.ScalarFloat:
			return pick(t.Size, glenum.FLOAT_VEC2, glenum.FLOAT_VEC3, glenum.FLOAT_VEC4)
		case ir.ScalarSint:
			return pick(t.Size, glenum.INT_VEC2, glenum.INT_VEC3, glenum.INT_VEC4)
		}
	case ir.MatrixType:
		if t.Columns == t.Rows && t.Scalar.Kind == ir.ScalarFloat {
			return pick(t.Columns, glenum.FLOAT_MAT2, glenum.FLOAT_MAT3, glenum.FLOAT_MAT4)
		}
	case ir.ImageType:
		switch {
		case t.Arrayed:
			return glenum.SAMPLER_2D_ARRAY, true
		case t.Dim == ir.Dim3D:
			return glenum.SAMPLER_3D, true
		case t.Dim == ir.DimCube:
			return glenum.SAMPLER_CUBE, true
		}
		return glenum.SAMPLER_2D, true
	}
	return 0, false
}

func pick(size ir.VectorSize, two, three, four uint32) (uint32, bool) {
	switch size {
	case ir.Vec2:
		return two, true
	case ir.Vec3:
		return three, true
	case ir.Vec4:
		return four, true
	}
	return 0, false
}

// components returns the number of scalars a uniform of type typ holds.
func components(typ uint32) int {
	switch typ {
	case glenum.FLOAT_VEC2, glenum.INT_VEC2:
		return 2
	case glenum.FLOAT_VEC3, glenum.INT_VEC3:
		return 3
	case glenum.FLOAT_VEC4, glenum.INT_VEC4, glenum.FLOAT_MAT2:
		return 4
	case glenum.FLOAT_MAT3:
		return 9
	case glenum.FLOAT_MAT4:
		return 16
	}
	return 1
}

func isSampler(typ uint32) bool {
	switch typ {
	case glenum.SAMPLER_2D, glenum.SAMPLER_3D, glenum.SAMPLER_2D_ARRAY, glenum.SAMPLER_CUBE:
		return true
	}
	return false
}
