package softgl

import (
	"encoding/binary"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/glrr/glenum"
)

// flatShader fills triangles with the color uniform.
const flatShader = `
@group(0) @binding(0) var<uniform> color: vec4<f32>;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return color;
}
`

// texturedShader reads a uniform block, a texture and a struct input.
const texturedShader = `
struct Params {
    scale: f32,
    offset: vec2<f32>,
}

struct VertexInput {
    @location(0) pos: vec2<f32>,
    @location(1) uv: vec2<f32>,
}

struct VertexOutput {
    @location(0) uv: vec2<f32>,
    @builtin(position) position: vec4<f32>,
}

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var u_texture: texture_2d<f32>;
@group(0) @binding(2) var u_sampler: sampler;

@vertex
fn vs_main(input: VertexInput) -> VertexOutput {
    return VertexOutput(input.uv, vec4<f32>(params.scale * input.pos + params.offset, 0.0, 1.0));
}

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(u_texture, u_sampler, uv);
}
`

const fragmentOnly = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

const vertexOnly = `
@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}
`

func compileShader(t *testing.T, gl *Context, typ uint32, source string) *Shader {
	t.Helper()
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, source)
	gl.CompileShader(s)
	if ok, _ := gl.GetShaderParameter(s, glenum.COMPILE_STATUS).(bool); !ok {
		t.Fatalf("CompileShader() failed: %s", gl.GetShaderInfoLog(s))
	}
	return s
}

func linkProgram(t *testing.T, gl *Context, source string) *Program {
	t.Helper()
	p := gl.CreateProgram()
	gl.AttachShader(p, compileShader(t, gl, glenum.VERTEX_SHADER, source))
	gl.AttachShader(p, compileShader(t, gl, glenum.FRAGMENT_SHADER, source))
	gl.LinkProgram(p)
	if ok, _ := gl.GetProgramParameter(p, glenum.LINK_STATUS).(bool); !ok {
		t.Fatalf("LinkProgram() failed: %s", gl.GetProgramInfoLog(p))
	}
	return p
}

func TestCompileShader(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)
	s := compileShader(t, gl, glenum.VERTEX_SHADER, flatShader)

	code := s.SPIRV()
	if len(code) < 20 {
		t.Fatalf("len(SPIRV()) = %d, want a module", len(code))
	}
	if magic := binary.LittleEndian.Uint32(code); magic != 0x07230203 {
		t.Errorf("SPIR-V magic = %#08x, want 0x07230203", magic)
	}
	if got := gl.GetShaderSource(s); got != flatShader {
		t.Errorf("GetShaderSource() = %q, want the source", got)
	}
	if got := gl.GetShaderParameter(s, glenum.SHADER_TYPE); got != uint32(glenum.VERTEX_SHADER) {
		t.Errorf("GetShaderParameter(SHADER_TYPE) = %v, want VERTEX_SHADER", got)
	}
	if got := gl.GetShaderInfoLog(s); got != "" {
		t.Errorf("GetShaderInfoLog() = %q, want empty", got)
	}
}

func TestShaderReflection(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL2)
	s := compileShader(t, gl, glenum.VERTEX_SHADER, texturedShader)

	wantUniforms := []variable{
		{"scale", glenum.FLOAT, -1},
		{"offset", glenum.FLOAT_VEC2, -1},
		{"u_texture", glenum.SAMPLER_2D, -1},
	}
	if !slices.Equal(s.uniforms, wantUniforms) {
		t.Errorf("uniforms = %v, want %v", s.uniforms, wantUniforms)
	}
	wantAttribs := []variable{
		{"pos", glenum.FLOAT_VEC2, 0},
		{"uv", glenum.FLOAT_VEC2, 1},
	}
	if !slices.Equal(s.attribs, wantAttribs) {
		t.Errorf("attribs = %v, want %v", s.attribs, wantAttribs)
	}

	fs := compileShader(t, gl, glenum.FRAGMENT_SHADER, texturedShader)
	if len(fs.attribs) != 0 {
		t.Errorf("fragment attribs = %v, want none", fs.attribs)
	}
}

func TestCompileShaderFailures(t *testing.T) {
	tests := []struct {
		name    string
		typ     uint32
		source  string
		wantLog string
	}{
		{"syntax error", glenum.VERTEX_SHADER, "@vertex fn main( {", "parse"},
		{"missing vertex entry", glenum.VERTEX_SHADER, fragmentOnly, "no vertex entry point"},
		{"missing fragment entry", glenum.FRAGMENT_SHADER, vertexOnly, "no fragment entry point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gl := newTestContext(t, 1, 1, KindWebGL)
			s := gl.CreateShader(tt.typ)
			gl.ShaderSource(s, tt.source)
			gl.CompileShader(s)
			if ok := gl.GetShaderParameter(s, glenum.COMPILE_STATUS); ok != false {
				t.Errorf("COMPILE_STATUS = %v, want false", ok)
			}
			if log := gl.GetShaderInfoLog(s); !strings.Contains(log, tt.wantLog) {
				t.Errorf("GetShaderInfoLog() = %q, want it to contain %q", log, tt.wantLog)
			}
			if err := gl.GetError(); err != noError {
				t.Errorf("GetError() = %s, want no error", glenum.Format(err))
			}
		})
	}
}

func TestShaderObjectErrors(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)
	if s := gl.CreateShader(0x1234); s != nil {
		t.Errorf("CreateShader(0x1234) = %v, want nil", s)
	}
	if got := gl.GetError(); got != glenum.INVALID_ENUM {
		t.Errorf("GetError() = %s, want INVALID_ENUM", glenum.Format(got))
	}

	s := gl.CreateShader(glenum.FRAGMENT_SHADER)
	gl.DeleteShader(s)
	gl.CompileShader(s)
	if got := gl.GetError(); got != glenum.INVALID_VALUE {
		t.Errorf("CompileShader(deleted) GetError() = %s, want INVALID_VALUE", glenum.Format(got))
	}
}

func TestLinkProgram(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL2)
	p := linkProgram(t, gl, flatShader)

	tests := []struct {
		pname uint32
		want  any
	}{
		{glenum.ATTACHED_SHADERS, int32(2)},
		{glenum.ACTIVE_UNIFORMS, int32(1)},
		{glenum.ACTIVE_ATTRIBUTES, int32(1)},
		{glenum.DELETE_STATUS, false},
	}
	for _, tt := range tests {
		if got := gl.GetProgramParameter(p, tt.pname); got != tt.want {
			t.Errorf("GetProgramParameter(%s) = %v, want %v", glenum.Format(tt.pname), got, tt.want)
		}
	}

	if got := gl.GetAttribLocation(p, "position"); got != 0 {
		t.Errorf("GetAttribLocation(position) = %d, want 0", got)
	}
	if got := gl.GetAttribLocation(p, "missing"); got != -1 {
		t.Errorf("GetAttribLocation(missing) = %d, want -1", got)
	}

	loc := gl.GetUniformLocation(p, "color")
	if loc == nil {
		t.Fatal("GetUniformLocation(color) = nil")
	}
	if again := gl.GetUniformLocation(p, "color"); again != loc {
		t.Error("GetUniformLocation(color) returned a new location")
	}
	if loc.Name() != "color" || loc.Kind() != "WebGLUniformLocation" {
		t.Errorf("location Name() = %q, Kind() = %q", loc.Name(), loc.Kind())
	}
	if got := gl.GetUniformLocation(p, "missing"); got != nil {
		t.Errorf("GetUniformLocation(missing) = %v, want nil", got)
	}

	info := gl.GetActiveUniform(p, 0)
	if info == nil || info.Name() != "color" || info.Type() != glenum.FLOAT_VEC4 || info.Size() != 1 {
		t.Errorf("GetActiveUniform(0) = %+v, want color FLOAT_VEC4", info)
	}
	if got := info.Fields()["type"]; got != uint32(glenum.FLOAT_VEC4) {
		t.Errorf("Fields()[type] = %v, want FLOAT_VEC4", got)
	}
	attr := gl.GetActiveAttrib(p, 0)
	if attr == nil || attr.Name() != "position" || attr.Type() != glenum.FLOAT_VEC2 {
		t.Errorf("GetActiveAttrib(0) = %+v, want position FLOAT_VEC2", attr)
	}
	if got := gl.GetActiveUniform(p, 5); got != nil {
		t.Errorf("GetActiveUniform(5) = %+v, want nil", got)
	}
	if got := gl.GetError(); got != glenum.INVALID_VALUE {
		t.Errorf("GetError() = %s, want INVALID_VALUE", glenum.Format(got))
	}

	indices := gl.GetUniformIndices(p, []string{"missing", "color"})
	if want := []int64{InvalidIndex, 0}; !slices.Equal(indices, want) {
		t.Errorf("GetUniformIndices() = %v, want %v", indices, want)
	}
}

func TestBindAttribLocation(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)
	p := gl.CreateProgram()
	gl.AttachShader(p, compileShader(t, gl, glenum.VERTEX_SHADER, texturedShader))
	gl.AttachShader(p, compileShader(t, gl, glenum.FRAGMENT_SHADER, texturedShader))
	gl.BindAttribLocation(p, 5, "uv")
	gl.LinkProgram(p)

	if got := gl.GetAttribLocation(p, "uv"); got != 5 {
		t.Errorf("GetAttribLocation(uv) = %d, want 5", got)
	}
	if got := gl.GetAttribLocation(p, "pos"); got != 0 {
		t.Errorf("GetAttribLocation(pos) = %d, want 0", got)
	}

	gl.BindAttribLocation(p, MaxVertexAttribs, "pos")
	if got := gl.GetError(); got != glenum.INVALID_VALUE {
		t.Errorf("GetError() = %s, want INVALID_VALUE", glenum.Format(got))
	}
}

func TestLinkFailures(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL)

	p := gl.CreateProgram()
	gl.AttachShader(p, compileShader(t, gl, glenum.VERTEX_SHADER, flatShader))
	gl.LinkProgram(p)
	if ok := gl.GetProgramParameter(p, glenum.LINK_STATUS); ok != false {
		t.Errorf("LINK_STATUS = %v, want false", ok)
	}
	if log := gl.GetProgramInfoLog(p); !strings.Contains(log, "missing shader") {
		t.Errorf("GetProgramInfoLog() = %q, want missing shader", log)
	}
	gl.UseProgram(p)
	if got := gl.GetError(); got != glenum.INVALID_OPERATION {
		t.Errorf("UseProgram(unlinked) GetError() = %s, want INVALID_OPERATION", glenum.Format(got))
	}
	if got := gl.GetUniformLocation(p, "color"); got != nil {
		t.Errorf("GetUniformLocation(unlinked) = %v, want nil", got)
	}
	gl.GetError()

	gl.AttachShader(p, compileShader(t, gl, glenum.VERTEX_SHADER, flatShader))
	if got := gl.GetError(); got != glenum.INVALID_OPERATION {
		t.Errorf("second vertex shader GetError() = %s, want INVALID_OPERATION", glenum.Format(got))
	}

	// The same uniform name with two types cannot link.
	conflict := strings.ReplaceAll(fragmentOnly, "@fragment",
		"@group(0) @binding(0) var<uniform> color: vec2<f32>;\n@fragment")
	q := gl.CreateProgram()
	gl.AttachShader(q, compileShader(t, gl, glenum.VERTEX_SHADER, flatShader))
	gl.AttachShader(q, compileShader(t, gl, glenum.FRAGMENT_SHADER, conflict))
	gl.LinkProgram(q)
	if log := gl.GetProgramInfoLog(q); !strings.Contains(log, "different types") {
		t.Errorf("GetProgramInfoLog() = %q, want a type conflict", log)
	}
}

func TestUniforms(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL2)
	p := linkProgram(t, gl, flatShader)
	loc := gl.GetUniformLocation(p, "color")

	gl.Uniform4f(loc, 1, 0, 0, 1)
	if got := gl.GetError(); got != glenum.INVALID_OPERATION {
		t.Errorf("Uniform4f without program GetError() = %s, want INVALID_OPERATION", glenum.Format(got))
	}

	gl.UseProgram(p)
	gl.Uniform4f(loc, 0.25, 0.5, 0.75, 1)
	got, _ := gl.GetUniform(p, loc).([]float32)
	if want := []float32{0.25, 0.5, 0.75, 1}; !slices.Equal(got, want) {
		t.Errorf("GetUniform() = %v, want %v", got, want)
	}

	gl.Uniform4fv(loc, []float32{1, 1, 1, 1})
	got, _ = gl.GetUniform(p, loc).([]float32)
	if want := []float32{1, 1, 1, 1}; !slices.Equal(got, want) {
		t.Errorf("GetUniform() after Uniform4fv = %v, want %v", got, want)
	}

	tests := []struct {
		name string
		call func()
		want uint32
	}{
		{"nil location", func() { gl.Uniform4f(nil, 1, 2, 3, 4) }, noError},
		{"wrong type", func() { gl.Uniform1f(loc, 1) }, glenum.INVALID_OPERATION},
		{"int on float", func() { gl.Uniform1i(loc, 1) }, glenum.INVALID_OPERATION},
		{"short vector", func() { gl.Uniform4fv(loc, []float32{1}) }, glenum.INVALID_VALUE},
		{"transposed matrix", func() { gl.UniformMatrix4fv(loc, true, make([]float32, 16)) }, glenum.INVALID_VALUE},
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

func TestSamplerUniform(t *testing.T) {
	_, gl := newTestContext(t, 1, 1, KindWebGL2)
	p := linkProgram(t, gl, texturedShader)
	gl.UseProgram(p)

	tex := gl.GetUniformLocation(p, "u_texture")
	gl.Uniform1i(tex, 3)
	if got := gl.GetUniform(p, tex); got != int32(3) {
		t.Errorf("GetUniform(u_texture) = %v, want 3", got)
	}
	scale := gl.GetUniformLocation(p, "scale")
	gl.Uniform1f(scale, 2)
	if got := gl.GetUniform(p, scale); got != float32(2) {
		t.Errorf("GetUniform(scale) = %v, want 2", got)
	}
	if err := gl.GetError(); err != noError {
		t.Errorf("GetError() = %s, want no error", glenum.Format(err))
	}
}
