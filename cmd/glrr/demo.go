package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/softgl"
	"github.com/gogpu/glrr/trace"
)

const demoShader = `
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

// maxDemoFrames bounds an unbounded demo recording.
const maxDemoFrames = 60

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	cfgPath, verbose := commonFlags(fs)
	var (
		output = fs.String("o", "demo.glrr", "output bundle")
		frames = fs.Int("frames", 0, "frames to record (overrides the configuration)")
	)
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath, *verbose)
	if err != nil {
		return err
	}
	if *frames != 0 {
		cfg.Frames = *frames
	}

	sched := recording.NewManualScheduler()
	opts := append(cfg.SessionOptions(), recording.WithScheduler(sched))
	sess := recording.NewSession(cfg.Frames, opts...)
	canvas := softgl.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, softgl.WithObserver(sess))
	gl := canvas.GetContext(softgl.KindWebGL2, nil)
	if gl == nil {
		return errors.New("demo: no webgl2 context")
	}

	scene, err := newDemoScene(gl)
	if err != nil {
		return err
	}
	for i := 0; sess.IsRecording() && i < maxDemoFrames; i++ {
		scene.frame(i)
		sched.Present()
	}
	sess.Stop()
	if err := sess.Err(); err != nil {
		return fmt.Errorf("demo: capture failed: %w", err)
	}

	rec := sess.Recording()
	pages, err := trace.Export(rec, cfg.TraceOptions()...)
	if err != nil {
		return err
	}
	b := trace.NewBundle(rec, pages, "glrr demo")
	if err := writeTrace(*output, b); err != nil {
		return err
	}
	log.Printf("recorded %d frames, %d calls to %s (trace %s)", rec.FrameCount(), rec.CallCount(), *output, b.Meta.ID)
	return nil
}

type demoScene struct {
	gl    *softgl.Context
	color *softgl.UniformLocation
	vbo   *softgl.Buffer
}

func newDemoScene(gl *softgl.Context) (*demoScene, error) {
	prog := gl.CreateProgram()
	for _, typ := range []uint32{glenum.VERTEX_SHADER, glenum.FRAGMENT_SHADER} {
		s := gl.CreateShader(typ)
		gl.ShaderSource(s, demoShader)
		gl.CompileShader(s)
		if ok, _ := gl.GetShaderParameter(s, glenum.COMPILE_STATUS).(bool); !ok {
			return nil, fmt.Errorf("demo: compile: %s", gl.GetShaderInfoLog(s))
		}
		gl.AttachShader(prog, s)
	}
	gl.LinkProgram(prog)
	if ok, _ := gl.GetProgramParameter(prog, glenum.LINK_STATUS).(bool); !ok {
		return nil, fmt.Errorf("demo: link: %s", gl.GetProgramInfoLog(prog))
	}
	gl.UseProgram(prog)

	vbo := gl.CreateBuffer()
	gl.BindBuffer(glenum.ARRAY_BUFFER, vbo)
	gl.BufferData(glenum.ARRAY_BUFFER, 6*4, glenum.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, glenum.FLOAT, false, 0, 0)

	// A small checker texture, so the trace carries an image snapshot.
	checker := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			if (x+y)%2 == 0 {
				checker.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			} else {
				checker.SetNRGBA(x, y, color.NRGBA{40, 40, 40, 255})
			}
		}
	}
	tex := gl.CreateTexture()
	gl.BindTexture(glenum.TEXTURE_2D, tex)
	gl.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGBA, glenum.RGBA, glenum.UNSIGNED_BYTE, softgl.NewImage(checker))

	gl.Enable(glenum.BLEND)
	gl.BlendFunc(glenum.SRC_ALPHA, glenum.ONE_MINUS_SRC_ALPHA)

	return &demoScene{gl: gl, color: gl.GetUniformLocation(prog, "color"), vbo: vbo}, nil
}

// frame draws a triangle rotated by frame i over a slowly shifting background.
func (s *demoScene) frame(i int) {
	gl := s.gl
	t := float64(i) / 8
	gl.ClearColor(0.1, 0.15+float32(math.Sin(t))*0.05, 0.3, 1)
	gl.Clear(glenum.COLOR_BUFFER_BIT)

	verts := make([]float32, 0, 6)
	for k := range 3 {
		a := t + float64(k)*2*math.Pi/3
		verts = append(verts, float32(0.8*math.Cos(a)), float32(0.8*math.Sin(a)))
	}
	gl.BufferSubData(glenum.ARRAY_BUFFER, 0, verts)
	gl.Uniform4f(s.color, 1, 0.6, 0.1, 0.9)
	gl.DrawArrays(glenum.TRIANGLES, 0, 3)
}
