package replay

import (
	"errors"
	"testing"

	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/remap"
	"github.com/gogpu/glrr/trace"
)

type fakeObj struct{ n int }

type fakeImage struct{ data string }

type fakeCtx struct {
	attrs   map[string]any
	created int
	bound   []*fakeObj
	drawn   []*fakeImage
	used    []any
}

func (c *fakeCtx) CreateTexture() *fakeObj {
	c.created++
	return &fakeObj{n: c.created}
}

func (c *fakeCtx) BindTexture(_ uint32, tex *fakeObj) {
	c.bound = append(c.bound, tex)
}

func (c *fakeCtx) GetUniformIndices(_ *fakeObj, names []string) []*fakeObj {
	out := make([]*fakeObj, len(names))
	for i := range names {
		out[i] = &fakeObj{n: 100 + i}
	}
	return out
}

func (c *fakeCtx) Use(obj any) {
	c.used = append(c.used, obj)
}

func (c *fakeCtx) DrawImage(img *fakeImage) {
	c.drawn = append(c.drawn, img)
}

func (c *fakeCtx) Fail() error {
	return errors.New("device lost")
}

type fakeCanvas struct {
	w, h int
	ctx  *fakeCtx
}

func (c *fakeCanvas) GetContext(_ string, attrs map[string]any) *fakeCtx {
	if c.ctx == nil {
		c.ctx = &fakeCtx{attrs: attrs}
	}
	return c.ctx
}

type fakeHost struct {
	canvases []*fakeCanvas
	images   []*fakeImage
}

func (h *fakeHost) NewCanvas(w, ht int) (any, error) {
	c := &fakeCanvas{w: w, h: ht}
	h.canvases = append(h.canvases, c)
	return c, nil
}

func (h *fakeHost) NewImage(data string) (any, error) {
	img := &fakeImage{data: data}
	h.images = append(h.images, img)
	return img, nil
}

var (
	canvasID = remap.ID{Kind: "HTMLCanvasElement", N: 1}
	ctxID    = remap.ID{Kind: "WebGLRenderingContext", N: 2}
	texID    = remap.ID{Kind: "WebGLTexture", N: 3}
	tex2D    = pickle.Enum{Name: "TEXTURE_2D", Value: 0x0DE1}
)

func getContext(args ...pickle.Value) recording.Call {
	return recording.Call{Object: canvasID, Method: "getContext", Args: args, Ret: pickle.Ref{ID: ctxID}}
}

func bindTexture(id remap.ID) recording.Call {
	return recording.Call{Object: ctxID, Method: "bindTexture", Args: []pickle.Value{tex2D, pickle.Ref{ID: id}}}
}

func newRecording(frames ...recording.Frame) *recording.Recording {
	return &recording.Recording{
		Canvases:  []recording.CanvasDescriptor{{ID: canvasID, Width: 64, Height: 32}},
		Snapshots: map[uint64]recording.Snapshot{},
		Frames:    frames,
	}
}

func TestIdentityRebinding(t *testing.T) {
	rec := newRecording(
		recording.Frame{
			getContext(pickle.String("webgl")),
			{Object: ctxID, Method: "createTexture", Args: []pickle.Value{}, Ret: pickle.Ref{ID: texID}},
			bindTexture(texID),
			bindTexture(texID),
			bindTexture(texID),
		},
		recording.Frame{bindTexture(texID)},
	)

	host := &fakeHost{}
	s, err := New(rec).NewSession(host)
	if err != nil {
		t.Fatal(err)
	}
	if len(host.canvases) != 1 || host.canvases[0].w != 64 || host.canvases[0].h != 32 {
		t.Fatalf("host canvases = %+v, want one 64x32 canvas", host.canvases)
	}

	for i, want := range []bool{true, true, false} {
		more, err := s.NextFrame()
		if err != nil {
			t.Fatalf("NextFrame() #%d error = %v", i, err)
		}
		if more != want {
			t.Errorf("NextFrame() #%d = %v, want %v", i, more, want)
		}
	}

	ctx := host.canvases[0].ctx
	if ctx.created != 1 {
		t.Errorf("created = %d, want 1", ctx.created)
	}
	if len(ctx.bound) != 4 {
		t.Fatalf("bound %d textures, want 4", len(ctx.bound))
	}
	for i, tex := range ctx.bound {
		if tex == nil || tex != ctx.bound[0] {
			t.Errorf("bindTexture #%d got %p, want %p", i, tex, ctx.bound[0])
		}
	}
	if got, _ := s.Resolve(ctxID); got != ctx {
		t.Errorf("Resolve(ctx) = %v, want the live context", got)
	}
}

func TestNextCall(t *testing.T) {
	rec := newRecording(
		recording.Frame{getContext(pickle.String("webgl"))},
		recording.Frame{},
		recording.Frame{{Object: ctxID, Method: "createTexture", Args: []pickle.Value{}, Ret: pickle.Ref{ID: texID}}},
	)
	s, err := New(rec).NewSession(&fakeHost{})
	if err != nil {
		t.Fatal(err)
	}

	type pos struct{ frame, call int }
	wantPos := []pos{{1, 0}, {3, 0}}
	for i, want := range wantPos {
		more, err := s.NextCall()
		if err != nil || !more {
			t.Fatalf("NextCall() #%d = %v, %v", i, more, err)
		}
		if f, c := s.Pos(); f != want.frame || c != want.call {
			t.Errorf("Pos() after call %d = (%d, %d), want (%d, %d)", i, f, c, want.frame, want.call)
		}
	}
	if more, err := s.NextCall(); more || err != nil {
		t.Errorf("NextCall() at end = %v, %v, want false, nil", more, err)
	}
	if !s.Done() {
		t.Error("Done() = false after last call")
	}
}

func TestEmptyFrames(t *testing.T) {
	rec := newRecording(
		recording.Frame{getContext(pickle.String("webgl"))},
		recording.Frame{},
		recording.Frame{},
	)
	s, _ := New(rec).NewSession(&fakeHost{})
	for i := range 3 {
		if more, err := s.NextFrame(); !more || err != nil {
			t.Fatalf("NextFrame() #%d = %v, %v, want true", i, more, err)
		}
	}
	if more, _ := s.NextFrame(); more {
		t.Error("NextFrame() after last frame = true")
	}
}

func TestSetPos(t *testing.T) {
	rec := newRecording(
		recording.Frame{getContext(pickle.String("webgl")), bindTexture(texID)},
	)
	s, _ := New(rec).NewSession(&fakeHost{})

	tests := []struct {
		frame, call int
		ok          bool
	}{
		{0, 0, true},
		{0, 2, true},
		{1, 0, true},
		{0, 3, false},
		{2, 0, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		err := s.SetPos(tt.frame, tt.call)
		if (err == nil) != tt.ok {
			t.Errorf("SetPos(%d, %d) error = %v, want ok=%v", tt.frame, tt.call, err, tt.ok)
		}
		if err != nil && !errors.Is(err, ErrPosition) {
			t.Errorf("SetPos(%d, %d) error = %v, want ErrPosition", tt.frame, tt.call, err)
		}
	}

	// Starting past getContext leaves the context unbound.
	_ = s.SetPos(0, 1)
	if _, err := s.NextCall(); !errors.Is(err, remap.ErrMissingHandle) {
		t.Errorf("NextCall() error = %v, want ErrMissingHandle", err)
	}
}

func TestPreserveDrawingBuffer(t *testing.T) {
	tests := []struct {
		name string
		args []pickle.Value
		want map[string]any
	}{
		{"no attributes", []pickle.Value{pickle.String("webgl")}, map[string]any{"preserveDrawingBuffer": true}},
		{"null attributes", []pickle.Value{pickle.String("webgl"), pickle.Null{}}, map[string]any{"preserveDrawingBuffer": true}},
		{"kept attributes", []pickle.Value{pickle.String("webgl"), pickle.Record{
			"alpha":                 pickle.Bool(false),
			"preserveDrawingBuffer": pickle.Bool(false),
		}}, map[string]any{"alpha": false, "preserveDrawingBuffer": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{}
			s, _ := New(newRecording(recording.Frame{getContext(tt.args...)})).NewSession(host)
			if _, err := s.NextCall(); err != nil {
				t.Fatal(err)
			}
			attrs := host.canvases[0].ctx.attrs
			if len(attrs) != len(tt.want) {
				t.Fatalf("attrs = %v, want %v", attrs, tt.want)
			}
			for k, v := range tt.want {
				if attrs[k] != v {
					t.Errorf("attrs[%q] = %v, want %v", k, attrs[k], v)
				}
			}
		})
	}
}

func TestBulkLookup(t *testing.T) {
	prog := remap.ID{Kind: "WebGLProgram", N: 5}
	loc := func(n uint64) pickle.Ref { return pickle.Ref{ID: remap.ID{Kind: "WebGLUniformLocation", N: n}} }
	lookup := func(ret pickle.Seq) recording.Call {
		return recording.Call{
			Object: ctxID, Method: "getUniformIndices",
			Args: []pickle.Value{pickle.Ref{ID: prog}, pickle.Seq{pickle.String("a"), pickle.String("b")}},
			Ret:  ret,
		}
	}
	setup := func(ret pickle.Seq) *Session {
		rec := newRecording(recording.Frame{
			getContext(pickle.String("webgl")),
			{Object: ctxID, Method: "createTexture", Args: []pickle.Value{}, Ret: pickle.Ref{ID: prog}},
			lookup(ret),
		})
		s, err := New(rec).NewSession(&fakeHost{})
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	s := setup(pickle.Seq{loc(6), loc(7)})
	if _, err := s.NextFrame(); err != nil {
		t.Fatalf("NextFrame() error = %v", err)
	}
	for i, n := range []uint64{6, 7} {
		got, err := s.Resolve(remap.ID{N: n})
		if err != nil {
			t.Fatalf("Resolve(%d) error = %v", n, err)
		}
		if obj, ok := got.(*fakeObj); !ok || obj.n != 100+i {
			t.Errorf("Resolve(%d) = %v, want element %d", n, got, i)
		}
	}

	s = setup(pickle.Seq{loc(6), loc(7), loc(8)})
	if _, err := s.NextFrame(); !errors.Is(err, ErrReturnMismatch) {
		t.Errorf("NextFrame() error = %v, want ErrReturnMismatch", err)
	}
}

func TestMissingHandle(t *testing.T) {
	ghost := remap.ID{Kind: "WebGLTexture", N: 9}
	ghostCtx := remap.ID{Kind: "WebGLRenderingContext", N: 8}
	rec := newRecording(recording.Frame{
		getContext(pickle.String("webgl")),
		bindTexture(ghost),
		{Object: ghostCtx, Method: "bindTexture", Args: []pickle.Value{tex2D, pickle.Null{}}},
		{Object: ctxID, Method: "use", Args: []pickle.Value{pickle.Ref{ID: ghost}}},
	})

	s, _ := New(rec).NewSession(&fakeHost{})
	if _, err := s.NextFrame(); !errors.Is(err, remap.ErrMissingHandle) {
		t.Errorf("strict NextFrame() error = %v, want ErrMissingHandle", err)
	}

	host := &fakeHost{}
	s, _ = New(rec).NewSession(host, WithRelaxedRemap())
	if _, err := s.NextFrame(); err != nil {
		t.Fatalf("relaxed NextFrame() error = %v", err)
	}
	bound := host.canvases[0].ctx.bound
	if len(bound) != 1 || bound[0] != nil {
		t.Errorf("bound = %v, want one nil texture and the unresolved target skipped", bound)
	}
	used := host.canvases[0].ctx.used
	if len(used) != 1 || used[0] != (remap.Unresolved{ID: ghost}) {
		t.Errorf("used = %v, want the Unresolved sentinel for %v", used, ghost)
	}
}

func TestSnapshotsBound(t *testing.T) {
	imgID := remap.ID{Kind: "HTMLImageElement", N: 4}
	rec := newRecording(recording.Frame{
		getContext(pickle.String("webgl")),
		{Object: ctxID, Method: "drawImage", Args: []pickle.Value{pickle.Ref{ID: imgID}}},
	})
	rec.Snapshots[4] = recording.Snapshot{ID: imgID, Data: "data:image/png;base64,AA=="}

	host := &fakeHost{}
	s, err := New(rec).NewSession(host)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.NextFrame(); err != nil {
		t.Fatal(err)
	}
	drawn := host.canvases[0].ctx.drawn
	if len(host.images) != 1 || len(drawn) != 1 || drawn[0] != host.images[0] {
		t.Errorf("drawn = %v, want the snapshot image", drawn)
	}
	if drawn[0].data != "data:image/png;base64,AA==" {
		t.Errorf("image data = %q", drawn[0].data)
	}
}

func TestCallError(t *testing.T) {
	rec := newRecording(recording.Frame{
		getContext(pickle.String("webgl")),
		{Object: ctxID, Method: "fail", Args: []pickle.Value{}},
	})
	s, _ := New(rec).NewSession(&fakeHost{})
	_, err := s.NextFrame()
	if err == nil || err.Error() != "replay: frame 0 call 1 (fail): device lost" {
		t.Errorf("NextFrame() error = %v", err)
	}
	if f, c := s.Pos(); f != 0 || c != 1 {
		t.Errorf("Pos() after failure = (%d, %d), want (0, 1)", f, c)
	}
}

func TestLoad(t *testing.T) {
	rec := newRecording(
		recording.Frame{getContext(pickle.String("webgl")), bindTexture(texID)},
		recording.Frame{},
	)
	pages, err := trace.Encode(rec)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Load(pages)
	if err != nil {
		t.Fatal(err)
	}
	if r.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, want 2", r.FrameCount())
	}
	if got := r.Canvases(); len(got) != 1 || got[0] != rec.Canvases[0] {
		t.Errorf("Canvases() = %v, want %v", got, rec.Canvases)
	}

	if _, err := Load([]string{"{"}); !errors.Is(err, trace.ErrUnexpectedEOF) {
		t.Errorf("Load(truncated) error = %v, want ErrUnexpectedEOF", err)
	}
}
