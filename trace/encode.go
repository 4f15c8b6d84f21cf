package trace

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/glenum"
	"github.com/gogpu/glrr/pickle"
	"github.com/gogpu/glrr/recording"
)

// Option configures encoding.
type Option func(*options)

type options struct {
	pageSize int
	maxChars int
}

func defaultOptions() options {
	return options{pageSize: DefaultPageSize, maxChars: MaxChars}
}

// WithPageSize sets the size at which a new page is started. Values that
// do not fit are never split, so a page may exceed it.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithMaxChars sets the character budget checked by Export and Dump.
func WithMaxChars(n int) Option {
	return func(o *options) { o.maxChars = n }
}

// Encode writes rec as trace pages. Non-ASCII characters are escaped, so
// the byte and character counts of the result agree. A recording that
// carries a capture error is refused with ErrIncomplete.
func Encode(rec *recording.Recording, opts ...Option) ([]string, error) {
	if rec.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncomplete, rec.Err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &pageWriter{size: o.pageSize}
	if err := encodeRecording(w, rec); err != nil {
		return nil, err
	}
	return w.finish(), nil
}

// Export encodes rec and logs its size. A trace over the character budget
// is still returned; the overrun is logged as a warning.
func Export(rec *recording.Recording, opts ...Option) ([]string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()
	pages, err := Encode(rec, opts...)
	if err != nil {
		return nil, err
	}

	total := Len(pages)
	log := glrr.Logger()
	log.Info("trace: exported",
		"frames", rec.FrameCount(),
		"calls", rec.CallCount(),
		"pages", len(pages),
		"size", humanize.IBytes(uint64(total)),
		"elapsed", time.Since(start))
	if total > o.maxChars {
		log.Warn("trace: length exceeds max char count",
			"chars", total, "max", o.maxChars, "size", humanize.IBytes(uint64(total)))
	}
	return pages, nil
}

// Dump encodes rec and writes it to w. Unlike Export it refuses traces
// over the character budget.
func Dump(w io.Writer, rec *recording.Recording, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pages, err := Encode(rec, opts...)
	if err != nil {
		return err
	}
	if total := Len(pages); total > o.maxChars {
		return fmt.Errorf("%w: %d chars (%s), max %d", ErrTooLarge, total, humanize.IBytes(uint64(total)), o.maxChars)
	}
	for _, p := range pages {
		if _, err := io.WriteString(w, p); err != nil {
			return fmt.Errorf("trace: dump: %w", err)
		}
	}
	return nil
}

// Len returns the total length of pages.
func Len(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(p)
	}
	return n
}

// Join concatenates pages. Use it only for traces known to be small.
func Join(pages []string) string {
	return strings.Join(pages, "")
}

func encodeRecording(w *pageWriter, rec *recording.Recording) error {
	w.WriteString("{\n  \"canvases\": [")
	for i, c := range rec.Canvases {
		if i > 0 {
			w.WriteString(",")
		}
		w.WriteString("\n    {\"remapId\":")
		writeRef(w, c.ID.Kind, c.ID.N)
		w.WriteString(",\"width\":" + strconv.Itoa(c.Width) + ",\"height\":" + strconv.Itoa(c.Height) + "}")
	}

	w.WriteString("\n  ],\n  \"snapshots\": {")
	for i, id := range rec.SnapshotIDs() {
		if i > 0 {
			w.WriteString(",")
		}
		snap := rec.Snapshots[id]
		key := snap.ID
		key.N = id
		w.WriteString("\n    ")
		if err := writeString(w, key.String()); err != nil {
			return err
		}
		w.WriteString(": ")
		if err := writeString(w, snap.Data); err != nil {
			return err
		}
	}

	w.WriteString("\n  },\n  \"frames\": [")
	for i, frame := range rec.Frames {
		if i > 0 {
			w.WriteString(",")
		}
		w.WriteString("\n    [")
		for j, call := range frame {
			if j > 0 {
				w.WriteString(",")
			}
			w.WriteString("\n      ")
			if err := writeCall(w, call); err != nil {
				return fmt.Errorf("trace: frame %d call %d (%s): %w", i, j, call.Method, err)
			}
		}
		w.WriteString("\n    ]")
	}
	w.WriteString("\n  ]\n}")
	return nil
}

func writeCall(w *pageWriter, c recording.Call) error {
	w.WriteString("[")
	if err := writeString(w, c.Object.String()); err != nil {
		return err
	}
	w.WriteString(",")
	if err := writeString(w, c.Method); err != nil {
		return err
	}
	w.WriteString(",[")
	for i, a := range c.Args {
		if i > 0 {
			w.WriteString(",")
		}
		if err := writeValue(w, a); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	w.WriteString("]")
	if c.Ret != nil {
		w.WriteString(",")
		if err := writeValue(w, c.Ret); err != nil {
			return fmt.Errorf("return: %w", err)
		}
	}
	w.WriteString("]")
	return nil
}

func writeValue(w *pageWriter, v pickle.Value) error {
	switch x := v.(type) {
	case pickle.Null:
		w.WriteString("null")
	case pickle.Bool:
		w.WriteString(strconv.FormatBool(bool(x)))
	case pickle.Int:
		w.WriteString(strconv.FormatInt(int64(x), 10))
	case pickle.Float:
		writeFloat(w, float64(x))
	case pickle.String:
		s := string(x)
		if glenum.IsSymbol(s) {
			w.WriteString(`{"` + tagKey + `":["` + tagString + `",`)
			if err := writeString(w, s); err != nil {
				return err
			}
			w.WriteString("]}")
			return nil
		}
		return writeString(w, s)
	case pickle.Enum:
		w.WriteString(`"` + glenum.Prefix + x.Name + `"`)
	case pickle.Seq:
		w.WriteString("[")
		for i, e := range x {
			if i > 0 {
				w.WriteString(",")
			}
			if err := writeValue(w, e); err != nil {
				return err
			}
		}
		w.WriteString("]")
	case pickle.Ref:
		writeRef(w, x.ID.Kind, x.ID.N)
	case pickle.Blob:
		w.WriteString(`{"` + tagKey + `":["` + string(x.View) + `","`)
		w.WriteString(x.Hex())
		w.WriteString(`"]}`)
	case pickle.Record:
		w.WriteString("{")
		for i, k := range x.Keys() {
			if i > 0 {
				w.WriteString(",")
			}
			if err := writeString(w, k); err != nil {
				return err
			}
			w.WriteString(":")
			if err := writeValue(w, x[k]); err != nil {
				return fmt.Errorf(".%s: %w", k, err)
			}
		}
		w.WriteString("}")
	default:
		return fmt.Errorf("%w: %T", pickle.ErrUnhandledShape, v)
	}
	return nil
}

func writeRef(w *pageWriter, kind string, n uint64) {
	w.WriteString(`{"` + tagKey + `":["` + tagRemapID + `",`)
	_ = writeString(w, kind)
	w.WriteString("," + strconv.FormatUint(n, 10) + "]}")
}

// writeFloat keeps a decimal point or exponent on every finite float so it
// decodes as a float again. Non-finite values are tagged.
func writeFloat(w *pageWriter, f float64) {
	switch {
	case math.IsNaN(f):
		w.WriteString(`{"` + tagKey + `":["` + tagFloat + `","NaN"]}`)
	case math.IsInf(f, 1):
		w.WriteString(`{"` + tagKey + `":["` + tagFloat + `","Infinity"]}`)
	case math.IsInf(f, -1):
		w.WriteString(`{"` + tagKey + `":["` + tagFloat + `","-Infinity"]}`)
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		w.WriteString(s)
	}
}

func writeString(w *pageWriter, s string) error {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return fmt.Errorf("trace: encode string: %w", err)
	}
	w.WriteString(string(b))
	return nil
}

// pageWriter accumulates output and cuts a page whenever the current one
// reaches size.
type pageWriter struct {
	size  int
	pages []string
	cur   strings.Builder
}

func (w *pageWriter) WriteString(s string) {
	w.cur.WriteString(escapeNonASCII(s))
	if w.cur.Len() >= w.size {
		w.flush()
	}
}

func (w *pageWriter) flush() {
	if w.cur.Len() > 0 {
		w.pages = append(w.pages, w.cur.String())
		w.cur.Reset()
	}
}

func (w *pageWriter) finish() []string {
	w.flush()
	return w.pages
}

// escapeNonASCII rewrites every non-ASCII character as a \uXXXX escape,
// using surrogate pairs above the basic plane. It only ever sees string
// literal content, where such escapes are valid.
func escapeNonASCII(s string) string {
	i := 0
	for i < len(s) && s[i] < utf8.RuneSelf {
		i++
	}
	if i == len(s) {
		return s
	}

	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(s) + 16)
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			continue
		}
		units := []rune{r}
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			units = []rune{r1, r2}
		}
		for _, u := range units {
			b.WriteString(`\u`)
			b.WriteByte(hexDigits[u>>12&0xF])
			b.WriteByte(hexDigits[u>>8&0xF])
			b.WriteByte(hexDigits[u>>4&0xF])
			b.WriteByte(hexDigits[u&0xF])
		}
	}
	return b.String()
}
