package trace

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/glrr/recording"
)

// BundleVersion is the bundle layout written by WriteBundle.
const BundleVersion = 1

// Meta describes a bundled trace.
type Meta struct {
	ID      string    `cbor:"id"`
	Created time.Time `cbor:"created"`
	Frames  int       `cbor:"frames"`
	Calls   int       `cbor:"calls"`
	Source  string    `cbor:"source,omitempty"`
}

// Bundle is a self-describing trace file: metadata plus the trace pages,
// stored as canonical CBOR inside a zstd stream.
type Bundle struct {
	Version int      `cbor:"v"`
	Meta    Meta     `cbor:"meta"`
	Pages   []string `cbor:"pages"`
}

var bundleEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	bundleEncMode = em
}

// NewBundle wraps encoded pages of rec with fresh metadata.
func NewBundle(rec *recording.Recording, pages []string, source string) *Bundle {
	return &Bundle{
		Version: BundleVersion,
		Meta: Meta{
			ID:      uuid.NewString(),
			Created: time.Now().UTC(),
			Frames:  rec.FrameCount(),
			Calls:   rec.CallCount(),
			Source:  source,
		},
		Pages: pages,
	}
}

// WriteBundle writes b to w.
func WriteBundle(w io.Writer, b *Bundle) error {
	data, err := bundleEncMode.Marshal(b)
	if err != nil {
		return fmt.Errorf("trace: marshal bundle: %w", err)
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("trace: bundle compressor: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("trace: write bundle: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("trace: write bundle: %w", err)
	}
	return nil
}

// ReadBundle reads a bundle written by WriteBundle.
func ReadBundle(r io.Reader) (*Bundle, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("trace: bundle decompressor: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("trace: read bundle: %w", err)
	}
	var b Bundle
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("trace: unmarshal bundle: %w", err)
	}
	if b.Version != BundleVersion {
		return nil, fmt.Errorf("trace: unsupported bundle version %d", b.Version)
	}
	return &b, nil
}
