package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gogpu/glrr/trace"
)

// zstdMagic starts every bundle file.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// readTrace reads a bundle, or raw trace text wrapped in a bundle whose
// metadata is filled from the decoded recording.
func readTrace(path string) (*trace.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, zstdMagic) {
		return trace.ReadBundle(bytes.NewReader(data))
	}

	pages := []string{string(data)}
	rec, err := trace.Decode(pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := trace.NewBundle(rec, pages, path)
	return b, nil
}

func writeTrace(path string, b *trace.Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.WriteBundle(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
