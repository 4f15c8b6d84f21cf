// Package snapshot encodes still images of visual sources as data URLs and
// decodes them back.
//
// Capture produces PNG by default. Decode understands every format
// registered with the image package; importing snapshot registers PNG,
// JPEG, GIF, BMP, TIFF and WebP.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrNotDataURL is returned by Decode for input that is not a base64 data URL.
var ErrNotDataURL = errors.New("snapshot: not a base64 data URL")

// ErrUnknownFormat is returned for an encoding format with no encoder.
var ErrUnknownFormat = errors.New("snapshot: unknown format")

// Format is an image encoding Capture can produce.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	GIF  Format = "gif"
)

// MIMEType returns the media type written into the data URL.
func (f Format) MIMEType() string {
	return "image/" + string(f)
}

func (f Format) encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case GIF:
		return gif.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Capture encodes img as a PNG data URL.
func Capture(img image.Image) (string, error) {
	return CaptureAs(img, PNG)
}

// CaptureAs encodes img as a data URL in the given format.
func CaptureAs(img image.Image, f Format) (string, error) {
	if img == nil {
		return "", errors.New("snapshot: nil image")
	}
	var buf bytes.Buffer
	if err := f.encode(&buf, img); err != nil {
		return "", fmt.Errorf("snapshot: encode %s: %w", f, err)
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(f.MIMEType()) + base64.StdEncoding.EncodedLen(buf.Len()))
	b.WriteString("data:")
	b.WriteString(f.MIMEType())
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return b.String(), nil
}

// Decode parses a data URL and decodes the image it carries.
// It returns the image and the format name reported by the decoder.
func Decode(dataURL string) (image.Image, string, error) {
	payload, err := Payload(dataURL)
	if err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("snapshot: decode: %w", err)
	}
	return img, format, nil
}

// DecodeRGBA decodes a data URL into a fresh RGBA image, the layout
// texture uploads read from.
func DecodeRGBA(dataURL string) (*image.RGBA, error) {
	img, _, err := Decode(dataURL)
	if err != nil {
		return nil, err
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba, nil
}

// Payload returns the decoded bytes of a base64 data URL.
func Payload(dataURL string) ([]byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, ErrNotDataURL
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrNotDataURL
	}
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDataURL, err)
	}
	return payload, nil
}
