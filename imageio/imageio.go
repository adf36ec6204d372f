// Package imageio reads and writes carrier images as [pixel.Buffer] values.
//
// Only lossless formats are supported.  A lossy re-encode (JPEG, WebP)
// rewrites the least significant bits and destroys any hidden payload, so
// such formats are rejected with [ErrUnsupportedFormat].
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/hasbyte1/go-stego/pixel"
)

// Format names a supported image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ErrUnsupportedFormat is returned for encodings other than PNG and BMP.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format, use PNG or BMP")

// Decode reads a PNG or BMP image into a new buffer and reports its format.
func Decode(r io.Reader) (*pixel.Buffer, Format, error) {
	img, name, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, "", ErrUnsupportedFormat
	}
	if err != nil {
		return nil, "", fmt.Errorf("imageio: failed to decode image: %w", err)
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	return pixel.FromImage(img), f, nil
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *pixel.Buffer, f Format) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	var err error
	switch f {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, buf.Image())
	case FormatBMP:
		err = bmp.Encode(w, buf.Image())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: failed to encode %s: %w", f, err)
	}
	return nil
}

// ParseFormat maps a format or extension name ("png", ".BMP") to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(name), ".")) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath derives the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
