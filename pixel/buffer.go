// Package pixel defines the mutable RGBA sample buffer that the embedding
// engines read and write.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Channels is the number of samples stored per pixel (R, G, B, A).
const Channels = 4

// ErrInvalidBuffer is returned when a buffer's dimensions and sample slice
// disagree.
var ErrInvalidBuffer = errors.New("pixel: invalid buffer")

// Buffer is a flat, row-major sequence of 8-bit samples in R,G,B,A order.
//
// The layout is the same as [image.NRGBA] with a stride of 4*Width, so a
// Buffer can be viewed as an image without copying via [Buffer.Image].
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed buffer of the given size.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Buffer{Width: width, Height: height, Pix: make([]uint8, width*height*Channels)}
}

// NewFilled allocates a buffer with every pixel set to c.
func NewFilled(width, height int, c [4]uint8) *Buffer {
	b := New(width, height)
	for i := 0; i < len(b.Pix); i += Channels {
		copy(b.Pix[i:i+Channels], c[:])
	}
	return b
}

// FromImage copies img into a new buffer.  [image.NRGBA] sources are copied
// sample for sample; other colour models are converted to
// non-premultiplied RGBA, so fully opaque images keep their exact samples.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok {
		b := New(bounds.Dx(), bounds.Dy())
		rowLen := bounds.Dx() * Channels
		for y := 0; y < b.Height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.Pix[y*rowLen:(y+1)*rowLen], src.Pix[i:i+rowLen])
		}
		return b
	}
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &Buffer{Width: bounds.Dx(), Height: bounds.Dy(), Pix: dst.Pix}
}

// Image returns an [image.NRGBA] that shares b's samples.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * Channels,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Validate reports whether the dimensions match the sample slice.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if want := b.Width * b.Height * Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d samples, got %d",
			ErrInvalidBuffer, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// Pixels returns the number of pixels in the buffer.
func (b *Buffer) Pixels() int { return len(b.Pix) / Channels }

// Offset returns the index of the first sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int { return (y*b.Width + x) * Channels }

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}
