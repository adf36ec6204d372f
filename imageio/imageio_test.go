package imageio_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/hasbyte1/go-stego/imageio"
	"github.com/hasbyte1/go-stego/pixel"
)

// gradient returns an opaque buffer with varied samples, including odd
// values, so LSBs are exercised.
func gradient(w, h int) *pixel.Buffer {
	buf := pixel.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := buf.Offset(x, y)
			buf.Pix[o] = uint8(x * 7)
			buf.Pix[o+1] = uint8(y*13 + 1)
			buf.Pix[o+2] = uint8(x*y + 3)
			buf.Pix[o+3] = 255
		}
	}
	return buf
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []imageio.Format{imageio.FormatPNG, imageio.FormatBMP} {
		t.Run(string(f), func(t *testing.T) {
			src := gradient(17, 9)
			var out bytes.Buffer
			if err := imageio.Encode(&out, src, f); err != nil {
				t.Fatal(err)
			}
			got, format, err := imageio.Decode(&out)
			if err != nil {
				t.Fatal(err)
			}
			if format != f {
				t.Errorf("format = %s, want %s", format, f)
			}
			if got.Width != src.Width || got.Height != src.Height {
				t.Fatalf("size = %dx%d", got.Width, got.Height)
			}
			if !bytes.Equal(got.Pix, src.Pix) {
				t.Fatal("samples changed across encode/decode")
			}
		})
	}
}

func TestPNG_PreservesTranslucentSamples(t *testing.T) {
	src := pixel.NewFilled(4, 4, [4]uint8{11, 22, 33, 128})
	var out bytes.Buffer
	if err := imageio.Encode(&out, src, imageio.FormatPNG); err != nil {
		t.Fatal(err)
	}
	got, _, err := imageio.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Fatalf("got %v, want %v", got.Pix[:4], src.Pix[:4])
	}
}

func TestDecode_Unsupported(t *testing.T) {
	var out bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	if err := gif.Encode(&out, img, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, err := imageio.Decode(&out); !errors.Is(err, imageio.ErrUnsupportedFormat) {
		t.Fatalf("gif: got %v, want ErrUnsupportedFormat", err)
	}
	if _, _, err := imageio.Decode(bytes.NewReader([]byte("not an image"))); !errors.Is(err, imageio.ErrUnsupportedFormat) {
		t.Fatalf("garbage: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncode_Errors(t *testing.T) {
	var out bytes.Buffer
	if err := imageio.Encode(&out, gradient(2, 2), "jpeg"); !errors.Is(err, imageio.ErrUnsupportedFormat) {
		t.Errorf("jpeg: got %v", err)
	}
	if err := imageio.Encode(&out, nil, imageio.FormatPNG); !errors.Is(err, pixel.ErrInvalidBuffer) {
		t.Errorf("nil buffer: got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want imageio.Format
		ok   bool
	}{
		{"out.png", imageio.FormatPNG, true},
		{"/tmp/Carrier.PNG", imageio.FormatPNG, true},
		{"image.bmp", imageio.FormatBMP, true},
		{"photo.jpg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := imageio.FormatFromPath(tt.path)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
		if !tt.ok && !errors.Is(err, imageio.ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) err = %v", tt.path, err)
		}
	}
}
