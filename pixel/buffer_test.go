package pixel_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hasbyte1/go-stego/pixel"
)

func TestNew_Size(t *testing.T) {
	b := pixel.New(3, 2)
	if len(b.Pix) != 24 || b.Pixels() != 6 {
		t.Fatalf("got %d samples / %d pixels", len(b.Pix), b.Pixels())
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestNewFilled(t *testing.T) {
	b := pixel.NewFilled(2, 2, [4]uint8{1, 2, 3, 255})
	for i := 0; i < len(b.Pix); i += 4 {
		if b.Pix[i] != 1 || b.Pix[i+1] != 2 || b.Pix[i+2] != 3 || b.Pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v", i/4, b.Pix[i:i+4])
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		buf  *pixel.Buffer
	}{
		{"nil", nil},
		{"negative", &pixel.Buffer{Width: -1, Height: 1}},
		{"short", &pixel.Buffer{Width: 2, Height: 2, Pix: make([]uint8, 15)}},
		{"long", &pixel.Buffer{Width: 1, Height: 1, Pix: make([]uint8, 8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.buf.Validate(); !errors.Is(err, pixel.ErrInvalidBuffer) {
				t.Fatalf("got %v, want ErrInvalidBuffer", err)
			}
		})
	}
}

func TestFromImage_ImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(7, 6, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	b := pixel.FromImage(src)
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("size %dx%d, want 3x2", b.Width, b.Height)
	}
	if got := b.Pix[b.Offset(0, 0) : b.Offset(0, 0)+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("pixel (0,0) = %v", got)
	}

	img := b.Image()
	if c := img.NRGBAAt(2, 1); c.R != 200 || c.G != 100 || c.B != 50 {
		t.Fatalf("pixel (2,1) = %v", c)
	}

	// Image shares storage with the buffer.
	b.Pix[0] = 11
	if img.NRGBAAt(0, 0).R != 11 {
		t.Fatal("Image must share the buffer's samples")
	}
}

func TestClone_Independent(t *testing.T) {
	a := pixel.New(2, 2)
	c := a.Clone()
	c.Pix[0] = 9
	if a.Pix[0] != 0 {
		t.Fatal("Clone must not share samples")
	}
}

func TestFromImage_TranslucentNRGBAExact(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 11, G: 23, B: 37, A: 3})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 1, B: 128, A: 0})

	b := pixel.FromImage(src)
	want := []uint8{11, 23, 37, 3, 255, 1, 128, 0}
	for i, v := range want {
		if b.Pix[i] != v {
			t.Fatalf("Pix = %v, want %v", b.Pix, want)
		}
	}

	b.Pix[0] = 0
	if src.Pix[0] != 11 {
		t.Fatal("FromImage must copy samples")
	}
}

func TestFromImage_ConvertsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	b := pixel.FromImage(src)
	if b.Pix[0] != 1 || b.Pix[1] != 2 || b.Pix[2] != 3 || b.Pix[3] != 255 {
		t.Fatalf("Pix = %v", b.Pix)
	}
}
