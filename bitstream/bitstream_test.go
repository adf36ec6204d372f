package bitstream_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-stego/bitstream"
)

func TestPack_MSBFirst(t *testing.T) {
	got := bitstream.Pack("A") // 0x41
	want := []uint8{0, 1, 0, 0, 0, 0, 0, 1}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack(\"A\") = %v, want %v", got, want)
	}
}

func TestPack_Order(t *testing.T) {
	got := bitstream.PackBytes([]byte{0xff, 0x00, 0x80})
	want := []uint8{
		1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnpack_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "Hello", "|||META|||", "\x00\xff", "日本語"} {
		if got := bitstream.Unpack(bitstream.Pack(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestUnpack_DropsTrailingFragment(t *testing.T) {
	bits := append(bitstream.Pack("Hi"), 1, 0, 1)
	if got := bitstream.Unpack(bits); got != "Hi" {
		t.Fatalf("got %q, want %q", got, "Hi")
	}
	if got := bitstream.Unpack([]uint8{1, 1, 1}); got != "" {
		t.Fatalf("short input gave %q, want empty", got)
	}
}

func TestUnpack_NonZeroIsOne(t *testing.T) {
	if got := bitstream.UnpackBytes([]uint8{0, 7, 0, 0, 0, 0, 0, 9}); got[0] != 0x41 {
		t.Fatalf("got %#x, want 0x41", got[0])
	}
}

func TestLen(t *testing.T) {
	if bitstream.Len(5) != len(bitstream.Pack("Hello")) {
		t.Fatal("Len disagrees with Pack")
	}
}

func FuzzUnpack(f *testing.F) {
	f.Add([]byte("Hello"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		if got := bitstream.UnpackBytes(bitstream.PackBytes(data)); !bytes.Equal(got, data) {
			t.Fatalf("round trip mismatch: %x != %x", got, data)
		}
	})
}
