package frame_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/frame"
)

func TestHeader_RoundTrip(t *testing.T) {
	for _, alg := range engine.Algorithms() {
		h := frame.Header{Algorithm: alg, FrameBits: 123456}
		raw, err := h.Marshal()
		if err != nil {
			t.Fatal(err)
		}
		if len(raw) != frame.HeaderSize {
			t.Fatalf("header is %d bytes", len(raw))
		}
		got, err := frame.ParseHeader(raw)
		if err != nil {
			t.Fatal(err)
		}
		if got != h {
			t.Fatalf("got %+v, want %+v", got, h)
		}
	}
}

func TestHeader_Constants(t *testing.T) {
	if frame.HeaderBits != 64 || frame.HeaderPixels != 22 {
		t.Fatalf("HeaderBits=%d HeaderPixels=%d", frame.HeaderBits, frame.HeaderPixels)
	}
}

func TestHeader_MarshalUnknownAlgorithm(t *testing.T) {
	_, err := frame.Header{Algorithm: "custom"}.Marshal()
	if !errors.Is(err, engine.ErrUnknownAlgorithm) {
		t.Fatalf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestParseHeader_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"short", []byte{'S', 'G', 1}},
		{"bad magic", []byte{'S', 'H', 1, 1, 0, 0, 0, 8}},
		{"bad version", []byte{'S', 'G', 2, 1, 0, 0, 0, 8}},
		{"bad algorithm", []byte{'S', 'G', 1, 9, 0, 0, 0, 8}},
		{"zeros", make([]byte, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := frame.ParseHeader(tt.raw); !errors.Is(err, frame.ErrNoHeader) {
				t.Fatalf("got %v, want ErrNoHeader", err)
			}
		})
	}
}
