package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/hasbyte1/go-stego/engine"
)

const (
	// HeaderSize is the encoded header length in bytes.
	HeaderSize = 8

	// HeaderBits is the encoded header length in bits.
	HeaderBits = HeaderSize * 8

	// HeaderPixels is the number of leading pixels reserved for the header.
	// The header is written three bits per pixel, so payload engines start
	// at this pixel index.
	HeaderPixels = (HeaderBits + 2) / 3

	headerVersion = 1
)

var headerMagic = [2]byte{'S', 'G'}

// Header is the fixed-width record written in front of every frame.  It is
// always stored with the LSB slot layout so it can be read before the
// payload algorithm is known.
//
// Layout:
//
//	magic "SG" (2 bytes) | version (1) | algorithm id (1) | frame bits (uint32, big-endian)
type Header struct {
	Algorithm engine.Algorithm
	FrameBits uint32
}

var algorithmIDs = map[engine.Algorithm]byte{
	engine.AlgorithmLSB: 1,
	engine.AlgorithmPVD: 2,
	engine.AlgorithmDWT: 3,
}

// Marshal encodes h.  Only the built-in algorithms have an id.
func (h Header) Marshal() ([]byte, error) {
	id, ok := algorithmIDs[h.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no header id", engine.ErrUnknownAlgorithm, h.Algorithm)
	}
	b := make([]byte, HeaderSize)
	copy(b, headerMagic[:])
	b[2] = headerVersion
	b[3] = id
	binary.BigEndian.PutUint32(b[4:], h.FrameBits)
	return b, nil
}

// ParseHeader decodes a header from the first [HeaderSize] bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrNoHeader
	}
	if b[0] != headerMagic[0] || b[1] != headerMagic[1] || b[2] != headerVersion {
		return Header{}, ErrNoHeader
	}
	for alg, id := range algorithmIDs {
		if id == b[3] {
			return Header{Algorithm: alg, FrameBits: binary.BigEndian.Uint32(b[4:])}, nil
		}
	}
	return Header{}, fmt.Errorf("%w: unknown algorithm id %d", ErrNoHeader, b[3])
}
