// Package bitstream converts byte strings to sequences of single bits and back.
//
// A bit is stored as a uint8 holding 0 or 1.  Each byte contributes eight
// bits, most-significant first, in input order.
package bitstream

// Pack returns the bits of s, eight per byte, most-significant bit first.
//
// Packing works on bytes, so text outside ASCII round-trips as its UTF-8
// encoding.
func Pack(s string) []uint8 {
	return PackBytes([]byte(s))
}

// PackBytes is [Pack] for a byte slice.
func PackBytes(b []byte) []uint8 {
	bits := make([]uint8, 0, len(b)*8)
	for _, c := range b {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (c>>uint(shift))&1)
		}
	}
	return bits
}

// Unpack reassembles bits into a string, consuming eight bits per byte.
// A trailing fragment shorter than eight bits is dropped.  Any non-zero
// value counts as a 1 bit.
func Unpack(bits []uint8) string {
	return string(UnpackBytes(bits))
}

// UnpackBytes is [Unpack] returning a byte slice.
func UnpackBytes(bits []uint8) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var c byte
		for _, bit := range bits[i*8 : i*8+8] {
			c <<= 1
			if bit != 0 {
				c |= 1
			}
		}
		out[i] = c
	}
	return out
}

// Len returns the number of bits [Pack] produces for a string of n bytes.
func Len(n int) int { return n * 8 }
