package engine

import "github.com/hasbyte1/go-stego/pixel"

// LSB overwrites the least significant bit of the R, G and B samples of each
// pixel in buffer order.
//
// Capacity is one bit per available pixel even though each pixel offers
// three slots.
type LSB struct{}

// Algorithm implements [Engine].
func (LSB) Algorithm() Algorithm { return AlgorithmLSB }

// Capacity implements [Engine].
func (LSB) Capacity(buf *pixel.Buffer, from int) int {
	return available(buf, from)
}

// Embed implements [Engine].
func (e LSB) Embed(buf *pixel.Buffer, from int, bits []uint8) error {
	if err := checkTarget(buf, from); err != nil {
		return err
	}
	if c := e.Capacity(buf, from); len(bits) > c {
		return capacityError(AlgorithmLSB, len(bits), c)
	}
	pix := buf.Pix
	i := 0
	for p := from * pixel.Channels; p < len(pix) && i < len(bits); p += pixel.Channels {
		for j := 0; j < 3 && i < len(bits); j++ {
			pix[p+j] = setLSB(pix[p+j], bits[i])
			i++
		}
	}
	return nil
}

// Extract implements [Engine].
func (LSB) Extract(buf *pixel.Buffer, from int, n int) []uint8 {
	if checkTarget(buf, from) != nil || n <= 0 {
		return nil
	}
	pix := buf.Pix
	bits := make([]uint8, 0, min(n, 3*available(buf, from)))
	for p := from * pixel.Channels; p < len(pix) && len(bits) < n; p += pixel.Channels {
		for j := 0; j < 3 && len(bits) < n; j++ {
			bits = append(bits, pix[p+j]&1)
		}
	}
	return bits
}
