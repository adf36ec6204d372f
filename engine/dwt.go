package engine

import "github.com/hasbyte1/go-stego/pixel"

// DWT embeds one bit per colour channel in each 2×2 block, walking blocks
// with a stride of two in both axes.
//
// For each of R, G and B the four block samples are averaged, the average's
// least significant bit is replaced with the payload bit, and the result is
// stored in the block's top-left pixel.  Extraction reads the top-left
// pixel's least significant bits only; the average is not recomputed.
//
// Only blocks that lie fully inside the image and whose top-left pixel index
// is at least from are used.
type DWT struct{}

// Algorithm implements [Engine].
func (DWT) Algorithm() Algorithm { return AlgorithmDWT }

// Capacity implements [Engine].  It is the smaller of three bits per usable
// block and half a bit per available pixel.
func (DWT) Capacity(buf *pixel.Buffer, from int) int {
	if checkTarget(buf, from) != nil {
		return 0
	}
	blocks := 0
	forEachBlock(buf, from, func(int, int, int, int) bool {
		blocks++
		return true
	})
	return min(3*blocks, available(buf, from)/2)
}

// Embed implements [Engine].
func (e DWT) Embed(buf *pixel.Buffer, from int, bits []uint8) error {
	if err := checkTarget(buf, from); err != nil {
		return err
	}
	if c := e.Capacity(buf, from); len(bits) > c {
		return capacityError(AlgorithmDWT, len(bits), c)
	}
	pix := buf.Pix
	i := 0
	forEachBlock(buf, from, func(tl, tr, bl, br int) bool {
		for j := 0; j < 3 && i < len(bits); j++ {
			sum := int(pix[tl+j]) + int(pix[tr+j]) + int(pix[bl+j]) + int(pix[br+j])
			pix[tl+j] = setLSB(uint8(sum/4), bits[i])
			i++
		}
		return i < len(bits)
	})
	return nil
}

// Extract implements [Engine].
func (DWT) Extract(buf *pixel.Buffer, from int, n int) []uint8 {
	if checkTarget(buf, from) != nil || n <= 0 {
		return nil
	}
	pix := buf.Pix
	var bits []uint8
	forEachBlock(buf, from, func(tl, _, _, _ int) bool {
		for j := 0; j < 3 && len(bits) < n; j++ {
			bits = append(bits, pix[tl+j]&1)
		}
		return len(bits) < n
	})
	return bits
}

// forEachBlock calls fn with the sample offsets of the four pixels of every
// usable 2×2 block, top-left first, until fn returns false.
func forEachBlock(buf *pixel.Buffer, from int, fn func(tl, tr, bl, br int) bool) {
	for y := 0; y+1 < buf.Height; y += 2 {
		for x := 0; x+1 < buf.Width; x += 2 {
			if y*buf.Width+x < from {
				continue
			}
			tl := buf.Offset(x, y)
			if !fn(tl, tl+pixel.Channels, buf.Offset(x, y+1), buf.Offset(x+1, y+1)) {
				return
			}
		}
	}
}
