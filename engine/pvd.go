package engine

import "github.com/hasbyte1/go-stego/pixel"

// PVDThreshold is the exclusive upper bound on |r-g| + |g-b| + |b-r| for a
// pixel to carry bits.
const PVDThreshold = 50

// PVD embeds like [LSB] but only in low-contrast pixels, where a change of
// one in a channel is least visible.
//
// Eligibility is evaluated on the samples with their least significant bit
// cleared.  Embedding only changes that bit, so a pixel is eligible on read
// exactly when it was eligible on write.
type PVD struct{}

// Algorithm implements [Engine].
func (PVD) Algorithm() Algorithm { return AlgorithmPVD }

// Capacity implements [Engine].  It is the smaller of 1.5 bits per available
// pixel and three bits per eligible pixel.
func (PVD) Capacity(buf *pixel.Buffer, from int) int {
	if checkTarget(buf, from) != nil {
		return 0
	}
	eligible := 0
	for p := from * pixel.Channels; p < len(buf.Pix); p += pixel.Channels {
		if pvdEligible(buf.Pix[p:]) {
			eligible++
		}
	}
	return min(available(buf, from)*3/2, 3*eligible)
}

// Embed implements [Engine].
func (e PVD) Embed(buf *pixel.Buffer, from int, bits []uint8) error {
	if err := checkTarget(buf, from); err != nil {
		return err
	}
	if c := e.Capacity(buf, from); len(bits) > c {
		return capacityError(AlgorithmPVD, len(bits), c)
	}
	pix := buf.Pix
	i := 0
	for p := from * pixel.Channels; p < len(pix) && i < len(bits); p += pixel.Channels {
		if !pvdEligible(pix[p:]) {
			continue
		}
		for j := 0; j < 3 && i < len(bits); j++ {
			pix[p+j] = setLSB(pix[p+j], bits[i])
			i++
		}
	}
	return nil
}

// Extract implements [Engine].
func (PVD) Extract(buf *pixel.Buffer, from int, n int) []uint8 {
	if checkTarget(buf, from) != nil || n <= 0 {
		return nil
	}
	pix := buf.Pix
	var bits []uint8
	for p := from * pixel.Channels; p < len(pix) && len(bits) < n; p += pixel.Channels {
		if !pvdEligible(pix[p:]) {
			continue
		}
		for j := 0; j < 3 && len(bits) < n; j++ {
			bits = append(bits, pix[p+j]&1)
		}
	}
	return bits
}

// pvdEligible reports whether the pixel starting at px[0] may carry bits.
func pvdEligible(px []uint8) bool {
	r, g, b := int(px[0]&^1), int(px[1]&^1), int(px[2]&^1)
	return abs(r-g)+abs(g-b)+abs(b-r) < PVDThreshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
