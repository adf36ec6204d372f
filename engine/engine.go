package engine

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-stego/pixel"
)

// Algorithm identifies an embedding engine.
type Algorithm string

const (
	// AlgorithmLSB selects the [LSB] engine.
	AlgorithmLSB Algorithm = "lsb"
	// AlgorithmPVD selects the [PVD] engine.
	AlgorithmPVD Algorithm = "pvd"
	// AlgorithmDWT selects the [DWT] engine.
	AlgorithmDWT Algorithm = "dwt"
)

// Algorithms lists the built-in algorithms in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmLSB, AlgorithmPVD, AlgorithmDWT}
}

// ParseAlgorithm validates a user-supplied algorithm name.  Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AlgorithmLSB, AlgorithmPVD, AlgorithmDWT:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Engine is the interface satisfied by all embedding algorithms.
//
// All implementations must be safe for concurrent use on distinct buffers.
type Engine interface {
	// Algorithm returns the name implemented by this engine.
	Algorithm() Algorithm

	// Capacity returns the maximum number of bits Embed accepts for buf
	// when writing starts at pixel from.
	Capacity(buf *pixel.Buffer, from int) int

	// Embed writes bits into buf starting at pixel from.  It returns
	// [ErrCapacityExceeded] without touching buf when the bits do not fit.
	Embed(buf *pixel.Buffer, from int, bits []uint8) error

	// Extract reads up to n bits from buf starting at pixel from, in the
	// order Embed wrote them.  It returns fewer bits when the buffer runs out.
	Extract(buf *pixel.Buffer, from int, n int) []uint8
}

// checkTarget validates buf and from before an engine touches the samples.
func checkTarget(buf *pixel.Buffer, from int) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if from < 0 || from > buf.Pixels() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, from, buf.Pixels())
	}
	return nil
}

// available returns the number of pixels at or after from.
func available(buf *pixel.Buffer, from int) int {
	if buf == nil || from < 0 {
		return 0
	}
	n := buf.Pixels() - from
	if n < 0 {
		return 0
	}
	return n
}

func capacityError(a Algorithm, bits, capacity int) error {
	return fmt.Errorf("%w: %d bits requested, %s capacity is %d bits", ErrCapacityExceeded, bits, a, capacity)
}

// setLSB replaces the least significant bit of v with bit.
func setLSB(v, bit uint8) uint8 { return v&^1 | bit&1 }
