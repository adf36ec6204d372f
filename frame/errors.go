package frame

import "errors"

// Sentinel errors returned by frame operations.
var (
	// ErrNoHiddenMessage is returned when a frame separator cannot be found.
	// The image most likely carries no payload, or it was written with a
	// different algorithm.
	ErrNoHiddenMessage = errors.New("frame: no hidden message found in this image")

	// ErrMalformedFrame is returned when both separators are present but the
	// metadata record or the length trailer cannot be read.
	ErrMalformedFrame = errors.New("frame: hidden data is damaged or incomplete")

	// ErrSeparatorCollision is returned by [Build] when a field contains one
	// of the separator tokens.
	ErrSeparatorCollision = errors.New("frame: field contains a separator token")

	// ErrNoHeader is returned by [ParseHeader] when the bytes do not start
	// with a valid header.
	ErrNoHeader = errors.New("frame: no frame header")
)
