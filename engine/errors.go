package engine

import "errors"

// Sentinel errors returned by engine operations.
var (
	// ErrCapacityExceeded is returned by Embed when the bitstream does not fit
	// the buffer under the engine's capacity policy.  The buffer is not
	// modified.
	ErrCapacityExceeded = errors.New("engine: message too large for selected image, try a larger image or shorter message")

	// ErrUnknownAlgorithm is returned when an algorithm name is not
	// recognised or not registered.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrEmptyAlgorithm is returned by [Registry.Register] when the supplied
	// algorithm name is empty.
	ErrEmptyAlgorithm = errors.New("engine: algorithm name must not be empty")

	// ErrNilEngine is returned by [Registry.Register] when a nil [Engine] is
	// supplied.
	ErrNilEngine = errors.New("engine: engine must not be nil")

	// ErrInvalidOffset is returned when the from pixel index lies outside the
	// buffer.
	ErrInvalidOffset = errors.New("engine: pixel offset out of range")
)
