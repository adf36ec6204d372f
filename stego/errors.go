package stego

import (
	"errors"

	"github.com/hasbyte1/go-stego/encryption"
	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/frame"
	"github.com/hasbyte1/go-stego/pixel"
)

// Sentinel errors returned by stego operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := s.Decode(ctx, buf, password)
//	if errors.Is(err, stego.ErrNoHiddenMessage) {
//	    // the image carries no payload
//	}
var (
	// ErrEmptyMessage is returned by Encode when the message is empty.
	ErrEmptyMessage = errors.New("stego: message must not be empty")

	// ErrEmptyPassword is returned when the password is empty.
	ErrEmptyPassword = errors.New("stego: password must not be empty")

	// ErrWeakPassword is returned by [CheckPassword].
	ErrWeakPassword = errors.New("stego: password is too weak")
)

// Error kinds raised by the lower layers, re-exported so callers only need
// this package.
var (
	ErrCapacityExceeded  = engine.ErrCapacityExceeded
	ErrUnknownAlgorithm  = engine.ErrUnknownAlgorithm
	ErrMalformedEnvelope = encryption.ErrMalformedEnvelope
	ErrDecryptionFailed  = encryption.ErrDecryptionFailed
	ErrIntegrityFailure  = encryption.ErrIntegrityFailure
	ErrNoHiddenMessage   = frame.ErrNoHiddenMessage
	ErrMalformedFrame    = frame.ErrMalformedFrame
	ErrInvalidBuffer     = pixel.ErrInvalidBuffer
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrEmptyMessage, "Please enter a message to hide"},
	{ErrEmptyPassword, "Please enter a password"},
	{ErrCapacityExceeded, "Message too large for selected image. Try a larger image or shorter message."},
	{ErrUnknownAlgorithm, "Unknown steganography algorithm"},
	{ErrNoHiddenMessage, "No hidden message found in this image"},
	{ErrMalformedFrame, "Hidden data is damaged or incomplete"},
	{ErrMalformedEnvelope, "Invalid encrypted data format"},
	{ErrDecryptionFailed, "Invalid password or corrupted data"},
	{ErrIntegrityFailure, "Data integrity check failed, the data may be corrupted"},
	{ErrInvalidBuffer, "Invalid image data"},
}

// FailureReason returns the user-facing text for err.  Unrecognised errors
// report their own message; nil reports "".
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return err.Error()
}
