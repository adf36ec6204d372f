// Package stego hides password-protected text messages inside the pixel
// samples of an image and recovers them.
//
// # Overview
//
// [Stego.Encode] encrypts a message with a password, wraps the envelope in a
// text frame and writes the frame's bits into a [pixel.Buffer] with one of
// the registered embedding engines.  [Stego.Decode] reverses the process.
// The buffer is modified in place; callers that need the original should
// [pixel.Buffer.Clone] it first.
//
// Every image written by this package starts with a small fixed-layout
// header (see [frame.Header]) stored in the least significant bits of the
// first pixels.  The header names the algorithm and the exact frame length,
// so decoding never depends on out-of-band hints.  Images written by older
// tools carry no header; Decode falls back to a fixed-size LSB read for
// those.
//
// # Quick start
//
//	s := stego.New()
//
//	if _, err := s.Encode(ctx, buf, "meet at noon", "Tr0ub4dor&3", engine.AlgorithmLSB); err != nil {
//	    // errors.Is(err, stego.ErrCapacityExceeded) when the image is too small
//	}
//
//	res, err := s.Decode(ctx, buf, "Tr0ub4dor&3")
//	if err != nil {
//	    fmt.Println(stego.FailureReason(err))
//	}
//	fmt.Println(res.Message)
//
// # Errors
//
// Capacity and parsing failures are reported precisely.  Decryption
// failures are not: a wrong password and corrupted ciphertext both yield
// [ErrDecryptionFailed] so that the error does not help an attacker.
//
// # Capacity
//
// [EstimateCapacity] is a quick advisory figure for UIs.
// [Stego.MaxMessageLength] is exact: a message of that many bytes fits the
// buffer and one more byte does not.
package stego
