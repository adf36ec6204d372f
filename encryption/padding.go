package encryption

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// pkcs7Pad returns a copy of src padded to a whole number of AES blocks.
// A full block of padding is added when src is already block aligned.
func pkcs7Pad(src []byte) []byte {
	n := aes.BlockSize - len(src)%aes.BlockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	copy(out[len(src):], bytes.Repeat([]byte{byte(n)}, n))
	return out
}

// pkcs7Unpad strips the padding added by [pkcs7Pad].
//
// A wrong key reaches this function, since nothing authenticates the
// ciphertext first.  Every failure wraps [ErrDecryptionFailed]; the
// plaintext checksum decides correctness.
func pkcs7Unpad(src []byte) ([]byte, error) {
	switch {
	case len(src) == 0:
		return nil, fmt.Errorf("%w: no plaintext blocks", ErrDecryptionFailed)
	case len(src)%aes.BlockSize != 0:
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of blocks", ErrDecryptionFailed, len(src))
	}

	n := int(src[len(src)-1])
	if n < 1 || n > aes.BlockSize {
		return nil, fmt.Errorf("%w: pad length %d out of range", ErrDecryptionFailed, n)
	}
	body, pad := src[:len(src)-n], src[len(src)-n:]
	if !bytes.Equal(pad, bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrDecryptionFailed)
	}
	return body, nil
}
