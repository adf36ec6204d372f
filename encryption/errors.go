package encryption

import "errors"

// Sentinel errors returned by envelope operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := codec.Decrypt(env, password)
//	if errors.Is(err, encryption.ErrDecryptionFailed) {
//	    // wrong password or corrupted data
//	}
var (
	// ErrMalformedEnvelope is returned when an envelope is not valid JSON, is
	// missing one of its four fields, or carries a field that cannot be
	// decoded (bad base64/hex, wrong IV length).
	ErrMalformedEnvelope = errors.New("encryption: malformed envelope")

	// ErrDecryptionFailed is returned when AES-CBC decryption cannot produce
	// valid text: the ciphertext length is not a multiple of the block size,
	// the PKCS#7 padding is malformed, or the result is not valid UTF-8.
	// Wrong passwords and corrupted ciphertext are deliberately not told apart.
	ErrDecryptionFailed = errors.New("encryption: invalid password or corrupted data")

	// ErrIntegrityFailure is returned when decryption succeeded structurally
	// but the SHA-256 checksum of the recovered plaintext does not match the
	// checksum carried in the envelope.
	ErrIntegrityFailure = errors.New("encryption: integrity check failed, data may be corrupted")

	// ErrInvalidIterations is returned when a non-positive PBKDF2 iteration
	// count is configured.
	ErrInvalidIterations = errors.New("encryption: iteration count must be positive")
)
