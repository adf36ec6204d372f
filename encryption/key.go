package encryption

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyIterations is the PBKDF2 round count used by [DeriveKey].
	KeyIterations = 100000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the number of random bytes in a salt, before hex encoding.
	SaltSize = 16

	// IVSize is the number of random bytes in a CBC initialisation vector.
	IVSize = 16
)

// DeriveKey turns password and salt into a 256-bit AES key with
// PBKDF2-HMAC-SHA256 and [KeyIterations] rounds.
//
// salt is the hex text stored in the envelope; its characters (not the
// decoded bytes) are the PBKDF2 salt input.  The result is deterministic for
// a given password and salt.  Empty passwords are accepted.
//
// Example:
//
//	salt, _ := encryption.GenerateSalt()
//	key := encryption.DeriveKey("correct horse battery staple", salt)
func DeriveKey(password, salt string) []byte {
	return DeriveKeyWithIterations(password, salt, KeyIterations)
}

// DeriveKeyWithIterations is [DeriveKey] with an explicit round count.
func DeriveKeyWithIterations(password, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, KeySize, sha256.New)
}

// GenerateSalt returns the hex encoding of [SaltSize] bytes read from
// crypto/rand.
func GenerateSalt() (string, error) {
	return randomHex(defaultRandom, SaltSize)
}

// randomHex reads n bytes from r and returns them hex encoded.
func randomHex(r io.Reader, n int) (string, error) {
	b, err := randomBytes(r, n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// randomBytes returns n bytes read from r.
// It is used internally for salt and IV generation.
func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("encryption: failed to generate %d random bytes: %w", n, err)
	}
	return b, nil
}
