package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"
)

// checksumSize is the SHA-256 digest length in bytes.
const checksumSize = sha256.Size

var defaultRandom io.Reader = rand.Reader

// Option is a functional option for configuring a [Codec].
type Option func(*codecOptions)

type codecOptions struct {
	iterations int
	random     io.Reader
}

// WithIterations overrides the PBKDF2 round count.  The default is
// [KeyIterations]; lowering it weakens brute-force resistance and is meant for
// tests.  Envelopes are only decryptable by a codec using the same count.
func WithIterations(n int) Option {
	return func(o *codecOptions) { o.iterations = n }
}

// WithRandom replaces crypto/rand as the source of salts and IVs.
func WithRandom(r io.Reader) Option {
	return func(o *codecOptions) { o.random = r }
}

// Codec encrypts plaintext into an [Envelope] and back.
//
// # Threat model
//
//   - A fresh random salt and IV are generated for every [Codec.Encrypt] call,
//     so encrypting the same plaintext twice yields unrelated envelopes.
//   - There is no MAC over the ciphertext; integrity rests on the plaintext
//     checksum, compared with [crypto/subtle.ConstantTimeCompare].
//   - Decryption never returns partial plaintext.
//
// A Codec holds no key material and is safe for concurrent use.
type Codec struct {
	opts codecOptions
}

// NewCodec constructs a [Codec] and applies functional options such as
// [WithIterations].
func NewCodec(opts ...Option) *Codec {
	c := &Codec{opts: codecOptions{iterations: KeyIterations, random: defaultRandom}}
	for _, o := range opts {
		o(&c.opts)
	}
	return c
}

// Iterations returns the PBKDF2 round count used by the codec.
func (c *Codec) Iterations() int { return c.opts.iterations }

// Encrypt encrypts plaintext under a key derived from password.
//
// The only failure mode is an exhausted or broken random source, or a
// codec configured with a non-positive iteration count.
func (c *Codec) Encrypt(plaintext, password string) (*Envelope, error) {
	if c.opts.iterations <= 0 {
		return nil, ErrInvalidIterations
	}

	// Step 1: fresh salt and IV.
	salt, err := randomHex(c.opts.random, SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := randomBytes(c.opts.random, IVSize)
	if err != nil {
		return nil, err
	}

	// Step 2: derive the key.
	key := DeriveKeyWithIterations(password, salt, c.opts.iterations)

	// Step 3: PKCS#7-pad and encrypt with AES-CBC.
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encryption: failed to create AES cipher: %w", err)
	}
	padded := pkcs7Pad([]byte(plaintext))
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	// Step 4: checksum the plaintext and assemble the envelope.
	return &Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:       salt,
		IV:         hex.EncodeToString(iv),
		Checksum:   Checksum(plaintext),
	}, nil
}

// Decrypt recovers the plaintext sealed in env.
//
// Possible errors: [ErrMalformedEnvelope], [ErrDecryptionFailed],
// [ErrIntegrityFailure].
func (c *Codec) Decrypt(env *Envelope, password string) (string, error) {
	if c.opts.iterations <= 0 {
		return "", ErrInvalidIterations
	}
	if err := env.validate(); err != nil {
		return "", err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not base64", ErrMalformedEnvelope)
	}
	iv, err := hex.DecodeString(env.IV)
	if err != nil || len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv must be %d hex-encoded bytes", ErrMalformedEnvelope, IVSize)
	}

	key := DeriveKeyWithIterations(password, env.Salt, c.opts.iterations)
	plaintext, err := decryptCBC(ciphertext, iv, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: result is not valid text", ErrDecryptionFailed)
	}

	text := string(plaintext)
	if !VerifyChecksum(text, env.Checksum) {
		return "", ErrIntegrityFailure
	}
	return text, nil
}

// DecryptJSON is a convenience wrapper that parses the JSON wire form before
// calling [Codec.Decrypt].
func (c *Codec) DecryptJSON(raw []byte, password string) (string, error) {
	env, err := ParseEnvelope(raw)
	if err != nil {
		return "", err
	}
	return c.Decrypt(env, password)
}

// Checksum returns the hex-encoded SHA-256 digest of s.
func Checksum(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum reports whether sum is the checksum of s.
// The comparison runs in constant time.
func VerifyChecksum(s, sum string) bool {
	return subtle.ConstantTimeCompare([]byte(Checksum(s)), []byte(sum)) == 1
}

// decryptCBC performs the raw AES-CBC decryption and strips PKCS#7 padding.
func decryptCBC(ciphertext, iv, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encryption: failed to create AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return pkcs7Unpad(plaintext)
}
