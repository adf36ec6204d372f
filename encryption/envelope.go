package encryption

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Envelope is the JSON structure produced by [Codec.Encrypt].
//
// Consumers should treat this type as read-only; use [Codec.Decrypt] to
// obtain the plaintext.
type Envelope struct {
	// Ciphertext is the base64-encoded AES-256-CBC ciphertext.
	Ciphertext string `json:"ciphertext"`

	// Salt is the hex-encoded PBKDF2 salt (16 bytes, 32 hex characters).
	Salt string `json:"salt"`

	// IV is the hex-encoded CBC initialisation vector (16 bytes).
	IV string `json:"iv"`

	// Checksum is the hex-encoded SHA-256 digest of the plaintext.
	Checksum string `json:"checksum"`
}

// Marshal serialises e to its JSON wire form.
func (e *Envelope) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseEnvelope decodes the JSON wire form of an envelope.
//
// It only checks that raw is a JSON object; field presence is checked by
// [Codec.Decrypt] so that a missing field and a corrupted one report the
// same way.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil, ErrMalformedEnvelope
	}
	var e Envelope
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return nil, ErrMalformedEnvelope
	}
	return &e, nil
}

// validate checks that all four fields are present.
func (e *Envelope) validate() error {
	if e == nil || e.Ciphertext == "" || e.Salt == "" || e.IV == "" || e.Checksum == "" {
		return ErrMalformedEnvelope
	}
	return nil
}

// EnvelopeSize returns the exact length in bytes of the serialised envelope
// for a plaintext of plaintextLen bytes.  Salt, IV and checksum have fixed
// widths and the ciphertext is always one to sixteen bytes longer than the
// plaintext, so the size does not depend on the message content.
func EnvelopeSize(plaintextLen int) int {
	if plaintextLen < 0 {
		plaintextLen = 0
	}
	padded := (plaintextLen/aes.BlockSize + 1) * aes.BlockSize
	e := Envelope{
		Ciphertext: strings.Repeat("A", base64.StdEncoding.EncodedLen(padded)),
		Salt:       strings.Repeat("0", 2*SaltSize),
		IV:         strings.Repeat("0", 2*IVSize),
		Checksum:   strings.Repeat("0", 2*checksumSize),
	}
	raw, _ := e.Marshal()
	return len(raw)
}
