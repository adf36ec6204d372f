// Package frame builds and parses the text structure that is bit-packed into
// the carrier image.
//
// A frame is
//
//	metadata "|||META|||" envelope "|||MSG|||" decimal-plaintext-length
//
// where metadata is a fixed-layout JSON record ([Metadata]) and envelope is
// the JSON wire form of an encryption envelope.  Neither JSON form can
// contain "|", so the separators are unambiguous.
//
// A frame is preceded in the image by a fixed-width [Header] that names the
// algorithm and the frame length, so a reader never has to guess either.
package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-stego/encryption"
	"github.com/hasbyte1/go-stego/engine"
)

const (
	// MetadataSeparator ends the metadata record.
	MetadataSeparator = "|||META|||"

	// MessageSeparator ends the envelope.
	MessageSeparator = "|||MSG|||"
)

// legacyMetadataTemplate is the smallest metadata record a header-less
// writer produced; it sizes [LegacyBudgetBits].
const legacyMetadataTemplate = `{"algorithm":"lsb","originalLength":0,"encryptedLength":0}`

// LegacyBudgetBits is the number of bits read from images written without a
// header.  Those frames carry no length, so readers take a fixed budget that
// allows up to 500 envelope characters and a ten-digit length.
const LegacyBudgetBits = 8 * (len(legacyMetadataTemplate) + len(MetadataSeparator) + 500 + len(MessageSeparator) + 10)

// Metadata is the record at the start of every frame.  Fields are encoded in
// declaration order; unknown fields are rejected on parse.
type Metadata struct {
	Algorithm       engine.Algorithm `json:"algorithm"`
	OriginalLength  int              `json:"originalLength"`
	EncryptedLength int              `json:"encryptedLength"`
}

// Marshal returns the compact JSON form of m.
func (m Metadata) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Build assembles the frame text.
//
// It fails with [ErrSeparatorCollision] if the metadata or envelope text
// contains a separator token.
func Build(meta Metadata, envelope []byte, plaintextLen int) (string, error) {
	rawMeta, err := meta.Marshal()
	if err != nil {
		return "", fmt.Errorf("frame: failed to encode metadata: %w", err)
	}
	for _, field := range [][]byte{rawMeta, envelope} {
		if bytes.Contains(field, []byte(MetadataSeparator)) || bytes.Contains(field, []byte(MessageSeparator)) {
			return "", ErrSeparatorCollision
		}
	}

	var b strings.Builder
	b.Grow(len(rawMeta) + len(MetadataSeparator) + len(envelope) + len(MessageSeparator) + 10)
	b.Write(rawMeta)
	b.WriteString(MetadataSeparator)
	b.Write(envelope)
	b.WriteString(MessageSeparator)
	b.WriteString(strconv.Itoa(plaintextLen))
	return b.String(), nil
}

// Parsed holds the fields recovered from a frame.
type Parsed struct {
	Metadata Metadata

	// Envelope is the raw envelope text between the separators.
	Envelope []byte

	// LengthText is the run of decimal digits after the message separator.
	// Bytes after the digits are ignored: readers of header-less images
	// always over-read.
	LengthText string

	// Length is LengthText as an integer, or -1 if it overflows an int.
	Length int
}

// Parse splits frame text into its fields.
//
// A missing separator yields [ErrNoHiddenMessage]; an unreadable metadata
// record or missing length yields [ErrMalformedFrame].
func Parse(text string) (*Parsed, error) {
	metaEnd := strings.Index(text, MetadataSeparator)
	if metaEnd < 0 {
		return nil, ErrNoHiddenMessage
	}
	envStart := metaEnd + len(MetadataSeparator)
	msgEnd := strings.Index(text[envStart:], MessageSeparator)
	if msgEnd < 0 {
		return nil, ErrNoHiddenMessage
	}
	msgEnd += envStart

	meta, err := parseMetadata(text[:metaEnd])
	if err != nil {
		return nil, err
	}

	rest := text[msgEnd+len(MessageSeparator):]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return nil, fmt.Errorf("%w: missing length trailer", ErrMalformedFrame)
	}
	length, err := strconv.Atoi(rest[:digits])
	if err != nil {
		length = -1
	}

	return &Parsed{
		Metadata:   meta,
		Envelope:   []byte(text[envStart:msgEnd]),
		LengthText: rest[:digits],
		Length:     length,
	}, nil
}

func parseMetadata(s string) (Metadata, error) {
	var m Metadata
	dec := json.NewDecoder(strings.NewReader(s))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Metadata{}, fmt.Errorf("%w: metadata: %v", ErrMalformedFrame, err)
	}
	if dec.More() {
		return Metadata{}, fmt.Errorf("%w: trailing data after metadata", ErrMalformedFrame)
	}
	if m.Algorithm == "" {
		return Metadata{}, fmt.Errorf("%w: metadata names no algorithm", ErrMalformedFrame)
	}
	return m, nil
}

// Size returns the exact frame text length for a plaintext of plaintextLen
// bytes written with alg.
func Size(plaintextLen int, alg engine.Algorithm) int {
	envLen := encryption.EnvelopeSize(plaintextLen)
	rawMeta, _ := Metadata{
		Algorithm:       alg,
		OriginalLength:  plaintextLen,
		EncryptedLength: envLen,
	}.Marshal()
	return len(rawMeta) + len(MetadataSeparator) + envLen + len(MessageSeparator) + len(strconv.Itoa(plaintextLen))
}
