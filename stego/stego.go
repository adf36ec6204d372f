package stego

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/hasbyte1/go-stego/bitstream"
	"github.com/hasbyte1/go-stego/encryption"
	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/frame"
	"github.com/hasbyte1/go-stego/history"
	"github.com/hasbyte1/go-stego/pixel"
)

// Stego encodes and decodes hidden messages.
//
// A Stego holds no per-call state; it is safe for concurrent use as long as
// each call works on its own buffer.
type Stego struct {
	opts options
}

// New creates a [Stego].  Without options it uses all three built-in
// engines with LSB as the default, the standard PBKDF2 iteration count, no
// history and no logging.
func New(opts ...Option) *Stego {
	o := options{
		registry: engine.NewDefaultRegistry(),
		codec:    encryption.NewCodec(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Stego{opts: o}
}

// Registry returns the engine registry in use.
func (s *Stego) Registry() *engine.Registry { return s.opts.registry }

// Result is a successfully decoded message.
type Result struct {
	Message  string
	Metadata frame.Metadata

	// Algorithm is the engine the payload was read with.
	Algorithm engine.Algorithm

	// Legacy is true when the image had no header and was read with the
	// fixed-budget LSB fallback.
	Legacy bool
}

// Encode hides message in buf, protected by password, using alg.  An empty
// alg selects the registry default.
//
// Capacity is checked before any sample is written, so on error buf is
// unchanged.  On success the same buffer is returned.
func (s *Stego) Encode(ctx context.Context, buf *pixel.Buffer, message, password string, alg engine.Algorithm) (*pixel.Buffer, error) {
	used, frameBits, err := s.encode(ctx, buf, message, password, alg)

	s.opts.logger.DebugContext(ctx, "stego: encode",
		slog.String("algorithm", string(used)),
		slog.Int("message_bytes", len(message)),
		slog.Int("frame_bits", frameBits),
		slog.Bool("success", err == nil),
		slog.Any("error", err),
	)
	s.record(ctx, history.Entry{
		Operation:     history.OperationEncode,
		Algorithm:     used,
		MessageLength: len(message),
	}, buf, err)

	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Stego) encode(ctx context.Context, buf *pixel.Buffer, message, password string, alg engine.Algorithm) (engine.Algorithm, int, error) {
	if err := ctx.Err(); err != nil {
		return alg, 0, err
	}
	if err := buf.Validate(); err != nil {
		return alg, 0, err
	}
	if message == "" {
		return alg, 0, ErrEmptyMessage
	}
	if password == "" {
		return alg, 0, ErrEmptyPassword
	}
	eng, err := s.opts.registry.Resolve(alg)
	if err != nil {
		return alg, 0, err
	}
	alg = eng.Algorithm()

	env, err := s.opts.codec.Encrypt(message, password)
	if err != nil {
		return alg, 0, err
	}
	rawEnv, err := env.Marshal()
	if err != nil {
		return alg, 0, fmt.Errorf("stego: failed to encode envelope: %w", err)
	}
	text, err := frame.Build(frame.Metadata{
		Algorithm:       alg,
		OriginalLength:  len(message),
		EncryptedLength: len(rawEnv),
	}, rawEnv, len(message))
	if err != nil {
		return alg, 0, err
	}

	bits := bitstream.Pack(text)
	if uint64(len(bits)) > math.MaxUint32 {
		return alg, len(bits), fmt.Errorf("%w: frame of %d bits exceeds the header limit", ErrCapacityExceeded, len(bits))
	}
	rawHeader, err := frame.Header{Algorithm: alg, FrameBits: uint32(len(bits))}.Marshal()
	if err != nil {
		return alg, len(bits), err
	}
	headerBits := bitstream.PackBytes(rawHeader)

	var lsb engine.LSB
	if c := lsb.Capacity(buf, 0); len(headerBits) > c {
		return alg, len(bits), fmt.Errorf("%w: image has %d pixels, the header needs %d",
			ErrCapacityExceeded, buf.Pixels(), len(headerBits))
	}
	if c := eng.Capacity(buf, frame.HeaderPixels); len(bits) > c {
		return alg, len(bits), fmt.Errorf("%w: %d bits requested, %s capacity is %d bits",
			ErrCapacityExceeded, len(bits), alg, c)
	}
	if err := ctx.Err(); err != nil {
		return alg, len(bits), err
	}

	if err := eng.Embed(buf, frame.HeaderPixels, bits); err != nil {
		return alg, len(bits), err
	}
	if err := lsb.Embed(buf, 0, headerBits); err != nil {
		return alg, len(bits), err
	}
	return alg, len(bits), nil
}

// Decode recovers the message hidden in buf.
//
// Images without a header are read with the legacy fixed-budget LSB
// fallback.  Any decryption failure is reported as the bare
// [ErrDecryptionFailed].
func (s *Stego) Decode(ctx context.Context, buf *pixel.Buffer, password string) (*Result, error) {
	res, err := s.decode(ctx, buf, password)

	entry := history.Entry{Operation: history.OperationDecode}
	attrs := []any{slog.Bool("success", err == nil), slog.Any("error", err)}
	if res != nil {
		entry.Algorithm = res.Algorithm
		entry.MessageLength = len(res.Message)
		attrs = append(attrs,
			slog.String("algorithm", string(res.Algorithm)),
			slog.Int("message_bytes", len(res.Message)),
			slog.Bool("legacy", res.Legacy),
		)
	}
	s.opts.logger.DebugContext(ctx, "stego: decode", attrs...)
	s.record(ctx, entry, buf, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Stego) decode(ctx context.Context, buf *pixel.Buffer, password string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	text, alg, legacy, err := s.readFrame(buf)
	if err != nil {
		return nil, err
	}
	parsed, err := frame.Parse(text)
	if err != nil {
		return nil, err
	}
	env, err := encryption.ParseEnvelope(parsed.Envelope)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	message, err := s.opts.codec.Decrypt(env, password)
	if errors.Is(err, ErrDecryptionFailed) {
		return nil, ErrDecryptionFailed
	}
	if err != nil {
		return nil, err
	}
	if !lengthMatches(parsed, message, legacy) {
		return nil, fmt.Errorf("%w: length trailer %q does not match the message", ErrIntegrityFailure, parsed.LengthText)
	}

	return &Result{
		Message:   message,
		Metadata:  parsed.Metadata,
		Algorithm: alg,
		Legacy:    legacy,
	}, nil
}

// readFrame returns the frame text stored in buf and the algorithm it was
// read with.
func (s *Stego) readFrame(buf *pixel.Buffer) (string, engine.Algorithm, bool, error) {
	var lsb engine.LSB
	rawHeader := bitstream.UnpackBytes(lsb.Extract(buf, 0, frame.HeaderBits))
	h, err := frame.ParseHeader(rawHeader)
	if err != nil {
		bits := lsb.Extract(buf, 0, frame.LegacyBudgetBits)
		return bitstream.Unpack(bits), engine.AlgorithmLSB, true, nil
	}

	eng, err := s.opts.registry.Engine(h.Algorithm)
	if err != nil {
		return "", h.Algorithm, false, err
	}
	want := int(h.FrameBits)
	bits := eng.Extract(buf, frame.HeaderPixels, want)
	if len(bits) < want {
		return "", h.Algorithm, false, fmt.Errorf("%w: header announces %d bits, %s holds %d",
			ErrMalformedFrame, want, h.Algorithm, len(bits))
	}
	return bitstream.Unpack(bits), h.Algorithm, false, nil
}

// lengthMatches checks the decimal trailer against the decrypted message.
// Headered frames must match exactly.  Legacy reads run past the frame, so
// only a prefix match is possible there, and legacy writers counted UTF-16
// code units rather than bytes.
func lengthMatches(p *frame.Parsed, message string, legacy bool) bool {
	n := strconv.Itoa(len(message))
	if !legacy {
		return p.LengthText == n
	}
	units := strconv.Itoa(len(utf16.Encode([]rune(message))))
	return strings.HasPrefix(p.LengthText, n) || strings.HasPrefix(p.LengthText, units)
}

// Outcome is the structured result of [Stego.Reveal].
type Outcome struct {
	Success bool

	// Message is the plaintext; empty unless Success.
	Message string

	// Reason is the user-facing failure text; empty on success.
	Reason string

	// Metadata is the frame metadata; nil unless Success.
	Metadata *frame.Metadata
}

// Reveal is [Stego.Decode] for UIs: failures are folded into the returned
// Outcome with a human-readable reason.
func (s *Stego) Reveal(ctx context.Context, buf *pixel.Buffer, password string) Outcome {
	res, err := s.Decode(ctx, buf, password)
	if err != nil {
		return Outcome{Reason: FailureReason(err)}
	}
	meta := res.Metadata
	return Outcome{Success: true, Message: res.Message, Metadata: &meta}
}

// EstimateCapacity returns the advisory payload budget in bytes for a
// width×height image.  See [engine.Estimate].
func EstimateCapacity(width, height int, alg engine.Algorithm) int {
	return engine.Estimate(width, height, alg)
}

// MaxMessageLength returns the largest message size in bytes that Encode
// accepts for buf and alg.  It returns 0 when not even a one-byte message
// fits.
func (s *Stego) MaxMessageLength(buf *pixel.Buffer, alg engine.Algorithm) (int, error) {
	if err := buf.Validate(); err != nil {
		return 0, err
	}
	eng, err := s.opts.registry.Resolve(alg)
	if err != nil {
		return 0, err
	}
	alg = eng.Algorithm()

	var lsb engine.LSB
	if lsb.Capacity(buf, 0) < frame.HeaderBits {
		return 0, nil
	}
	capBits := eng.Capacity(buf, frame.HeaderPixels)
	fits := func(n int) bool { return bitstream.Len(frame.Size(n, alg)) <= capBits }

	// The frame is always longer than the message, so capBits/8 never fits.
	lo, hi := 0, capBits/8
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// record appends an entry to the configured history, if any.
func (s *Stego) record(ctx context.Context, e history.Entry, buf *pixel.Buffer, err error) {
	if s.opts.history == nil {
		return
	}
	if buf != nil {
		e.Width, e.Height = buf.Width, buf.Height
	}
	e.Success = err == nil
	e.Reason = FailureReason(err)
	if _, herr := s.opts.history.Add(ctx, e); herr != nil {
		s.opts.logger.DebugContext(ctx, "stego: failed to record history", slog.Any("error", herr))
	}
}
