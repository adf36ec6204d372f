package stego

import (
	"log/slog"

	"github.com/hasbyte1/go-stego/encryption"
	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/history"
)

// Option configures a [Stego].
type Option func(*options)

type options struct {
	registry *engine.Registry
	codec    *encryption.Codec
	history  *history.Log
	logger   *slog.Logger
}

// WithRegistry sets the engine registry.  The default is
// [engine.NewDefaultRegistry].
func WithRegistry(r *engine.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithCodec sets the envelope codec.  The default is
// [encryption.NewCodec] with no options.
func WithCodec(c *encryption.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithHistory records every Encode and Decode attempt in l.
func WithHistory(l *history.Log) Option {
	return func(o *options) { o.history = l }
}

// WithLogger sets the logger used for per-operation debug records.  By
// default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
