// Package codec provides pluggable encoding for flow-network snapshots.
//
// Two codecs are offered: JSON (the canonical flat snapshot format,
// default) and msgpack (compact binary for large networks). Either can
// be wrapped with zstd compression. An Encoder is symmetric: data must
// be decoded with the same codec and compression it was encoded with.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnknownCompression is returned when an Encoder carries a
// compression mode this package does not implement.
var ErrUnknownCompression = errors.New("codec: unknown compression")

// Codec turns values into bytes and back.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
	Name() string
}

// JSON returns the canonical JSON codec.
func JSON() Codec { return jsonCodec{} }

// Msgpack returns the msgpack codec.
func Msgpack() Codec { return msgpackCodec{} }

type jsonCodec struct{}

func (jsonCodec) Encode(v interface{}) ([]byte, error)    { return json.Marshal(v) }
func (jsonCodec) Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                            { return "json" }

type msgpackCodec struct{}

func (msgpackCodec) Encode(v interface{}) ([]byte, error)    { return msgpack.Marshal(v) }
func (msgpackCodec) Decode(data []byte, v interface{}) error { return msgpack.Unmarshal(data, v) }
func (msgpackCodec) Name() string                            { return "msgpack" }

// Compression selects the byte-level transform applied after encoding.
type Compression string

const (
	// CompressionNone stores encoded bytes as-is.
	CompressionNone Compression = "none"

	// CompressionZstd wraps encoded bytes in a zstd frame.
	CompressionZstd Compression = "zstd"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithCodec selects the codec (default JSON).
func WithCodec(c Codec) Option {
	return func(e *Encoder) {
		if c != nil {
			e.codec = c
		}
	}
}

// WithCompression selects the compression mode (default none).
func WithCompression(c Compression) Option {
	return func(e *Encoder) { e.compression = c }
}

// Encoder combines a Codec with an optional compression stage.
// The zero-option Encoder produces plain JSON.
type Encoder struct {
	codec       Codec
	compression Compression
}

// NewEncoder builds an Encoder from options.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{codec: JSON(), compression: CompressionNone}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name describes the encoder as "<codec>" or "<codec>+<compression>".
func (e *Encoder) Name() string {
	if e.compression == CompressionNone {
		return e.codec.Name()
	}

	return e.codec.Name() + "+" + string(e.compression)
}

// Marshal encodes v and applies compression.
func (e *Encoder) Marshal(v interface{}) ([]byte, error) {
	data, err := e.codec.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("codec: %s encode: %w", e.codec.Name(), err)
	}

	return e.compress(data)
}

// Unmarshal reverses compression and decodes into v.
func (e *Encoder) Unmarshal(data []byte, v interface{}) error {
	data, err := e.decompress(data)
	if err != nil {
		return err
	}
	if err = e.codec.Decode(data, v); err != nil {
		return fmt.Errorf("codec: %s decode: %w", e.codec.Name(), err)
	}

	return nil
}

func (e *Encoder) compress(data []byte) ([]byte, error) {
	switch e.compression {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		w, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd writer: %w", err)
		}
		defer w.Close()

		return w.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, e.compression)
	}
}

func (e *Encoder) decompress(data []byte) ([]byte, error) {
	switch e.compression {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		r, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd reader: %w", err)
		}
		defer r.Close()
		out, err := r.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd decompress: %w", err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, e.compression)
	}
}
