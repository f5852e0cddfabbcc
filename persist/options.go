package persist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hupe1980/numvec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the snapshot payload compression.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstandard.
	CompressionZstd
	// CompressionLZ4 compresses the payload with lz4.
	CompressionLZ4
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ErrUnknownCompression indicates an unrecognized compression code.
type ErrUnknownCompression struct {
	Compression uint8
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown compression code: %d", e.Compression)
}

// Options configure Save and Load.
type Options struct {
	// Compression selects the payload compression for Save. Load reads
	// the compression from the snapshot header and ignores this field.
	Compression Compression

	// Logger receives structured save/load tracing. Nil disables logging.
	Logger *numvec.Logger
}

// DefaultOptions are the options used when no functional options are
// passed.
var DefaultOptions = Options{
	Compression: CompressionNone,
	Logger:      nil,
}

// WithCompression sets the payload compression.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithLogger sets the structured logger for save/load tracing.
func WithLogger(l *numvec.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, &ErrUnknownCompression{Compression: uint8(c)}
	}
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, &ErrUnknownCompression{Compression: uint8(c)}
	}
}
