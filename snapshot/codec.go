// Package snapshot archives a decoded instruction sequence to a
// content-addressed, optionally compressed byte stream, so tooling that
// repeatedly inspects the same BEAM modules can skip re-decoding unchanged
// bytecode across runs.
package snapshot

import (
	"fmt"

	"github.com/arloliu/beamcode/errs"
)

// Compressor compresses a byte slice, returning a newly allocated result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice, returning a newly allocated
// result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; a snapshot names the Codec it was
// written with so Load can pick the matching Decompressor.
type Codec interface {
	Compressor
	Decompressor
	// ID identifies this codec in the snapshot header, so Load can select
	// the matching codec without the caller naming one explicitly.
	ID() CodecID
}

// CodecID identifies a snapshot's compression algorithm in its header.
type CodecID uint8

const (
	CodecNone CodecID = iota
	CodecLZ4
	CodecZstd
)

func (id CodecID) String() string {
	switch id {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ByID returns the built-in Codec for id.
func ByID(id CodecID) (Codec, error) {
	switch id {
	case CodecNone:
		return NoopCodec{}, nil
	case CodecLZ4:
		return LZ4Codec{}, nil
	case CodecZstd:
		return ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: codec id %d", errs.ErrUnsupportedCodec, id)
	}
}
