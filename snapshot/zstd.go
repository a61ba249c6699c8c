package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec compresses snapshot archives with Zstandard, for the long-term,
// cold-storage case: a disassembler's cache directory accumulating
// snapshots for many historical module versions, where ratio matters more
// than the cost of a rare decompression.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) ID() CodecID { return CodecZstd }

// zstdDecoderPool and zstdEncoderPool pool encoders/decoders: per the
// klauspost/compress/zstd docs, both are designed to run allocation-free
// after a warmup, so they are worth keeping alive across archive writes.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("snapshot: failed to create zstd decoder: %v", err))
		}
		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("snapshot: failed to create zstd encoder: %v", err))
		}
		return e
	},
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	e := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(e)

	return e.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(d)

	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd decompression failed: %w", err)
	}
	return out, nil
}
