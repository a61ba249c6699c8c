package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/beamcode/errs"
	"github.com/arloliu/beamcode/instr"
	"github.com/arloliu/beamcode/internal/hash"
)

// header is the fixed-size prefix of a snapshot archive: a 1-byte CodecID
// identifying the compression codec the payload was written with, followed
// by an 8-byte xxHash64 checksum of the re-encoded instruction bytes, over
// which Load verifies the decompressed payload before handing instructions
// back to the caller.
const (
	codecIDSize  = 1
	checksumSize = 8
	headerSize   = codecIDSize + checksumSize
)

// Save re-encodes ins and writes a checksummed, codec-compressed archive of
// it to w. The checksum covers the re-encoded bytes, not ins itself, so
// Load can verify integrity without re-decoding first. codec.ID() is
// persisted in the header so Load can select the matching codec itself
// without the caller naming one again.
func Save(w io.Writer, ins []instr.Instruction, codec Codec) error {
	raw, err := instr.EncodeAll(ins)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	sum := hash.Checksum(raw)
	var header [headerSize]byte
	header[0] = byte(codec.ID())
	binary.BigEndian.PutUint64(header[codecIDSize:], sum)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("snapshot: compress: %w", err)
	}
	_, err = w.Write(compressed)
	return err
}

// Load reads a snapshot archive written by Save, selects the compression
// codec recorded in its header via ByID, verifies its checksum, and decodes
// the resulting bytecode back into an instruction sequence. It returns the
// verified checksum alongside the instructions so callers can key a cache
// entry by it.
func Load(r io.Reader) ([]instr.Instruction, uint64, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	if len(all) < headerSize {
		return nil, 0, errs.ErrTruncatedStream
	}

	codec, err := ByID(CodecID(all[0]))
	if err != nil {
		return nil, 0, err
	}
	wantSum := binary.BigEndian.Uint64(all[codecIDSize:headerSize])

	raw, err := codec.Decompress(all[headerSize:])
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot: decompress: %w", err)
	}

	gotSum := hash.Checksum(raw)
	if gotSum != wantSum {
		return nil, 0, fmt.Errorf("%w: want %016x, got %016x", errs.ErrChecksumMismatch, wantSum, gotSum)
	}

	ins, err := instr.DecodeAll(raw)
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot: decode: %w", err)
	}
	return ins, gotSum, nil
}

// Checksum fingerprints a raw bytecode buffer, matching beamcode.Checksum;
// exposed here so snapshot consumers don't need to import the root package
// solely for this.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}
