// Package beamcode provides a bit-exact codec for the "Code" chunk bytecode
// stream of a BEAM module: it decodes a flat byte slice into a sequence of
// typed Instruction values, and re-encodes that sequence back into a
// byte-identical stream.
//
// # Basic Usage
//
// Decoding a raw bytecode buffer and re-encoding it:
//
//	import "github.com/arloliu/beamcode"
//
//	ins, err := beamcode.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	out, err := beamcode.Encode(ins)
//	// out is byte-identical to raw.
//
// # Package Structure
//
// This package is a thin façade over instr, which holds the opcode schema
// and the Decoder/Encoder types; term holds the compact-term wire format
// both opcode operands and the schema dispatcher are built from. Use instr
// directly for streaming decode (Decoder.Next) or configured limits
// (instr.WithMaxListLength, instr.WithMaxIntegerBytes). snapshot provides
// content-addressed, optionally compressed archival of a decoded
// instruction sequence.
package beamcode

import (
	"github.com/arloliu/beamcode/instr"
	"github.com/arloliu/beamcode/internal/hash"
)

// Decode parses data as a sequence of generic BEAM instructions, consuming
// the entire buffer. An empty buffer decodes to an empty, non-nil slice.
func Decode(data []byte, opts ...instr.Option) ([]instr.Instruction, error) {
	return instr.DecodeAll(data, opts...)
}

// Encode re-emits ins as a flat byte stream, writing every term in its
// minimal form. For data whose terms are all in minimal form,
// Encode(Decode(data)) is byte-identical to data. Decode also accepts
// non-minimal forms (e.g. a value below 16 in the 11-bit form); those
// re-encode to the minimal form, so the bytes differ from data.
func Encode(ins []instr.Instruction, opts ...instr.Option) ([]byte, error) {
	return instr.EncodeAll(ins, opts...)
}

// Checksum fingerprints a raw bytecode buffer with xxHash64, so tooling can
// key a decoded-AST cache by content rather than by file path.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}
