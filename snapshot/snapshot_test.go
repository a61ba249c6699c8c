package snapshot

import (
	"bytes"
	"testing"

	"github.com/arloliu/beamcode/instr"
	"github.com/arloliu/beamcode/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleInstructions repeats a small pattern enough times that LZ4 block
// compression actually shrinks it; a handful of bytes alone is sometimes
// left uncompressed (CompressBlock reports 0) since there is nothing to
// gain from encoding it.
func sampleInstructions() []instr.Instruction {
	pattern := []instr.Instruction{
		{Op: instr.OpLabel, Fields: []term.Term{term.Usize(1)}},
		{Op: instr.OpMove, Fields: []term.Term{term.XRegister{Index: 0}, term.XRegister{Index: 1}}},
		{Op: instr.OpReturn, Fields: []term.Term{}},
	}
	out := make([]instr.Instruction, 0, len(pattern)*64)
	for i := 0; i < 64; i++ {
		out = append(out, pattern...)
	}
	return out
}

func testCodecs() map[string]Codec {
	return map[string]Codec{
		"none": NoopCodec{},
		"lz4":  LZ4Codec{},
		"zstd": ZstdCodec{},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ins := sampleInstructions()
	for name, codec := range testCodecs() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, ins, codec))

			got, sum, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, ins, got)
			assert.NotZero(t, sum)
		})
	}
}

func TestSaveLoad_SelectsCodecFromHeader(t *testing.T) {
	// Load takes no codec argument: it must recover the one Save recorded
	// in the header via ByID rather than requiring the caller to repeat it.
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sampleInstructions(), ZstdCodec{}))
	assert.Equal(t, byte(CodecZstd), buf.Bytes()[0])

	_, _, err := Load(&buf)
	require.NoError(t, err)
}

func TestLoad_RejectsChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sampleInstructions(), NoopCodec{}))

	corrupted := buf.Bytes()
	corrupted[codecIDSize] ^= 0xFF // flip a checksum byte, not the codec id byte

	_, _, err := Load(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestLoad_RejectsUnknownCodecID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sampleInstructions(), NoopCodec{}))

	corrupted := buf.Bytes()
	corrupted[0] = 99

	_, _, err := Load(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestLoad_RejectsTruncatedHeader(t *testing.T) {
	_, _, err := Load(bytes.NewReader([]byte{0x01, 0x02}))
	require.Error(t, err)
}

func TestByID(t *testing.T) {
	for id, want := range map[CodecID]CodecID{
		CodecNone: CodecNone,
		CodecLZ4:  CodecLZ4,
		CodecZstd: CodecZstd,
	} {
		codec, err := ByID(id)
		require.NoError(t, err)
		assert.Equal(t, want, codec.ID())
	}

	_, err := ByID(CodecID(99))
	require.Error(t, err)
}

func TestChecksum_MatchesLoadedSum(t *testing.T) {
	ins := sampleInstructions()
	raw, err := instr.EncodeAll(ins)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, ins, NoopCodec{}))
	_, sum, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, Checksum(raw), sum)
}
