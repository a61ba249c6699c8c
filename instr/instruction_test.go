package instr

import (
	"testing"

	"github.com/arloliu/beamcode/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CoversEveryOpcode(t *testing.T) {
	tbl := Table()
	for op := 1; op <= 180; op++ {
		spec, ok := tbl[Opcode(op)]
		require.Truef(t, ok, "opcode %d has no schema entry", op)
		assert.Equal(t, Opcode(op), spec.Opcode)
		assert.NotEmpty(t, spec.Name)
	}
	assert.Len(t, tbl, 180)
}

func TestDecoder_Label(t *testing.T) {
	// opcode 1 (Label), single Usize field encoded as the 4-bit immediate
	// 1 -> wire byte 0x10.
	d := NewDecoder([]byte{0x01, 0x10})
	in, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, OpLabel, in.Op)
	require.Len(t, in.Fields, 1)
	assert.Equal(t, term.Usize(1), in.Fields[0])
	assert.Equal(t, 0, d.Len())
}

func TestDecoder_Return_NoFields(t *testing.T) {
	d := NewDecoder([]byte{0x13})
	in, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, OpReturn, in.Op)
	assert.Empty(t, in.Fields)
}

func TestDecoder_Move_TermThenRegister(t *testing.T) {
	// opcode 64 (Move): Src is an untyped Term (here XRegister tag 0x03
	// with 4-bit immediate 0 -> wire byte 0x03), Dst is a Register
	// (XRegister 2 -> 4-bit immediate 2, tag 3 -> byte 0x23).
	d := NewDecoder([]byte{0x40, 0x03, 0x23})
	in, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, OpMove, in.Op)
	require.Len(t, in.Fields, 2)
	assert.Equal(t, term.XRegister{Index: 0}, in.Fields[0])
	assert.Equal(t, term.XRegister{Index: 2}, in.Fields[1])
}

func TestDecoder_InitYregs_YRegisterList(t *testing.T) {
	ins := Instruction{
		Op: OpInitYregs,
		Fields: []term.Term{
			term.List{Elements: []term.Term{term.YRegister{Index: 0}, term.YRegister{Index: 1}}},
		},
	}

	data, err := EncodeAll([]Instruction{ins})
	require.NoError(t, err)

	decoded, err := DecodeAll(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, ins, decoded[0])
}

func TestDecoder_DeprecatedOpcode_RoundTripsAndWarns(t *testing.T) {
	ins := Instruction{
		Op: OpMPlus,
		Fields: []term.Term{
			term.Usize(1), term.Usize(2), term.Usize(3), term.Usize(4),
		},
	}
	data, err := EncodeAll([]Instruction{ins})
	require.NoError(t, err)

	d := NewDecoder(data, WithStructuralWarnings())
	got, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, ins, got)
	assert.Len(t, d.Warnings(), 1)
}

func TestDecoder_UnknownOpcode(t *testing.T) {
	d := NewDecoder([]byte{0xFF})
	_, err := d.Next()
	require.Error(t, err)
}

func TestEncoder_FieldCountMismatch(t *testing.T) {
	e := NewEncoder()
	defer e.Release()

	err := e.Encode(Instruction{Op: OpReturn, Fields: []term.Term{term.Usize(1)}})
	require.Error(t, err)
}

func TestDecodeAll_EmptyBuffer(t *testing.T) {
	ins, err := DecodeAll(nil)
	require.NoError(t, err)
	assert.NotNil(t, ins)
	assert.Empty(t, ins)
}

func TestInstruction_Field(t *testing.T) {
	in := Instruction{Op: OpLabel, Fields: []term.Term{term.Usize(7)}}
	v, ok := in.Field("Literal")
	require.True(t, ok)
	assert.Equal(t, term.Usize(7), v)

	_, ok = in.Field("NoSuchField")
	assert.False(t, ok)
}
