package term

import (
	"math/big"
	"testing"

	"github.com/arloliu/beamcode/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, term Term) Term {
	t.Helper()
	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, Encode(w, term))

	r := NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len(), "decode should consume the whole encoding")
	return got
}

func TestRoundTrip_AllKinds(t *testing.T) {
	t.Run("Usize", func(t *testing.T) {
		assert.Equal(t, Usize(42), roundTrip(t, Usize(42)))
	})
	t.Run("Integer", func(t *testing.T) {
		got := roundTrip(t, Integer{Value: big.NewInt(-987654)})
		require.IsType(t, Integer{}, got)
		assert.Equal(t, "-987654", got.(Integer).Value.String())
	})
	t.Run("Atom", func(t *testing.T) {
		assert.Equal(t, Atom{Value: 7}, roundTrip(t, Atom{Value: 7}))
	})
	t.Run("XRegister", func(t *testing.T) {
		assert.Equal(t, XRegister{Index: 3}, roundTrip(t, XRegister{Index: 3}))
	})
	t.Run("YRegister", func(t *testing.T) {
		assert.Equal(t, YRegister{Index: 1}, roundTrip(t, YRegister{Index: 1}))
	})
	t.Run("Label", func(t *testing.T) {
		assert.Equal(t, Label{Value: 99}, roundTrip(t, Label{Value: 99}))
	})
	t.Run("Character", func(t *testing.T) {
		assert.Equal(t, Character{Value: 'A'}, roundTrip(t, Character{Value: 'A'}))
	})
	t.Run("List", func(t *testing.T) {
		in := List{Elements: []Term{Usize(1), XRegister{Index: 2}, Atom{Value: 3}}}
		assert.Equal(t, in, roundTrip(t, in))
	})
	t.Run("FloatingPointRegister", func(t *testing.T) {
		assert.Equal(t, FloatingPointRegister{Index: 5}, roundTrip(t, FloatingPointRegister{Index: 5}))
	})
	t.Run("AllocationList", func(t *testing.T) {
		in := AllocationList{Items: []AllocationItem{
			{Kind: AllocationWords, Count: 2},
			{Kind: AllocationFloats, Count: 1},
		}}
		assert.Equal(t, in, roundTrip(t, in))
	})
	t.Run("Literal", func(t *testing.T) {
		assert.Equal(t, Literal{Index: 123}, roundTrip(t, Literal{Index: 123}))
	})
	t.Run("TypedRegister", func(t *testing.T) {
		in := TypedRegister{Register: XRegister{Index: 4}, TypeIndex: 9}
		assert.Equal(t, in, roundTrip(t, in))
	})
}

func TestDecode_UnknownTermTag(t *testing.T) {
	// tag low 3 bits can never exceed 7, but tagExtended's subtag nibble can
	// be out of range: 0x00 nibble with tagExtended selector is not a
	// defined extended kind.
	w := NewWriter(pool.NewByteBuffer(4))
	require.NoError(t, w.WriteByte(0b0000_0111)) // extended, subtag 0 (undefined)
	r := NewReader(w.Bytes()[1:])
	_, err := decodeExtended(r, w.Bytes()[0])
	require.Error(t, err)
}

func TestDecode_Character_RejectsSurrogateAndOutOfRange(t *testing.T) {
	for _, v := range []uint64{0xD800, 0xDFFF, 0x110000} {
		w := NewWriter(pool.NewByteBuffer(8))
		require.NoError(t, encodeVarint(w, tagCharacter, new(big.Int).SetUint64(v)))
		r := NewReader(w.Bytes())
		_, err := Decode(r)
		require.Error(t, err, "value %x should be rejected", v)
	}
}

func TestDecode_TypedRegister_RejectsNestedTypedRegister(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(16))
	// Encode a TypedRegister wrapping an XRegister, then hand-craft a tag
	// byte sequence where the wrapped register position is itself a
	// TypedRegister: decodePlainRegister must reject it.
	require.NoError(t, w.WriteByte(extTypedRegister<<4|tagExtended))
	inner := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, Encode(inner, TypedRegister{Register: XRegister{Index: 1}, TypeIndex: 2}))
	_, err := w.Write(inner.Bytes())
	require.NoError(t, err)
	require.NoError(t, encodeUsizeTerm(w, 3))

	r := NewReader(w.Bytes())
	_, err = Decode(r)
	require.Error(t, err)
}

func TestDecode_List_EnforcesMaxListLength(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, Encode(w, List{Elements: []Term{Usize(1), Usize(2), Usize(3)}}))

	r := NewReaderWithLimits(w.Bytes(), Limits{MaxListLength: 2})
	_, err := Decode(r)
	require.Error(t, err)
}

func TestDecode_AllocationList_RejectsUnknownItemKind(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, w.WriteByte(extAllocList<<4|tagExtended))
	require.NoError(t, encodeUsizeTerm(w, 1))
	require.NoError(t, encodeUsizeTerm(w, 9)) // not Words/Floats/Funs
	require.NoError(t, encodeUsizeTerm(w, 1))

	r := NewReader(w.Bytes())
	_, err := Decode(r)
	require.Error(t, err)
}
