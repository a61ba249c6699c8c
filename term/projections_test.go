package term

import (
	"testing"

	"github.com/arloliu/beamcode/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjections_HappyPath(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(8))
	require.NoError(t, Encode(w, Usize(5)))
	got, err := DecodeUsize(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Usize(5), got)
}

func TestProjections_MismatchReturnsUnexpectedTerm(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(8))
	require.NoError(t, Encode(w, Atom{Value: 1}))

	_, err := DecodeUsize(NewReader(w.Bytes()))
	require.Error(t, err)
}

func TestDecodeRegister_AcceptsTypedRegister(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, Encode(w, TypedRegister{Register: YRegister{Index: 2}, TypeIndex: 1}))

	reg, err := DecodeRegister(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, KindTypedRegister, reg.Kind())
}

func TestDecodeAllocation_AcceptsBareUsize(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(8))
	require.NoError(t, Encode(w, Usize(3)))

	alloc, err := DecodeAllocation(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Usize(3), alloc)
}

func TestYRegisterList_RoundTrip(t *testing.T) {
	regs := []YRegister{{Index: 0}, {Index: 1}, {Index: 2}}

	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, EncodeYRegisterList(w, regs))

	got, err := DecodeYRegisterList(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, regs, got)
}

func TestDecodeYRegisterList_RejectsMixedElements(t *testing.T) {
	w := NewWriter(pool.NewByteBuffer(16))
	require.NoError(t, Encode(w, List{Elements: []Term{YRegister{Index: 0}, XRegister{Index: 1}}}))

	_, err := DecodeYRegisterList(NewReader(w.Bytes()))
	require.Error(t, err)
}
