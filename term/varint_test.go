package term

import (
	"math/big"
	"testing"

	"github.com/arloliu/beamcode/errs"
	"github.com/arloliu/beamcode/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter() *Writer {
	return NewWriter(pool.NewByteBuffer(16))
}

// boundary rows are the reference small-natural/signed sub-encoding
// fixtures: each decodes to the given value and re-encodes to the same
// bytes.
var boundaryRows = []struct {
	name  string
	bytes []byte
	value int64
}{
	{"zero", []byte{0x00}, 0},
	{"four-bit one", []byte{0x10}, 1},
	{"eleven-bit 20", []byte{0x08, 0x14}, 20},
	{"eleven-bit 400", []byte{0x28, 0x90}, 400},
	{"direct 22300", []byte{0x18, 0x57, 0x1C}, 22300},
	{"direct 987654", []byte{0x38, 0x0F, 0x12, 0x06}, 987654},
	{"negative one", []byte{0x18, 0xFF, 0xFF}, -1},
	{"negative 323", []byte{0x18, 0xFE, 0xBD}, -323},
	{"negative 123432109", []byte{0x58, 0xF8, 0xA4, 0x93, 0x53}, -123432109},
}

func TestDecodeVarint_Boundaries_Integer(t *testing.T) {
	for _, row := range boundaryRows {
		t.Run(row.name, func(t *testing.T) {
			r := NewReader(row.bytes[1:])
			v, _, err := decodeVarint(r, row.bytes[0])
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(row.value).String(), v.String())
			assert.Equal(t, 0, r.Len(), "should consume exactly the payload")
		})
	}
}

func TestEncodeVarint_Boundaries_RoundTrip(t *testing.T) {
	for _, row := range boundaryRows {
		t.Run(row.name, func(t *testing.T) {
			buf := newTestWriter()
			err := encodeVarint(buf, tagInteger, big.NewInt(row.value))
			require.NoError(t, err)

			want := append([]byte{row.bytes[0]&^0b111 | tagInteger}, row.bytes[1:]...)
			assert.Equal(t, want, buf.Bytes())
		})
	}
}

func TestDecodeUsizeValue_RejectsNegative(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF})
	_, err := decodeUsizeValue(r, 0x18)
	require.Error(t, err)
	var tooLarge *errs.TooLargeUsizeValue
	require.ErrorAs(t, err, &tooLarge)
}

// escapeFormFixture is the §8.2 normative boundary row
// [0xF8, 0x00, 0x00, 0x89, 0x10, 0x87, 0xB8, 0xB0, 0x34, 0x71, 0x15]: a
// length-prefixed escape-form encoding whose nested length term decodes to
// 0 (byte width 0+9=9) followed by 9 payload bytes whose value happens to
// fit a uint64. It is a perfectly valid Integer, but a Usize-position decode of
// it must still be rejected as TooLargeUsizeValue unconditionally — the
// escape form itself, not just the value it carries, is what disqualifies
// it from a Usize position.
var escapeFormFixture = []byte{
	0x00, 0x00, 0x89, 0x10, 0x87, 0xB8, 0xB0, 0x34, 0x71, 0x15,
}

func TestDecodeUsizeValue_RejectsEscapeFormUnconditionally(t *testing.T) {
	r := NewReader(escapeFormFixture)
	_, err := decodeUsizeValue(r, 0xF8)
	require.Error(t, err)
	var tooLarge *errs.TooLargeUsizeValue
	require.ErrorAs(t, err, &tooLarge)
}

func TestDecodeVarint_EscapeForm_ValidAsInteger(t *testing.T) {
	r := NewReader(escapeFormFixture)
	v, _, err := decodeVarint(r, 0xF8)
	require.NoError(t, err)
	assert.True(t, v.Sign() > 0)
	assert.True(t, v.IsUint64(), "this fixture's payload fits a uint64 — only the escape-form shape, not the value, disqualifies it as a Usize")
}
