package term

import (
	"math/big"

	"github.com/arloliu/beamcode/errs"
)

// Wire-tag kind selectors for the non-extended term kinds. These occupy the
// low 3 bits of a compact-term tag byte; Atom, XRegister, YRegister, Label,
// and Character all reuse the same small-natural/signed sub-encoding keyed
// off one of these selectors.
const (
	tagUsize     byte = 0
	tagInteger   byte = 1
	tagAtom      byte = 2
	tagXRegister byte = 3
	tagYRegister byte = 4
	tagLabel     byte = 5
	tagCharacter byte = 6
	tagExtended  byte = 7
)

var one = big.NewInt(1)

// decodeVarint reads the payload of the small-natural/signed sub-encoding
// given the already-consumed tag byte, per §4.1: a 4-bit immediate, an
// 11-bit immediate, a direct 2..8 byte big-endian signed form, or a
// length-prefixed escape form. It returns the decoded signed value and the
// number of payload bytes read after the tag (0 for the 4-bit immediate, 1
// for the 11-bit immediate, and the value byte width for the direct/escape
// forms), the latter only meaningful for error reporting.
func decodeVarint(r *Reader, tag byte) (*big.Int, int, error) {
	switch {
	case tag&0b1000 == 0:
		return big.NewInt(int64(tag >> 4)), 0, nil

	case tag&0b10000 == 0:
		next, err := r.ReadByte()
		if err != nil {
			return nil, 0, errs.ErrTruncatedStream
		}
		v := (uint64(tag&0b111_00000) << 3) | uint64(next)
		return new(big.Int).SetUint64(v), 1, nil

	case tag>>5 != 0b111:
		byteSize := int(tag>>5) + 2
		if r.limits.MaxIntegerBytes > 0 && byteSize > r.limits.MaxIntegerBytes {
			return nil, byteSize, errs.ErrIntegerTooLong
		}
		buf, err := r.ReadN(byteSize)
		if err != nil {
			return nil, byteSize, errs.ErrTruncatedStream
		}
		return signedFromBytes(buf), byteSize, nil

	default:
		n, err := decodeUsizeTerm(r)
		if err != nil {
			return nil, 0, err
		}
		byteSize := int(n) + 9
		if r.limits.MaxIntegerBytes > 0 && byteSize > r.limits.MaxIntegerBytes {
			return nil, byteSize, errs.ErrIntegerTooLong
		}
		buf, err := r.ReadN(byteSize)
		if err != nil {
			return nil, byteSize, errs.ErrTruncatedStream
		}
		return signedFromBytes(buf), byteSize, nil
	}
}

// signedFromBytes interprets buf as a big-endian two's-complement signed
// integer.
func signedFromBytes(buf []byte) *big.Int {
	v := new(big.Int).SetBytes(buf)
	if len(buf) > 0 && buf[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(one, uint(8*len(buf)))
		v.Sub(v, mod)
	}
	return v
}

// minimalByteWidth returns the smallest n >= 2 such that v fits in an
// n-byte big-endian two's-complement representation. The direct byte form
// never uses fewer than 2 bytes: smaller magnitudes always take the 4-bit
// or 11-bit immediate form instead.
func minimalByteWidth(v *big.Int) int {
	n := 2
	for {
		bits := uint(8*n - 1)
		high := new(big.Int).Sub(new(big.Int).Lsh(one, bits), one)
		low := new(big.Int).Neg(new(big.Int).Lsh(one, bits))
		if v.Cmp(low) >= 0 && v.Cmp(high) <= 0 {
			return n
		}
		n++
	}
}

// twosComplementBytes renders v as n bytes of big-endian two's-complement,
// where n is assumed wide enough (from minimalByteWidth or a caller-chosen
// escape width) to hold v.
func twosComplementBytes(v *big.Int, n int) []byte {
	mod := new(big.Int).Lsh(one, uint(8*n))
	u := new(big.Int).Mod(v, mod)
	buf := u.Bytes()
	out := make([]byte, n)
	copy(out[n-len(buf):], buf)
	return out
}

// encodeVarint writes the minimal legal small-natural/signed encoding of v
// under the given kind selector, per §4.1's mandatory minimal-form rule.
func encodeVarint(w *Writer, selector byte, v *big.Int) error {
	if v.Sign() >= 0 && v.Cmp(big.NewInt(16)) < 0 {
		return w.WriteByte(byte(v.Int64()<<4) | selector)
	}
	if v.Sign() >= 0 && v.Cmp(big.NewInt(0x800)) < 0 {
		val := v.Int64()
		if err := w.WriteByte(byte((val>>3)&0b1110_0000) | selector | 0b0000_1000); err != nil {
			return err
		}
		return w.WriteByte(byte(val & 0xFF))
	}

	n := minimalByteWidth(v)
	if n <= 8 {
		tag := byte(n-2)<<5 | 0b0001_1000 | selector
		if err := w.WriteByte(tag); err != nil {
			return err
		}
		_, err := w.Write(twosComplementBytes(v, n))
		return err
	}

	tag := byte(0b111)<<5 | 0b0001_1000 | selector
	if err := w.WriteByte(tag); err != nil {
		return err
	}
	if err := encodeUsizeTerm(w, uint64(n-9)); err != nil {
		return err
	}
	_, err := w.Write(twosComplementBytes(v, n))
	return err
}

// isEscapeForm reports whether tag selects the length-prefixed escape form
// of the signed sub-encoding (decodeVarint's default branch), as opposed to
// the 4-bit immediate, 11-bit immediate, or direct 2..8 byte forms.
func isEscapeForm(tag byte) bool {
	if tag&0b1000 == 0 || tag&0b10000 == 0 {
		return false
	}
	return tag>>5 == 0b111
}

// decodeUsizeValue decodes a Usize-position value: the signed sub-encoding,
// rejected if negative or if it does not fit in a uint64 (the machine-word
// bound this implementation enforces, matching §4.1/§9's resolution that
// Usize positions always use the signed machinery and then validate). The
// escape form is always rejected outright, regardless of the value it
// decodes to: a Usize position never legitimately needs more than the
// direct form's 8 bytes, so reaching the escape form at all means the
// value exceeds the machine-word bound.
func decodeUsizeValue(r *Reader, tag byte) (uint64, error) {
	if isEscapeForm(tag) {
		_, byteSize, err := decodeVarint(r, tag)
		if err != nil {
			return 0, err
		}
		return 0, &errs.TooLargeUsizeValue{ByteSize: byteSize}
	}

	v, byteSize, err := decodeVarint(r, tag)
	if err != nil {
		return 0, err
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, &errs.TooLargeUsizeValue{ByteSize: byteSize}
	}
	return v.Uint64(), nil
}

// decodeUsizeTerm decodes one fully tagged nested term and projects it to a
// Usize, as required for a List/AllocationList length, an AllocationList
// item's kind/count, a FloatingPointRegister/Literal index, a
// TypedRegister's type index, and an escape-form byte-length prefix.
func decodeUsizeTerm(r *Reader) (uint64, error) {
	t, err := Decode(r)
	if err != nil {
		return 0, err
	}
	u, ok := t.(Usize)
	if !ok {
		return 0, &errs.UnexpectedTerm{Expected: KindUsize.String(), Actual: t.Kind().String()}
	}
	return uint64(u), nil
}

// encodeUsizeTerm encodes v as a fully tagged Usize term, the nested-term
// counterpart of decodeUsizeTerm.
func encodeUsizeTerm(w *Writer, v uint64) error {
	return Encode(w, Usize(v))
}
