package term

import (
	"fmt"
	"math/big"

	"github.com/arloliu/beamcode/errs"
)

// Encode writes one compact term to w in its canonical (minimal) form. A
// well-typed Term cannot fail structurally; the only possible error is one
// propagated from the underlying writer.
func Encode(w *Writer, t Term) error {
	switch v := t.(type) {
	case Usize:
		return encodeVarint(w, tagUsize, new(big.Int).SetUint64(uint64(v)))

	case Integer:
		return encodeVarint(w, tagInteger, v.Value)

	case Atom:
		return encodeVarint(w, tagAtom, new(big.Int).SetUint64(v.Value))

	case XRegister:
		return encodeVarint(w, tagXRegister, new(big.Int).SetUint64(v.Index))

	case YRegister:
		return encodeVarint(w, tagYRegister, new(big.Int).SetUint64(v.Index))

	case Label:
		return encodeVarint(w, tagLabel, new(big.Int).SetUint64(v.Value))

	case Character:
		return encodeVarint(w, tagCharacter, big.NewInt(int64(v.Value)))

	case List:
		if err := w.WriteByte(extList<<4 | tagExtended); err != nil {
			return err
		}
		if err := encodeUsizeTerm(w, uint64(len(v.Elements))); err != nil {
			return err
		}
		for _, el := range v.Elements {
			if err := Encode(w, el); err != nil {
				return err
			}
		}
		return nil

	case FloatingPointRegister:
		if err := w.WriteByte(extFloatRegister<<4 | tagExtended); err != nil {
			return err
		}
		return encodeUsizeTerm(w, v.Index)

	case AllocationList:
		if err := w.WriteByte(extAllocList<<4 | tagExtended); err != nil {
			return err
		}
		if err := encodeUsizeTerm(w, uint64(len(v.Items))); err != nil {
			return err
		}
		for _, item := range v.Items {
			if err := encodeUsizeTerm(w, uint64(item.Kind)); err != nil {
				return err
			}
			if err := encodeUsizeTerm(w, item.Count); err != nil {
				return err
			}
		}
		return nil

	case Literal:
		if err := w.WriteByte(extLiteral<<4 | tagExtended); err != nil {
			return err
		}
		return encodeUsizeTerm(w, v.Index)

	case TypedRegister:
		if err := w.WriteByte(extTypedRegister<<4 | tagExtended); err != nil {
			return err
		}
		if err := encodePlainRegister(w, v.Register); err != nil {
			return err
		}
		return encodeUsizeTerm(w, v.TypeIndex)

	default:
		return fmt.Errorf("%w: encode: unhandled term type %T", errs.ErrUnexpectedTerm, t)
	}
}

// decodePlainRegister decodes one fully tagged term and requires it to be a
// plain XRegister or YRegister — the shape TypedRegister wraps.
func decodePlainRegister(r *Reader) (Register, error) {
	t, err := Decode(r)
	if err != nil {
		return nil, err
	}
	switch v := t.(type) {
	case XRegister:
		return v, nil
	case YRegister:
		return v, nil
	default:
		return nil, &errs.UnexpectedTerm{Expected: "XRegister or YRegister", Actual: t.Kind().String()}
	}
}

func encodePlainRegister(w *Writer, reg Register) error {
	switch v := reg.(type) {
	case XRegister:
		return Encode(w, v)
	case YRegister:
		return Encode(w, v)
	default:
		return fmt.Errorf("%w: typed register must wrap a plain X or Y register, got %T", errs.ErrUnexpectedTerm, reg)
	}
}
