package term

import "github.com/arloliu/beamcode/errs"

// The Decode* functions below each decode one fully tagged term and project
// it to the named kind, failing with UnexpectedTerm if the wire tag names a
// different kind. They are what the instr schema dispatcher calls for each
// declared field kind.

func DecodeUsize(r *Reader) (Usize, error) {
	t, err := Decode(r)
	if err != nil {
		return 0, err
	}
	v, ok := t.(Usize)
	if !ok {
		return 0, &errs.UnexpectedTerm{Expected: KindUsize.String(), Actual: t.Kind().String()}
	}
	return v, nil
}

func DecodeAtom(r *Reader) (Atom, error) {
	t, err := Decode(r)
	if err != nil {
		return Atom{}, err
	}
	v, ok := t.(Atom)
	if !ok {
		return Atom{}, &errs.UnexpectedTerm{Expected: KindAtom.String(), Actual: t.Kind().String()}
	}
	return v, nil
}

func DecodeLabel(r *Reader) (Label, error) {
	t, err := Decode(r)
	if err != nil {
		return Label{}, err
	}
	v, ok := t.(Label)
	if !ok {
		return Label{}, &errs.UnexpectedTerm{Expected: KindLabel.String(), Actual: t.Kind().String()}
	}
	return v, nil
}

func DecodeList(r *Reader) (List, error) {
	t, err := Decode(r)
	if err != nil {
		return List{}, err
	}
	v, ok := t.(List)
	if !ok {
		return List{}, &errs.UnexpectedTerm{Expected: KindList.String(), Actual: t.Kind().String()}
	}
	return v, nil
}

// DecodeRegister decodes a term that must be an X register, a Y register,
// or a TypedRegister wrapping either — the full Register sum per §4.2's
// kind-projection rule.
func DecodeRegister(r *Reader) (Register, error) {
	t, err := Decode(r)
	if err != nil {
		return nil, err
	}
	reg, ok := t.(Register)
	if !ok {
		return nil, &errs.UnexpectedTerm{Expected: "Register", Actual: t.Kind().String()}
	}
	return reg, nil
}

// DecodeAllocation decodes a term that must be a bare Usize word count or a
// structured AllocationList.
func DecodeAllocation(r *Reader) (Allocation, error) {
	t, err := Decode(r)
	if err != nil {
		return nil, err
	}
	alloc, ok := t.(Allocation)
	if !ok {
		return nil, &errs.UnexpectedTerm{Expected: "Allocation", Actual: t.Kind().String()}
	}
	return alloc, nil
}

// DecodeYRegisterList decodes a List term and asserts that every element is
// a YRegister, as required by opcodes like InitYregs whose operand is a
// list specifically of Y registers rather than a heterogeneous Term list.
func DecodeYRegisterList(r *Reader) ([]YRegister, error) {
	l, err := DecodeList(r)
	if err != nil {
		return nil, err
	}
	regs := make([]YRegister, 0, len(l.Elements))
	for _, el := range l.Elements {
		y, ok := el.(YRegister)
		if !ok {
			return nil, &errs.UnexpectedTerm{Expected: KindYRegister.String(), Actual: el.Kind().String()}
		}
		regs = append(regs, y)
	}
	return regs, nil
}

// EncodeYRegisterList is the encode-side counterpart of DecodeYRegisterList.
func EncodeYRegisterList(w *Writer, regs []YRegister) error {
	elements := make([]Term, len(regs))
	for i, y := range regs {
		elements[i] = y
	}
	return Encode(w, List{Elements: elements})
}
