package instr

// DecodeAll decodes every instruction in data, consuming the entire buffer.
// An empty buffer yields an empty, non-nil slice. A partial instruction at
// the end of the buffer is a decode error; there is no partial-stream
// recovery inside the codec.
func DecodeAll(data []byte, opts ...Option) ([]Instruction, error) {
	d := NewDecoder(data, opts...)
	out := make([]Instruction, 0)
	for d.Len() > 0 {
		in, err := d.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// EncodeAll encodes ins back-to-back into a single fresh buffer.
func EncodeAll(ins []Instruction, opts ...Option) ([]byte, error) {
	e := NewEncoder(opts...)
	defer e.Release()
	for _, in := range ins {
		if err := e.Encode(in); err != nil {
			return nil, err
		}
	}
	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())
	return out, nil
}
