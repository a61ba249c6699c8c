package instr

// FieldKind names the expected term kind of one operand position in an
// opcode's schema entry.
type FieldKind uint8

const (
	// FieldUsize decodes a Usize-position value.
	FieldUsize FieldKind = iota
	// FieldAtom decodes and projects to Atom.
	FieldAtom
	// FieldLabel decodes and projects to Label.
	FieldLabel
	// FieldRegister decodes and projects to the Register sum (X, Y, or
	// TypedRegister).
	FieldRegister
	// FieldAllocation decodes and projects to the Allocation sum (a bare
	// word count or an AllocationList).
	FieldAllocation
	// FieldTerm accepts any term kind, untyped.
	FieldTerm
	// FieldList decodes and projects to List, a heterogeneous term
	// sequence.
	FieldList
	// FieldYRegisterList decodes a List and additionally asserts every
	// element is a YRegister (e.g. InitYregs's operand).
	FieldYRegisterList
)

// Field is one named, ordered operand position in an opcode's schema entry.
type Field struct {
	Name string
	Kind FieldKind
}

// Spec is the declarative schema entry for a single opcode: its canonical
// name, deprecated status, and ordered operand field list. Decode and
// Encode are the single generic implementations that walk this table,
// rather than 180 hand-written per-opcode functions.
type Spec struct {
	Opcode     Opcode
	Name       string
	Deprecated bool
	Fields     []Field
}

// Table returns the complete opcode schema: every opcode 1..=180 mapped to
// its Spec. The returned map must not be mutated by callers.
func Table() map[Opcode]Spec {
	return table
}

// Name returns the canonical name of op, or "" if op has no schema entry.
func (op Opcode) Name() string {
	return opcodeNames[op]
}
