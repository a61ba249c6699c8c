// Package instr implements the ~180-opcode BEAM generic-instruction schema:
// a declarative table mapping each opcode byte to its ordered, named
// operand fields, and the generic Decode/Encode dispatcher that walks it.
package instr

import (
	"fmt"

	"github.com/arloliu/beamcode/errs"
	"github.com/arloliu/beamcode/internal/options"
	"github.com/arloliu/beamcode/internal/pool"
	"github.com/arloliu/beamcode/term"
)

// Instruction is one decoded generic-instruction: an opcode plus its
// ordered operand values, each a term.Term of the kind the opcode's Spec
// declares for that position.
type Instruction struct {
	Op     Opcode
	Fields []term.Term
}

// Field returns the operand at the named field position, or false if op has
// no field by that name.
func (in Instruction) Field(name string) (term.Term, bool) {
	spec, ok := table[in.Op]
	if !ok {
		return nil, false
	}
	for i, f := range spec.Fields {
		if f.Name == name && i < len(in.Fields) {
			return in.Fields[i], true
		}
	}
	return nil, false
}

// config holds the resolved settings for a Decoder or Encoder, built from
// functional Options.
type config struct {
	maxListLength       int
	maxIntegerBytes     int
	structuralWarnings  bool
	encodeBufferDefault int
}

func defaultConfig() *config {
	return &config{encodeBufferDefault: pool.DefaultBufferSize}
}

// Option configures a Decoder or Encoder.
type Option = options.Option[*config]

// WithMaxListLength caps the element count accepted for any List or
// AllocationList operand during decode.
func WithMaxListLength(n int) Option {
	return options.NoError(func(c *config) { c.maxListLength = n })
}

// WithMaxIntegerBytes caps the byte width accepted for the direct/escape
// signed sub-encoding during decode.
func WithMaxIntegerBytes(n int) Option {
	return options.NoError(func(c *config) { c.maxIntegerBytes = n })
}

// WithStructuralWarnings enables collection of non-fatal structural
// warnings (currently: decoding a deprecated opcode) via Decoder.Warnings,
// instead of silently accepting them.
func WithStructuralWarnings() Option {
	return options.NoError(func(c *config) { c.structuralWarnings = true })
}

// Decoder decodes a flat instruction-stream buffer into a sequence of
// Instruction values.
type Decoder struct {
	r        *term.Reader
	cfg      *config
	warnings []string
}

// NewDecoder creates a Decoder over data with the given options applied.
func NewDecoder(data []byte, opts ...Option) *Decoder {
	cfg := defaultConfig()
	_ = options.Apply(cfg, opts...) // NoError options never fail

	limits := term.Limits{MaxListLength: cfg.maxListLength, MaxIntegerBytes: cfg.maxIntegerBytes}
	return &Decoder{
		r:   term.NewReaderWithLimits(data, limits),
		cfg: cfg,
	}
}

// Warnings returns the structural warnings collected so far, populated only
// when WithStructuralWarnings was passed to NewDecoder.
func (d *Decoder) Warnings() []string {
	return d.warnings
}

// Next decodes a single instruction. It returns errs.ErrTruncatedStream when
// no bytes remain, and an error wrapping it (with the opcode and field name)
// when the stream ends inside an instruction; callers should stop calling
// Next once d.Len() == 0.
func (d *Decoder) Next() (Instruction, error) {
	opByte, err := d.r.ReadByte()
	if err != nil {
		return Instruction{}, errs.ErrTruncatedStream
	}
	op := Opcode(opByte)

	spec, ok := table[op]
	if !ok {
		return Instruction{}, &errs.UnknownOpcode{Opcode: opByte}
	}
	if spec.Deprecated && d.cfg.structuralWarnings {
		d.warnings = append(d.warnings, fmt.Sprintf("decoded deprecated opcode %s (%d)", spec.Name, op))
	}

	fields := make([]term.Term, len(spec.Fields))
	for i, f := range spec.Fields {
		v, err := decodeField(d.r, f.Kind)
		if err != nil {
			return Instruction{}, fmt.Errorf("instr: opcode %s field %q: %w", spec.Name, f.Name, err)
		}
		fields[i] = v
	}

	return Instruction{Op: op, Fields: fields}, nil
}

// Len reports the number of unconsumed bytes remaining in the stream.
func (d *Decoder) Len() int { return d.r.Len() }

func decodeField(r *term.Reader, kind FieldKind) (term.Term, error) {
	switch kind {
	case FieldUsize:
		return term.DecodeUsize(r)
	case FieldAtom:
		return term.DecodeAtom(r)
	case FieldLabel:
		return term.DecodeLabel(r)
	case FieldRegister:
		return term.DecodeRegister(r)
	case FieldAllocation:
		return term.DecodeAllocation(r)
	case FieldTerm:
		return term.Decode(r)
	case FieldList:
		return term.DecodeList(r)
	case FieldYRegisterList:
		regs, err := term.DecodeYRegisterList(r)
		if err != nil {
			return nil, err
		}
		elements := make([]term.Term, len(regs))
		for i, y := range regs {
			elements[i] = y
		}
		return term.List{Elements: elements}, nil
	default:
		return nil, fmt.Errorf("instr: unhandled field kind %d", kind)
	}
}

// Encoder encodes a sequence of Instruction values into a flat byte stream
// using a pooled, growable buffer.
type Encoder struct {
	buf *pool.ByteBuffer
	w   *term.Writer
	cfg *config
}

// NewEncoder creates an Encoder with the given options applied.
func NewEncoder(opts ...Option) *Encoder {
	cfg := defaultConfig()
	_ = options.Apply(cfg, opts...)

	buf := pool.Get()
	buf.Grow(cfg.encodeBufferDefault)
	return &Encoder{buf: buf, w: term.NewWriter(buf), cfg: cfg}
}

// Encode appends in's wire encoding (opcode byte followed by each field) to
// the encoder's internal buffer.
func (e *Encoder) Encode(in Instruction) error {
	if err := e.w.WriteByte(byte(in.Op)); err != nil {
		return err
	}
	spec, ok := table[in.Op]
	if !ok {
		return &errs.UnknownOpcode{Opcode: byte(in.Op)}
	}
	if len(in.Fields) != len(spec.Fields) {
		return fmt.Errorf("instr: opcode %s expects %d fields, got %d", spec.Name, len(spec.Fields), len(in.Fields))
	}
	for i, f := range spec.Fields {
		if f.Kind == FieldYRegisterList {
			l, ok := in.Fields[i].(term.List)
			if !ok {
				return fmt.Errorf("instr: opcode %s field %q: %w", spec.Name, f.Name, errs.ErrUnexpectedTerm)
			}
			regs := make([]term.YRegister, len(l.Elements))
			for j, el := range l.Elements {
				y, ok := el.(term.YRegister)
				if !ok {
					return fmt.Errorf("instr: opcode %s field %q: %w", spec.Name, f.Name, errs.ErrUnexpectedTerm)
				}
				regs[j] = y
			}
			if err := term.EncodeYRegisterList(e.w, regs); err != nil {
				return err
			}
			continue
		}
		if err := term.Encode(e.w, in.Fields[i]); err != nil {
			return fmt.Errorf("instr: opcode %s field %q: %w", spec.Name, f.Name, err)
		}
	}
	return nil
}

// Bytes returns the bytes encoded so far.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Reset clears the encoder's buffer for reuse, retaining its capacity.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Release returns the encoder's buffer to the shared pool. The Encoder must
// not be used after Release.
func (e *Encoder) Release() {
	pool.Put(e.buf)
}
