// Package errs defines the sentinel errors shared by the term and instr
// packages, plus the typed errors that carry the structured fields needed
// to diagnose a malformed compact-term or instruction stream.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should use errors.Is against these rather than
// comparing typed errors directly, since the typed errors below all wrap one
// of these via Unwrap.
var (
	// ErrUnknownTermTag is returned (via UnknownTermTag) when a tag byte's
	// kind and extended-subtag combination is not defined. Every low-3-bit
	// value selects a kind, so in practice this is an Extended-kind tag whose
	// subtag nibble matches none of the defined extended kinds.
	ErrUnknownTermTag = errors.New("errs: unknown term tag")

	// ErrUnknownExtendedTag names an Extended-kind term whose subtag nibble
	// matches none of the defined extended kinds. The term decoder reports
	// that case as UnknownTermTag, which unwraps to ErrUnknownTermTag; no
	// function in this module returns ErrUnknownExtendedTag.
	ErrUnknownExtendedTag = errors.New("errs: unknown extended term tag")

	// ErrUnexpectedTerm is returned when a decoded term does not match the
	// kind a caller or schema field projection expected.
	ErrUnexpectedTerm = errors.New("errs: unexpected term kind")

	// ErrTooLargeUsizeValue is returned when a Usize-position value decodes
	// negative or requires more than 8 bytes, exceeding the machine-word
	// bound this implementation enforces.
	ErrTooLargeUsizeValue = errors.New("errs: usize value too large")

	// ErrUnknownAllocationListItemTag is returned when an AllocationList
	// item's kind tag does not match Words, Floats, or Funs.
	ErrUnknownAllocationListItemTag = errors.New("errs: unknown allocation list item tag")

	// ErrInvalidUnicodeCodepoint is returned when a Character term's value
	// does not decode to a valid Unicode code point.
	ErrInvalidUnicodeCodepoint = errors.New("errs: invalid unicode code point")

	// ErrUnknownOpcode is returned when an instruction's opcode byte has no
	// entry in the generic-instruction schema table.
	ErrUnknownOpcode = errors.New("errs: unknown opcode")

	// ErrTruncatedStream is returned when the byte stream ends in the middle
	// of a term or instruction.
	ErrTruncatedStream = errors.New("errs: truncated stream")

	// ErrListTooLong is returned when a decoded List or AllocationList
	// exceeds the configured maximum length.
	ErrListTooLong = errors.New("errs: list exceeds configured maximum length")

	// ErrIntegerTooLong is returned when a decoded Integer's byte width
	// exceeds the configured maximum.
	ErrIntegerTooLong = errors.New("errs: integer exceeds configured maximum byte length")

	// ErrChecksumMismatch is returned by snapshot.Load when the stored
	// checksum does not match the re-encoded byte stream.
	ErrChecksumMismatch = errors.New("errs: snapshot checksum mismatch")

	// ErrUnsupportedCodec is returned when a snapshot names a compression
	// codec this build does not recognize.
	ErrUnsupportedCodec = errors.New("errs: unsupported snapshot codec")
)

// UnexpectedTerm reports that a term of kind Actual was found where Expected
// was required, e.g. by a schema field projection or a typed accessor.
type UnexpectedTerm struct {
	Expected string
	Actual   string
}

func (e *UnexpectedTerm) Error() string {
	return fmt.Sprintf("errs: expected %s term, got %s", e.Expected, e.Actual)
}

func (e *UnexpectedTerm) Unwrap() error { return ErrUnexpectedTerm }

// UnknownOpcode reports an opcode byte with no schema entry.
type UnknownOpcode struct {
	Opcode byte
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("errs: unknown opcode %d", e.Opcode)
}

func (e *UnknownOpcode) Unwrap() error { return ErrUnknownOpcode }

// TooLargeUsizeValue reports a Usize-position decode that required ByteSize
// bytes (or decoded negative), exceeding what this implementation accepts.
type TooLargeUsizeValue struct {
	ByteSize int
}

func (e *TooLargeUsizeValue) Error() string {
	return fmt.Sprintf("errs: usize value spans %d bytes, exceeds machine-word bound", e.ByteSize)
}

func (e *TooLargeUsizeValue) Unwrap() error { return ErrTooLargeUsizeValue }

// UnknownTermTag reports a tag byte whose kind and extended-subtag
// combination is not defined (an Extended-kind tag with an undefined subtag
// nibble).
type UnknownTermTag struct {
	Tag byte
}

func (e *UnknownTermTag) Error() string {
	return fmt.Sprintf("errs: unknown term tag 0x%02x", e.Tag)
}

func (e *UnknownTermTag) Unwrap() error { return ErrUnknownTermTag }

// UnknownAllocationListItemTag reports an AllocationList item kind tag
// outside {Words, Floats, Funs}.
type UnknownAllocationListItemTag struct {
	Tag uint64
}

func (e *UnknownAllocationListItemTag) Error() string {
	return fmt.Sprintf("errs: unknown allocation list item tag %d", e.Tag)
}

func (e *UnknownAllocationListItemTag) Unwrap() error { return ErrUnknownAllocationListItemTag }

// InvalidUnicodeCodepoint reports a Character term whose Value is not a
// valid Unicode code point.
type InvalidUnicodeCodepoint struct {
	Value uint32
}

func (e *InvalidUnicodeCodepoint) Error() string {
	return fmt.Sprintf("errs: invalid unicode code point %d", e.Value)
}

func (e *InvalidUnicodeCodepoint) Unwrap() error { return ErrInvalidUnicodeCodepoint }
