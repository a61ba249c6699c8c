// Package term implements the compact-term wire format used by BEAM generic
// bytecode operands: a tag-prefixed, variable-length encoding for small
// naturals, arbitrary-precision signed integers, atoms, the two register
// banks, labels, characters, lists, floating-point registers, allocation
// lists, extended literals, and typed registers.
//
// The encoder always chooses the minimal legal representation for a given
// value, since round-trip byte-identity is part of the wire contract and not
// merely a size optimization: a value decoded from its minimal form
// re-encodes to the exact bytes it was decoded from. The decoder does not
// reject non-minimal forms; a value decoded from one re-encodes to the
// minimal form instead.
package term
