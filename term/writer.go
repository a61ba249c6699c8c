package term

import "github.com/arloliu/beamcode/internal/pool"

// Writer is the encode-side cursor: an append-only pooled byte buffer. Term
// and Instruction encoders write directly into it, so a caller re-encoding
// thousands of instructions (a disassembler re-emitting a whole module) pays
// for one growing buffer instead of one allocation per instruction.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter wraps an existing pooled buffer for term encoding.
func NewWriter(buf *pool.ByteBuffer) *Writer {
	return &Writer{buf: buf}
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.buf.MustWrite([]byte{b})
	return nil
}

// Write appends p verbatim.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf.MustWrite(p)
	return len(p), nil
}

// Bytes returns the buffer's contents so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
