package wasmgen

import (
	"bytes"
	"encoding/binary"
	"math"
)

// byteWriter is a small buffered LEB128/fixed-width byte writer. Grounded
// on wippyai-wasm-runtime's wasm/internal/binary.Writer (same method names
// and LEB128 loop shape), since that pack has no writer for encoded
// instruction *trees* built bottom-up the way the expression lowerer needs.
type byteWriter struct {
	buf bytes.Buffer
}

func newByteWriter() *byteWriter { return &byteWriter{} }

func (w *byteWriter) Bytes() []byte { return w.buf.Bytes() }
func (w *byteWriter) Len() int      { return w.buf.Len() }

func (w *byteWriter) Byte(b byte)         { w.buf.WriteByte(b) }
func (w *byteWriter) Raw(b []byte)        { w.buf.Write(b) }
func (w *byteWriter) Str(s string)        { w.buf.WriteString(s) }
func (w *byteWriter) Append(other []byte) { w.buf.Write(other) }

// U32 writes an unsigned LEB128 uint32.
func (w *byteWriter) U32(v uint32) { w.u64(uint64(v)) }

func (w *byteWriter) u64(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// S32 writes a signed LEB128 int32.
func (w *byteWriter) S32(v int32) { w.s64(int64(v)) }

// S64 writes a signed LEB128 int64.
func (w *byteWriter) S64(v int64) { w.s64(v) }

func (w *byteWriter) s64(v int64) {
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		w.buf.WriteByte(b)
	}
}

// F32 writes a little-endian IEEE-754 single.
func (w *byteWriter) F32(v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf.Write(b[:])
}

// F64 writes a little-endian IEEE-754 double.
func (w *byteWriter) F64(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.buf.Write(b[:])
}

// Name writes a length-prefixed UTF-8 string (wasm "name" production).
func (w *byteWriter) Name(s string) {
	w.U32(uint32(len(s)))
	w.buf.WriteString(s)
}

// VecSection wraps body with its own U32 length prefix, matching wasm's
// size-prefixed section encoding.
func VecSection(id byte, body []byte) []byte {
	out := newByteWriter()
	out.Byte(id)
	out.U32(uint32(len(body)))
	out.Raw(body)
	return out.Bytes()
}
