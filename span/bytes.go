package span

import (
	"bytes"
)

// Bytes is a borrowed view over a byte buffer. Its unit is one byte,
// presented to predicates as a rune in [0x00, 0xFF]. Bytes is a value
// type: copying it or splitting it never copies the backing buffer.
type Bytes struct {
	buf []byte
}

// NewBytes returns a span viewing the whole of buf. The buffer must not
// be mutated while any span derived from it is in use.
func NewBytes(buf []byte) Bytes {
	return Bytes{buf: buf}
}

// Len returns the number of bytes remaining.
func (s Bytes) Len() int {
	return len(s.buf)
}

// SplitAt splits the span at the given byte offset.
func (s Bytes) SplitAt(n int) (taken, rest Bytes) {
	return Bytes{buf: s.buf[:n]}, Bytes{buf: s.buf[n:]}
}

// Compare reports whether pattern is a prefix of the span.
func (s Bytes) Compare(pattern Bytes) Comparison {
	n := len(pattern.buf)
	if n > len(s.buf) {
		if bytes.Equal(s.buf, pattern.buf[:len(s.buf)]) {
			return Partial
		}
		return NoMatch
	}
	if bytes.Equal(s.buf[:n], pattern.buf) {
		return Match
	}
	return NoMatch
}

// foldByte lowercases ASCII A-Z and leaves every other byte alone.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// CompareFold is Compare without case sensitivity. Folding is
// ASCII-only: bytes outside A-Z and a-z compare verbatim.
func (s Bytes) CompareFold(pattern Bytes) Comparison {
	n := len(pattern.buf)
	if n > len(s.buf) {
		n = len(s.buf)
	}
	for i := 0; i < n; i++ {
		if foldByte(s.buf[i]) != foldByte(pattern.buf[i]) {
			return NoMatch
		}
	}
	if len(s.buf) < len(pattern.buf) {
		return Partial
	}
	return Match
}

// Find returns the byte offset of the first occurrence of pattern, or
// -1 when it does not occur.
func (s Bytes) Find(pattern Bytes) int {
	return bytes.Index(s.buf, pattern.buf)
}

// First returns the first byte, if any.
func (s Bytes) First() (rune, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	return rune(s.buf[0]), true
}

// Units calls yield for each byte in order with its offset.
func (s Bytes) Units(yield func(offset int, u rune) bool) {
	for i, c := range s.buf {
		if !yield(i, rune(c)) {
			return
		}
	}
}

// Append appends the span's bytes to dst.
func (s Bytes) Append(dst []byte) []byte {
	return append(dst, s.buf...)
}

// Bytes returns the backing slice of the span. The slice is borrowed,
// not copied.
func (s Bytes) Bytes() []byte {
	return s.buf
}

// String returns the span contents as a string.
func (s Bytes) String() string {
	return string(s.buf)
}
