package span

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is a borrowed view over a string. Its unit is one Unicode code
// point: Len counts code points, SplitAt and Find speak code point
// offsets, and a split never lands inside a multi-byte encoding. Text
// is a value type: copying it or splitting it never copies the string.
type Text struct {
	str string
}

// NewText returns a span viewing the whole of str.
func NewText(str string) Text {
	return Text{str: str}
}

// Len returns the number of code points remaining.
func (s Text) Len() int {
	return utf8.RuneCountInString(s.str)
}

// byteOffset translates a code point offset into the corresponding byte
// offset, panicking when n is past the end of the text.
func (s Text) byteOffset(n int) int {
	count := 0
	for i := range s.str {
		if count == n {
			return i
		}
		count++
	}
	if count == n {
		return len(s.str)
	}
	panic("span: split offset past end of text")
}

// SplitAt splits the span at the given code point offset.
func (s Text) SplitAt(n int) (taken, rest Text) {
	b := s.byteOffset(n)
	return Text{str: s.str[:b]}, Text{str: s.str[b:]}
}

// Compare reports whether pattern is a prefix of the span.
func (s Text) Compare(pattern Text) Comparison {
	if strings.HasPrefix(s.str, pattern.str) {
		return Match
	}
	if strings.HasPrefix(pattern.str, s.str) {
		return Partial
	}
	return NoMatch
}

// foldEqual reports whether two code points are equal under Unicode
// simple case folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	r := unicode.SimpleFold(a)
	for r != a {
		if r == b {
			return true
		}
		r = unicode.SimpleFold(r)
	}
	return false
}

// CompareFold is Compare without case sensitivity, folding per code
// point.
func (s Text) CompareFold(pattern Text) Comparison {
	a, b := s.str, pattern.str
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if !foldEqual(ra, rb) {
			return NoMatch
		}
		a, b = a[na:], b[nb:]
	}
	if len(b) > 0 {
		return Partial
	}
	return Match
}

// Find returns the code point offset of the first occurrence of
// pattern, or -1 when it does not occur.
func (s Text) Find(pattern Text) int {
	i := strings.Index(s.str, pattern.str)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s.str[:i])
}

// First returns the first code point, if any.
func (s Text) First() (rune, bool) {
	if len(s.str) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.str)
	return r, true
}

// Units calls yield for each code point in order with its code point
// offset.
func (s Text) Units(yield func(offset int, u rune) bool) {
	count := 0
	for _, r := range s.str {
		if !yield(count, r) {
			return
		}
		count++
	}
}

// Append appends the span's UTF-8 bytes to dst.
func (s Text) Append(dst []byte) []byte {
	return append(dst, s.str...)
}

// String returns the span contents.
func (s Text) String() string {
	return s.str
}
