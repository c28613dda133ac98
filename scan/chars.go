package scan

import (
	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// IsAlpha matches an ASCII letter.
func IsAlpha(u rune) bool {
	return (u >= 'a' && u <= 'z') || (u >= 'A' && u <= 'Z')
}

// IsDigit matches an ASCII decimal digit.
func IsDigit(u rune) bool {
	return u >= '0' && u <= '9'
}

// IsHexDigit matches an ASCII hexadecimal digit.
func IsHexDigit(u rune) bool {
	return IsDigit(u) || (u >= 'a' && u <= 'f') || (u >= 'A' && u <= 'F')
}

// IsOctDigit matches an ASCII octal digit.
func IsOctDigit(u rune) bool {
	return u >= '0' && u <= '7'
}

// IsAlphanumeric matches an ASCII letter or decimal digit.
func IsAlphanumeric(u rune) bool {
	return IsAlpha(u) || IsDigit(u)
}

// IsSpace matches a space or a tab.
func IsSpace(u rune) bool {
	return u == ' ' || u == '\t'
}

// IsMultispace matches a space, tab, carriage return, or line feed.
func IsMultispace(u rune) bool {
	return u == ' ' || u == '\t' || u == '\r' || u == '\n'
}

// Alpha0 returns a recognizer for a possibly empty run of ASCII
// letters.
func Alpha0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsAlpha)
}

// Alpha1 returns a recognizer for a non-empty run of ASCII letters.
func Alpha1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsAlpha, fail.TakeWhile1)
}

// Digit0 returns a recognizer for a possibly empty run of ASCII
// decimal digits.
func Digit0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsDigit)
}

// Digit1 returns a recognizer for a non-empty run of ASCII decimal
// digits.
func Digit1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsDigit, fail.TakeWhile1)
}

// HexDigit0 returns a recognizer for a possibly empty run of ASCII
// hexadecimal digits.
func HexDigit0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsHexDigit)
}

// HexDigit1 returns a recognizer for a non-empty run of ASCII
// hexadecimal digits.
func HexDigit1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsHexDigit, fail.TakeWhile1)
}

// Alphanumeric0 returns a recognizer for a possibly empty run of ASCII
// letters and digits.
func Alphanumeric0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsAlphanumeric)
}

// Alphanumeric1 returns a recognizer for a non-empty run of ASCII
// letters and digits.
func Alphanumeric1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsAlphanumeric, fail.TakeWhile1)
}

// Space0 returns a recognizer for a possibly empty run of spaces and
// tabs.
func Space0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsSpace)
}

// Space1 returns a recognizer for a non-empty run of spaces and tabs.
func Space1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsSpace, fail.TakeWhile1)
}

// Multispace0 returns a recognizer for a possibly empty run of spaces,
// tabs, carriage returns, and line feeds.
func Multispace0[S span.Seq[S]]() nibble.Recognizer[S] {
	return TakeWhile[S](IsMultispace)
}

// Multispace1 returns a recognizer for a non-empty run of spaces,
// tabs, carriage returns, and line feeds.
func Multispace1[S span.Seq[S]]() nibble.Recognizer[S] {
	return takeWhile1[S](IsMultispace, fail.TakeWhile1)
}

// one consumes a single unit satisfying pred, failing with the given
// kind when the input is empty or the unit does not satisfy it.
func one[S span.Seq[S]](pred Predicate, kind fail.Kind) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		u, ok := in.First()
		if !ok || !pred(u) {
			var zero S
			return in, zero, fail.New(kind, in)
		}
		matched, rest = in.SplitAt(1)
		return rest, matched, nil
	}
}

// OneOf returns a recognizer that consumes a single unit belonging to
// the given set.
func OneOf[S span.Seq[S]](set string) nibble.Recognizer[S] {
	return one[S](InSet(set), fail.OneOf)
}

// NoneOf returns a recognizer that consumes a single unit not
// belonging to the given set.
func NoneOf[S span.Seq[S]](set string) nibble.Recognizer[S] {
	return one[S](Not(InSet(set)), fail.NoneOf)
}

// Satisfy returns a recognizer that consumes a single unit satisfying
// pred.
func Satisfy[S span.Seq[S]](pred Predicate) nibble.Recognizer[S] {
	return one[S](pred, fail.Satisfy)
}

// AnyUnit returns a recognizer that consumes a single unit of any
// value, failing only on empty input.
func AnyUnit[S span.Seq[S]]() nibble.Recognizer[S] {
	return one[S](func(rune) bool { return true }, fail.Eof)
}
