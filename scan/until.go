package scan

import (
	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// TakeUntil returns a recognizer that consumes everything up to but
// not including the first occurrence of pattern. It fails when the
// pattern does not occur at all. The empty pattern is found at offset
// zero, so the match is empty.
func TakeUntil[S span.Seq[S]](pattern S) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		off := in.Find(pattern)
		if off < 0 {
			var zero S
			return in, zero, fail.New(fail.TakeUntil, in)
		}
		matched, rest = in.SplitAt(off)
		return rest, matched, nil
	}
}

// TakeUntil1 is TakeUntil except that it also fails when the pattern
// occurs at the very start of the input, where TakeUntil would succeed
// with an empty match.
func TakeUntil1[S span.Seq[S]](pattern S) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		off := in.Find(pattern)
		if off <= 0 {
			var zero S
			return in, zero, fail.New(fail.TakeUntil, in)
		}
		matched, rest = in.SplitAt(off)
		return rest, matched, nil
	}
}
