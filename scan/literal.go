// Package scan provides the recognizer constructors. Each constructor
// captures its configuration (a pattern, a predicate, bounds, or other
// recognizers) and returns a nibble.Recognizer ready to be applied to a
// span. The span's type parameter usually cannot be inferred from the
// arguments, so call sites name it explicitly:
//
//	digits := scan.IsA[span.Bytes]("0123456789")
//	rest, matched, err := digits(span.NewBytes(input))
package scan

import (
	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// Tag returns a recognizer that matches the given pattern exactly at
// the front of the input. The empty pattern always succeeds, consuming
// nothing.
func Tag[S span.Seq[S]](pattern S) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		if in.Compare(pattern) != span.Match {
			var zero S
			return in, zero, fail.New(fail.Tag, in)
		}
		matched, rest = in.SplitAt(pattern.Len())
		return rest, matched, nil
	}
}

// TagNoCase is Tag without case sensitivity. The matched span is the
// input's own casing, not the pattern's. Byte spans fold ASCII letters
// only; text spans fold per code point.
func TagNoCase[S span.Seq[S]](pattern S) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		if in.CompareFold(pattern) != span.Match {
			var zero S
			return in, zero, fail.New(fail.Tag, in)
		}
		matched, rest = in.SplitAt(pattern.Len())
		return rest, matched, nil
	}
}
