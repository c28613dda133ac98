package scan

import (
	"fmt"

	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// countWhile scans the front of in counting consecutive units matching
// pred, stopping at the first unit that does not, at the end of input,
// or after max units when max is non-negative.
func countWhile[S span.Seq[S]](in S, pred Predicate, max int) int {
	count := 0
	in.Units(func(_ int, u rune) bool {
		if max >= 0 && count == max {
			return false
		}
		if !pred(u) {
			return false
		}
		count++
		return true
	})
	return count
}

// TakeWhile returns a recognizer that matches the longest prefix whose
// units all satisfy cond. The match may be empty; TakeWhile never
// fails.
func TakeWhile[S span.Seq[S]](cond Predicate) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		matched, rest = in.SplitAt(countWhile(in, cond, -1))
		return rest, matched, nil
	}
}

// TakeWhile1 is TakeWhile except that it fails on an empty match.
func TakeWhile1[S span.Seq[S]](cond Predicate) nibble.Recognizer[S] {
	return takeWhile1[S](cond, fail.TakeWhile1)
}

// takeWhile1 lets the character-class runs reuse the one-or-more scan
// under their own failure kind.
func takeWhile1[S span.Seq[S]](cond Predicate, kind fail.Kind) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		n := countWhile(in, cond, -1)
		if n == 0 {
			var zero S
			return in, zero, fail.New(kind, in)
		}
		matched, rest = in.SplitAt(n)
		return rest, matched, nil
	}
}

// TakeWhileMN returns a recognizer that matches the longest prefix
// whose units satisfy cond, never consuming more than n units. It
// succeeds only when at least m units matched; in particular an input
// shorter than m units fails. With m and n both zero it succeeds with
// an empty match.
//
// m and n are a caller contract: TakeWhileMN panics when m > n or
// either is negative.
func TakeWhileMN[S span.Seq[S]](m, n int, cond Predicate) nibble.Recognizer[S] {
	if m < 0 || n < 0 || m > n {
		panic(fmt.Sprintf("scan: invalid TakeWhileMN bounds %d:%d", m, n))
	}
	return func(in S) (rest, matched S, err error) {
		count := countWhile(in, cond, n)
		if count < m {
			var zero S
			return in, zero, fail.New(fail.TakeWhileMN, in)
		}
		matched, rest = in.SplitAt(count)
		return rest, matched, nil
	}
}

// TakeTill returns a recognizer that matches the longest prefix whose
// units do not satisfy cond, stopping as soon as cond holds or the
// input runs out. The match may be empty; TakeTill never fails.
func TakeTill[S span.Seq[S]](cond Predicate) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		matched, rest = in.SplitAt(countWhile(in, Not(cond), -1))
		return rest, matched, nil
	}
}

// TakeTill1 is TakeTill except that it fails on an empty match, that
// is when the very first unit already satisfies cond or the input is
// empty.
func TakeTill1[S span.Seq[S]](cond Predicate) nibble.Recognizer[S] {
	return takeWhile1[S](Not(cond), fail.TakeTill1)
}

// Take returns a recognizer that consumes exactly n units. For text
// input that is n code points, however many bytes they occupy. It
// fails when fewer than n units remain.
func Take[S span.Seq[S]](n int) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		if in.Len() < n {
			var zero S
			return in, zero, fail.New(fail.Eof, in)
		}
		matched, rest = in.SplitAt(n)
		return rest, matched, nil
	}
}
