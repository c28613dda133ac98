package scan

import (
	"strings"

	"github.com/zostay/go-std/slices"

	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// Predicate is a function that returns true if it matches a single
// unit or false if it does not. Byte spans present each byte as a rune
// in [0x00, 0xFF], so one predicate serves both span kinds; any
// func(rune) bool, such as unicode.IsLetter, is usable directly.
type Predicate func(u rune) bool

// InSet creates a Predicate from the set of units in the given string.
func InSet(set string) Predicate {
	return func(u rune) bool {
		return strings.ContainsRune(set, u)
	}
}

// InRange creates a Predicate that matches any unit in the given
// range. The match is inclusive so units equal to either end point are
// also matched.
func InRange(lo, hi rune) Predicate {
	return func(u rune) bool {
		return u >= lo && u <= hi
	}
}

// InSets creates a combined Predicate from several set strings,
// matching a unit found in any of them.
func InSets(sets ...string) Predicate {
	return Any(slices.Map(sets, InSet)...)
}

// Any creates a combined Predicate that matches a unit that matches
// any of the given predicates.
func Any(preds ...Predicate) Predicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(u rune) bool {
			for _, pred := range preds {
				if pred(u) {
					return true
				}
			}
			return false
		}
	}
}

// Not creates a Predicate that matches a unit the given predicate does
// not.
func Not(pred Predicate) Predicate {
	return func(u rune) bool {
		return !pred(u)
	}
}

// IsA returns a recognizer that matches the longest non-empty prefix
// whose units all belong to the given set. It fails when the first
// unit is already outside the set or the input is empty.
func IsA[S span.Seq[S]](set string) nibble.Recognizer[S] {
	pred := InSet(set)
	return func(in S) (rest, matched S, err error) {
		n := countWhile(in, pred, -1)
		if n == 0 {
			var zero S
			return in, zero, fail.New(fail.IsA, in)
		}
		matched, rest = in.SplitAt(n)
		return rest, matched, nil
	}
}

// IsNot returns a recognizer that matches the longest non-empty prefix
// whose units all fall outside the given set. It fails when the first
// unit already belongs to the set or the input is empty.
func IsNot[S span.Seq[S]](set string) nibble.Recognizer[S] {
	pred := Not(InSet(set))
	return func(in S) (rest, matched S, err error) {
		n := countWhile(in, pred, -1)
		if n == 0 {
			var zero S
			return in, zero, fail.New(fail.IsNot, in)
		}
		matched, rest = in.SplitAt(n)
		return rest, matched, nil
	}
}
