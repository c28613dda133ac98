package scan

import (
	"github.com/zostay/nibble"
	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/span"
)

// Escaped returns a recognizer for an alternating grammar of normal
// content and escape-introduced content, consumed verbatim. normal
// recognizes runs of ordinary units and must never consume the control
// unit; escapable recognizes the payload immediately following one
// control unit.
//
// The loop alternates the two phases and stops when the input is
// exhausted, when a phase makes no progress (success with whatever was
// consumed so far), or when nothing was recognized at all (failure). A
// control unit with nothing after it is an unterminated escape and
// fails. A failure from escapable propagates as is.
func Escaped[S span.Seq[S]](
	normal nibble.Recognizer[S],
	control rune,
	escapable nibble.Recognizer[S],
) nibble.Recognizer[S] {
	return func(in S) (rest, matched S, err error) {
		var zero S
		total := in.Len()
		cur := in
		for cur.Len() > 0 {
			nrest, _, nerr := normal(cur)
			if nerr == nil {
				if nrest.Len() == cur.Len() {
					// no progress and nothing consumed this round; the
					// grammar is done here
					break
				}
				cur = nrest
				continue
			}

			u, _ := cur.First()
			if u != control {
				if cur.Len() == total {
					return in, zero, fail.New(fail.Escaped, in)
				}
				break
			}
			if cur.Len() < 2 {
				// trailing, unterminated escape
				return in, zero, fail.New(fail.Escaped, cur)
			}
			_, after := cur.SplitAt(1)
			erest, _, eerr := escapable(after)
			if eerr != nil {
				return in, zero, eerr
			}
			// the control unit guarantees progress even when escapable
			// consumed nothing
			cur = erest
		}
		matched, rest = in.SplitAt(total - cur.Len())
		return rest, matched, nil
	}
}

// EscapedTransform is Escaped except that it builds an owned output
// buffer instead of borrowing the consumed span. Fragments matched by
// normal are copied in verbatim; each escape payload is replaced by
// whatever transform produces, and the control unit itself is never
// copied. The returned buffer never aliases the input.
func EscapedTransform[S span.Seq[S]](
	normal nibble.Recognizer[S],
	control rune,
	transform nibble.Transformer[S],
) nibble.Transformer[S] {
	return func(in S) (rest S, out []byte, err error) {
		total := in.Len()
		cur := in
		for cur.Len() > 0 {
			nrest, nmatched, nerr := normal(cur)
			if nerr == nil {
				if nrest.Len() == cur.Len() {
					break
				}
				out = nmatched.Append(out)
				cur = nrest
				continue
			}

			u, _ := cur.First()
			if u != control {
				if cur.Len() == total {
					return in, nil, fail.New(fail.EscapedTransform, in)
				}
				break
			}
			if cur.Len() < 2 {
				return in, nil, fail.New(fail.EscapedTransform, cur)
			}
			_, after := cur.SplitAt(1)
			erest, rep, terr := transform(after)
			if terr != nil {
				return in, nil, terr
			}
			out = append(out, rep...)
			cur = erest
		}
		_, rest = in.SplitAt(total - cur.Len())
		return rest, out, nil
	}
}

// Replacement names one escapable unit and the bytes that stand in for
// it in transformed output.
type Replacement struct {
	From rune
	To   string
}

// Replace builds a Transformer that recognizes a single unit named by
// one of the given replacements and produces that replacement's bytes.
// It fails on a unit with no replacement and on empty input.
func Replace[S span.Seq[S]](rs ...Replacement) nibble.Transformer[S] {
	return func(in S) (rest S, out []byte, err error) {
		u, ok := in.First()
		if !ok {
			return in, nil, fail.New(fail.OneOf, in)
		}
		for _, r := range rs {
			if r.From == u {
				_, rest = in.SplitAt(1)
				return rest, []byte(r.To), nil
			}
		}
		return in, nil, fail.New(fail.OneOf, in)
	}
}
