// Package span provides the input views the nibble recognizers consume.
//
// A span is a borrowed, cheaply-copyable view over a contiguous backing
// sequence. Splitting a span never copies: both halves alias the same
// backing storage, so the storage must outlive every span derived from
// it. The package ships two implementations: Bytes, whose unit is one
// byte, and Text, whose unit is one Unicode code point. All offsets and
// lengths in this package are counted in units, never in raw bytes,
// which is what lets one recognizer implementation serve both.
package span

// Comparison is the result of comparing a pattern against the front of
// a span.
type Comparison int

const (
	// Match means the pattern is a prefix of the span.
	Match Comparison = iota

	// Partial means the span ran out before the pattern did, but every
	// unit present agreed with the pattern.
	Partial

	// NoMatch means some unit disagreed with the pattern.
	NoMatch
)

// String returns the name of the comparison result.
func (c Comparison) String() string {
	switch c {
	case Match:
		return "match"
	case Partial:
		return "partial"
	case NoMatch:
		return "no match"
	}
	return "unknown"
}

// Seq is the capability set a span must provide for the recognizers to
// operate on it. The type parameter is the implementing type itself, so
// splits preserve the concrete span type.
//
// Units are always presented as rune values. A byte span yields one
// rune in [0x00, 0xFF] per byte; a text span yields one code point per
// unit and keeps every split on a code point boundary.
type Seq[S any] interface {
	// Len returns the number of units remaining in the span.
	Len() int

	// SplitAt splits the span at the given unit offset. Both halves
	// borrow the original backing storage. The offset must be between 0
	// and Len inclusive; anything else is a caller error and panics.
	SplitAt(n int) (taken, rest S)

	// Compare reports whether pattern is a prefix of the span. Partial
	// is returned when the span is shorter than the pattern but agrees
	// with it as far as it goes.
	Compare(pattern S) Comparison

	// CompareFold is Compare without case sensitivity.
	CompareFold(pattern S) Comparison

	// Find returns the unit offset of the first occurrence of pattern,
	// or -1 when it does not occur. The empty pattern is found at 0.
	Find(pattern S) int

	// First returns the first unit, if any.
	First() (rune, bool)

	// Units calls yield for each unit in order with its unit offset,
	// stopping early when yield returns false. Calling Units again
	// restarts from the front of the span.
	Units(yield func(offset int, u rune) bool)

	// Append appends the span's raw storage bytes to dst. Used to build
	// owned output buffers without knowing the storage type.
	Append(dst []byte) []byte

	// String returns the span contents as a string.
	String() string
}
