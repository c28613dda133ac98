// Package fail defines the failure taxonomy shared by every nibble
// recognizer. A failure names the kind of recognizer that gave up and
// carries the input at the point of failure. Failures are ordinary
// return values: a caller branches on the kind to decide whether to try
// an alternative recognizer against the same input.
package fail

import (
	"errors"
	"fmt"

	"github.com/zostay/nibble/span"
)

// Kind identifies the recognizer that produced a failure.
type Kind int

const (
	// Tag is returned by scan.Tag and scan.TagNoCase.
	Tag Kind = iota

	// IsA is returned by scan.IsA.
	IsA

	// IsNot is returned by scan.IsNot.
	IsNot

	// TakeWhile1 is returned by scan.TakeWhile1 and the one-or-more
	// character-class runs built on it.
	TakeWhile1

	// TakeWhileMN is returned by scan.TakeWhileMN.
	TakeWhileMN

	// TakeTill1 is returned by scan.TakeTill1.
	TakeTill1

	// Eof is returned by scan.Take and scan.AnyUnit when the input is
	// too short.
	Eof

	// TakeUntil is returned by scan.TakeUntil and scan.TakeUntil1.
	TakeUntil

	// Escaped is returned by scan.Escaped.
	Escaped

	// EscapedTransform is returned by scan.EscapedTransform.
	EscapedTransform

	// OneOf is returned by scan.OneOf and scan.Replace.
	OneOf

	// NoneOf is returned by scan.NoneOf.
	NoneOf

	// Satisfy is returned by scan.Satisfy.
	Satisfy
)

var kindNames = map[Kind]string{
	Tag:              "tag",
	IsA:              "is a",
	IsNot:            "is not",
	TakeWhile1:       "take while 1",
	TakeWhileMN:      "take while m:n",
	TakeTill1:        "take till 1",
	Eof:              "eof",
	TakeUntil:        "take until",
	Escaped:          "escaped",
	EscapedTransform: "escaped transform",
	OneOf:            "one of",
	NoneOf:           "none of",
	Satisfy:          "satisfy",
}

// String returns the name of the failure kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is the typed failure returned by every recognizer. Input is the
// span at the point of failure: the original input for the simple
// recognizers, the last consistent boundary reached for the escape
// consumers.
type Error[S span.Seq[S]] struct {
	Kind  Kind
	Input S
}

// New builds a failure of the given kind at the given input.
func New[S span.Seq[S]](k Kind, in S) error {
	return &Error[S]{Kind: k, Input: in}
}

// Error renders the failure with a short preview of the input at the
// failure point.
func (e *Error[S]) Error() string {
	return fmt.Sprintf("nibble: %s: no match at %q", e.Kind, preview(e.Input.String()))
}

// ErrorKind returns the failure kind. It exists so KindOf can recover
// the kind without knowing the span type.
func (e *Error[S]) ErrorKind() Kind {
	return e.Kind
}

// KindOf returns the failure kind carried by err, for any span type.
// The second return is false when err is not a recognizer failure.
func KindOf(err error) (Kind, bool) {
	var k interface{ ErrorKind() Kind }
	if errors.As(err, &k) {
		return k.ErrorKind(), true
	}
	return 0, false
}

const previewLen = 16

// preview truncates s for error messages, keeping whole code points.
func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	end := 0
	for i := range s {
		if i > previewLen {
			break
		}
		end = i
	}
	return s[:end] + "…"
}
