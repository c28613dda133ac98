// Package nibble is a recognizer library for complete, in-memory input.
// A recognizer consumes a prefix of its input according to a fixed
// pattern and hands back the remainder together with what it matched,
// or a typed failure describing what gave up and where.
//
// The recognizers themselves live in the scan package and are built by
// constructor functions capturing their configuration, so they compose
// freely: anything with the Recognizer shape can be passed wherever a
// recognizer is expected, including as the normal-content and
// escape-payload parameters of scan.Escaped. Input is always a span
// (see the span package), a borrowed view that works identically over
// raw bytes and Unicode text.
//
// Every recognizer assumes the whole input is already buffered: there
// is no "need more data" signal, only success or failure. On failure no
// input is consumed.
package nibble

import (
	"github.com/zostay/nibble/span"
)

// Recognizer is the type for recognizing functions. A Recognizer
// consumes a prefix of in and returns the rest of the input along with
// the matched prefix. Both returned spans borrow the backing storage of
// in, split at the consumed boundary, so matched followed by rest is
// exactly in.
//
// On failure the returned error is a *fail.Error carrying the kind of
// recognizer that failed, rest is in unchanged, and matched is the zero
// span. A Recognizer never partially consumes on failure.
type Recognizer[S span.Seq[S]] func(in S) (rest, matched S, err error)

// Transformer is the type for recognizing functions that build output
// rather than borrow it. A Transformer consumes a prefix of in and
// returns the rest of the input along with an owned buffer holding the
// produced bytes. The buffer never aliases the input.
//
// Transformers are produced by scan.EscapedTransform and consumed by it
// as the escape-payload parameter.
type Transformer[S span.Seq[S]] func(in S) (rest S, out []byte, err error)
