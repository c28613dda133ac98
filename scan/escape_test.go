package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/nibble/fail"
	"github.com/zostay/nibble/scan"
	"github.com/zostay/nibble/span"
)

func TestEscaped(t *testing.T) {
	t.Parallel()

	// digit runs with backslash escapes for quote, n, and backslash
	esc := scan.Escaped(
		scan.Digit1[span.Bytes](),
		'\\',
		scan.OneOf[span.Bytes](`"n\`),
	)

	tests := []struct {
		name    string
		in      string
		matched string
		rest    string
	}{
		{name: "no escapes", in: `123;`, matched: `123`, rest: `;`},
		{name: "escape inside", in: `12\"34;`, matched: `12\"34`, rest: `;`},
		{name: "escape at start", in: `\n123;`, matched: `\n123`, rest: `;`},
		{name: "escape at end of input", in: `123\"`, matched: `123\"`, rest: ``},
		{name: "consumes whole input", in: `12\n34`, matched: `12\n34`, rest: ``},
		{name: "back to back escapes", in: `\\\n9;`, matched: `\\\n9`, rest: `;`},
		{name: "empty input", in: ``, matched: ``, rest: ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rest, matched, err := esc(bin(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.matched, matched.String())
			assert.Equal(t, tt.rest, rest.String())
			assert.Equal(t, tt.in, matched.String()+rest.String())
		})
	}
}

func TestEscapedFailures(t *testing.T) {
	t.Parallel()

	esc := scan.Escaped(
		scan.Digit1[span.Bytes](),
		'\\',
		scan.OneOf[span.Bytes](`"n\`),
	)

	// nothing recognized at all
	rest, _, err := esc(bin(`;123`))
	requireKind(t, err, fail.Escaped)
	assert.Equal(t, `;123`, rest.String())

	// trailing, unterminated escape
	_, _, err = esc(bin(`123\`))
	requireKind(t, err, fail.Escaped)

	// a failing escapable propagates its own failure
	_, _, err = esc(bin(`12\z`))
	requireKind(t, err, fail.OneOf)
}

func TestEscapedStopsCleanly(t *testing.T) {
	t.Parallel()

	esc := scan.Escaped(
		scan.Digit1[span.Bytes](),
		'\\',
		scan.OneOf[span.Bytes](`"n\`),
	)

	// once something was consumed, an unrecognized unit ends the match
	// instead of failing
	rest, matched, err := esc(bin(`12;34`))
	require.NoError(t, err)
	assert.Equal(t, `12`, matched.String())
	assert.Equal(t, `;34`, rest.String())
}

func TestEscapedZeroProgressNormal(t *testing.T) {
	t.Parallel()

	// a normal recognizer that can succeed empty must not loop forever;
	// the first zero-progress round ends the match
	esc := scan.Escaped(
		scan.Digit0[span.Bytes](),
		'\\',
		scan.OneOf[span.Bytes](`"n\`),
	)

	rest, matched, err := esc(bin(`12abc`))
	require.NoError(t, err)
	assert.Equal(t, `12`, matched.String())
	assert.Equal(t, `abc`, rest.String())
}

func TestEscapedRoundTrip(t *testing.T) {
	t.Parallel()

	// alpha runs alternating with single-character escapes consume the
	// whole string verbatim
	esc := scan.Escaped(
		scan.Alpha1[span.Bytes](),
		'\\',
		scan.OneOf[span.Bytes](`tn\`),
	)

	for _, in := range []string{
		`ab\tcd`,
		`\n`,
		`abc`,
		`a\ta\ta\t`,
		`\t\n\\end`,
	} {
		rest, matched, err := esc(bin(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, matched.String(), "input %q", in)
		assert.Equal(t, 0, rest.Len(), "input %q", in)
	}
}

func TestEscapedText(t *testing.T) {
	t.Parallel()

	esc := scan.Escaped(
		scan.TakeWhile1[span.Text](scan.Not(scan.InSet(`\«»`))),
		'\\',
		scan.OneOf[span.Text](`«»\`),
	)

	rest, matched, err := esc(txt(`héllo\«wörld\»`))
	require.NoError(t, err)
	assert.Equal(t, `héllo\«wörld\»`, matched.String())
	assert.Equal(t, 0, rest.Len())
}

func TestEscapedTransform(t *testing.T) {
	t.Parallel()

	unescape := scan.EscapedTransform(
		scan.Alpha1[span.Bytes](),
		'\\',
		scan.Replace[span.Bytes](
			scan.Replacement{From: '\\', To: `\`},
			scan.Replacement{From: 'n', To: "\n"},
			scan.Replacement{From: 't', To: "\t"},
		),
	)

	tests := []struct {
		name string
		in   string
		out  string
		rest string
	}{
		{name: "newline escape", in: `ab\ncd`, out: "ab\ncd"},
		{name: "backslash escape", in: `ab\\cd`, out: `ab\cd`},
		{name: "several escapes", in: `a\tb\nc`, out: "a\tb\nc"},
		{name: "escape only", in: `\n`, out: "\n"},
		{name: "no escapes", in: `abcd`, out: "abcd"},
		{name: "empty input", in: ``, out: ""},
		{name: "stops at unrecognized unit", in: `ab\ncd;xyz`, out: "ab\ncd", rest: `;xyz`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rest, out, err := unescape(bin(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
			assert.Equal(t, tt.rest, rest.String())
		})
	}
}

func TestEscapedTransformFailures(t *testing.T) {
	t.Parallel()

	unescape := scan.EscapedTransform(
		scan.Alpha1[span.Bytes](),
		'\\',
		scan.Replace[span.Bytes](scan.Replacement{From: 'n', To: "\n"}),
	)

	// nothing recognized at all
	_, _, err := unescape(bin(`;abc`))
	requireKind(t, err, fail.EscapedTransform)

	// trailing, unterminated escape
	_, _, err = unescape(bin(`abc\`))
	requireKind(t, err, fail.EscapedTransform)

	// unknown escape payload propagates the transformer's failure
	_, _, err = unescape(bin(`abc\z`))
	requireKind(t, err, fail.OneOf)
}

func TestEscapedTransformOwnsOutput(t *testing.T) {
	t.Parallel()

	buf := []byte(`ab\ncd`)
	unescape := scan.EscapedTransform(
		scan.Alpha1[span.Bytes](),
		'\\',
		scan.Replace[span.Bytes](scan.Replacement{From: 'n', To: "\n"}),
	)

	_, out, err := unescape(span.NewBytes(buf))
	require.NoError(t, err)
	require.Equal(t, "ab\ncd", string(out))

	// mutating the input must not reach into the returned buffer
	buf[0] = 'X'
	assert.Equal(t, "ab\ncd", string(out))
}

func TestEscapedTransformText(t *testing.T) {
	t.Parallel()

	unescape := scan.EscapedTransform(
		scan.TakeWhile1[span.Text](scan.Not(scan.InSet(`\`))),
		'\\',
		scan.Replace[span.Text](
			scan.Replacement{From: 'b', To: "␣"},
			scan.Replacement{From: '\\', To: `\`},
		),
	)

	rest, out, err := unescape(txt(`døg\bcät`))
	require.NoError(t, err)
	assert.Equal(t, "døg␣cät", string(out))
	assert.Equal(t, 0, rest.Len())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	rep := scan.Replace[span.Bytes](
		scan.Replacement{From: 'n', To: "\n"},
		scan.Replacement{From: '\\', To: `\`},
	)

	rest, out, err := rep(bin("nx"))
	require.NoError(t, err)
	assert.Equal(t, "\n", string(out))
	assert.Equal(t, "x", rest.String())

	_, _, err = rep(bin("zx"))
	requireKind(t, err, fail.OneOf)
	_, _, err = rep(bin(""))
	requireKind(t, err, fail.OneOf)
}
