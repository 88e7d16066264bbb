package scry

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ParseStream is the cursor an in-progress parse threads through recursive
// descent: a shared *Source plus the current character position. Position
// only moves forward during successful consumes; speculative parsing forks
// the stream instead of rewinding it.
//
// Forking is O(1) (the source is shared, only the position is copied), which
// is what makes backtracking and lookahead affordable.
//
// Position policy on failure: Consume leaves the position unchanged, while
// the expected-text operations (ParseString, ParseIString and the ParseValue
// contract built on them) advance past the longest common prefix before
// failing, so their diagnostics point at the first diverging character.
type ParseStream struct {
	src *Source
	pos int
}

// NewParseStream creates a stream over src positioned at the start.
func NewParseStream(src *Source) *ParseStream {
	return &ParseStream{src: src}
}

// StreamString wraps in-memory text in a fresh Source and streams over it.
func StreamString(text string) *ParseStream {
	return NewParseStream(NewSource(text))
}

// Source returns the shared source the stream reads from.
func (st *ParseStream) Source() *Source {
	return st.src
}

// Position returns the current character offset.
func (st *ParseStream) Position() int {
	return st.pos
}

// SetPosition moves the cursor, clamped to [0, source length].
func (st *ParseStream) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > st.src.Len() {
		pos = st.src.Len()
	}
	st.pos = pos
}

// AtEOF reports whether the cursor is at the end of the input.
func (st *ParseStream) AtEOF() bool {
	return st.pos >= st.src.Len()
}

// LenRemaining returns the number of characters left to consume.
func (st *ParseStream) LenRemaining() int {
	return st.src.Len() - st.pos
}

// Remaining returns the byte-exact text from the cursor to the end.
func (st *ParseStream) Remaining() string {
	return st.src.SliceFrom(st.pos).AsString()
}

// RemainingSpan returns a span from the cursor to the end of the input.
func (st *ParseStream) RemainingSpan() Span {
	return NewSpan(st.src, st.pos, st.src.Len())
}

// CurrentSpan returns a one-character span at the cursor (empty at end of
// input), the anchor for "unexpected token" diagnostics.
func (st *ParseStream) CurrentSpan() Span {
	return NewSpan(st.src, st.pos, min(st.src.Len(), st.pos+1))
}

// Fork returns an independent copy of the stream: same source, own position.
// Moving the fork never affects the original.
func (st *ParseStream) Fork() *ParseStream {
	fork := *st
	return &fork
}

// Consume advances by exactly n characters and returns the consumed span.
// If fewer than n characters remain it fails and the position is unchanged.
func (st *ParseStream) Consume(n int) (Span, error) {
	if n < 0 {
		n = 0
	}
	if st.LenRemaining() < n {
		return Span{}, NewErrorf(st.RemainingSpan(),
			"expected at least %d more characters, found %d", n, st.LenRemaining())
	}
	start := st.pos
	st.pos += n
	return NewSpan(st.src, start, st.pos), nil
}

// ConsumeRemaining consumes to the end of the input. Always succeeds; at end
// of input the returned span is empty.
func (st *ParseStream) ConsumeRemaining() Span {
	span := st.RemainingSpan()
	st.pos = st.src.Len()
	return span
}

// NextChar returns the character at the cursor without consuming it.
func (st *ParseStream) NextChar() (rune, error) {
	c, ok := st.src.CharAt(st.pos)
	if !ok {
		return 0, NewError(st.CurrentSpan(), "unexpected end of input")
	}
	return c, nil
}

// ParseChar consumes and returns the character at the cursor.
func (st *ParseStream) ParseChar() (rune, error) {
	c, err := st.NextChar()
	if err != nil {
		return 0, err
	}
	st.pos++
	return c, nil
}

// NextDigit returns the decimal digit at the cursor without consuming it.
func (st *ParseStream) NextDigit() (uint8, error) {
	c, err := st.NextChar()
	if err != nil {
		return 0, err
	}
	if c < '0' || c > '9' {
		return 0, NewError(st.CurrentSpan(), "expected digit (0-9)")
	}
	return uint8(c - '0'), nil
}

// ParseDigit consumes and returns the decimal digit at the cursor.
func (st *ParseStream) ParseDigit() (uint8, error) {
	d, err := st.NextDigit()
	if err != nil {
		return 0, err
	}
	st.pos++
	return d, nil
}

// NextAlpha returns the ASCII letter at the cursor without consuming it.
func (st *ParseStream) NextAlpha() (rune, error) {
	c, err := st.NextChar()
	if err != nil {
		return 0, err
	}
	if !isASCIIAlpha(c) {
		return 0, NewError(st.CurrentSpan(), "expected alphabetic (A-Z|a-z)")
	}
	return c, nil
}

// ParseAlpha consumes and returns the ASCII letter at the cursor.
func (st *ParseStream) ParseAlpha() (rune, error) {
	c, err := st.NextAlpha()
	if err != nil {
		return 0, err
	}
	st.pos++
	return c, nil
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseString matches value exactly at the cursor and returns the consumed
// span. On a partial match the stream advances past the longest common
// prefix and the error span starts at the first diverging character, naming
// the missing suffix.
func (st *ParseStream) ParseString(value string) (Span, error) {
	if strings.HasPrefix(st.Remaining(), value) {
		return st.Consume(utf8.RuneCountInString(value))
	}
	return Span{}, st.failExpected(commonPrefixRunes(value, st.Remaining()), value)
}

// ParseIString is ParseString with case-insensitive comparison. The consumed
// span still covers the original-case input text, and on failure the missing
// suffix is reported in the expected value's original case.
func (st *ParseStream) ParseIString(value string) (Span, error) {
	if strings.HasPrefix(strings.ToLower(st.Remaining()), strings.ToLower(value)) {
		return st.Consume(utf8.RuneCountInString(value))
	}
	prefix := commonPrefixRunes(strings.ToLower(value), strings.ToLower(st.Remaining()))
	return Span{}, st.failExpected(prefix, value)
}

// failExpected implements the prefix-advance failure policy shared by the
// expected-text operations: given the length of the longest common prefix
// between the expected text and the remaining input, advance past it and
// report the suffix of report (the display form) from the first mismatch.
func (st *ParseStream) failExpected(prefix int, report string) *Error {
	reportRunes := []rune(report)
	span := NewSpan(st.src, st.pos+prefix, st.pos+len(reportRunes))
	missing := string(reportRunes[min(prefix, len(reportRunes)):])
	st.pos += prefix
	return ExpectedError(span, missing)
}

// commonPrefixRunes returns the length in characters of the longest common
// prefix of a and b.
func commonPrefixRunes(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return n
}

// PeekString reports whether the remaining input starts with value.
func (st *ParseStream) PeekString(value string) bool {
	return strings.HasPrefix(st.Remaining(), value)
}

// PeekIString reports whether the remaining input starts with value,
// ignoring case.
func (st *ParseStream) PeekIString(value string) bool {
	return strings.HasPrefix(strings.ToLower(st.Remaining()), strings.ToLower(value))
}

// ParseAnyStringOf tries each value in order and parses the first one that
// matches, returning its span and index. If none match it fails with an
// aggregate "expected one of" error and the position is unchanged.
func (st *ParseStream) ParseAnyStringOf(values ...string) (Span, int, error) {
	for i, v := range values {
		if st.PeekString(v) {
			span, err := st.ParseString(v)
			return span, i, err
		}
	}
	return Span{}, 0, NewErrorf(st.CurrentSpan(), "expected one of %s", quoteList(values))
}

// ParseAnyIStringOf is ParseAnyStringOf with case-insensitive matching.
func (st *ParseStream) ParseAnyIStringOf(values ...string) (Span, int, error) {
	for i, v := range values {
		if st.PeekIString(v) {
			span, err := st.ParseIString(v)
			return span, i, err
		}
	}
	return Span{}, 0, NewErrorf(st.CurrentSpan(), "expected one of %s", quoteList(values))
}

// PeekAnyStringOf reports whether any of the values matches at the cursor.
func (st *ParseStream) PeekAnyStringOf(values ...string) bool {
	for _, v := range values {
		if st.PeekString(v) {
			return true
		}
	}
	return false
}

// PeekAnyIStringOf reports whether any of the values matches at the cursor,
// ignoring case.
func (st *ParseStream) PeekAnyIStringOf(values ...string) bool {
	for _, v := range values {
		if st.PeekIString(v) {
			return true
		}
	}
	return false
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	return strings.Join(quoted, ", ")
}

// ParseRegexp matches re anchored at the cursor and consumes exactly the
// match. A match that starts later in the remaining input is a failure, not
// something to skip ahead to.
func (st *ParseStream) ParseRegexp(re *regexp.Regexp) (Span, error) {
	loc := re.FindStringIndex(st.Remaining())
	if loc == nil || loc[0] != 0 {
		return Span{}, NewErrorf(st.CurrentSpan(), "expected match for `%s`", re.String())
	}
	return st.Consume(utf8.RuneCountInString(st.Remaining()[:loc[1]]))
}

// PeekRegexp reports whether re matches at the cursor.
func (st *ParseStream) PeekRegexp(re *regexp.Regexp) bool {
	_, err := st.Fork().ParseRegexp(re)
	return err == nil
}

// ParsePattern compiles pattern and matches it like ParseRegexp. It panics
// on invalid regex syntax: a bad pattern is a grammar-author bug, not a data
// error. Use ToRegexp for the fallible path.
func (st *ParseStream) ParsePattern(pattern string) (Span, error) {
	return st.ParseRegexp(MustRegexp(pattern))
}

// PeekPattern reports whether pattern matches at the cursor, panicking on
// invalid regex syntax.
func (st *ParseStream) PeekPattern(pattern string) bool {
	return st.PeekRegexp(MustRegexp(pattern))
}
