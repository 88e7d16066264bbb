package grammar

import "scry"

// Exact is a run of source text matched verbatim. It is the result type of
// the literal-matching operations and the building block for keyword and
// punctuation grammars.
type Exact struct {
	text string
	span scry.Span
}

// ExactOf builds a detached expected value from literal text, backed by its
// own single-use source. Use it with ParseValue/PeekValue to require that
// exact text in a stream.
func ExactOf(text string) Exact {
	src := scry.NewSource(text)
	return Exact{text: text, span: scry.NewSpan(src, 0, src.Len())}
}

// ExactFromSpan wraps an already-consumed span as an Exact.
func ExactFromSpan(span scry.Span) Exact {
	return Exact{text: span.SourceText().AsString(), span: span}
}

// ParseExact matches text verbatim at the cursor.
func ParseExact(st *scry.ParseStream, text string) (Exact, error) {
	span, err := st.ParseString(text)
	if err != nil {
		return Exact{}, err
	}
	return ExactFromSpan(span), nil
}

// ParseIExact matches text at the cursor ignoring case. The returned Exact
// carries the input's original-case text, not the expected value's.
func ParseIExact(st *scry.ParseStream, text string) (Exact, error) {
	span, err := st.ParseIString(text)
	if err != nil {
		return Exact{}, err
	}
	return ExactFromSpan(span), nil
}

// Parse fails: an Exact carries no grammar of its own, only expected text.
// Parse it with ParseValue (or ParseExact) instead.
func (e Exact) Parse(st *scry.ParseStream) (Exact, error) {
	return Exact{}, scry.NewError(st.CurrentSpan(), "cannot parse `Exact` without an expected value")
}

// ParseValue matches this value's text verbatim at the cursor.
func (e Exact) ParseValue(st *scry.ParseStream) (Exact, error) {
	span, err := st.ParseString(e.text)
	if err != nil {
		return Exact{}, err
	}
	return ExactFromSpan(span), nil
}

// Unparse returns the matched text.
func (e Exact) Unparse() string {
	return e.text
}

// Span returns the span of the matched text.
func (e Exact) Span() scry.Span {
	return e.span
}

func (e Exact) String() string {
	return e.text
}
