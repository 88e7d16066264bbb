package grammar

import "scry"

// Nothing is the zero-width grammar that succeeds only at end of input. Its
// span is the empty span at the cursor and its unparsed form is empty.
type Nothing struct {
	span scry.Span
}

// Parse succeeds iff the stream is at end of input.
func (Nothing) Parse(st *scry.ParseStream) (Nothing, error) {
	if !st.AtEOF() {
		return Nothing{}, scry.NewErrorf(st.CurrentSpan(),
			"expected nothing, found `%s`", st.CurrentSpan().SourceText().AsString())
	}
	return Nothing{span: st.CurrentSpan()}, nil
}

// ParseValue ignores the expected value: Nothing is zero-width, so its
// textual form carries no information. It simply re-parses.
func (n Nothing) ParseValue(st *scry.ParseStream) (Nothing, error) {
	return n.Parse(st)
}

// Unparse returns the empty string.
func (Nothing) Unparse() string {
	return ""
}

// Span returns the empty span at the position Nothing was parsed.
func (n Nothing) Span() scry.Span {
	return n.span
}

func (Nothing) String() string {
	return ""
}
