package grammar

import "scry"

// Everything consumes all remaining input, however much there is. Parsing it
// always succeeds; at end of input it covers an empty span.
type Everything struct {
	span scry.Span
}

// EverythingFromSpan wraps an existing span as an Everything, usually to
// build an expected value for ParseValue.
func EverythingFromSpan(span scry.Span) Everything {
	return Everything{span: span}
}

// Parse consumes from the cursor to the end of the input.
func (Everything) Parse(st *scry.ParseStream) (Everything, error) {
	return Everything{span: st.ConsumeRemaining()}, nil
}

// ParseValue requires the remaining input to equal this value's text
// exactly. A diverging character is reported as a missing suffix; trailing
// input after a full match fails with "expected end of input".
func (e Everything) ParseValue(st *scry.ParseStream) (Everything, error) {
	span, err := st.ParseString(e.Unparse())
	if err != nil {
		return Everything{}, err
	}
	if !st.AtEOF() {
		return Everything{}, scry.NewError(st.CurrentSpan(), "expected end of input")
	}
	return Everything{span: span}, nil
}

// Unparse returns the consumed text.
func (e Everything) Unparse() string {
	return e.span.SourceText().AsString()
}

// Span returns the consumed span.
func (e Everything) Span() scry.Span {
	return e.span
}

func (e Everything) String() string {
	return e.Unparse()
}
