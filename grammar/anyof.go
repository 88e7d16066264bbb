package grammar

import "scry"

// AnyOf records which of a fixed set of literal alternatives matched: the
// matched text, its index in the alternative list and its span. It is a
// result type rather than a free-standing grammar, so it is parsed with
// ParseAnyOf instead of scry.Parse.
type AnyOf struct {
	text  string
	index int
	span  scry.Span
}

// ParseAnyOf matches the first alternative that occurs verbatim at the
// cursor. If none match, it fails with an aggregate "expected one of" error
// and the stream does not move.
func ParseAnyOf(st *scry.ParseStream, alternatives ...string) (AnyOf, error) {
	span, index, err := st.ParseAnyStringOf(alternatives...)
	if err != nil {
		return AnyOf{}, err
	}
	return AnyOf{text: span.SourceText().AsString(), index: index, span: span}, nil
}

// ParseIAnyOf is ParseAnyOf with case-insensitive matching; the result
// carries the input's original-case text.
func ParseIAnyOf(st *scry.ParseStream, alternatives ...string) (AnyOf, error) {
	span, index, err := st.ParseAnyIStringOf(alternatives...)
	if err != nil {
		return AnyOf{}, err
	}
	return AnyOf{text: span.SourceText().AsString(), index: index, span: span}, nil
}

// Index returns the position of the matched alternative in the list passed
// to ParseAnyOf.
func (a AnyOf) Index() int {
	return a.index
}

// Unparse returns the matched text.
func (a AnyOf) Unparse() string {
	return a.text
}

// Span returns the span of the matched text.
func (a AnyOf) Span() scry.Span {
	return a.span
}

func (a AnyOf) String() string {
	return a.text
}
