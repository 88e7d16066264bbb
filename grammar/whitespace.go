package grammar

import (
	"unicode"

	"scry"
)

// Whitespace is a run of one or more whitespace characters.
type Whitespace struct {
	span scry.Span
}

// Parse consumes the whitespace run at the cursor; it fails without moving
// the stream if the cursor is not on whitespace.
func (Whitespace) Parse(st *scry.ParseStream) (Whitespace, error) {
	start := st.Position()
	for {
		c, err := st.NextChar()
		if err != nil || !unicode.IsSpace(c) {
			break
		}
		if _, err := st.Consume(1); err != nil {
			return Whitespace{}, err
		}
	}
	if st.Position() == start {
		return Whitespace{}, scry.NewError(st.CurrentSpan(), "expected whitespace")
	}
	return Whitespace{span: scry.NewSpan(st.Source(), start, st.Position())}, nil
}

// ParseValue matches this value's exact whitespace text at the cursor.
func (w Whitespace) ParseValue(st *scry.ParseStream) (Whitespace, error) {
	span, err := st.ParseString(w.Unparse())
	if err != nil {
		return Whitespace{}, err
	}
	return Whitespace{span: span}, nil
}

// Unparse returns the consumed whitespace text.
func (w Whitespace) Unparse() string {
	return w.span.SourceText().AsString()
}

// Span returns the consumed span.
func (w Whitespace) Span() scry.Span {
	return w.span
}

func (w Whitespace) String() string {
	return w.Unparse()
}
