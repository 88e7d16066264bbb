package scry

// Parsable is the contract every grammar type implements, parameterized by
// the implementing type itself so dispatch stays static (no interface values
// cross the parse path).
//
//   - Parse constructs a fresh value by consuming from the stream.
//   - ParseValue matches this specific value (not just "any valid T")
//     against the stream. The default strategy for a type is to match its
//     unparsed text via ParseStream.ParseString; types that are zero-width
//     or have more than one textual form override the behavior.
//   - Unparse is the exact inverse of Parse: re-serializing a parsed value
//     must reproduce the consumed source text byte for byte.
type Parsable[T any] interface {
	Spanned
	Parse(st *ParseStream) (T, error)
	ParseValue(st *ParseStream) (T, error)
	Unparse() string
}

// Parse consumes a T from the stream.
func Parse[T Parsable[T]](st *ParseStream) (T, error) {
	var zero T
	return zero.Parse(st)
}

// ParseValue matches the specific expected value against the stream.
func ParseValue[T Parsable[T]](st *ParseStream, value T) (T, error) {
	return value.ParseValue(st)
}

// Peek reports whether a T could be parsed at the cursor. The attempt runs
// on a fork, so the stream is never moved.
func Peek[T Parsable[T]](st *ParseStream) bool {
	_, err := Parse[T](st.Fork())
	return err == nil
}

// PeekValue reports whether the specific expected value matches at the
// cursor, without moving the stream.
func PeekValue[T Parsable[T]](st *ParseStream, value T) bool {
	_, err := ParseValue(st.Fork(), value)
	return err == nil
}

// ParseText parses a T from in-memory text, wrapping it in a fresh Source.
func ParseText[T Parsable[T]](text string) (T, error) {
	return Parse[T](StreamString(text))
}
