package grammar

import "scry"

// Optional wraps a grammar type that may be textually absent. An absent
// value is zero-width: parsing one consumes nothing and its span is the
// empty span at the cursor.
type Optional[T scry.Parsable[T]] struct {
	value *T
	span  scry.Span
}

// Some builds a present detached value.
func Some[T scry.Parsable[T]](value T) Optional[T] {
	return Optional[T]{value: &value, span: value.Span()}
}

// None builds an absent detached value.
func None[T scry.Parsable[T]]() Optional[T] {
	return Optional[T]{}
}

// Parse attempts a T at the cursor; if the attempt would fail, the failure
// is downgraded to an absent value and the stream does not move.
func (Optional[T]) Parse(st *scry.ParseStream) (Optional[T], error) {
	if !scry.Peek[T](st) {
		return Optional[T]{span: emptySpanAt(st)}, nil
	}
	value, err := scry.Parse[T](st)
	if err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{value: &value, span: value.Span()}, nil
}

// ParseValue matches the wrapped expected value when present; an absent
// expected value matches zero-width and always succeeds.
func (o Optional[T]) ParseValue(st *scry.ParseStream) (Optional[T], error) {
	if o.value == nil {
		return Optional[T]{span: emptySpanAt(st)}, nil
	}
	value, err := scry.ParseValue(st, *o.value)
	if err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{value: &value, span: value.Span()}, nil
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.value != nil
}

// Get returns the wrapped value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// Unparse returns the wrapped value's text, or "" when absent.
func (o Optional[T]) Unparse() string {
	if o.value == nil {
		return ""
	}
	return (*o.value).Unparse()
}

// Span returns the wrapped value's span, or the empty span recorded where
// the absence was parsed.
func (o Optional[T]) Span() scry.Span {
	return o.span
}

func (o Optional[T]) String() string {
	return o.Unparse()
}

func emptySpanAt(st *scry.ParseStream) scry.Span {
	return scry.NewSpan(st.Source(), st.Position(), st.Position())
}
