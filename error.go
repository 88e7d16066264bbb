package scry

import "fmt"

// Error is the parsing error type: a single error-severity Diagnostic with no
// children at construction. It renders as the full diagnostic block, so a
// failed parse prints source context and carets, not a bare message.
type Error struct {
	diag Diagnostic
}

// NewError creates a parse error anchored to span.
func NewError(span Span, message string) *Error {
	return &Error{diag: NewDiagnostic(SevError, span, message)}
}

// NewErrorf creates a parse error with a formatted message.
func NewErrorf(span Span, format string, args ...any) *Error {
	return NewError(span, fmt.Sprintf(format, args...))
}

// ExpectedError creates the conventional "expected `...`" parse error.
func ExpectedError(span Span, expected string) *Error {
	return NewErrorf(span, "expected `%s`", expected)
}

func (e *Error) Error() string {
	return e.diag.String()
}

// Diagnostic returns the underlying diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	return e.diag
}

// Message returns the diagnostic message.
func (e *Error) Message() string {
	return e.diag.Message()
}

// Span returns the span the error is anchored to.
func (e *Error) Span() Span {
	return e.diag.Span()
}
