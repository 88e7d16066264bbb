package scry

import "regexp"

// ToRegexp compiles a pattern string, returning the compilation error if the
// syntax is invalid. This is the fallible construction path; use it when the
// pattern comes from somewhere that cannot be vetted at development time.
func ToRegexp(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(pattern)
}

// MustRegexp compiles a pattern string, panicking on invalid syntax. An
// invalid pattern written by the grammar author is a logic error, not a
// recoverable data error, so the parsing convenience paths build on this.
func MustRegexp(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}
